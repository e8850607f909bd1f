// internals/features/school/weekly_plans/model/hours_ledger_model.go
package model

// HoursLedgerModel: akumulasi jam terpakai per (grade, mapel), satuan koma
// 45 menit. Baris dibuat lazy saat kontribusi pertama, tidak pernah dihapus
// dan tidak pernah berkurang; hanya service approval yang menulis ke sini.
type HoursLedgerModel struct {
	HoursLedgerGrade    string  `gorm:"column:hours_ledger_grade;type:varchar(8);primaryKey" json:"hours_ledger_grade"`
	HoursLedgerSubject  string  `gorm:"column:hours_ledger_subject;type:varchar(64);primaryKey" json:"hours_ledger_subject"`
	HoursLedgerConsumed float64 `gorm:"column:hours_ledger_consumed;type:double precision;not null;default:0" json:"hours_ledger_consumed"`
}

func (HoursLedgerModel) TableName() string { return "hours_ledger" }
