// internals/features/school/weekly_plans/service/ledger.go
package service

import (
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	curriculum "shuan_backend/internals/features/school/curriculum"
	planModel "shuan_backend/internals/features/school/weekly_plans/model"
)

/* =========================================================
   LEDGER JAM TERPAKAI (satuan koma 45 menit)
   Penambahan hanya terjadi di dalam transaksi approval;
   tidak ada operasi yang mengurangi atau menghapus baris.
   ========================================================= */

// incrementLedger: upsert satu baris (grade, mapel) += minutes/45.
// Dipanggil dari dalam transaksi approval — tx WAJIB transaksi aktif
// supaya penambahan ledger dan perubahan status atomik.
func incrementLedger(tx *gorm.DB, grade, subject string, minutes int) error {
	units := curriculum.Minutes45(minutes)
	if units <= 0 {
		return nil
	}
	entry := planModel.HoursLedgerModel{
		HoursLedgerGrade:    grade,
		HoursLedgerSubject:  subject,
		HoursLedgerConsumed: units,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "hours_ledger_grade"},
			{Name: "hours_ledger_subject"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"hours_ledger_consumed": gorm.Expr("hours_ledger.hours_ledger_consumed + excluded.hours_ledger_consumed"),
		}),
	}).Create(&entry).Error
}

// applyTotals: tambahkan seluruh agregat satu rencana ke ledger.
// Iterasi mengikuti urutan katalog supaya urutan SQL deterministik.
func applyTotals(tx *gorm.DB, totals planModel.SubjectMinutes) error {
	for _, grade := range curriculum.Grades() {
		perSubject, ok := totals[grade]
		if !ok {
			continue
		}
		subjects, err := curriculum.SubjectsFor(grade)
		if err != nil {
			return err
		}
		for _, subject := range subjects {
			if minutes, ok := perSubject[subject]; ok && minutes > 0 {
				if err := incrementLedger(tx, grade, subject, minutes); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// BudgetRow: satu baris laporan sisa jam per mapel.
// Remaining boleh negatif (kelebihan jam harus terlihat, bukan dipotong ke 0).
type BudgetRow struct {
	Subject   string  `json:"subject"`
	Standard  float64 `json:"standard"`
	Consumed  float64 `json:"consumed"`
	Remaining float64 `json:"remaining"`
}

// TeacherTotalRow: akumulasi koma 45 menit per (grade, guru, mapel)
// dari rencana yang sudah disetujui.
type TeacherTotalRow struct {
	Grade   string  `json:"grade"`
	Teacher string  `json:"teacher"`
	Subject string  `json:"subject"`
	Units   float64 `json:"units"`
}

type LedgerService struct {
	DB *gorm.DB
}

// Report: baris (mapel, standar, terpakai, sisa) untuk satu grade,
// urutan katalog. Grade tak dikenal → curriculum.ErrUnknownGrade.
func (s *LedgerService) Report(grade string) ([]BudgetRow, error) {
	budgets, err := curriculum.Budgets(grade)
	if err != nil {
		return nil, err
	}

	var rows []planModel.HoursLedgerModel
	if err := s.DB.
		Where("hours_ledger_grade = ?", grade).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	consumed := make(map[string]float64, len(rows))
	for _, r := range rows {
		consumed[r.HoursLedgerSubject] = r.HoursLedgerConsumed
	}

	out := make([]BudgetRow, 0, len(budgets))
	for _, b := range budgets {
		used := consumed[b.Subject]
		out = append(out, BudgetRow{
			Subject:   b.Subject,
			Standard:  b.Standard,
			Consumed:  used,
			Remaining: b.Standard - used,
		})
	}
	return out, nil
}

// TeacherTotals: rekap per guru dari cache agregat rencana berstatus approved
// (cache selalu di-refresh saat approve, jadi setara hitung ulang dari grid).
func (s *LedgerService) TeacherTotals() ([]TeacherTotalRow, error) {
	var plans []planModel.WeeklyPlanModel
	if err := s.DB.
		Select("weekly_plan_teacher", "weekly_plan_grade", "weekly_plan_work_mode", "weekly_plan_subject_minutes").
		Where("weekly_plan_status = ?", planModel.StatusApproved).
		Find(&plans).Error; err != nil {
		return nil, err
	}

	type key struct{ grade, teacher, subject string }
	acc := map[key]float64{}
	for _, p := range plans {
		for grade, perSubject := range p.WeeklyPlanSubjectMinutes.Data() {
			for subject, minutes := range perSubject {
				if minutes <= 0 {
					continue
				}
				acc[key{grade, p.WeeklyPlanTeacher, subject}] += curriculum.Minutes45(minutes)
			}
		}
	}

	gradeRank := map[string]int{}
	for i, g := range curriculum.Grades() {
		gradeRank[g] = i
	}
	out := make([]TeacherTotalRow, 0, len(acc))
	for k, units := range acc {
		out = append(out, TeacherTotalRow{Grade: k.grade, Teacher: k.teacher, Subject: k.subject, Units: units})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Grade != out[j].Grade {
			return gradeRank[out[i].Grade] < gradeRank[out[j].Grade]
		}
		if out[i].Teacher != out[j].Teacher {
			return out[i].Teacher < out[j].Teacher
		}
		return out[i].Subject < out[j].Subject
	})
	return out, nil
}
