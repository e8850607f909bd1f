// internals/features/school/weekly_plans/model/weekly_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   STATUS & WORK MODE
   Status hanya boleh berubah lewat service approval.
   ========================================================= */

const (
	StatusSubmitted = "submitted" // 提出
	StatusApproved  = "approved"  // 承認
	StatusRejected  = "rejected"  // 差戻

	WorkModeHomeroom   = "homeroom"   // 担任
	WorkModeSpecialist = "specialist" // 専科
)

// PlanCell: isi satu slot (hari, koma) pada grid mingguan.
// Class hanya terisi untuk guru 専科 (per slot pilih kelas).
type PlanCell struct {
	Class   string `json:"class"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// PlanGrid: hari → koma → sel. Serialisasi jsonb, sumber kebenaran agregat.
type PlanGrid map[string]map[string]PlanCell

// SubjectMinutes: grade → mapel → total menit satu minggu.
// Disimpan sebagai cache; WAJIB sama dengan hasil hitung ulang dari grid.
type SubjectMinutes map[string]map[string]int

type WeeklyPlanModel struct {
	WeeklyPlanID       uuid.UUID `gorm:"column:weekly_plan_id;type:uuid;primaryKey" json:"weekly_plan_id"`
	WeeklyPlanTeacher  string    `gorm:"column:weekly_plan_teacher;type:varchar(120);not null;index" json:"weekly_plan_teacher"`
	WeeklyPlanGrade    string    `gorm:"column:weekly_plan_grade;type:varchar(8);not null" json:"weekly_plan_grade"`
	WeeklyPlanClass    *string   `gorm:"column:weekly_plan_class;type:varchar(16)" json:"weekly_plan_class,omitempty"`
	WeeklyPlanWorkMode string    `gorm:"column:weekly_plan_work_mode;type:varchar(16);not null;default:'homeroom'" json:"weekly_plan_work_mode"`
	WeeklyPlanWeek     time.Time `gorm:"column:weekly_plan_week;type:date;not null" json:"weekly_plan_week"`

	WeeklyPlanGrid           datatypes.JSONType[PlanGrid]       `gorm:"column:weekly_plan_grid;type:jsonb;not null" json:"weekly_plan_grid"`
	WeeklyPlanSubjectMinutes datatypes.JSONType[SubjectMinutes] `gorm:"column:weekly_plan_subject_minutes;type:jsonb;not null" json:"weekly_plan_subject_minutes"`

	WeeklyPlanStatus      string     `gorm:"column:weekly_plan_status;type:varchar(16);not null;default:'submitted';index" json:"weekly_plan_status"`
	WeeklyPlanSubmittedAt time.Time  `gorm:"column:weekly_plan_submitted_at;not null;autoCreateTime" json:"weekly_plan_submitted_at"`
	WeeklyPlanApprovedAt  *time.Time `gorm:"column:weekly_plan_approved_at" json:"weekly_plan_approved_at,omitempty"`
	WeeklyPlanApprovedBy  *string    `gorm:"column:weekly_plan_approved_by;type:varchar(120)" json:"weekly_plan_approved_by,omitempty"`
}

func (WeeklyPlanModel) TableName() string { return "weekly_plans" }
