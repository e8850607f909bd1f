// internals/features/school/weekly_plans/dto/weekly_plan_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	planModel "shuan_backend/internals/features/school/weekly_plans/model"
)

const weekLayout = "2006-01-02"

/* =========================================================
   CREATE (提出)
   ========================================================= */

type CreateWeeklyPlanRequest struct {
	Teacher  string             `json:"weekly_plan_teacher" validate:"required,min=1,max=120"`
	Grade    string             `json:"weekly_plan_grade" validate:"required,min=1,max=8"`
	Class    *string            `json:"weekly_plan_class" validate:"omitempty,max=16"`
	WorkMode string             `json:"weekly_plan_work_mode" validate:"required,oneof=homeroom specialist"`
	Week     string             `json:"weekly_plan_week" validate:"required,datetime=2006-01-02"`
	Grid     planModel.PlanGrid `json:"weekly_plan_grid" validate:"required"`
}

func (r *CreateWeeklyPlanRequest) Normalize() {
	r.Teacher = strings.TrimSpace(r.Teacher)
	r.Grade = strings.TrimSpace(r.Grade)
	r.Week = strings.TrimSpace(r.Week)

	if r.Class != nil {
		v := strings.TrimSpace(*r.Class)
		if v == "" {
			r.Class = nil
		} else {
			r.Class = &v
		}
	}

	// terima label asli 担任/専科 selain nilai enum
	switch mode := strings.TrimSpace(r.WorkMode); {
	case mode == "担任":
		r.WorkMode = planModel.WorkModeHomeroom
	case strings.HasPrefix(mode, "専科"):
		r.WorkMode = planModel.WorkModeSpecialist
	default:
		r.WorkMode = strings.ToLower(mode)
	}
}

// ToModel: totals = hasil agregasi grid (dihitung controller lewat service).
// Grid tersimpan apa adanya; totals hanya cache dari grid.
func (r CreateWeeklyPlanRequest) ToModel(totals planModel.SubjectMinutes) planModel.WeeklyPlanModel {
	week, _ := time.Parse(weekLayout, r.Week) // sudah tervalidasi datetime
	return planModel.WeeklyPlanModel{
		WeeklyPlanID:             uuid.New(),
		WeeklyPlanTeacher:        r.Teacher,
		WeeklyPlanGrade:          r.Grade,
		WeeklyPlanClass:          r.Class,
		WeeklyPlanWorkMode:       r.WorkMode,
		WeeklyPlanWeek:           week,
		WeeklyPlanGrid:           datatypes.NewJSONType(r.Grid),
		WeeklyPlanSubjectMinutes: datatypes.NewJSONType(totals),
		WeeklyPlanStatus:         planModel.StatusSubmitted,
	}
}

/* =========================================================
   AGGREGATE PREVIEW (hitung ulang tanpa menyimpan)
   ========================================================= */

type AggregateRequest struct {
	Grade    string             `json:"weekly_plan_grade" validate:"required"`
	WorkMode string             `json:"weekly_plan_work_mode" validate:"required,oneof=homeroom specialist"`
	Grid     planModel.PlanGrid `json:"weekly_plan_grid" validate:"required"`
}

func (r *AggregateRequest) Normalize() {
	r.Grade = strings.TrimSpace(r.Grade)
	switch mode := strings.TrimSpace(r.WorkMode); {
	case mode == "担任":
		r.WorkMode = planModel.WorkModeHomeroom
	case strings.HasPrefix(mode, "専科"):
		r.WorkMode = planModel.WorkModeSpecialist
	default:
		r.WorkMode = strings.ToLower(mode)
	}
}

/* =========================================================
   LIST QUERY
   ========================================================= */

type ListWeeklyPlanQuery struct {
	Status  *string `query:"status"`  // submitted|approved|rejected
	Teacher *string `query:"teacher"` // filter per guru
}

/* =========================================================
   RESPONSES
   ========================================================= */

type WeeklyPlanResponse struct {
	WeeklyPlanID             uuid.UUID                `json:"weekly_plan_id"`
	WeeklyPlanTeacher        string                   `json:"weekly_plan_teacher"`
	WeeklyPlanGrade          string                   `json:"weekly_plan_grade"`
	WeeklyPlanClass          *string                  `json:"weekly_plan_class,omitempty"`
	WeeklyPlanWorkMode       string                   `json:"weekly_plan_work_mode"`
	WeeklyPlanWeek           string                   `json:"weekly_plan_week"`
	WeeklyPlanGrid           planModel.PlanGrid       `json:"weekly_plan_grid"`
	WeeklyPlanSubjectMinutes planModel.SubjectMinutes `json:"weekly_plan_subject_minutes"`
	WeeklyPlanStatus         string                   `json:"weekly_plan_status"`
	WeeklyPlanSubmittedAt    time.Time                `json:"weekly_plan_submitted_at"`
	WeeklyPlanApprovedAt     *time.Time               `json:"weekly_plan_approved_at,omitempty"`
	WeeklyPlanApprovedBy     *string                  `json:"weekly_plan_approved_by,omitempty"`
}

func FromWeeklyPlanModel(mo planModel.WeeklyPlanModel) WeeklyPlanResponse {
	return WeeklyPlanResponse{
		WeeklyPlanID:             mo.WeeklyPlanID,
		WeeklyPlanTeacher:        mo.WeeklyPlanTeacher,
		WeeklyPlanGrade:          mo.WeeklyPlanGrade,
		WeeklyPlanClass:          mo.WeeklyPlanClass,
		WeeklyPlanWorkMode:       mo.WeeklyPlanWorkMode,
		WeeklyPlanWeek:           mo.WeeklyPlanWeek.Format(weekLayout),
		WeeklyPlanGrid:           mo.WeeklyPlanGrid.Data(),
		WeeklyPlanSubjectMinutes: mo.WeeklyPlanSubjectMinutes.Data(),
		WeeklyPlanStatus:         mo.WeeklyPlanStatus,
		WeeklyPlanSubmittedAt:    mo.WeeklyPlanSubmittedAt,
		WeeklyPlanApprovedAt:     mo.WeeklyPlanApprovedAt,
		WeeklyPlanApprovedBy:     mo.WeeklyPlanApprovedBy,
	}
}

func FromWeeklyPlanModels(rows []planModel.WeeklyPlanModel) []WeeklyPlanResponse {
	out := make([]WeeklyPlanResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromWeeklyPlanModel(rows[i]))
	}
	return out
}

// AuditRowResponse: proyeksi read-only riwayat operasi (tanpa grid).
type AuditRowResponse struct {
	WeeklyPlanID          uuid.UUID  `json:"weekly_plan_id"`
	WeeklyPlanTeacher     string     `json:"weekly_plan_teacher"`
	WeeklyPlanGrade       string     `json:"weekly_plan_grade"`
	WeeklyPlanClass       *string    `json:"weekly_plan_class,omitempty"`
	WeeklyPlanWorkMode    string     `json:"weekly_plan_work_mode"`
	WeeklyPlanWeek        string     `json:"weekly_plan_week"`
	WeeklyPlanStatus      string     `json:"weekly_plan_status"`
	WeeklyPlanSubmittedAt time.Time  `json:"weekly_plan_submitted_at"`
	WeeklyPlanApprovedAt  *time.Time `json:"weekly_plan_approved_at,omitempty"`
	WeeklyPlanApprovedBy  *string    `json:"weekly_plan_approved_by,omitempty"`
}

func ToAuditRow(mo planModel.WeeklyPlanModel) AuditRowResponse {
	return AuditRowResponse{
		WeeklyPlanID:          mo.WeeklyPlanID,
		WeeklyPlanTeacher:     mo.WeeklyPlanTeacher,
		WeeklyPlanGrade:       mo.WeeklyPlanGrade,
		WeeklyPlanClass:       mo.WeeklyPlanClass,
		WeeklyPlanWorkMode:    mo.WeeklyPlanWorkMode,
		WeeklyPlanWeek:        mo.WeeklyPlanWeek.Format(weekLayout),
		WeeklyPlanStatus:      mo.WeeklyPlanStatus,
		WeeklyPlanSubmittedAt: mo.WeeklyPlanSubmittedAt,
		WeeklyPlanApprovedAt:  mo.WeeklyPlanApprovedAt,
		WeeklyPlanApprovedBy:  mo.WeeklyPlanApprovedBy,
	}
}

func ToAuditRows(rows []planModel.WeeklyPlanModel) []AuditRowResponse {
	out := make([]AuditRowResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToAuditRow(rows[i]))
	}
	return out
}
