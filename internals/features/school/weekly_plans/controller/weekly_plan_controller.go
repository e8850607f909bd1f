// internals/features/school/weekly_plans/controller/weekly_plan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	curriculum "shuan_backend/internals/features/school/curriculum"
	planDTO "shuan_backend/internals/features/school/weekly_plans/dto"
	planModel "shuan_backend/internals/features/school/weekly_plans/model"
	planService "shuan_backend/internals/features/school/weekly_plans/service"
	helper "shuan_backend/internals/helpers"
)

type WeeklyPlanController struct {
	DB *gorm.DB
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, planService.ErrPlanNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, planService.ErrApprovedIsLocked):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, curriculum.ErrUnknownGrade),
		errors.Is(err, curriculum.ErrUnknownSubject):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan internal")
}

// SUBMIT (提出)
// POST /api/u/weekly-plans
func (h *WeeklyPlanController) SubmitWeeklyPlan(c *fiber.Ctx) error {
	var req planDTO.CreateWeeklyPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// agregasi dihitung di sini sekali, disimpan sebagai cache;
	// grid tetap sumber kebenaran (approval menghitung ulang)
	totals, err := planService.Aggregate(req.Grid, req.Grade, req.WorkMode)
	if err != nil {
		return mapDomainErr(err)
	}

	m := req.ToModel(totals)
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan rencana mingguan")
	}
	return helper.JsonCreated(c, "Rencana mingguan terkirim, menunggu persetujuan", planDTO.FromWeeklyPlanModel(m))
}

// AGGREGATE PREVIEW
// POST /api/u/weekly-plans/aggregate
// Fungsi murni: UI boleh memanggil sesering apa pun tanpa menyimpan apa-apa.
func (h *WeeklyPlanController) PreviewAggregate(c *fiber.Ctx) error {
	var req planDTO.AggregateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	totals, err := planService.Aggregate(req.Grid, req.Grade, req.WorkMode)
	if err != nil {
		return mapDomainErr(err)
	}
	return helper.JsonOK(c, "Total menit per mapel dihitung", totals)
}

// LIST MILIK GURU
// GET /api/u/weekly-plans?teacher=
func (h *WeeklyPlanController) ListOwnWeeklyPlans(c *fiber.Ctx) error {
	teacher := strings.TrimSpace(c.Query("teacher"))
	if teacher == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter teacher wajib diisi")
	}

	var rows []planModel.WeeklyPlanModel
	if err := h.DB.
		Where("weekly_plan_teacher = ?", teacher).
		Order("weekly_plan_submitted_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Daftar rencana mingguan", planDTO.FromWeeklyPlanModels(rows))
}

// LIST ADMIN + REKAP STATUS (状態別件数)
// GET /api/a/weekly-plans?status=&page=&per_page=
func (h *WeeklyPlanController) ListWeeklyPlans(c *fiber.Ctx) error {
	var q planDTO.ListWeeklyPlanQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&planModel.WeeklyPlanModel{})
	if q.Status != nil {
		switch s := strings.ToLower(strings.TrimSpace(*q.Status)); s {
		case "":
			// tanpa filter
		case planModel.StatusSubmitted, planModel.StatusApproved, planModel.StatusRejected:
			tx = tx.Where("weekly_plan_status = ?", s)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Status tidak dikenal")
		}
	}
	if q.Teacher != nil && strings.TrimSpace(*q.Teacher) != "" {
		tx = tx.Where("weekly_plan_teacher = ?", strings.TrimSpace(*q.Teacher))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []planModel.WeeklyPlanModel
	if err := tx.
		Order("weekly_plan_submitted_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// rekap jumlah per status (selalu tanpa filter, supaya badge konsisten)
	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var counts []statusCount
	if err := h.DB.Model(&planModel.WeeklyPlanModel{}).
		Select("weekly_plan_status AS status, COUNT(*) AS count").
		Group("weekly_plan_status").
		Scan(&counts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung rekap status")
	}

	return helper.JsonListEx(c,
		"Daftar rencana mingguan",
		planDTO.FromWeeklyPlanModels(rows),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit),
		fiber.Map{"status_counts": counts},
	)
}

// DETAIL
// GET /api/a/weekly-plans/:id
func (h *WeeklyPlanController) GetWeeklyPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m planModel.WeeklyPlanModel
	if err := h.DB.First(&m, "weekly_plan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Rencana mingguan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// hitung ulang dari grid untuk tampilan; cache harus sama dengan ini
	recomputed, err := planService.Aggregate(m.WeeklyPlanGrid.Data(), m.WeeklyPlanGrade, m.WeeklyPlanWorkMode)
	if err != nil {
		return mapDomainErr(err)
	}

	return helper.JsonOK(c, "Detail rencana mingguan", fiber.Map{
		"plan":               planDTO.FromWeeklyPlanModel(m),
		"recomputed_minutes": recomputed,
		"active_periods":     curriculum.ActivePeriods(),
	})
}

// APPROVE (承認)
// POST /api/a/weekly-plans/:id/approve
func (h *WeeklyPlanController) ApproveWeeklyPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	reviewer := reviewerName(c)

	svc := &planService.ApprovalService{DB: h.DB}
	plan, changed, err := svc.Approve(id, reviewer)
	if err != nil {
		return mapDomainErr(err)
	}
	if !changed {
		return helper.JsonOK(c, "Rencana sudah disetujui sebelumnya", planDTO.FromWeeklyPlanModel(*plan))
	}
	return helper.JsonUpdated(c, "Rencana disetujui, jam masuk ke akumulasi tahunan", planDTO.FromWeeklyPlanModel(*plan))
}

// REJECT (差戻)
// POST /api/a/weekly-plans/:id/reject
func (h *WeeklyPlanController) RejectWeeklyPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	svc := &planService.ApprovalService{DB: h.DB}
	plan, changed, err := svc.Reject(id)
	if err != nil {
		return mapDomainErr(err)
	}
	if !changed {
		return helper.JsonOK(c, "Rencana sudah dikembalikan sebelumnya", planDTO.FromWeeklyPlanModel(*plan))
	}
	return helper.JsonUpdated(c, "Rencana dikembalikan ke guru untuk revisi", planDTO.FromWeeklyPlanModel(*plan))
}

// AUDIT LOG (操作ログ一覧)
// GET /api/a/weekly-plans/audit
// Proyeksi read-only: seluruh riwayat record + stempel waktu/aktor.
func (h *WeeklyPlanController) AuditLog(c *fiber.Ctx) error {
	var rows []planModel.WeeklyPlanModel
	if err := h.DB.
		Order("weekly_plan_submitted_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}
	return helper.JsonOK(c, "Riwayat operasi rencana mingguan", planDTO.ToAuditRows(rows))
}

// reviewerName: identitas approver dari claims JWT (diisi middleware auth).
func reviewerName(c *fiber.Ctx) string {
	if v, ok := c.Locals("reviewer_name").(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return "管理職"
}
