// internals/features/school/weekly_plans/controller/hours_ledger_controller.go
package controller

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	curriculum "shuan_backend/internals/features/school/curriculum"
	planService "shuan_backend/internals/features/school/weekly_plans/service"
	helper "shuan_backend/internals/helpers"
)

type HoursLedgerController struct {
	DB *gorm.DB
}

// LAPORAN SEMUA GRADE (年間累積時数の状況)
// GET /api/a/hours-ledger
func (h *HoursLedgerController) GetLedgerReport(c *fiber.Ctx) error {
	svc := &planService.LedgerService{DB: h.DB}

	out := make([]fiber.Map, 0, len(curriculum.Grades()))
	for _, grade := range curriculum.Grades() {
		rows, err := svc.Report(grade)
		if err != nil {
			return mapDomainErr(err)
		}
		out = append(out, fiber.Map{"grade": grade, "rows": rows})
	}
	return helper.JsonOK(c, "Akumulasi jam per grade (satuan 45 menit)", out)
}

// LAPORAN SATU GRADE
// GET /api/a/hours-ledger/:grade
func (h *HoursLedgerController) GetLedgerReportByGrade(c *fiber.Ctx) error {
	grade, err := decodeGradeParam(c)
	if err != nil {
		return err
	}

	svc := &planService.LedgerService{DB: h.DB}
	rows, err := svc.Report(grade)
	if err != nil {
		return mapDomainErr(err)
	}
	return helper.JsonOK(c, "Akumulasi jam grade "+grade, fiber.Map{"grade": grade, "rows": rows})
}

// REKAP PER GURU (教員別・年間時数一覧)
// GET /api/a/hours-ledger/teachers
func (h *HoursLedgerController) GetTeacherTotals(c *fiber.Ctx) error {
	svc := &planService.LedgerService{DB: h.DB}
	rows, err := svc.TeacherTotals()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung rekap per guru")
	}
	return helper.JsonOK(c, "Rekap jam per guru dari rencana yang disetujui", rows)
}

// decodeGradeParam: path param grade berisi huruf CJK (misal 1年) → URL-encoded.
func decodeGradeParam(c *fiber.Ctx) (string, error) {
	raw := strings.TrimSpace(c.Params("grade"))
	if raw == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "Parameter grade wajib diisi")
	}
	grade, err := url.PathUnescape(raw)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Parameter grade tidak valid")
	}
	return grade, nil
}
