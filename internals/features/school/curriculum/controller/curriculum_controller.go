// internals/features/school/curriculum/controller/curriculum_controller.go
package controller

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	curriculum "shuan_backend/internals/features/school/curriculum"
	helper "shuan_backend/internals/helpers"
)

// CurriculumController: katalog statis, tidak butuh DB.
type CurriculumController struct{}

// GET /api/curriculum/grades
func (h *CurriculumController) ListGrades(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Daftar grade", curriculum.Grades())
}

// GET /api/curriculum/grades/:grade/subjects
// Mengembalikan mapel + standar tahunan sesuai urutan definisi katalog.
func (h *CurriculumController) ListSubjects(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("grade"))
	grade, err := url.PathUnescape(raw)
	if err != nil || grade == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter grade tidak valid")
	}

	budgets, err := curriculum.Budgets(grade)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return helper.JsonOK(c, "Mapel grade "+grade, budgets)
}

// GET /api/timetable
// Kerangka grid untuk rendering form: hari, koma aktif, menit per slot.
func (h *CurriculumController) GetTimetable(c *fiber.Ctx) error {
	minutes := fiber.Map{}
	for _, day := range curriculum.Days() {
		row := fiber.Map{}
		for _, period := range curriculum.Periods() {
			row[period] = curriculum.MinutesFor(day, period)
		}
		minutes[day] = row
	}
	return helper.JsonOK(c, "Kerangka jadwal mingguan", fiber.Map{
		"days":           curriculum.Days(),
		"periods":        curriculum.Periods(),
		"active_periods": curriculum.ActivePeriods(),
		"minutes":        minutes,
		"blank_subject":  curriculum.BlankSubject,
	})
}
