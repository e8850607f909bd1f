// internals/features/school/curriculum/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	curriculumController "shuan_backend/internals/features/school/curriculum/controller"
)

/*
Route publik: katalog + kerangka jadwal untuk rendering form.
Mount contoh: CurriculumPublicRoutes(app.Group("/api"))
*/
func CurriculumPublicRoutes(r fiber.Router) {
	ctl := &curriculumController.CurriculumController{}
	curriculum := r.Group("/curriculum")
	curriculum.Get("/grades", ctl.ListGrades)                  // GET /api/curriculum/grades
	curriculum.Get("/grades/:grade/subjects", ctl.ListSubjects) // GET /api/curriculum/grades/:grade/subjects
	r.Get("/timetable", ctl.GetTimetable)                      // GET /api/timetable
}
