// internals/features/school/weekly_plans/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planController "shuan_backend/internals/features/school/weekly_plans/controller"
)

/*
Route guru: submit + preview agregasi + daftar miliknya.
Mount contoh: WeeklyPlanUserRoutes(app.Group("/api/u"), db)
*/
func WeeklyPlanUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &planController.WeeklyPlanController{DB: db}
	plans := r.Group("/weekly-plans")
	plans.Post("/", ctl.SubmitWeeklyPlan)          // POST /api/u/weekly-plans
	plans.Post("/aggregate", ctl.PreviewAggregate) // POST /api/u/weekly-plans/aggregate
	plans.Get("/", ctl.ListOwnWeeklyPlans)         // GET  /api/u/weekly-plans?teacher=
}
