// internals/features/school/weekly_plans/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planController "shuan_backend/internals/features/school/weekly_plans/controller"
	"shuan_backend/internals/middlewares"
)

/*
Route 管理職: review, approve/reject, audit, laporan jam.
Mount contoh: WeeklyPlanAdminRoutes(app.Group("/api/a", authMiddleware), db)
*/
func WeeklyPlanAdminRoutes(r fiber.Router, db *gorm.DB) {
	planCtl := &planController.WeeklyPlanController{DB: db}
	plans := r.Group("/weekly-plans")
	plans.Get("/", planCtl.ListWeeklyPlans)             // GET  /api/a/weekly-plans?status=
	plans.Get("/audit", planCtl.AuditLog)               // GET  /api/a/weekly-plans/audit (sebelum :id)
	plans.Get("/:id", planCtl.GetWeeklyPlan)            // GET  /api/a/weekly-plans/:id
	plans.Post("/:id/approve", middlewares.ReviewRateLimiter(), planCtl.ApproveWeeklyPlan) // POST /api/a/weekly-plans/:id/approve
	plans.Post("/:id/reject", middlewares.ReviewRateLimiter(), planCtl.RejectWeeklyPlan)   // POST /api/a/weekly-plans/:id/reject

	ledgerCtl := &planController.HoursLedgerController{DB: db}
	ledger := r.Group("/hours-ledger")
	ledger.Get("/", ledgerCtl.GetLedgerReport)            // GET /api/a/hours-ledger
	ledger.Get("/teachers", ledgerCtl.GetTeacherTotals)   // GET /api/a/hours-ledger/teachers
	ledger.Get("/:grade", ledgerCtl.GetLedgerReportByGrade) // GET /api/a/hours-ledger/:grade
}
