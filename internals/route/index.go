// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shuan_backend/internals/configs"
	curriculumRoute "shuan_backend/internals/features/school/curriculum/route"
	planRoute "shuan_backend/internals/features/school/weekly_plans/route"
	authRoute "shuan_backend/internals/features/users/auth/route"
	authMiddleware "shuan_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app)

	// ===================== PUBLIC =====================
	// Katalog kurikulum + kerangka jadwal + login, tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	authRoute.AuthRoutes(public)
	curriculumRoute.CurriculumPublicRoutes(public)

	// ===================== GURU =====================
	// Submit memakai nama guru di payload, tanpa JWT (satu sekolah, jaringan internal)
	log.Println("[INFO] Setting up GURU group...")
	guru := app.Group("/api/u")
	planRoute.WeeklyPlanUserRoutes(guru, db)

	// ===================== 管理職 =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireAdmin(),
	)
	planRoute.WeeklyPlanAdminRoutes(admin, db)
}
