package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "shuan_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar (urutannya penting)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
