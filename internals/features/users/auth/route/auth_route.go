// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	authController "shuan_backend/internals/features/users/auth/controller"
	"shuan_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router) {
	ctl := &authController.AuthController{}
	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login) // POST /api/auth/login
}
