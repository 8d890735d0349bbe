package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "counseltrack_backend/internals/features/users/auth/controller"
	"counseltrack_backend/internals/middlewares"
	authMiddleware "counseltrack_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public auth endpoints plus the authenticated
// change-password endpoint.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/logout", ctrl.Logout)

	secured := app.Group("/api/u/auth", authMiddleware.AuthMiddleware(db))
	secured.Post("/change-password", ctrl.ChangePassword)
}
