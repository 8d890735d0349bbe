package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "counseltrack_backend/internals/route/details"

	authRoutes "counseltrack_backend/internals/features/users/auth/route"
	authMiddleware "counseltrack_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under three route classes:
//
//	/api/public — no token
//	/api/u      — any authenticated user
//	/api/a      — authenticated staff (per-feature role gates inside)
//
// Auth endpoints (/api/auth) mount themselves.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up auth routes...")
	authRoutes.AuthRoutes(app, db)

	public := app.Group("/api/public")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting user routes...")
	routeDetails.UserPrivateRoutes(private, db)
	routeDetails.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting learning routes...")
	routeDetails.LearningPublicRoutes(public, db)
	routeDetails.LearningPrivateRoutes(private, db)
	routeDetails.LearningAdminRoutes(admin, db)

	log.Println("[INFO] Mounting content routes...")
	routeDetails.ContentPublicRoutes(public, db)
	routeDetails.ContentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting home routes...")
	routeDetails.HomePrivateRoutes(private, db)
}
