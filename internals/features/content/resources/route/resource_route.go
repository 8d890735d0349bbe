package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/constants"
	"counseltrack_backend/internals/features/content/resources/controller"
	authMiddleware "counseltrack_backend/internals/middlewares/auth"
)

// ResourcePublicRoutes: published resource library, no auth.
func ResourcePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResourceController(db)
	router.Get("/resources", ctrl.GetPublishedResources)
}

// ResourceAdminRoutes: library management for mentors and admins.
func ResourceAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResourceController(db)

	resources := router.Group("/resources",
		authMiddleware.RequireRoles(constants.RoleErrorMentor("resource management"), constants.MentorAndAbove...),
	)
	resources.Post("/", ctrl.CreateResource)
	resources.Get("/", ctrl.GetAllResources)
	resources.Patch("/:id", ctrl.UpdateResource)
	resources.Delete("/:id", ctrl.DeleteResource)
}
