package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/constants"
	"counseltrack_backend/internals/features/content/newsletters/controller"
	authMiddleware "counseltrack_backend/internals/middlewares/auth"
)

// NewsletterPublicRoutes: published issues, no auth.
func NewsletterPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsletterController(db)
	router.Get("/newsletters", ctrl.GetPublishedNewsletters)
	router.Get("/newsletters/:slug", ctrl.GetPublishedNewsletterBySlug)
}

// NewsletterAdminRoutes: issue management, admin only.
func NewsletterAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsletterController(db)

	newsletters := router.Group("/newsletters",
		authMiddleware.RequireRoles(constants.RoleErrorAdmin("newsletter management"), constants.AdminOnly...),
	)
	newsletters.Post("/", ctrl.CreateNewsletter)
	newsletters.Get("/", ctrl.GetAllNewsletters)
	newsletters.Patch("/:id", ctrl.UpdateNewsletter)
	newsletters.Delete("/:id", ctrl.DeleteNewsletter)
}
