package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/constants"
	"counseltrack_backend/internals/features/learning/case_studies/controller"
	authMiddleware "counseltrack_backend/internals/middlewares/auth"
)

// CaseStudyUserRoutes: reading published cases and submitting reflections.
func CaseStudyUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCaseStudyController(db)
	router.Get("/case-studies", ctrl.GetPublishedCaseStudies)
	router.Get("/case-studies/:slug", ctrl.GetPublishedCaseStudyBySlug)
	router.Put("/case-studies/:slug/reflection", ctrl.SubmitReflection)
}

// CaseStudyAdminRoutes: case management + reflection review.
func CaseStudyAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCaseStudyController(db)

	cases := router.Group("/case-studies",
		authMiddleware.RequireRoles(constants.RoleErrorMentor("case study management"), constants.MentorAndAbove...),
	)
	cases.Post("/", ctrl.CreateCaseStudy)
	cases.Get("/", ctrl.GetAllCaseStudies)
	cases.Get("/:id/reflections", ctrl.GetReflections)
	cases.Patch("/:id", ctrl.UpdateCaseStudy)
	cases.Delete("/:id", ctrl.DeleteCaseStudy)
}
