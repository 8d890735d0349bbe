package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/constants"
	"counseltrack_backend/internals/features/learning/courses/controller"
	authMiddleware "counseltrack_backend/internals/middlewares/auth"
)

// CourseUserRoutes: published catalog for authenticated learners.
func CourseUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)
	router.Get("/courses", ctrl.GetPublishedCourses)
	router.Get("/courses/:slug", ctrl.GetPublishedCourseBySlug)
}

// CourseAdminRoutes: course management for mentors and admins.
func CourseAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)

	courses := router.Group("/courses",
		authMiddleware.RequireRoles(constants.RoleErrorMentor("course management"), constants.MentorAndAbove...),
	)
	courses.Post("/", ctrl.CreateCourse)
	courses.Get("/", ctrl.GetAllCourses)
	courses.Patch("/:id", ctrl.UpdateCourse)
	courses.Delete("/:id", ctrl.DeleteCourse)
}
