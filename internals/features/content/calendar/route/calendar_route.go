package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/constants"
	"counseltrack_backend/internals/features/content/calendar/controller"
	authMiddleware "counseltrack_backend/internals/middlewares/auth"
)

// CalendarPublicRoutes: public schedule, no auth.
func CalendarPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCalendarEventController(db)
	router.Get("/calendar", ctrl.GetPublicEvents)
}

// CalendarAdminRoutes: event management for mentors and admins.
func CalendarAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCalendarEventController(db)

	calendar := router.Group("/calendar",
		authMiddleware.RequireRoles(constants.RoleErrorMentor("calendar management"), constants.MentorAndAbove...),
	)
	calendar.Post("/", ctrl.CreateEvent)
	calendar.Get("/", ctrl.GetAllEvents)
	calendar.Patch("/:id", ctrl.UpdateEvent)
	calendar.Delete("/:id", ctrl.DeleteEvent)
}
