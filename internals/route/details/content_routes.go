package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarRoutes "counseltrack_backend/internals/features/content/calendar/route"
	newsletterRoutes "counseltrack_backend/internals/features/content/newsletters/route"
	resourceRoutes "counseltrack_backend/internals/features/content/resources/route"
)

func ContentPublicRoutes(api fiber.Router, db *gorm.DB) {
	resourceRoutes.ResourcePublicRoutes(api, db)
	newsletterRoutes.NewsletterPublicRoutes(api, db)
	calendarRoutes.CalendarPublicRoutes(api, db)
}

func ContentAdminRoutes(api fiber.Router, db *gorm.DB) {
	resourceRoutes.ResourceAdminRoutes(api, db)
	newsletterRoutes.NewsletterAdminRoutes(api, db)
	calendarRoutes.CalendarAdminRoutes(api, db)
}
