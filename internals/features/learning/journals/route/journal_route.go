package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/learning/journals/controller"
)

// JournalRoutes: private learner journal, all routes owner-scoped.
func JournalRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJournalController(db)

	router.Post("/journals", ctrl.CreateEntry)
	router.Get("/journals", ctrl.GetMyEntries)
	router.Get("/journals/:id", ctrl.GetEntry)
	router.Patch("/journals/:id", ctrl.UpdateEntry)
	router.Delete("/journals/:id", ctrl.DeleteEntry)
}
