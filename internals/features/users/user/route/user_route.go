package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "counseltrack_backend/internals/features/users/user/controller"
)

// UserRoutes: authenticated self-service profile endpoints (/api/u)
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/me", ctrl.GetMe)
	users.Patch("/me", ctrl.UpdateMe)
}

// UserAdminRoutes: admin user management (/api/a)
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/", ctrl.GetAllUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Patch("/:id", ctrl.AdminUpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
}
