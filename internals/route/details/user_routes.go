package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/constants"
	userRoutes "counseltrack_backend/internals/features/users/user/route"
	authMiddleware "counseltrack_backend/internals/middlewares/auth"
)

func UserPrivateRoutes(api fiber.Router, db *gorm.DB) {
	userRoutes.UserRoutes(api, db)
}

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	gated := api.Group("",
		authMiddleware.RequireRoles(constants.RoleErrorAdmin("user management"), constants.AdminOnly...),
	)
	userRoutes.UserAdminRoutes(gated, db)
}
