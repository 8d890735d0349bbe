package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/constants"
	"counseltrack_backend/internals/features/learning/certificates/controller"
	authMiddleware "counseltrack_backend/internals/middlewares/auth"
)

// CertificatePublicRoutes: serial verification, no auth.
func CertificatePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCertificateController(db)
	router.Get("/certificates/:serial", ctrl.VerifyBySerial)
}

// CertificateUserRoutes: the caller's own certificates.
func CertificateUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCertificateController(db)
	router.Get("/certificates", ctrl.GetMyCertificates)
}

// CertificateAdminRoutes: issue / revoke, admin only.
func CertificateAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCertificateController(db)

	certs := router.Group("/certificates",
		authMiddleware.RequireRoles(constants.RoleErrorAdmin("certificate management"), constants.AdminOnly...),
	)
	certs.Post("/", ctrl.IssueCertificate)
	certs.Get("/", ctrl.GetAllCertificates)
	certs.Post("/:id/revoke", ctrl.RevokeCertificate)
}
