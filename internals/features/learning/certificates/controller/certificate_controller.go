package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifmodel "counseltrack_backend/internals/features/home/notifications/model"
	notifsvc "counseltrack_backend/internals/features/home/notifications/service"
	"counseltrack_backend/internals/features/learning/certificates/dto"
	"counseltrack_backend/internals/features/learning/certificates/model"
	helper "counseltrack_backend/internals/helpers"
)

var validateCertificate = validator.New()

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// newSerial builds a verifiable serial like CT-2026-1A2B3C4D.
func newSerial(now time.Time) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("CT-%d-%s", now.Year(), hex.EncodeToString(buf)), nil
}

// GET /api/u/certificates — the caller's certificates, active ones first.
func (ctrl *CertificateController) GetMyCertificates(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var certs []model.CertificateModel
	if err := ctrl.DB.
		Where("certificate_learner_id = ?", learnerID).
		Order("certificate_revoked_at NULLS FIRST, certificate_issued_at DESC").
		Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list certificates")
	}
	return helper.JsonOK(c, "Certificates", dto.ToCertificateResponseList(certs))
}

// GET /api/public/certificates/:serial — public serial verification.
func (ctrl *CertificateController) VerifyBySerial(c *fiber.Ctx) error {
	serial := c.Params("serial")

	var cert model.CertificateModel
	if err := ctrl.DB.
		Where("certificate_serial = ?", serial).
		First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Certificate not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load certificate")
	}

	return helper.JsonOK(c, "Certificate", fiber.Map{
		"certificate_serial":    cert.CertificateSerial,
		"certificate_title":     cert.CertificateTitle,
		"certificate_issued_at": cert.CertificateIssuedAt,
		"is_valid":              !cert.IsRevoked(),
	})
}

// POST /api/a/certificates
func (ctrl *CertificateController) IssueCertificate(c *fiber.Ctx) error {
	var req dto.IssueCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCertificate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	serial, err := newSerial(time.Now().UTC())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate serial")
	}

	cert := model.CertificateModel{
		CertificateLearnerID: req.CertificateLearnerID,
		CertificateCourseID:  req.CertificateCourseID,
		CertificateSerial:    serial,
		CertificateTitle:     req.CertificateTitle,
		CertificateIssuedAt:  time.Now().UTC(),
	}
	if err := ctrl.DB.Create(&cert).Error; err != nil {
		log.Printf("[ERROR] issue certificate learner=%s: %v", req.CertificateLearnerID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue certificate")
	}

	link := "/certificates"
	notifsvc.NotifyBestEffort(c.Context(), ctrl.DB, cert.CertificateLearnerID,
		notifmodel.NotificationTypeCertificate,
		"Certificate issued",
		fmt.Sprintf("You have been issued the certificate %q (serial %s).", cert.CertificateTitle, cert.CertificateSerial),
		&link,
	)

	return helper.JsonCreated(c, "Certificate issued", dto.ToCertificateResponse(&cert))
}

// GET /api/a/certificates  (?learner= filter)
func (ctrl *CertificateController) GetAllCertificates(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CertificateModel{})
	if learner := c.Query("learner"); learner != "" {
		learnerID, err := uuid.Parse(learner)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid learner id")
		}
		q = q.Where("certificate_learner_id = ?", learnerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count certificates")
	}

	var certs []model.CertificateModel
	if err := q.Order("certificate_issued_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list certificates")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Certificates", dto.ToCertificateResponseList(certs), &pagination)
}

// POST /api/a/certificates/:id/revoke — one-way, like completion: the revoked
// timestamp is set once and never cleared.
func (ctrl *CertificateController) RevokeCertificate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid certificate id")
	}

	var cert model.CertificateModel
	if err := ctrl.DB.Where("certificate_id = ?", id).First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Certificate not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load certificate")
	}
	if cert.IsRevoked() {
		return helper.JsonError(c, fiber.StatusConflict, "Certificate already revoked")
	}

	now := time.Now().UTC()
	if err := ctrl.DB.Model(&cert).
		Where("certificate_revoked_at IS NULL").
		Update("certificate_revoked_at", now).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke certificate")
	}
	cert.CertificateRevokedAt = &now

	return helper.JsonUpdated(c, "Certificate revoked", dto.ToCertificateResponse(&cert))
}
