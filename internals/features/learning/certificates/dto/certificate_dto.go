package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/learning/certificates/model"
)

type IssueCertificateRequest struct {
	CertificateLearnerID uuid.UUID `json:"certificate_learner_id" validate:"required"`
	CertificateCourseID  uuid.UUID `json:"certificate_course_id" validate:"required"`
	CertificateTitle     string    `json:"certificate_title" validate:"required,min=3,max=180"`
}

type CertificateResponse struct {
	CertificateID        uuid.UUID  `json:"certificate_id"`
	CertificateLearnerID uuid.UUID  `json:"certificate_learner_id"`
	CertificateCourseID  uuid.UUID  `json:"certificate_course_id"`
	CertificateSerial    string     `json:"certificate_serial"`
	CertificateTitle     string     `json:"certificate_title"`
	CertificateIssuedAt  time.Time  `json:"certificate_issued_at"`
	CertificateRevokedAt *time.Time `json:"certificate_revoked_at,omitempty"`
}

func ToCertificateResponse(m *model.CertificateModel) CertificateResponse {
	return CertificateResponse{
		CertificateID:        m.CertificateID,
		CertificateLearnerID: m.CertificateLearnerID,
		CertificateCourseID:  m.CertificateCourseID,
		CertificateSerial:    m.CertificateSerial,
		CertificateTitle:     m.CertificateTitle,
		CertificateIssuedAt:  m.CertificateIssuedAt,
		CertificateRevokedAt: m.CertificateRevokedAt,
	}
}

func ToCertificateResponseList(models []model.CertificateModel) []CertificateResponse {
	out := make([]CertificateResponse, 0, len(models))
	for i := range models {
		out = append(out, ToCertificateResponse(&models[i]))
	}
	return out
}
