package model

import (
	"time"

	"github.com/google/uuid"
)

// CertificateModel is the issued-certificate record: who earned what, when,
// under which serial. Rendering a printable document is out of scope; the
// serial is what external parties verify against.
type CertificateModel struct {
	CertificateID        uuid.UUID `gorm:"column:certificate_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"certificate_id"`
	CertificateLearnerID uuid.UUID `gorm:"column:certificate_learner_id;type:uuid;not null;index:idx_certificates_learner" json:"certificate_learner_id"`
	CertificateCourseID  uuid.UUID `gorm:"column:certificate_course_id;type:uuid;not null" json:"certificate_course_id"`

	CertificateSerial string `gorm:"column:certificate_serial;type:varchar(40);uniqueIndex;not null" json:"certificate_serial"`
	CertificateTitle  string `gorm:"column:certificate_title;type:varchar(180);not null" json:"certificate_title"`

	CertificateIssuedAt  time.Time  `gorm:"column:certificate_issued_at;type:timestamptz;not null;default:now()" json:"certificate_issued_at"`
	CertificateRevokedAt *time.Time `gorm:"column:certificate_revoked_at;type:timestamptz" json:"certificate_revoked_at,omitempty"`

	CertificateCreatedAt time.Time `gorm:"column:certificate_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"certificate_created_at"`
	CertificateUpdatedAt time.Time `gorm:"column:certificate_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"certificate_updated_at"`
}

func (CertificateModel) TableName() string { return "certificates" }

func (m *CertificateModel) IsRevoked() bool {
	return m.CertificateRevokedAt != nil
}
