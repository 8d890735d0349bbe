package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterModel struct {
	NewsletterID uuid.UUID `gorm:"column:newsletter_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"newsletter_id"`

	NewsletterTitle string `gorm:"column:newsletter_title;type:varchar(180);not null" json:"newsletter_title"`
	NewsletterSlug  string `gorm:"column:newsletter_slug;type:varchar(120);uniqueIndex;not null" json:"newsletter_slug"`
	NewsletterBody  string `gorm:"column:newsletter_body;type:text;not null" json:"newsletter_body"`

	NewsletterIsPublished bool       `gorm:"column:newsletter_is_published;not null;default:false" json:"newsletter_is_published"`
	NewsletterPublishedAt *time.Time `gorm:"column:newsletter_published_at;type:timestamptz" json:"newsletter_published_at,omitempty"`

	NewsletterCreatedAt time.Time      `gorm:"column:newsletter_created_at;not null;autoCreateTime" json:"newsletter_created_at"`
	NewsletterUpdatedAt time.Time      `gorm:"column:newsletter_updated_at;not null;autoUpdateTime" json:"newsletter_updated_at"`
	NewsletterDeletedAt gorm.DeletedAt `gorm:"column:newsletter_deleted_at;index" json:"newsletter_deleted_at,omitempty"`
}

func (NewsletterModel) TableName() string { return "newsletters" }
