package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ResourceModel is one entry in the resource library: an external link or
// reading with free-form tags (text[]).
type ResourceModel struct {
	ResourceID uuid.UUID `gorm:"column:resource_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"resource_id"`

	ResourceTitle       string  `gorm:"column:resource_title;type:varchar(180);not null" json:"resource_title"`
	ResourceSlug        string  `gorm:"column:resource_slug;type:varchar(120);uniqueIndex;not null" json:"resource_slug"`
	ResourceDescription *string `gorm:"column:resource_description;type:text" json:"resource_description,omitempty"`
	ResourceURL         string  `gorm:"column:resource_url;type:text;not null" json:"resource_url"`

	ResourceTags pq.StringArray `gorm:"column:resource_tags;type:text[]" json:"resource_tags,omitempty"`

	ResourceIsPublished bool `gorm:"column:resource_is_published;not null;default:false" json:"resource_is_published"`

	ResourceCreatedAt time.Time      `gorm:"column:resource_created_at;not null;autoCreateTime" json:"resource_created_at"`
	ResourceUpdatedAt time.Time      `gorm:"column:resource_updated_at;not null;autoUpdateTime" json:"resource_updated_at"`
	ResourceDeletedAt gorm.DeletedAt `gorm:"column:resource_deleted_at;index" json:"resource_deleted_at,omitempty"`
}

func (ResourceModel) TableName() string { return "resources" }
