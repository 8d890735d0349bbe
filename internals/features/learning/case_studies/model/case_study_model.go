package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaseStudyModel struct {
	CaseStudyID uuid.UUID `gorm:"column:case_study_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"case_study_id"`

	CaseStudyTitle   string  `gorm:"column:case_study_title;type:varchar(180);not null" json:"case_study_title"`
	CaseStudySlug    string  `gorm:"column:case_study_slug;type:varchar(120);uniqueIndex;not null" json:"case_study_slug"`
	CaseStudySummary *string `gorm:"column:case_study_summary;type:text" json:"case_study_summary,omitempty"`

	// The anonymized case narrative the learner reads before reflecting.
	CaseStudyBody string `gorm:"column:case_study_body;type:text;not null" json:"case_study_body"`

	CaseStudyIsPublished bool `gorm:"column:case_study_is_published;not null;default:false" json:"case_study_is_published"`

	CaseStudyCreatedAt time.Time      `gorm:"column:case_study_created_at;not null;autoCreateTime" json:"case_study_created_at"`
	CaseStudyUpdatedAt time.Time      `gorm:"column:case_study_updated_at;not null;autoUpdateTime" json:"case_study_updated_at"`
	CaseStudyDeletedAt gorm.DeletedAt `gorm:"column:case_study_deleted_at;index" json:"case_study_deleted_at,omitempty"`
}

func (CaseStudyModel) TableName() string { return "case_studies" }
