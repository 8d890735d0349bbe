package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizModel struct {
	QuizID       uuid.UUID  `gorm:"column:quiz_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_id"`
	QuizCourseID *uuid.UUID `gorm:"column:quiz_course_id;type:uuid;index" json:"quiz_course_id,omitempty"`

	QuizTitle       string  `gorm:"column:quiz_title;type:varchar(180);not null" json:"quiz_title"`
	QuizSlug        string  `gorm:"column:quiz_slug;type:varchar(120);uniqueIndex;not null" json:"quiz_slug"`
	QuizDescription *string `gorm:"column:quiz_description;type:text" json:"quiz_description,omitempty"`

	// Learners only ever see published quizzes; a quiz is treated as immutable
	// once published.
	QuizIsPublished bool `gorm:"column:quiz_is_published;not null;default:false" json:"quiz_is_published"`

	QuizCreatedAt time.Time      `gorm:"column:quiz_created_at;not null;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time      `gorm:"column:quiz_updated_at;not null;autoUpdateTime" json:"quiz_updated_at"`
	QuizDeletedAt gorm.DeletedAt `gorm:"column:quiz_deleted_at;index" json:"quiz_deleted_at,omitempty"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
