package model

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrTooFewOptions     = errors.New("a question needs at least 2 options")
	ErrCorrectOutOfRange = errors.New("correct option index out of range")
	ErrOptionOutOfRange  = errors.New("selected option index out of range")
)

// QuizQuestionModel maps quiz_questions. The correct-option index lives only
// here and is graded server-side; it is never serialized in learner responses
// (json:"-").
type QuizQuestionModel struct {
	QuizQuestionID     uuid.UUID `gorm:"column:quiz_question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_question_id"`
	QuizQuestionQuizID uuid.UUID `gorm:"column:quiz_question_quiz_id;type:uuid;not null;uniqueIndex:uq_quiz_questions_quiz_position,priority:1" json:"quiz_question_quiz_id"`

	// Fixed presentation order within the quiz
	QuizQuestionPosition int `gorm:"column:quiz_question_position;not null;uniqueIndex:uq_quiz_questions_quiz_position,priority:2" json:"quiz_question_position"`

	QuizQuestionText    string         `gorm:"column:quiz_question_text;type:text;not null" json:"quiz_question_text"`
	QuizQuestionOptions datatypes.JSON `gorm:"column:quiz_question_options;type:jsonb;not null" json:"quiz_question_options"`

	// Answer key — server side only
	QuizQuestionCorrectIndex int `gorm:"column:quiz_question_correct_index;not null" json:"-"`

	QuizQuestionCreatedAt time.Time      `gorm:"column:quiz_question_created_at;autoCreateTime" json:"quiz_question_created_at"`
	QuizQuestionUpdatedAt time.Time      `gorm:"column:quiz_question_updated_at;autoUpdateTime" json:"quiz_question_updated_at"`
	QuizQuestionDeletedAt gorm.DeletedAt `gorm:"column:quiz_question_deleted_at" json:"quiz_question_deleted_at,omitempty"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }

// ------------------------
// Helpers
// ------------------------

// SetOptions stores the option strings and the answer key after validating
// their shape.
func (m *QuizQuestionModel) SetOptions(options []string, correctIndex int) error {
	if len(options) < 2 {
		return ErrTooFewOptions
	}
	if correctIndex < 0 || correctIndex >= len(options) {
		return ErrCorrectOutOfRange
	}
	buf, err := json.Marshal(options)
	if err != nil {
		return err
	}
	m.QuizQuestionOptions = datatypes.JSON(buf)
	m.QuizQuestionCorrectIndex = correctIndex
	return nil
}

// OptionsList parses the stored jsonb options array.
func (m *QuizQuestionModel) OptionsList() ([]string, error) {
	var options []string
	if len(m.QuizQuestionOptions) == 0 {
		return nil, errors.New("question has no options")
	}
	if err := json.Unmarshal(m.QuizQuestionOptions, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// Grade computes correctness for a selected option. The caller never learns
// the key itself, only the verdict.
func (m *QuizQuestionModel) Grade(selectedIndex int) (bool, error) {
	options, err := m.OptionsList()
	if err != nil {
		return false, err
	}
	if selectedIndex < 0 || selectedIndex >= len(options) {
		return false, ErrOptionOutOfRange
	}
	return selectedIndex == m.QuizQuestionCorrectIndex, nil
}
