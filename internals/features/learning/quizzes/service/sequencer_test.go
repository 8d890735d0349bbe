package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"counseltrack_backend/internals/features/learning/quizzes/model"
)

func makeQuestions(n int) []model.QuizQuestionModel {
	out := make([]model.QuizQuestionModel, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.QuizQuestionModel{
			QuizQuestionID:       uuid.New(),
			QuizQuestionPosition: i,
		})
	}
	return out
}

func answersFor(questions []model.QuizQuestionModel, indexes ...int) []model.QuizResponseModel {
	out := make([]model.QuizResponseModel, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, model.QuizResponseModel{
			QuizResponseID:         uuid.New(),
			QuizResponseQuestionID: questions[i].QuizQuestionID,
		})
	}
	return out
}

func TestSortQuestionsByPosition(t *testing.T) {
	questions := []model.QuizQuestionModel{
		{QuizQuestionID: uuid.New(), QuizQuestionPosition: 2},
		{QuizQuestionID: uuid.New(), QuizQuestionPosition: 0},
		{QuizQuestionID: uuid.New(), QuizQuestionPosition: 1},
	}
	SortQuestions(questions)
	assert.Equal(t, 0, questions[0].QuizQuestionPosition)
	assert.Equal(t, 1, questions[1].QuizQuestionPosition)
	assert.Equal(t, 2, questions[2].QuizQuestionPosition)
}

func TestCurrentIndexIsFirstUnanswered(t *testing.T) {
	questions := makeQuestions(4)

	// Nothing answered → start at the beginning.
	assert.Equal(t, 0, CurrentIndex(questions, AnsweredSet(nil)))

	// Answers out of order: position still lands on the first gap.
	answered := AnsweredSet(answersFor(questions, 0, 2))
	assert.Equal(t, 1, CurrentIndex(questions, answered))

	// Everything answered → clamp to the last question.
	answered = AnsweredSet(answersFor(questions, 0, 1, 2, 3))
	assert.Equal(t, 3, CurrentIndex(questions, answered))
}

func TestCurrentIndexEmptyQuiz(t *testing.T) {
	assert.Equal(t, 0, CurrentIndex(nil, AnsweredSet(nil)))
}

func TestAllAnswered(t *testing.T) {
	questions := makeQuestions(3)

	assert.False(t, AllAnswered(questions, AnsweredSet(nil)))
	assert.False(t, AllAnswered(questions, AnsweredSet(answersFor(questions, 0, 2))))
	assert.True(t, AllAnswered(questions, AnsweredSet(answersFor(questions, 0, 1, 2))))

	// An empty quiz is never "all answered"; it cannot complete.
	assert.False(t, AllAnswered(nil, AnsweredSet(nil)))
}

func TestNextIndexAfterClampsAtEnd(t *testing.T) {
	assert.Equal(t, 1, NextIndexAfter(0, 3))
	assert.Equal(t, 2, NextIndexAfter(1, 3))
	assert.Equal(t, 2, NextIndexAfter(2, 3))
	assert.Equal(t, 0, NextIndexAfter(0, 0))
}

func TestIndexOfQuestion(t *testing.T) {
	questions := makeQuestions(3)
	assert.Equal(t, 1, IndexOfQuestion(questions, questions[1].QuizQuestionID))
	assert.Equal(t, -1, IndexOfQuestion(questions, uuid.New()))
}
