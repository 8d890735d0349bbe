package service

import (
	"sort"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/learning/quizzes/model"
)

// SortQuestions orders questions by their fixed position. The order is part
// of the quiz definition; learners always see the same sequence.
func SortQuestions(questions []model.QuizQuestionModel) {
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].QuizQuestionPosition < questions[j].QuizQuestionPosition
	})
}

// AnsweredSet maps question IDs to their recorded responses for quick lookup.
func AnsweredSet(responses []model.QuizResponseModel) map[uuid.UUID]*model.QuizResponseModel {
	set := make(map[uuid.UUID]*model.QuizResponseModel, len(responses))
	for i := range responses {
		set[responses[i].QuizResponseQuestionID] = &responses[i]
	}
	return set
}

// CurrentIndex returns the position (in the sorted question slice) the
// learner should be shown next: the first question without a recorded
// response. When every question is answered it clamps to the last question
// rather than running past the end.
func CurrentIndex(questions []model.QuizQuestionModel, answered map[uuid.UUID]*model.QuizResponseModel) int {
	for i := range questions {
		if _, ok := answered[questions[i].QuizQuestionID]; !ok {
			return i
		}
	}
	if len(questions) == 0 {
		return 0
	}
	return len(questions) - 1
}

// AllAnswered reports whether every question has a recorded response.
func AllAnswered(questions []model.QuizQuestionModel, answered map[uuid.UUID]*model.QuizResponseModel) bool {
	if len(questions) == 0 {
		return false
	}
	for i := range questions {
		if _, ok := answered[questions[i].QuizQuestionID]; !ok {
			return false
		}
	}
	return true
}

// NextIndexAfter returns the index to advance to after answering the question
// at the given index, clamped to the last question.
func NextIndexAfter(index, questionCount int) int {
	next := index + 1
	if next >= questionCount {
		if questionCount == 0 {
			return 0
		}
		return questionCount - 1
	}
	return next
}

// IndexOfQuestion finds a question's index in the sorted slice, or -1.
func IndexOfQuestion(questions []model.QuizQuestionModel, questionID uuid.UUID) int {
	for i := range questions {
		if questions[i].QuizQuestionID == questionID {
			return i
		}
	}
	return -1
}
