package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOptionsValidatesShape(t *testing.T) {
	var q QuizQuestionModel

	assert.ErrorIs(t, q.SetOptions([]string{"only one"}, 0), ErrTooFewOptions)
	assert.ErrorIs(t, q.SetOptions([]string{"a", "b"}, 2), ErrCorrectOutOfRange)
	assert.ErrorIs(t, q.SetOptions([]string{"a", "b"}, -1), ErrCorrectOutOfRange)

	require.NoError(t, q.SetOptions([]string{"empathy", "advice", "silence"}, 0))
	options, err := q.OptionsList()
	require.NoError(t, err)
	assert.Equal(t, []string{"empathy", "advice", "silence"}, options)
}

func TestGradeComparesAgainstStoredKey(t *testing.T) {
	var q QuizQuestionModel
	require.NoError(t, q.SetOptions([]string{"open question", "closed question", "leading question"}, 1))

	correct, err := q.Grade(1)
	require.NoError(t, err)
	assert.True(t, correct)

	correct, err = q.Grade(0)
	require.NoError(t, err)
	assert.False(t, correct)

	_, err = q.Grade(3)
	assert.ErrorIs(t, err, ErrOptionOutOfRange)
	_, err = q.Grade(-1)
	assert.ErrorIs(t, err, ErrOptionOutOfRange)
}

func TestGradeFailsWithoutOptions(t *testing.T) {
	var q QuizQuestionModel
	_, err := q.Grade(0)
	assert.Error(t, err)
}
