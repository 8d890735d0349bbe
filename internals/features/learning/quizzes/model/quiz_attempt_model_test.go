package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkCompletedIsOneWay(t *testing.T) {
	var a QuizAttemptModel
	assert.False(t, a.IsCompleted())

	first := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.True(t, a.MarkCompleted(first))
	require.NotNil(t, a.QuizAttemptCompletedAt)
	assert.True(t, a.IsCompleted())

	// A later call must not move the timestamp.
	assert.False(t, a.MarkCompleted(first.Add(time.Hour)))
	assert.Equal(t, first, *a.QuizAttemptCompletedAt)
}

func TestMarkCompletedNormalizesToUTC(t *testing.T) {
	var a QuizAttemptModel
	loc := time.FixedZone("UTC+7", 7*3600)
	local := time.Date(2026, 3, 10, 16, 0, 0, 0, loc)

	require.True(t, a.MarkCompleted(local))
	assert.Equal(t, time.UTC, a.QuizAttemptCompletedAt.Location())
	assert.True(t, a.QuizAttemptCompletedAt.Equal(local))
}
