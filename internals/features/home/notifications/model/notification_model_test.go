package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkReadIsOneWay(t *testing.T) {
	var n NotificationModel
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	require.True(t, n.MarkRead(at))
	assert.True(t, n.NotificationIsRead)
	require.NotNil(t, n.NotificationReadAt)
	assert.Equal(t, at, *n.NotificationReadAt)

	assert.False(t, n.MarkRead(at.Add(time.Hour)))
	assert.Equal(t, at, *n.NotificationReadAt)
}
