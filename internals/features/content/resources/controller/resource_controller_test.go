package controller

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	got := normalizeTags([]string{" Grief ", "trauma", "GRIEF", "", "  "})
	assert.Equal(t, pq.StringArray{"grief", "trauma"}, got)
}

func TestNormalizeTagsKeepsOrder(t *testing.T) {
	got := normalizeTags([]string{"c", "a", "b", "a"})
	assert.Equal(t, pq.StringArray{"c", "a", "b"}, got)
}
