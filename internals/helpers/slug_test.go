package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "active-listening-basics", Slugify("Active Listening  Basics!", 0))
	assert.Equal(t, "cafe-counseling", Slugify("Café Counseling", 0))
	assert.Equal(t, "item", Slugify("!!!", 0))
	assert.Equal(t, "item", Slugify("", 0))
	assert.Equal(t, "a-b", Slugify("a---b", 0))
}

func TestSlugifyMaxLen(t *testing.T) {
	got := Slugify("one two three four five", 9)
	assert.LessOrEqual(t, len(got), 9)
	assert.Equal(t, "one-two-t", got)
}

func TestTrimForSuffix(t *testing.T) {
	assert.Equal(t, "abc", trimForSuffix("abcdef", "-2", 5))
	assert.Equal(t, "x", trimForSuffix("abc", "-12345", 5))
	// Stray trailing hyphen gets trimmed after the cut.
	assert.Equal(t, "ab", trimForSuffix("ab-cd", "-2", 5))
}
