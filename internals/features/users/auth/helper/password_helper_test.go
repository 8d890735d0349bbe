package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.NoError(t, CheckPasswordHash(hash, "correct horse battery"))
	assert.Error(t, CheckPasswordHash(hash, "wrong password"))
}

func TestValidateNewPassword(t *testing.T) {
	assert.Error(t, ValidateNewPassword("short"))
	assert.Error(t, ValidateNewPassword("        "))
	assert.NoError(t, ValidateNewPassword("long enough"))
}
