package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "argon2id$v=19$"))

	assert.NoError(t, VerifyPassword(hash, "s3cret"))
	assert.ErrorIs(t, VerifyPassword(hash, "wrong"), ErrPasswordMismatch)
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("same")
	require.NoError(t, err)
	second, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, VerifyPassword(first, "same"))
	assert.NoError(t, VerifyPassword(second, "same"))
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	assert.Error(t, VerifyPassword("not-a-hash", "pw"))
	assert.Error(t, VerifyPassword("argon2id$v=19$m=x$salt$hash", "pw"))
}
