package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-horse-battery-1")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery-1", hash)

	assert.True(t, CheckPassword(hash, "correct-horse-battery-1"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword(hash, ""))
}
