package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndParseToken(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, time.Hour)

	token, tokenID, expiresAt, err := svc.GenerateToken(42, "jdoe")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, uuid.Nil, tokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, tokenID.String(), claims.ID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, time.Hour)
	token, _, _, err := svc.GenerateToken(1, "jdoe")
	require.NoError(t, err)

	other := NewJWTService("another-secret-another-secret-32", time.Hour)
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, -time.Minute)
	token, _, _, err := svc.GenerateToken(1, "jdoe")
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, time.Hour)
	_, err := svc.ParseToken("not.a.token")
	assert.Error(t, err)
}
