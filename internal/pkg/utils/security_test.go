package utils

import (
	"errors"
	"testing"
	"time"

	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("Secret#123")
	require.NoError(t, err)

	assert.NotEqual(t, "Secret#123", hash)
	assert.True(t, CheckPasswordHash("Secret#123", hash))
	assert.False(t, CheckPasswordHash("secret#123", hash))
}

func TestSessionJWT(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-1", "secret", time.Hour)
		require.NoError(t, err)

		sessionID, err := ParseSessionJWT(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "session-1", sessionID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-1", "secret", time.Hour)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, "other")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-1", "secret", -time.Minute)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, "secret")
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseSessionJWT("not-a-token", "secret")
		assert.Error(t, err)
	})
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc", ExtractBearerToken("Bearer abc"))
	assert.Equal(t, "", ExtractBearerToken("Basic abc"))
	assert.Equal(t, "", ExtractBearerToken(""))
}
