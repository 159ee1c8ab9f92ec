package session

import (
	"context"
	"errors"
	"spectrum-sense-service/internal/app/contracts/mocks"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateSession(t *testing.T) {
	redisRepository := new(mocks.MockRedisRepository)
	svc := NewSessionService(redisRepository)

	session := &models.Session{SessionID: "abc", UserID: "u1"}
	redisRepository.On("Set", mock.Anything, "session:abc", session, time.Hour).Return(nil)

	require.NoError(t, svc.CreateSession(context.Background(), session, time.Hour))
	redisRepository.AssertExpectations(t)
}

func TestSessionService_GetSession(t *testing.T) {
	t.Run("stored session is decoded", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		svc := NewSessionService(redisRepository)
		redisRepository.On("Get", mock.Anything, "session:abc").
			Return(`{"sessionId":"abc","userId":"u1","email":"a@b.co"}`, nil)

		session, err := svc.GetSession(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "u1", session.UserID)
		assert.Equal(t, "a@b.co", session.Email)
	})

	t.Run("missing session is unauthorized", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		svc := NewSessionService(redisRepository)
		redisRepository.On("Get", mock.Anything, "session:gone").Return("", nil)

		session, err := svc.GetSession(context.Background(), "gone")
		assert.Nil(t, session)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		svc := NewSessionService(redisRepository)
		redisRepository.On("Get", mock.Anything, "session:bad").Return("{not json", nil)

		_, err := svc.GetSession(context.Background(), "bad")
		assert.Error(t, err)
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	redisRepository := new(mocks.MockRedisRepository)
	svc := NewSessionService(redisRepository)
	redisRepository.On("Delete", mock.Anything, "session:abc").Return(nil)

	require.NoError(t, svc.DeleteSession(context.Background(), "abc"))
	redisRepository.AssertExpectations(t)
}
