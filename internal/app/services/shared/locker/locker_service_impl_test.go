package locker

import (
	"context"
	"errors"
	"spectrum-sense-service/internal/app/contracts/mocks"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const lockKey = "lock:assessment_submit:attempt-1"

func TestLockService_TryLock(t *testing.T) {
	t.Run("acquired", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("TrySetNX", mock.Anything, lockKey, mock.AnythingOfType("string"), 30*time.Second).Return(true, nil)
		s := &lockService{RedisRepository: redisRepository, Log: zap.NewNop()}

		acquired, lockValue, err := s.TryLock(context.Background(), lockKey, 30*time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)
	})

	t.Run("held by someone else", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("TrySetNX", mock.Anything, lockKey, mock.Anything, mock.Anything).Return(false, nil)
		s := &lockService{RedisRepository: redisRepository, Log: zap.NewNop()}

		acquired, lockValue, err := s.TryLock(context.Background(), lockKey, time.Second)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, lockValue)
	})

	t.Run("redis failure", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("TrySetNX", mock.Anything, lockKey, mock.Anything, mock.Anything).
			Return(false, exceptions.ErrRedisSet(errors.New("timeout")))
		s := &lockService{RedisRepository: redisRepository, Log: zap.NewNop()}

		_, _, err := s.TryLock(context.Background(), lockKey, time.Second)
		assert.Error(t, err)
	})
}

func TestLockService_Unlock(t *testing.T) {
	t.Run("owner releases the lock", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Get", mock.Anything, lockKey).Return(`"token-1"`, nil)
		redisRepository.On("Delete", mock.Anything, lockKey).Return(nil)
		s := &lockService{RedisRepository: redisRepository, Log: zap.NewNop()}

		require.NoError(t, s.Unlock(context.Background(), lockKey, "token-1"))
		redisRepository.AssertExpectations(t)
	})

	t.Run("expired lock", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Get", mock.Anything, lockKey).Return("", nil)
		s := &lockService{RedisRepository: redisRepository, Log: zap.NewNop()}

		require.NoError(t, s.Unlock(context.Background(), lockKey, "token-1"))
		redisRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("lock owned by another submission", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Get", mock.Anything, lockKey).Return(`"token-2"`, nil)
		s := &lockService{RedisRepository: redisRepository, Log: zap.NewNop()}

		err := s.Unlock(context.Background(), lockKey, "token-1")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		redisRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
