package assessments

import (
	"context"
	"fmt"
	"spectrum-sense-service/internal/app/contracts"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

// AssessmentAttemptRedisRepository keeps in-progress attempts in Redis. The
// key expiry is the abandonment timeout.
type AssessmentAttemptRedisRepository struct {
	RedisRepository contracts.RedisRepository
}

func NewAssessmentAttemptRedisRepository(redisRepository contracts.RedisRepository) contracts.AssessmentAttemptRepository {
	return &AssessmentAttemptRedisRepository{
		RedisRepository: redisRepository,
	}
}

func (repo *AssessmentAttemptRedisRepository) Save(ctx context.Context, attempt *models.AssessmentAttempt, exp time.Duration) error {
	return repo.RedisRepository.Set(ctx, attemptKey(attempt.AttemptID), attempt, exp)
}

func (repo *AssessmentAttemptRedisRepository) FindByID(ctx context.Context, attemptID string) (*models.AssessmentAttempt, error) {
	data, err := repo.RedisRepository.Get(ctx, attemptKey(attemptID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	attempt := new(models.AssessmentAttempt)
	err = json.Unmarshal([]byte(data), attempt)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return attempt, nil
}

func (repo *AssessmentAttemptRedisRepository) Delete(ctx context.Context, attemptID string) error {
	return repo.RedisRepository.Delete(ctx, attemptKey(attemptID))
}

func attemptKey(attemptID string) string {
	return fmt.Sprintf(constvars.RedisKeyAssessmentAttemptFormat, attemptID)
}
