package children

import (
	"context"
	"errors"
	"spectrum-sense-service/internal/app/contracts"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
	"spectrum-sense-service/internal/pkg/exceptions"
	"spectrum-sense-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type childUsecase struct {
	ChildRepository contracts.ChildRepository
	Log             *zap.Logger
	now             func() time.Time
}

var (
	childUsecaseInstance contracts.ChildUsecase
	onceChildUsecase     sync.Once
)

func NewChildUsecase(childRepository contracts.ChildRepository, logger *zap.Logger) contracts.ChildUsecase {
	onceChildUsecase.Do(func() {
		childUsecaseInstance = &childUsecase{
			ChildRepository: childRepository,
			Log:             logger,
			now:             time.Now,
		}
	})
	return childUsecaseInstance
}

func (uc *childUsecase) CreateChild(ctx context.Context, session *models.Session, request *requests.CreateChild) (*responses.Child, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("childUsecase.CreateChild called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	dateOfBirth, err := utils.ParseDate(request.DateOfBirth)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	child := &models.Child{
		GuardianID:    session.UserID,
		Name:          request.Name,
		DateOfBirth:   dateOfBirth,
		Relationship:  request.Relationship,
		Gender:        request.Gender,
		Jaundice:      *request.Jaundice,
		FamilyWithASD: *request.FamilyWithASD,
		Region:        request.Region,
	}
	child.SetCreatedAtUpdatedAt()

	childID, err := uc.ChildRepository.CreateChild(ctx, child)
	if err != nil {
		uc.Log.Error("childUsecase.CreateChild error inserting child",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	child.ID = childID

	uc.Log.Info("childUsecase.CreateChild succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChildIDKey, childID),
	)
	return uc.toChildResponse(child), nil
}

// ListChildCards returns an empty list, not an error, for a guardian with no
// children.
func (uc *childUsecase) ListChildCards(ctx context.Context, session *models.Session) ([]responses.ChildCard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("childUsecase.ListChildCards called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	children, err := uc.ChildRepository.FindByGuardianID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("childUsecase.ListChildCards error fetching children",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now()
	cards := make([]responses.ChildCard, 0, len(children))
	for _, child := range children {
		cards = append(cards, responses.ChildCard{
			ID:        child.ID,
			Name:      child.Name,
			AgeMonths: utils.AgeInMonths(child.DateOfBirth, now),
		})
	}

	uc.Log.Info("childUsecase.ListChildCards succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(cards)),
	)
	return cards, nil
}

func (uc *childUsecase) GetChild(ctx context.Context, session *models.Session, childID string) (*responses.Child, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("childUsecase.GetChild called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChildIDKey, childID),
	)

	child, err := uc.ChildRepository.FindByIDAndGuardianID(ctx, childID, session.UserID)
	if err != nil {
		uc.Log.Error("childUsecase.GetChild error fetching child",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if child == nil {
		return nil, exceptions.ErrChildNotExist(errors.New("no child with this id for the guardian"))
	}

	uc.Log.Info("childUsecase.GetChild succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.toChildResponse(child), nil
}

// DeleteChild removes the profile only. Results already recorded for the
// child stay in the guardian's history.
func (uc *childUsecase) DeleteChild(ctx context.Context, session *models.Session, childID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("childUsecase.DeleteChild called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChildIDKey, childID),
	)

	deleted, err := uc.ChildRepository.DeleteByIDAndGuardianID(ctx, childID, session.UserID)
	if err != nil {
		uc.Log.Error("childUsecase.DeleteChild error deleting child",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrChildNotExist(errors.New("no child with this id for the guardian"))
	}

	uc.Log.Info("childUsecase.DeleteChild succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *childUsecase) toChildResponse(child *models.Child) *responses.Child {
	return &responses.Child{
		ID:            child.ID,
		Name:          child.Name,
		DateOfBirth:   utils.FormatDate(child.DateOfBirth),
		AgeMonths:     utils.AgeInMonths(child.DateOfBirth, uc.now()),
		Relationship:  child.Relationship,
		Gender:        child.Gender,
		Jaundice:      child.Jaundice,
		FamilyWithASD: child.FamilyWithASD,
		Region:        child.Region,
		CreatedAt:     child.CreatedAt,
	}
}
