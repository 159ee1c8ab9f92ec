package contracts

import (
	"context"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Logout(ctx context.Context, session *models.Session) error
	AuthenticateSession(ctx context.Context, token string) (*models.Session, error)
}
