package middlewares

import (
	"net/http"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/exceptions"
	"spectrum-sense-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into a session and stores it in the
// request context. Requests without a live session are rejected with 401.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := utils.GetRequestID(r.Context())

		token := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.AuthenticateSession(r.Context(), token)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate rejected request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := utils.WithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
