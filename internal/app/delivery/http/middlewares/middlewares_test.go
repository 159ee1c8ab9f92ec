package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"spectrum-sense-service/internal/app/contracts/mocks"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/exceptions"
	"spectrum-sense-service/internal/pkg/utils"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetRequestID(r.Context())
	}))

	t.Run("client id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-123", seen)
		assert.Equal(t, "client-123", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("id is generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestAuthenticate(t *testing.T) {
	var gotSession *models.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession, _ = utils.GetSession(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("missing token", func(t *testing.T) {
		authUsecase := new(mocks.MockAuthUsecase)
		m := &Middlewares{Log: zap.NewNop(), AuthUsecase: authUsecase}

		rr := httptest.NewRecorder()
		m.Authenticate(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		authUsecase.AssertNotCalled(t, "AuthenticateSession", mock.Anything, mock.Anything)
	})

	t.Run("rejected token", func(t *testing.T) {
		authUsecase := new(mocks.MockAuthUsecase)
		authUsecase.On("AuthenticateSession", mock.Anything, "bad").
			Return(nil, exceptions.ErrTokenInvalidOrExpired(errors.New("expired")))
		m := &Middlewares{Log: zap.NewNop(), AuthUsecase: authUsecase}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer bad")
		rr := httptest.NewRecorder()
		m.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("session stored in context", func(t *testing.T) {
		authUsecase := new(mocks.MockAuthUsecase)
		authUsecase.On("AuthenticateSession", mock.Anything, "good").
			Return(&models.Session{SessionID: "s1", UserID: "u1"}, nil)
		m := &Middlewares{Log: zap.NewNop(), AuthUsecase: authUsecase}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good")
		rr := httptest.NewRecorder()
		m.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		if assert.NotNil(t, gotSession) {
			assert.Equal(t, "u1", gotSession.UserID)
		}
	})
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
}

func TestLogging_RecordsStatus(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}
	handler := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
