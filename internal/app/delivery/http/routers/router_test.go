package routers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"spectrum-sense-service/internal/app/config"
	"spectrum-sense-service/internal/app/contracts/mocks"
	"spectrum-sense-service/internal/app/delivery/http/controllers"
	"spectrum-sense-service/internal/app/delivery/http/middlewares"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
	"spectrum-sense-service/internal/pkg/exceptions"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testToken   = "valid-token"
	testChildID = "65f1c0a2b3c4d5e6f7a8b9c0"
)

var testSession = &models.Session{SessionID: "session-1", UserID: "guardian-1", Email: "guardian@example.com"}

func newTestMiddlewares() (*middlewares.Middlewares, *mocks.MockAuthUsecase) {
	authUsecase := new(mocks.MockAuthUsecase)
	authUsecase.On("AuthenticateSession", mock.Anything, testToken).Return(testSession, nil)
	authUsecase.On("AuthenticateSession", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrTokenInvalidOrExpired(nil))

	return &middlewares.Middlewares{
		Log:            zap.NewNop(),
		AuthUsecase:    authUsecase,
		InternalConfig: &config.InternalConfig{},
	}, authUsecase
}

func newTestRequest(method, target string, body interface{}) *http.Request {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, target, bytes.NewBuffer(payload))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+testToken)
	return req
}

func TestSetupRoutes(t *testing.T) {
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix: "api",
			Version:        "v1",
			ClientOrigins:  []string{"http://localhost:3000"},
			MaxRequests:    100,
		},
	}
	middlewareInstance, _ := newTestMiddlewares()
	logger := zap.NewNop()

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewareInstance, &Controllers{
		Health:           &controllers.HealthController{InternalConfig: internalConfig},
		Auth:             &controllers.AuthController{Log: logger, AuthUsecase: new(mocks.MockAuthUsecase)},
		User:             &controllers.UserController{Log: logger, UserUsecase: new(mocks.MockUserUsecase)},
		Child:            &controllers.ChildController{Log: logger, ChildUsecase: new(mocks.MockChildUsecase)},
		Instrument:       &controllers.InstrumentController{Log: logger, InstrumentUsecase: new(mocks.MockInstrumentUsecase)},
		Assessment:       &controllers.AssessmentController{Log: logger, AssessmentUsecase: new(mocks.MockAssessmentUsecase)},
		AssessmentResult: &controllers.AssessmentResultController{Log: logger, AssessmentResultUsecase: new(mocks.MockAssessmentResultUsecase)},
	})

	t.Run("health is public", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("children require a session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/children", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer expired")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v2/health", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestChildRouter(t *testing.T) {
	middlewareInstance, _ := newTestMiddlewares()
	childUsecase := new(mocks.MockChildUsecase)
	childController := &controllers.ChildController{Log: zap.NewNop(), ChildUsecase: childUsecase}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Route("/children", func(r chi.Router) {
		attachChildRoutes(r, middlewareInstance, childController)
	})

	t.Run("create child", func(t *testing.T) {
		childUsecase.On("CreateChild", mock.Anything, testSession, mock.AnythingOfType("*requests.CreateChild")).
			Return(&responses.Child{ID: testChildID, Name: "Sam", AgeMonths: 24}, nil).Once()

		jaundice, familyWithASD := false, true
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodPost, "/children", requests.CreateChild{
			Name:          "Sam",
			DateOfBirth:   "2022-03-01",
			Relationship:  "mother",
			Gender:        constvars.ChildGenderBoy,
			Jaundice:      &jaundice,
			FamilyWithASD: &familyWithASD,
		}))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
	})

	t.Run("create child rejects an unknown gender", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodPost, "/children", map[string]interface{}{
			"name":          "Sam",
			"dateOfBirth":   "2022-03-01",
			"relationship":  "mother",
			"gender":        "unknown",
			"jaundice":      false,
			"familyWithASD": false,
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("get child passes the url param", func(t *testing.T) {
		childUsecase.On("GetChild", mock.Anything, testSession, testChildID).
			Return(nil, exceptions.ErrChildNotExist(nil)).Once()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodGet, "/children/"+testChildID, nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete child", func(t *testing.T) {
		childUsecase.On("DeleteChild", mock.Anything, testSession, testChildID).Return(nil).Once()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodDelete, "/children/"+testChildID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	childUsecase.AssertExpectations(t)
	childUsecase.AssertNotCalled(t, "ListChildCards", mock.Anything, mock.Anything)
}

func TestInstrumentRouter(t *testing.T) {
	instrumentUsecase := new(mocks.MockInstrumentUsecase)
	instrumentController := &controllers.InstrumentController{Log: zap.NewNop(), InstrumentUsecase: instrumentUsecase}
	middlewareInstance, _ := newTestMiddlewares()

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Route("/instruments", func(r chi.Router) {
		attachInstrumentRoutes(r, instrumentController)
	})

	t.Run("select rejects a non numeric age", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/instruments/select?ageMonths=two", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("select rejects a negative age", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/instruments/select?ageMonths=-1", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("select rejects a missing age", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/instruments/select", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("select is not shadowed by the id route", func(t *testing.T) {
		instrumentUsecase.On("SelectInstrument", mock.Anything, 24).Return(&responses.SelectedInstrument{
			AgeMonths:  24,
			Instrument: responses.InstrumentSummary{ID: "mchat"},
		}, nil).Once()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/instruments/select?ageMonths=24", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"mchat"`)
	})

	t.Run("score answers", func(t *testing.T) {
		instrumentUsecase.On("ScoreAnswers", mock.Anything, "asd10", mock.AnythingOfType("*requests.ScoreAnswers")).
			Return(&responses.ScoredAnswers{}, nil).Once()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodPost, "/instruments/asd10/score", requests.ScoreAnswers{
			Answers: map[string]int{"A1": 3},
		}))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	instrumentUsecase.AssertExpectations(t)
}

func TestAssessmentRouter(t *testing.T) {
	middlewareInstance, _ := newTestMiddlewares()
	assessmentUsecase := new(mocks.MockAssessmentUsecase)
	assessmentController := &controllers.AssessmentController{Log: zap.NewNop(), AssessmentUsecase: assessmentUsecase}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Route("/assessments", func(r chi.Router) {
		attachAssessmentRoutes(r, middlewareInstance, assessmentController)
	})

	t.Run("section id must be numeric", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodGet, "/assessments/attempt-1/sections/first", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("get section", func(t *testing.T) {
		assessmentUsecase.On("GetSection", mock.Anything, testSession, "attempt-1", 2).
			Return(&responses.AssessmentSection{AttemptID: "attempt-1", SectionID: 2, Title: "Attention Switching"}, nil).Once()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodGet, "/assessments/attempt-1/sections/2", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Attention Switching")
	})

	t.Run("record answer requires a value", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodPut, "/assessments/attempt-1/answers", map[string]string{
			"questionId": "AQ1",
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("submit", func(t *testing.T) {
		assessmentUsecase.On("SubmitAssessment", mock.Anything, testSession, "attempt-1").
			Return(&responses.SubmittedAssessment{Result: &responses.AssessmentResult{ID: "result-1"}}, nil).Once()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodPost, "/assessments/attempt-1/submit", nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("incomplete submit", func(t *testing.T) {
		assessmentUsecase.On("SubmitAssessment", mock.Anything, testSession, "attempt-2").
			Return(nil, exceptions.ErrScreeningIncomplete(nil)).Once()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodPost, "/assessments/attempt-2/submit", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	assessmentUsecase.AssertExpectations(t)
	assessmentUsecase.AssertNotCalled(t, "RecordAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAssessmentResultRouter(t *testing.T) {
	middlewareInstance, _ := newTestMiddlewares()
	resultUsecase := new(mocks.MockAssessmentResultUsecase)
	resultController := &controllers.AssessmentResultController{Log: zap.NewNop(), AssessmentResultUsecase: resultUsecase}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Route("/results", func(r chi.Router) {
		attachAssessmentResultRoutes(r, middlewareInstance, resultController)
	})

	t.Run("unknown risk filter", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodGet, "/results?risk=extreme", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("query params are forwarded", func(t *testing.T) {
		expected := &requests.FindAllAssessmentResults{
			ChildID: testChildID,
			Risk:    constvars.ResultRiskFilterHigh,
			Sort:    constvars.ResultSortOldest,
			Search:  "sam",
		}
		resultUsecase.On("FindAll", mock.Anything, testSession, expected).
			Return([]responses.AssessmentResult{{ID: "result-1"}}, nil).Once()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newTestRequest(http.MethodGet, "/results?childId="+testChildID+"&risk=high&sort=oldest&q=sam", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "result-1")
	})

	resultUsecase.AssertExpectations(t)
}
