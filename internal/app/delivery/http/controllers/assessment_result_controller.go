package controllers

import (
	"context"
	"net/http"
	"spectrum-sense-service/internal/app/config"
	"spectrum-sense-service/internal/app/contracts"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/exceptions"
	"spectrum-sense-service/internal/pkg/utils"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssessmentResultController struct {
	Log                     *zap.Logger
	AssessmentResultUsecase contracts.AssessmentResultUsecase
	InternalConfig          *config.InternalConfig
}

var (
	assessmentResultControllerInstance *AssessmentResultController
	onceAssessmentResultController     sync.Once
)

func NewAssessmentResultController(logger *zap.Logger, assessmentResultUsecase contracts.AssessmentResultUsecase, internalConfig *config.InternalConfig) *AssessmentResultController {
	onceAssessmentResultController.Do(func() {
		assessmentResultControllerInstance = &AssessmentResultController{
			Log:                     logger,
			AssessmentResultUsecase: assessmentResultUsecase,
			InternalConfig:          internalConfig,
		}
	})
	return assessmentResultControllerInstance
}

// FindAll lists the guardian's results, filtered by the childId, risk, sort
// and q query parameters.
func (ctrl *AssessmentResultController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("AssessmentResultController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	query := r.URL.Query()
	request := &requests.FindAllAssessmentResults{
		ChildID: query.Get(constvars.URLQueryParamChildID),
		Risk:    query.Get(constvars.URLQueryParamRisk),
		Sort:    query.Get(constvars.URLQueryParamSort),
		Search:  query.Get(constvars.URLQueryParamSearch),
	}
	ctrl.Log.Info("AssessmentResultController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request),
	)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	results, err := ctrl.AssessmentResultUsecase.FindAll(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("AssessmentResultController.FindAll error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AssessmentResultController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(results)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetResultsSuccessMessage, results)
}

func (ctrl *AssessmentResultController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("AssessmentResultController.FindByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	resultID := chi.URLParam(r, constvars.URLParamResultID)
	ctrl.Log.Info("AssessmentResultController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
	)

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.AssessmentResultUsecase.FindByID(ctx, session, resultID)
	if err != nil {
		ctrl.Log.Error("AssessmentResultController.FindByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetResultSuccessMessage, result)
}
