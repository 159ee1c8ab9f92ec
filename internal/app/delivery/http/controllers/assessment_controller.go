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
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
	InternalConfig    *config.InternalConfig
}

var (
	assessmentControllerInstance *AssessmentController
	onceAssessmentController     sync.Once
)

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase, internalConfig *config.InternalConfig) *AssessmentController {
	onceAssessmentController.Do(func() {
		assessmentControllerInstance = &AssessmentController{
			Log:               logger,
			AssessmentUsecase: assessmentUsecase,
			InternalConfig:    internalConfig,
		}
	})
	return assessmentControllerInstance
}

func (ctrl *AssessmentController) StartAssessment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("AssessmentController.StartAssessment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AssessmentController.StartAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	request := new(requests.StartAssessment)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	assessment, err := ctrl.AssessmentUsecase.StartAssessment(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.StartAssessment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AssessmentController.StartAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StartAssessmentSuccessMessage, assessment)
}

func (ctrl *AssessmentController) GetAssessment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("AssessmentController.GetAssessment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	attemptID := chi.URLParam(r, constvars.URLParamAttemptID)
	ctrl.Log.Info("AssessmentController.GetAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttemptIDKey, attemptID),
	)

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	assessment, err := ctrl.AssessmentUsecase.GetAssessment(ctx, session, attemptID)
	if err != nil {
		ctrl.Log.Error("AssessmentController.GetAssessment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentSuccessMessage, assessment)
}

func (ctrl *AssessmentController) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("AssessmentController.RecordAnswer requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	attemptID := chi.URLParam(r, constvars.URLParamAttemptID)
	ctrl.Log.Info("AssessmentController.RecordAnswer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttemptIDKey, attemptID),
	)

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	request := new(requests.RecordAnswer)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	assessment, err := ctrl.AssessmentUsecase.RecordAnswer(ctx, session, attemptID, request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.RecordAnswer error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionIDKey, request.QuestionID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordAnswerSuccessMessage, assessment)
}

func (ctrl *AssessmentController) GetSection(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("AssessmentController.GetSection requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	attemptID := chi.URLParam(r, constvars.URLParamAttemptID)
	rawSectionID := chi.URLParam(r, constvars.URLParamSectionID)
	ctrl.Log.Info("AssessmentController.GetSection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttemptIDKey, attemptID),
		zap.String(constvars.LoggingSectionIDKey, rawSectionID),
	)

	sectionID, err := strconv.Atoi(rawSectionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamSectionID))
		return
	}

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	section, err := ctrl.AssessmentUsecase.GetSection(ctx, session, attemptID, sectionID)
	if err != nil {
		ctrl.Log.Error("AssessmentController.GetSection error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSectionSuccessMessage, section)
}

func (ctrl *AssessmentController) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("AssessmentController.SubmitAssessment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	attemptID := chi.URLParam(r, constvars.URLParamAttemptID)
	ctrl.Log.Info("AssessmentController.SubmitAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttemptIDKey, attemptID),
	)

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	submitted, err := ctrl.AssessmentUsecase.SubmitAssessment(ctx, session, attemptID)
	if err != nil {
		ctrl.Log.Error("AssessmentController.SubmitAssessment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AssessmentController.SubmitAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, submitted.Result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitAssessmentSuccessMessage, submitted)
}

func (ctrl *AssessmentController) AbandonAssessment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("AssessmentController.AbandonAssessment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	attemptID := chi.URLParam(r, constvars.URLParamAttemptID)
	ctrl.Log.Info("AssessmentController.AbandonAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttemptIDKey, attemptID),
	)

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	if err := ctrl.AssessmentUsecase.AbandonAssessment(ctx, session, attemptID); err != nil {
		ctrl.Log.Error("AssessmentController.AbandonAssessment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AbandonAssessmentSuccessMessage, nil)
}
