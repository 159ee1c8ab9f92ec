package controllers

import (
	"context"
	"errors"
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

type InstrumentController struct {
	Log               *zap.Logger
	InstrumentUsecase contracts.InstrumentUsecase
	InternalConfig    *config.InternalConfig
}

var (
	instrumentControllerInstance *InstrumentController
	onceInstrumentController     sync.Once
)

func NewInstrumentController(logger *zap.Logger, instrumentUsecase contracts.InstrumentUsecase, internalConfig *config.InternalConfig) *InstrumentController {
	onceInstrumentController.Do(func() {
		instrumentControllerInstance = &InstrumentController{
			Log:               logger,
			InstrumentUsecase: instrumentUsecase,
			InternalConfig:    internalConfig,
		}
	})
	return instrumentControllerInstance
}

func (ctrl *InstrumentController) ListInstruments(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("InstrumentController.ListInstruments requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("InstrumentController.ListInstruments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	summaries, err := ctrl.InstrumentUsecase.ListInstruments(r.Context())
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInstrumentsSuccessMessage, summaries)
}

func (ctrl *InstrumentController) GetInstrument(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("InstrumentController.GetInstrument requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	instrumentID := chi.URLParam(r, constvars.URLParamInstrumentID)
	ctrl.Log.Info("InstrumentController.GetInstrument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentIDKey, instrumentID),
	)

	instrument, err := ctrl.InstrumentUsecase.GetInstrument(r.Context(), instrumentID)
	if err != nil {
		ctrl.Log.Error("InstrumentController.GetInstrument error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInstrumentSuccessMessage, instrument)
}

// SelectInstrument picks the instrument for the ageMonths query parameter.
func (ctrl *InstrumentController) SelectInstrument(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("InstrumentController.SelectInstrument requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("InstrumentController.SelectInstrument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rawAgeMonths := r.URL.Query().Get(constvars.URLQueryParamAgeMonths)
	if rawAgeMonths == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(errors.New("missing"), constvars.URLQueryParamAgeMonths))
		return
	}
	ageMonths, err := strconv.Atoi(rawAgeMonths)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamAgeMonths))
		return
	}
	if ageMonths < 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(errors.New("negative age"), constvars.URLQueryParamAgeMonths))
		return
	}

	selected, err := ctrl.InstrumentUsecase.SelectInstrument(r.Context(), ageMonths)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("InstrumentController.SelectInstrument succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentIDKey, selected.Instrument.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectInstrumentSuccessMessage, selected)
}

func (ctrl *InstrumentController) ScoreAnswers(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("InstrumentController.ScoreAnswers requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	instrumentID := chi.URLParam(r, constvars.URLParamInstrumentID)
	ctrl.Log.Info("InstrumentController.ScoreAnswers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentIDKey, instrumentID),
	)

	request := new(requests.ScoreAnswers)
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

	scored, err := ctrl.InstrumentUsecase.ScoreAnswers(ctx, instrumentID, request)
	if err != nil {
		ctrl.Log.Error("InstrumentController.ScoreAnswers error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("InstrumentController.ScoreAnswers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScoreAnswersSuccessMessage, scored)
}
