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

type ChildController struct {
	Log            *zap.Logger
	ChildUsecase   contracts.ChildUsecase
	InternalConfig *config.InternalConfig
}

var (
	childControllerInstance *ChildController
	onceChildController     sync.Once
)

func NewChildController(logger *zap.Logger, childUsecase contracts.ChildUsecase, internalConfig *config.InternalConfig) *ChildController {
	onceChildController.Do(func() {
		childControllerInstance = &ChildController{
			Log:            logger,
			ChildUsecase:   childUsecase,
			InternalConfig: internalConfig,
		}
	})
	return childControllerInstance
}

func (ctrl *ChildController) CreateChild(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("ChildController.CreateChild requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ChildController.CreateChild called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	request := new(requests.CreateChild)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Info("ChildController.CreateChild validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	child, err := ctrl.ChildUsecase.CreateChild(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("ChildController.CreateChild error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ChildController.CreateChild succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateChildSuccessMessage, child)
}

func (ctrl *ChildController) ListChildCards(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("ChildController.ListChildCards requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ChildController.ListChildCards called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	cards, err := ctrl.ChildUsecase.ListChildCards(ctx, session)
	if err != nil {
		ctrl.Log.Error("ChildController.ListChildCards error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ChildController.ListChildCards succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(cards)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetChildCardsSuccessMessage, cards)
}

func (ctrl *ChildController) GetChild(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("ChildController.GetChild requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	childID := chi.URLParam(r, constvars.URLParamChildID)
	ctrl.Log.Info("ChildController.GetChild called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChildIDKey, childID),
	)

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	child, err := ctrl.ChildUsecase.GetChild(ctx, session, childID)
	if err != nil {
		ctrl.Log.Error("ChildController.GetChild error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ChildController.GetChild succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetChildSuccessMessage, child)
}

func (ctrl *ChildController) DeleteChild(w http.ResponseWriter, r *http.Request) {
	requestID, ok := utils.GetRequestID(r.Context())
	if !ok || requestID == "" {
		ctrl.Log.Error("ChildController.DeleteChild requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	childID := chi.URLParam(r, constvars.URLParamChildID)
	ctrl.Log.Info("ChildController.DeleteChild called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChildIDKey, childID),
	)

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	err := ctrl.ChildUsecase.DeleteChild(ctx, session, childID)
	if err != nil {
		ctrl.Log.Error("ChildController.DeleteChild error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ChildController.DeleteChild succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteChildSuccessMessage, nil)
}
