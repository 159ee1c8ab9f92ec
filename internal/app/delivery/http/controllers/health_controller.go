package controllers

import (
	"net/http"
	"spectrum-sense-service/internal/app/config"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/utils"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, map[string]string{
		"version": ctrl.InternalConfig.App.Version,
	})
}
