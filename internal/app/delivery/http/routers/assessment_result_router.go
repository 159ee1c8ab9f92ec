package routers

import (
	"spectrum-sense-service/internal/app/delivery/http/controllers"
	"spectrum-sense-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentResultRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentResultController *controllers.AssessmentResultController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", assessmentResultController.FindAll)
	router.Get("/{resultId}", assessmentResultController.FindByID)
}
