package routers

import (
	"spectrum-sense-service/internal/app/delivery/http/controllers"
	"spectrum-sense-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *controllers.AssessmentController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", assessmentController.StartAssessment)
	router.Get("/{attemptId}", assessmentController.GetAssessment)
	router.Delete("/{attemptId}", assessmentController.AbandonAssessment)
	router.Put("/{attemptId}/answers", assessmentController.RecordAnswer)
	router.Get("/{attemptId}/sections/{sectionId}", assessmentController.GetSection)
	router.Post("/{attemptId}/submit", assessmentController.SubmitAssessment)
}
