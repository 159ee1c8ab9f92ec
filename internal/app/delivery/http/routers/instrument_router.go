package routers

import (
	"spectrum-sense-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachInstrumentRoutes(router chi.Router, instrumentController *controllers.InstrumentController) {
	router.Get("/", instrumentController.ListInstruments)
	router.Get("/select", instrumentController.SelectInstrument)
	router.Get("/{instrumentId}", instrumentController.GetInstrument)
	router.Post("/{instrumentId}/score", instrumentController.ScoreAnswers)
}
