package routers

import (
	"spectrum-sense-service/internal/app/delivery/http/controllers"
	"spectrum-sense-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachChildRoutes(router chi.Router, middlewares *middlewares.Middlewares, childController *controllers.ChildController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", childController.CreateChild)
	router.Get("/", childController.ListChildCards)
	router.Get("/{childId}", childController.GetChild)
	router.Delete("/{childId}", childController.DeleteChild)
}
