package routers

import (
	"carelink-agent/internal/app/services/healthdata"

	"github.com/go-chi/chi/v5"
)

func attachHealthDataRoutes(router chi.Router, healthDataController *healthdata.HealthDataController) {
	router.Get("/health-data", healthDataController.ListData)
	router.Post("/health-data", healthDataController.RecordData)
	router.Put("/health-data/{dataID}", healthDataController.UpdateData)
	router.Delete("/health-data/{dataID}", healthDataController.DeleteData)
	router.Get("/health-goals", healthDataController.ListGoals)
	router.Post("/health-goals", healthDataController.CreateGoal)
	router.Put("/health-goals/{goalID}", healthDataController.UpdateGoal)
	router.Delete("/health-goals/{goalID}", healthDataController.DeleteGoal)
}
