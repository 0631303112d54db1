package routers

import (
	"carelink-agent/internal/app/services/reminders"

	"github.com/go-chi/chi/v5"
)

func attachReminderRoutes(router chi.Router, reminderController *reminders.ReminderController) {
	router.Get("/", reminderController.List)
	router.Post("/", reminderController.Create)
	router.Put("/{reminderID}", reminderController.Update)
	router.Put("/{reminderID}/complete", reminderController.Complete)
	router.Delete("/{reminderID}", reminderController.Delete)
}
