package routers

import (
	"fmt"
	"time"

	"carelink-agent/internal/app/config"
	"carelink-agent/internal/app/delivery/http/middlewares"
	"carelink-agent/internal/app/services/auth"
	"carelink-agent/internal/app/services/healthdata"
	"carelink-agent/internal/app/services/messaging"
	"carelink-agent/internal/app/services/navigation"
	"carelink-agent/internal/app/services/reminders"
	"carelink-agent/internal/app/services/session"
	"carelink-agent/internal/app/services/shared/notify"
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	sessionController *session.SessionController,
	navigationController *navigation.NavigationController,
	notificationController *notify.NotificationController,
	messagingController *messaging.MessagingController,
	reminderController *reminders.ReminderController,
	healthDataController *healthdata.HealthDataController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, authController)
			})

			r.Get("/session", sessionController.Current)
			r.Post("/navigation/evaluate", navigationController.Evaluate)
			r.Get("/notifications", notificationController.Pending)

			attachMessagingRoutes(r, messagingController)

			r.Route("/reminders", func(r chi.Router) {
				attachReminderRoutes(r, reminderController)
			})

			attachHealthDataRoutes(r, healthDataController)

			r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
				utils.BuildSuccessResponse(w, constvars.StatusOK, "ok", nil)
			})
		})
	})
}
