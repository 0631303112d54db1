package routers

import (
	"carelink-agent/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/register", authController.Register)
	router.Post("/logout", authController.Logout)
	router.Put("/profile", authController.UpdateProfile)
}
