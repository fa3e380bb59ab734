package routers

import (
	"dr-portal/internal/app/delivery/http/controllers"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, loginLimiter func(http.Handler) http.Handler, authController *controllers.AuthController) {
	router.With(loginLimiter).Post("/login", authController.Login)
	router.Post("/logout", authController.Logout)
}
