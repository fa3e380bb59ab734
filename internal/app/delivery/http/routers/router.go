package routers

import (
	"dr-portal/internal/app/config"
	"dr-portal/internal/app/delivery/http/controllers"
	"dr-portal/internal/app/delivery/http/middlewares"
	"dr-portal/internal/pkg/constvars"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	uploadLimiter *middlewares.RateLimiter,
	authController *controllers.AuthController,
	viewController *controllers.ViewController,
	diagnosisController *controllers.DiagnosisController,
	userController *controllers.UserController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	if middlewares.AccessLogger != nil {
		router.Use(middlewares.RequestLogger)
	}
	router.Use(middlewares.ErrorHandler)

	corsOptions := buildCorsOptions(internalConfig.App.AllowedOrigins)
	router.Use(cors.Handler(corsOptions))

	globalLimiter, loginLimiter := middlewares.CreateRateLimiters()
	router.Use(globalLimiter)
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.SessionCookie)

	router.Route("/auth", func(r chi.Router) {
		attachAuthRoutes(r, loginLimiter, authController)
	})

	router.Group(func(r chi.Router) {
		attachViewRoutes(r, middlewares, viewController)
	})

	router.Route("/api", func(r chi.Router) {
		attachDiagnosisRoutes(r, middlewares, uploadLimiter, diagnosisController)
		attachUserRoutes(r, middlewares, userController)
	})
}

// buildCorsOptions allows credentials only for an explicit origin list.
func buildCorsOptions(csv string) cors.Options {
	origins := allowedOrigins(csv)
	withCredentials := true
	for _, origin := range origins {
		if strings.Contains(origin, "*") {
			withCredentials = false
		}
	}

	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", controllers.HeaderMaskObject},
		AllowCredentials: withCredentials,
		MaxAge:           300,
	}
}

func allowedOrigins(csv string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(csv, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{constvars.DefaultAllowedOrigin}
	}
	return origins
}
