package routers

import (
	"dr-portal/internal/app/delivery/http/controllers"
	"dr-portal/internal/app/delivery/http/middlewares"
	"dr-portal/internal/app/models"
	"dr-portal/internal/app/services/navigation"

	"github.com/go-chi/chi/v5"
)

var doctorOnly = navigation.Meta{RequiresAuth: true, Role: models.RoleDoctor}

func attachDiagnosisRoutes(router chi.Router, middlewares *middlewares.Middlewares, uploadLimiter *middlewares.RateLimiter, diagnosisController *controllers.DiagnosisController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireMeta(doctorOnly))

		r.With(uploadLimiter.Limit).Post("/diagnosis/analyze", diagnosisController.Analyze)
		r.With(uploadLimiter.Limit).Post("/diagnosis/segment", diagnosisController.Segment)
		r.Post("/diagnosis", diagnosisController.Submit)
		r.Get("/diagnosis/{id}", diagnosisController.Detail)
		r.Put("/diagnosis/{id}/confirm", diagnosisController.Confirm)
		r.Delete("/diagnosis/{id}", diagnosisController.Delete)
		r.Get("/diagnosis/{id}/audit", diagnosisController.AuditTrail)

		r.Get("/ai/diagnosis/history", diagnosisController.AIHistory)
		r.Get("/ai/diagnosis/reports/{id}", diagnosisController.AIReport)

		r.Get("/masks/{name}", diagnosisController.Mask)
	})
}
