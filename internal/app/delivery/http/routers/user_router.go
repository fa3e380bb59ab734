package routers

import (
	"dr-portal/internal/app/delivery/http/controllers"
	"dr-portal/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireMeta(doctorOnly))

		r.Get("/users", userController.List)
		r.Post("/users", userController.Create)
	})
}
