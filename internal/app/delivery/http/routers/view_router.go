package routers

import (
	"dr-portal/internal/app/delivery/http/controllers"
	"dr-portal/internal/app/delivery/http/middlewares"
	"strings"

	"github.com/go-chi/chi/v5"
)

// attachViewRoutes serves every record of the route table as a GET page
// behind the navigation guard.
func attachViewRoutes(router chi.Router, middlewares *middlewares.Middlewares, viewController *controllers.ViewController) {
	guarded := router.With(middlewares.Navigate)
	for _, record := range middlewares.Routes.Records() {
		guarded.Get(chiPattern(record.Path), viewController.Show)
	}
}

// chiPattern turns ":name" segments into chi's "{name}".
func chiPattern(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + strings.TrimPrefix(segment, ":") + "}"
		}
	}
	return strings.Join(segments, "/")
}
