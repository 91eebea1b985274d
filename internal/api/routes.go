package api

import (
	"net/http"

	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
) {
	routes.Register(
		mux,
		domain.Commands.Handler().Routes(),
		domain.Objects.Routes(),
		domain.Layouts.Routes(),
	)
}
