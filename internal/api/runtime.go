package api

import (
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/config"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/infrastructure"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/reference"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Weights    reference.Weights
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Canvas:    infra.Canvas,
		},
		Pagination: cfg.API.Pagination,
		Weights:    cfg.Resolver,
	}
}
