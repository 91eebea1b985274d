// Package infrastructure provides core service initialization for application
// startup. It assembles the common dependencies (logging, lifecycle, canvas
// state) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, and the canvas object store.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Canvas    *canvas.Store
}

// New creates an Infrastructure with the standard logger and an empty canvas.
// It initializes all systems but does not start them; call Start separately.
func New() (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Canvas:    canvas.NewStore(logger),
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Canvas.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("canvas start failed: %w", err)
	}
	return nil
}
