package api

import (
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/commands"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/layout"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Commands commands.System
	Objects  *canvas.Handler
	Layouts  *layout.Handler
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	commandsSystem := commands.New(
		runtime.Canvas,
		runtime.Weights,
		runtime.Logger,
	)

	objectsHandler := canvas.NewHandler(
		runtime.Canvas,
		runtime.Logger,
		runtime.Pagination,
	)

	layoutsHandler := layout.NewHandler(
		layout.NewEngine(runtime.Canvas, runtime.Logger),
		layout.NewValidator(runtime.Canvas, runtime.Logger),
		runtime.Logger,
	)

	return &Domain{
		Commands: commandsSystem,
		Objects:  objectsHandler,
		Layouts:  layoutsHandler,
	}
}
