// Package mcpserver exposes the canvas command core as MCP tools over stdio,
// so LLM clients can manipulate the canvas through structured tool calls.
package mcpserver

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/commands"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/layout"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/reference"
)

// Deps carries the domain systems the MCP server exposes.
type Deps struct {
	Canvas   *canvas.Store
	Commands commands.System
	Weights  reference.Weights
	Version  string
	Logger   *slog.Logger
}

// Server wraps an MCP stdio server with canvas tool registrations.
type Server struct {
	mcp      *server.MCPServer
	canvas   *canvas.Store
	commands commands.System
	resolver *reference.Resolver
	engine   *layout.Engine
	sanity   *layout.Validator
	logger   *slog.Logger
}

// New creates and configures an MCP server with all canvas tools.
func New(deps Deps) *Server {
	s := &Server{
		canvas:   deps.Canvas,
		commands: deps.Commands,
		resolver: reference.NewResolver(deps.Weights),
		engine:   layout.NewEngine(deps.Canvas, deps.Logger),
		sanity:   layout.NewValidator(deps.Canvas, deps.Logger),
		logger:   deps.Logger.With("system", "mcp"),
	}

	s.mcp = server.NewMCPServer(
		"canvas-mcp",
		deps.Version,
		server.WithToolCapabilities(true),
	)

	s.registerObjectTools()
	s.registerCommandTools()
	s.registerLayoutTools()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	s.logger.Info("starting stdio server")
	return server.ServeStdio(s.mcp)
}

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

func getFloat(args map[string]any, key string, fallback float64) float64 {
	if v, ok := args[key].(float64); ok {
		return v
	}
	return fallback
}

func floatArg(args map[string]any, key string) *float64 {
	if v, ok := args[key].(float64); ok {
		return &v
	}
	return nil
}
