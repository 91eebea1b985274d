package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/layout"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

func (s *Server) registerLayoutTools() {
	s.mcp.AddTool(mcp.NewTool("list_layouts",
		mcp.WithDescription("List the names of the available composite layout blueprints."),
	), s.handleListLayouts)

	s.mcp.AddTool(mcp.NewTool("create_layout",
		mcp.WithDescription("Create a composite layout (login-form, navigation-bar, card) on the canvas."),
		mcp.WithString("name",
			mcp.Description("Composite name: login-form, navigation-bar, card"),
			mcp.Required(),
		),
		mcp.WithNumber("x", mcp.Description("Container X position (optional, blueprint default if omitted)")),
		mcp.WithNumber("y", mcp.Description("Container Y position (optional)")),
		mcp.WithNumber("width", mcp.Description("Container width (optional)")),
		mcp.WithNumber("height", mcp.Description("Container height (optional)")),
	), s.handleCreateLayout)

	s.mcp.AddTool(mcp.NewTool("validate_layout",
		mcp.WithDescription("Run the layout sanity pass for a composite against the current canvas, applying fixes for alignment, spacing, width, centering, grid, and contrast issues."),
		mcp.WithString("name", mcp.Description("Composite name"), mcp.Required()),
	), s.handleValidateLayout)

	s.mcp.AddTool(mcp.NewTool("arrange_shapes",
		mcp.WithDescription("Arrange shapes in a vertical, horizontal, or grid flow with uniform gaps."),
		mcp.WithString("shapeIds",
			mcp.Description("Comma-separated shape IDs to arrange, in order"),
			mcp.Required(),
		),
		mcp.WithString("mode", mcp.Description("Arrangement mode: vertical, horizontal, grid (default grid)")),
		mcp.WithNumber("columns", mcp.Description("Column count for grid mode (optional)")),
		mcp.WithNumber("startX", mcp.Description("Starting X position (optional)")),
		mcp.WithNumber("startY", mcp.Description("Starting Y position (optional)")),
	), s.handleArrangeShapes)
}

func (s *Server) handleListLayouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(layout.Composites())
}

func (s *Server) handleCreateLayout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name, _ := args["name"].(string)

	overrides := layout.Overrides{
		X:      floatArg(args, "x"),
		Y:      floatArg(args, "y"),
		Width:  floatArg(args, "width"),
		Height: floatArg(args, "height"),
	}

	bp, err := layout.Plan(name, overrides)
	if err != nil {
		return nil, fmt.Errorf("plan layout: %w", err)
	}

	composite, err := s.engine.CreateComposite(ctx, bp)
	if err != nil {
		return nil, fmt.Errorf("create layout: %w", err)
	}
	return jsonResult(composite)
}

func (s *Server) handleValidateLayout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name, _ := args["name"].(string)

	report, err := s.sanity.Validate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("validate layout: %w", err)
	}
	return jsonResult(report)
}

func (s *Server) handleArrangeShapes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	ids := splitIDs(args["shapeIds"])
	if len(ids) == 0 {
		return nil, fmt.Errorf("shapeIds is required")
	}

	mode := layout.ModeGrid
	if m, ok := args["mode"].(string); ok && m != "" {
		mode = layout.Mode(m)
	}

	objects, err := s.engine.Arrange(
		ctx,
		ids,
		mode,
		int(getFloat(args, "columns", 0)),
		getFloat(args, "startX", 2*design.Gap),
		getFloat(args, "startY", 2*design.Gap),
	)
	if err != nil {
		return nil, fmt.Errorf("arrange shapes: %w", err)
	}
	return jsonResult(objects)
}

func splitIDs(v any) []string {
	raw, _ := v.(string)
	if raw == "" {
		return nil
	}

	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
