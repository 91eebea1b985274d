package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/reference"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

func (s *Server) registerObjectTools() {
	s.mcp.AddTool(mcp.NewTool("get_canvas",
		mcp.WithDescription("List every object currently on the canvas with id, kind, position, extent, fill, and text."),
	), s.handleGetCanvas)

	s.mcp.AddTool(mcp.NewTool("find_shape",
		mcp.WithDescription("Find the shape best matching a natural-language reference like 'the large blue rectangle'."),
		mcp.WithString("reference", mcp.Description("Natural-language description of the shape"), mcp.Required()),
	), s.handleFindShape)

	s.mcp.AddTool(mcp.NewTool("create_shape",
		mcp.WithDescription("Create a shape on the canvas. Position defaults to the viewport center."),
		mcp.WithString("kind",
			mcp.Description("Shape kind: rectangle, ellipse, triangle, line, text, text-input"),
			mcp.Required(),
		),
		mcp.WithNumber("x", mcp.Description("X position (optional)")),
		mcp.WithNumber("y", mcp.Description("Y position (optional)")),
		mcp.WithNumber("width", mcp.Description("Width (optional, kind default if omitted)")),
		mcp.WithNumber("height", mcp.Description("Height (optional, kind default if omitted)")),
		mcp.WithString("fill", mcp.Description("Fill color name or hex (optional)")),
		mcp.WithString("text", mcp.Description("Literal text for text and text-input shapes (optional)")),
	), s.handleCreateShape)

	s.mcp.AddTool(mcp.NewTool("move_shape",
		mcp.WithDescription("Move a shape to a new position"),
		mcp.WithString("shapeId", mcp.Description("Shape ID"), mcp.Required()),
		mcp.WithNumber("x", mcp.Description("New X position"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("New Y position"), mcp.Required()),
	), s.handleMoveShape)

	s.mcp.AddTool(mcp.NewTool("resize_shape",
		mcp.WithDescription("Resize a shape"),
		mcp.WithString("shapeId", mcp.Description("Shape ID"), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("New width (optional)")),
		mcp.WithNumber("height", mcp.Description("New height (optional)")),
		mcp.WithNumber("radiusX", mcp.Description("New horizontal radius for ellipses (optional)")),
		mcp.WithNumber("radiusY", mcp.Description("New vertical radius for ellipses (optional)")),
	), s.handleResizeShape)

	s.mcp.AddTool(mcp.NewTool("recolor_shape",
		mcp.WithDescription("Change a shape's fill color"),
		mcp.WithString("shapeId", mcp.Description("Shape ID"), mcp.Required()),
		mcp.WithString("fill", mcp.Description("Color name or hex value"), mcp.Required()),
	), s.handleRecolorShape)

	s.mcp.AddTool(mcp.NewTool("retext_shape",
		mcp.WithDescription("Replace the literal text of a text or text-input shape"),
		mcp.WithString("shapeId", mcp.Description("Shape ID"), mcp.Required()),
		mcp.WithString("text", mcp.Description("New text"), mcp.Required()),
	), s.handleRetextShape)

	s.mcp.AddTool(mcp.NewTool("delete_shape",
		mcp.WithDescription("Delete a shape from the canvas"),
		mcp.WithString("shapeId", mcp.Description("Shape ID to delete"), mcp.Required()),
	), s.handleDeleteShape)
}

func (s *Server) handleGetCanvas(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.canvas.Snapshot(ctx))
}

func (s *Server) handleFindShape(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	raw, _ := args["reference"].(string)
	if raw == "" {
		return nil, fmt.Errorf("reference is required")
	}

	snapshot := s.canvas.Snapshot(ctx)
	match, ok := s.resolver.Resolve(reference.Parse(raw), snapshot)
	if !ok {
		return jsonResult(map[string]any{
			"found":       false,
			"suggestions": reference.Suggestions(raw, snapshot),
		})
	}

	return jsonResult(map[string]any{"found": true, "shape": match})
}

func (s *Server) handleCreateShape(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	kind, _ := args["kind"].(string)
	if kind == "" {
		return nil, fmt.Errorf("kind is required")
	}

	attrs := canvas.Attrs{
		X:      floatArg(args, "x"),
		Y:      floatArg(args, "y"),
		Width:  floatArg(args, "width"),
		Height: floatArg(args, "height"),
	}
	if fill, ok := args["fill"].(string); ok && fill != "" {
		if hex, named := design.NamedColor(fill); named {
			fill = hex
		}
		attrs.Fill = &fill
	}
	if text, ok := args["text"].(string); ok && text != "" {
		attrs.Text = &text
	}

	o, err := s.canvas.Create(ctx, canvas.Kind(kind), attrs)
	if err != nil {
		return nil, fmt.Errorf("create shape: %w", err)
	}
	return jsonResult(o)
}

func (s *Server) handleMoveShape(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["shapeId"].(string)

	o, err := s.canvas.Move(ctx, id, getFloat(args, "x", 0), getFloat(args, "y", 0))
	if err != nil {
		return nil, fmt.Errorf("move shape: %w", err)
	}
	return jsonResult(o)
}

func (s *Server) handleResizeShape(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["shapeId"].(string)

	attrs := canvas.Attrs{
		Width:   floatArg(args, "width"),
		Height:  floatArg(args, "height"),
		RadiusX: floatArg(args, "radiusX"),
		RadiusY: floatArg(args, "radiusY"),
	}

	o, err := s.canvas.Resize(ctx, id, attrs)
	if err != nil {
		return nil, fmt.Errorf("resize shape: %w", err)
	}
	return jsonResult(o)
}

func (s *Server) handleRecolorShape(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["shapeId"].(string)
	fill, _ := args["fill"].(string)
	if hex, ok := design.NamedColor(fill); ok {
		fill = hex
	}

	o, err := s.canvas.Recolor(ctx, id, fill)
	if err != nil {
		return nil, fmt.Errorf("recolor shape: %w", err)
	}
	return jsonResult(o)
}

func (s *Server) handleRetextShape(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["shapeId"].(string)
	text, _ := args["text"].(string)

	o, err := s.canvas.Retext(ctx, id, text)
	if err != nil {
		return nil, fmt.Errorf("retext shape: %w", err)
	}
	return jsonResult(o)
}

func (s *Server) handleDeleteShape(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["shapeId"].(string)

	o, err := s.canvas.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete shape: %w", err)
	}
	return textResult(fmt.Sprintf("Shape %s deleted", o.ID)), nil
}
