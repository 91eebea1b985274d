package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/commands"
)

func (s *Server) registerCommandTools() {
	s.mcp.AddTool(mcp.NewTool("execute_command",
		mcp.WithDescription("Validate and execute a canvas command intent. Commands carry an action, optional structured params, and the original command text used to resolve shape references."),
		mcp.WithString("action",
			mcp.Description("Command action: create, move, resize, rotate, recolor, retext, delete, list, arrange, create-many, distribute, create-composite"),
			mcp.Required(),
		),
		mcp.WithString("text", mcp.Description("Original natural-language command text (optional, improves reference resolution)")),
		mcp.WithObject("params", mcp.Description("Structured parameters such as target, shape_type, fill, x, y, count, composite (optional)")),
	), s.handleExecuteCommand)

	s.mcp.AddTool(mcp.NewTool("execute_command_json",
		mcp.WithDescription("Execute a command intent supplied as raw JSON, tolerating markdown code fences around the payload. Useful when relaying another model's output verbatim."),
		mcp.WithString("intent",
			mcp.Description("Intent JSON: {\"action\": ..., \"params\": {...}, \"text\": ...}"),
			mcp.Required(),
		),
	), s.handleExecuteCommandJSON)

	s.mcp.AddTool(mcp.NewTool("validate_command",
		mcp.WithDescription("Preprocess a command intent without executing it, returning validity, enhanced params, warnings, suggestions, and reasoning."),
		mcp.WithString("action", mcp.Description("Command action"), mcp.Required()),
		mcp.WithString("text", mcp.Description("Original command text (optional)")),
		mcp.WithObject("params", mcp.Description("Structured parameters (optional)")),
	), s.handleValidateCommand)
}

func intentFromArgs(args map[string]any) (commands.Intent, error) {
	action, _ := args["action"].(string)
	if action == "" {
		return commands.Intent{}, fmt.Errorf("action is required")
	}

	intent := commands.Intent{Action: commands.Action(action)}
	if text, ok := args["text"].(string); ok {
		intent.Text = text
	}
	if params, ok := args["params"].(map[string]any); ok {
		intent.Params = params
	}
	return intent, nil
}

func (s *Server) handleExecuteCommand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	intent, err := intentFromArgs(req.GetArguments())
	if err != nil {
		return nil, err
	}

	outcome, err := s.commands.Execute(ctx, intent)
	if err != nil {
		// Rejections still carry the result payload with errors and
		// suggestions, which is more useful to the client than a bare error.
		if errors.Is(err, commands.ErrValidationRejected) {
			return jsonResult(outcome)
		}
		return nil, fmt.Errorf("execute command: %w", err)
	}

	return jsonResult(outcome)
}

func (s *Server) handleExecuteCommandJSON(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, _ := req.GetArguments()["intent"].(string)

	intent, err := commands.ParseIntent(raw)
	if err != nil {
		return nil, err
	}

	outcome, err := s.commands.Execute(ctx, intent)
	if err != nil {
		if errors.Is(err, commands.ErrValidationRejected) {
			return jsonResult(outcome)
		}
		return nil, fmt.Errorf("execute command: %w", err)
	}
	return jsonResult(outcome)
}

func (s *Server) handleValidateCommand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	intent, err := intentFromArgs(req.GetArguments())
	if err != nil {
		return nil, err
	}

	return jsonResult(s.commands.Validate(ctx, intent))
}
