package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"proprofile/internal/domain"
)

func styleOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("x", mcp.Description("X position in page units (0-794)")),
		mcp.WithNumber("y", mcp.Description("Y position in page units (0-1123)")),
		mcp.WithNumber("width", mcp.Description("Width in page units")),
		mcp.WithNumber("height", mcp.Description("Height in page units")),
		mcp.WithNumber("zIndex", mcp.Description("Stacking order; higher paints on top")),
		mcp.WithNumber("fontSize", mcp.Description("Font size for text")),
		mcp.WithString("fontWeight", mcp.Description("normal or bold")),
		mcp.WithString("fontStyle", mcp.Description("normal or italic")),
		mcp.WithString("color", mcp.Description("Text color, e.g. #334155")),
		mcp.WithString("textAlign", mcp.Description("Text alignment"), mcp.Enum("left", "center", "right")),
		mcp.WithString("backgroundColor", mcp.Description("Fill color, e.g. #1e293b or transparent")),
		mcp.WithNumber("borderRadius", mcp.Description("Corner radius")),
		mcp.WithNumber("opacity", mcp.Description("Opacity between 0 and 1")),
	}
}

func (s *Server) registerElementTools() {
	// ── add_element ────────────────────────────────────
	add := []mcp.ToolOption{
		mcp.WithDescription("Add an element to the active page and select it. Without x/y the element is placed in free space."),
		mcp.WithString("type",
			mcp.Description("Element type"),
			mcp.Enum(string(domain.ElementTypeText), string(domain.ElementTypeImage), string(domain.ElementTypeShape), string(domain.ElementTypeLogo)),
			mcp.Required(),
		),
		mcp.WithString("content", mcp.Description("Text, or an image data URL for IMAGE/LOGO")),
	}
	s.mcp.AddTool(mcp.NewTool("add_element", append(add, styleOptions()...)...), s.handleAddElement)

	// ── update_element ─────────────────────────────────
	upd := []mcp.ToolOption{
		mcp.WithDescription("Change attributes of an element on the active page. Only the given attributes change."),
		mcp.WithString("id", mcp.Description("Element ID"), mcp.Required()),
		mcp.WithString("content", mcp.Description("New text or image data URL")),
	}
	s.mcp.AddTool(mcp.NewTool("update_element", append(upd, styleOptions()...)...), s.handleUpdateElement)

	// ── delete_element ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("delete_element",
		mcp.WithDescription("Delete an element from the active page"),
		mcp.WithString("id", mcp.Description("Element ID"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteElement)

	// ── select_element ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("select_element",
		mcp.WithDescription("Select an element on the active page, or clear the selection when id is empty"),
		mcp.WithString("id", mcp.Description("Element ID; empty clears the selection")),
	), s.handleSelectElement)
}

// ── Handlers ───────────────────────────────────────────────

func (s *Server) handleAddElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	elementType, _ := args["type"].(string)
	if elementType == "" {
		return nil, fmt.Errorf("type is required")
	}
	patch, err := patchFromArgs(args)
	if err != nil {
		return nil, err
	}
	content, _ := args["content"].(string)

	// Auto-place if position not provided
	if patch.X == nil || patch.Y == nil {
		t, err := domain.ParseElementType(elementType)
		if err != nil {
			return nil, err
		}
		w, h := domain.DefaultSize(t)
		w, h = getFloat(args, "width", w), getFloat(args, "height", h)
		p, err := s.editor.ActivePage()
		if err != nil {
			return nil, err
		}
		x, y := s.placer.NextPosition(p.Elements, w, h)
		patch.X, patch.Y = &x, &y
	}

	el, err := s.editor.AddElement(ctx, elementType, content)
	if err != nil {
		return nil, fmt.Errorf("add element: %w", err)
	}
	if err := s.editor.UpdateElement(ctx, el.ID, patch); err != nil {
		return nil, fmt.Errorf("style element: %w", err)
	}
	patch.Apply(&el)
	return jsonResult(el)
}

func (s *Server) handleUpdateElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	el, err := s.requireElement(args)
	if err != nil {
		return nil, err
	}
	patch, err := patchFromArgs(args)
	if err != nil {
		return nil, err
	}
	if err := s.editor.UpdateElement(ctx, el.ID, patch); err != nil {
		return nil, fmt.Errorf("update element: %w", err)
	}
	patch.Apply(&el)
	return jsonResult(el)
}

func (s *Server) handleDeleteElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	el, err := s.requireElement(req.GetArguments())
	if err != nil {
		return nil, err
	}
	if err := s.editor.DeleteElement(ctx, el.ID); err != nil {
		return nil, fmt.Errorf("delete element: %w", err)
	}
	return textResult(fmt.Sprintf("Element %s deleted", el.ID)), nil
}

func (s *Server) handleSelectElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	if id, _ := args["id"].(string); id == "" {
		s.editor.ClearSelection(ctx)
		return textResult("Selection cleared"), nil
	}
	el, err := s.requireElement(args)
	if err != nil {
		return nil, err
	}
	if err := s.editor.SelectElement(ctx, el.ID); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Element %s selected", el.ID)), nil
}
