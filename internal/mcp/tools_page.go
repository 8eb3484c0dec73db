package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"proprofile/internal/canvas"
)

func (s *Server) registerPageTools() {
	// ── add_page ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_page",
		mcp.WithDescription("Append an empty white page and make it active"),
	), s.handleAddPage)

	// ── delete_page ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("delete_page",
		mcp.WithDescription("🛑 DESTRUCTIVE: Delete the active page. The only page of a document cannot be deleted."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeletePage)

	// ── navigate_page ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("navigate_page",
		mcp.WithDescription("Move to the previous or next page, or jump to a page by ID"),
		mcp.WithString("direction", mcp.Description("prev or next"), mcp.Enum("prev", "next")),
		mcp.WithString("pageId", mcp.Description("Page to activate (overrides direction)")),
	), s.handleNavigatePage)

	// ── set_background ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_background",
		mcp.WithDescription("Set the active page background to a color or an image. A color removes the image; an image resets the color to white."),
		mcp.WithString("color", mcp.Description("Background color, e.g. #0f172a")),
		mcp.WithString("image", mcp.Description("Background image as a data URL")),
	), s.handleSetBackground)
}

// ── Handlers ───────────────────────────────────────────────

func (s *Server) handleAddPage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := s.editor.AddPage(ctx)
	return jsonResult(map[string]any{"pageId": p.ID, "pageCount": len(s.editor.Document().Pages)})
}

func (s *Server) handleDeletePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc := s.editor.Document()
	if len(doc.Pages) <= 1 {
		return nil, canvas.ErrLastPage
	}
	approved, err := s.approval.Request("delete_page",
		fmt.Sprintf("Delete page %d of %d", canvas.ActivePageIndex(doc)+1, len(doc.Pages)))
	if err != nil || !approved {
		return textResult("Action rejected by user"), nil
	}
	if err := s.editor.DeletePage(ctx); err != nil {
		return nil, fmt.Errorf("delete page: %w", err)
	}
	return jsonResult(map[string]any{"activePageId": s.editor.Document().ActivePageID})
}

func (s *Server) handleNavigatePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if id := req.GetString("pageId", ""); id != "" {
		if s.editor.Document().PageIndex(id) < 0 {
			return nil, fmt.Errorf("page %s not found", id)
		}
		s.editor.GoToPage(ctx, id)
		return s.pagePosition()
	}

	var dir canvas.Direction
	switch req.GetString("direction", "") {
	case "prev":
		dir = canvas.Prev
	case "next":
		dir = canvas.Next
	default:
		return nil, fmt.Errorf("direction must be prev or next")
	}
	if !s.editor.NavigatePage(ctx, dir) {
		return textResult("Already at the boundary; nothing changed"), nil
	}
	return s.pagePosition()
}

func (s *Server) pagePosition() (*mcp.CallToolResult, error) {
	doc := s.editor.Document()
	return jsonResult(map[string]any{
		"activePageId": doc.ActivePageID,
		"page":         canvas.ActivePageIndex(doc) + 1,
		"pageCount":    len(doc.Pages),
	})
}

func (s *Server) handleSetBackground(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	color := req.GetString("color", "")
	image := req.GetString("image", "")
	switch {
	case color != "" && image != "":
		return nil, fmt.Errorf("give either color or image, not both")
	case color != "":
		if err := s.editor.SetBackgroundColor(ctx, color); err != nil {
			return nil, err
		}
	case image != "":
		if err := s.editor.SetBackgroundImage(ctx, image); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("color or image is required")
	}
	return textResult("Background updated"), nil
}
