package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"proprofile/internal/canvas"
	"proprofile/internal/domain"
	"proprofile/internal/render"
)

// documentView is the agent-facing summary: every page with its elements in
// paint order, so the last element listed is the one on top.
type documentView struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Language     string      `json:"language"`
	ActivePageID string      `json:"activePageId"`
	ActivePage   int         `json:"activePage"`
	SelectedID   string      `json:"selectedId"`
	Pages        []pageView  `json:"pages"`
	Company      companyView `json:"company"`
}

type pageView struct {
	ID              string           `json:"id"`
	BackgroundColor string           `json:"backgroundColor"`
	HasImage        bool             `json:"hasBackgroundImage"`
	Elements        []domain.Element `json:"elements"`
}

type companyView struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

func (s *Server) registerDocumentTools() {
	// ── get_document ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_document",
		mcp.WithDescription("Get the open document: pages, elements in paint order, active page and selection. Image data is elided."),
		mcp.WithBoolean("activeOnly", mcp.Description("Only include the active page")),
	), s.handleGetDocument)

	// ── list_documents ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_documents",
		mcp.WithDescription("List saved documents with their page counts"),
	), s.handleListDocuments)

	// ── save_document ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("save_document",
		mcp.WithDescription("Save the open document and its company data"),
		mcp.WithString("name", mcp.Description("Rename the document before saving")),
	), s.handleSaveDocument)

	// ── open_document ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("open_document",
		mcp.WithDescription("🛑 DESTRUCTIVE: Replace the open document with a saved one. Unsaved changes are lost."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Document ID from list_documents")),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleOpenDocument)

	// ── new_document ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("new_document",
		mcp.WithDescription("🛑 DESTRUCTIVE: Start a new one-page document. Unsaved changes are lost."),
		mcp.WithString("name", mcp.Description("Document name")),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleNewDocument)
}

func (s *Server) handleListDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := s.editor.ListDocuments()
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return jsonResult(docs)
}

func (s *Server) handleSaveDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if name := strings.TrimSpace(req.GetString("name", "")); name != "" {
		s.editor.Rename(ctx, name)
	}
	if err := s.editor.Save(ctx); err != nil {
		return nil, err
	}
	doc := s.editor.Document()
	return jsonResult(map[string]any{"id": doc.ID, "name": doc.Name, "updatedAt": doc.UpdatedAt})
}

func (s *Server) handleOpenDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	approved, err := s.approval.Request("open_document", fmt.Sprintf("Open document %s, discarding unsaved changes", id))
	if err != nil || !approved {
		return textResult("Action rejected by user"), nil
	}
	if err := s.editor.Load(ctx, id); err != nil {
		return nil, err
	}
	return jsonResult(s.documentView(true))
}

func (s *Server) handleNewDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := strings.TrimSpace(req.GetString("name", ""))
	if name == "" {
		name = "Untitled"
	}
	approved, err := s.approval.Request("new_document", fmt.Sprintf("Start new document %q, discarding unsaved changes", name))
	if err != nil || !approved {
		return textResult("Action rejected by user"), nil
	}
	doc := s.editor.NewDocument(ctx, name)
	return jsonResult(map[string]any{"id": doc.ID, "name": doc.Name, "activePageId": doc.ActivePageID})
}

func (s *Server) handleGetDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.documentView(req.GetBool("activeOnly", false)))
}

func (s *Server) documentView(activeOnly bool) documentView {
	doc := s.editor.Document()
	c := s.editor.Company()
	v := documentView{
		ID:           doc.ID,
		Name:         doc.Name,
		Language:     doc.Language,
		ActivePageID: doc.ActivePageID,
		ActivePage:   canvas.ActivePageIndex(doc) + 1,
		SelectedID:   doc.SelectedID,
		Company:      companyView{Name: c.Name, Industry: c.Industry},
	}
	for _, p := range doc.Pages {
		if activeOnly && p.ID != doc.ActivePageID {
			continue
		}
		els := render.PaintOrder(p.Elements)
		for i := range els {
			if els[i].Type == domain.ElementTypeImage || els[i].Type == domain.ElementTypeLogo {
				if els[i].Content != "" {
					els[i].Content = "(image data)"
				}
			}
		}
		v.Pages = append(v.Pages, pageView{
			ID:              p.ID,
			BackgroundColor: p.BackgroundColor,
			HasImage:        p.BackgroundImage != "",
			Elements:        els,
		})
	}
	return v
}
