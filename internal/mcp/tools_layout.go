package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"proprofile/internal/layout"
)

func (s *Server) registerLayoutTools() {
	// ── generate_layout ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("generate_layout",
		mcp.WithDescription("Generate a layout from the company data. "+
			layout.MultiPageCorporate+" replaces every page with a 14-page profile; the others replace the active page only."),
		mcp.WithString("kind",
			mcp.Description("Layout to generate"),
			mcp.Enum(layout.AutoLayouts()...),
			mcp.Required(),
		),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleGenerateLayout)

	// ── apply_template ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("apply_template",
		mcp.WithDescription("Replace the active page with a fixed template filled from the company name, about and vision"),
		mcp.WithString("name",
			mcp.Description("Template name"),
			mcp.Enum(layout.Templates()...),
			mcp.Required(),
		),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleApplyTemplate)

	// ── set_language ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_language",
		mcp.WithDescription("Switch the profile language (en, id). Generated text the user has not edited is translated in place."),
		mcp.WithString("language", mcp.Description("Language code, e.g. en or id"), mcp.Required()),
	), s.handleSetLanguage)
}

// ── Handlers ───────────────────────────────────────────────

func (s *Server) handleGenerateLayout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := strings.ToUpper(req.GetString("kind", ""))
	if kind == layout.MultiPageCorporate {
		approved, err := s.approval.Request("generate_layout", "Replace all pages with a generated company profile")
		if err != nil || !approved {
			return textResult("Action rejected by user"), nil
		}
	}
	if err := s.editor.GenerateLayout(ctx, kind); err != nil {
		return nil, err
	}
	doc := s.editor.Document()
	return jsonResult(map[string]any{"layout": kind, "pageCount": len(doc.Pages), "activePageId": doc.ActivePageID})
}

func (s *Server) handleApplyTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := strings.ToUpper(req.GetString("name", ""))
	if err := s.editor.ApplyTemplate(ctx, name); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Template %s applied", name)), nil
}

func (s *Server) handleSetLanguage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lang := req.GetString("language", "")
	if lang == "" {
		return nil, fmt.Errorf("language is required")
	}
	n := s.editor.SetLanguage(ctx, lang)
	return jsonResult(map[string]any{"language": s.editor.Language(), "translated": n})
}
