package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"proprofile/internal/layout"
)

const (
	documentURI = "proprofile://document"
	companyURI  = "proprofile://company"
	layoutsURI  = "proprofile://layouts"
)

func (s *Server) registerResources() {
	// ── proprofile://document ──────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		documentURI,
		"Open Document",
		mcp.WithResourceDescription("Pages and elements of the document being edited"),
		mcp.WithMIMEType("application/json"),
	), s.handleDocumentResource)

	// ── proprofile://company ───────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		companyURI,
		"Company Data",
		mcp.WithResourceDescription("Data the layouts are generated from"),
		mcp.WithMIMEType("application/json"),
	), s.handleCompanyResource)

	// ── proprofile://layouts ───────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		layoutsURI,
		"Available Layouts",
		mcp.WithMIMEType("application/json"),
	), s.handleLayoutsResource)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleDocumentResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(documentURI, s.documentView(false))
}

func (s *Server) handleCompanyResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(companyURI, s.editor.Company())
}

func (s *Server) handleLayoutsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(layoutsURI, map[string][]string{
		"layouts":   layout.AutoLayouts(),
		"templates": layout.Templates(),
	})
}
