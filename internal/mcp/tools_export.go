package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"proprofile/internal/service"
)

func (s *Server) registerExportTools() {
	// ── export_pdf ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("export_pdf",
		mcp.WithDescription("Export the document to PDF. Returns where the file was written."),
		mcp.WithString("scope",
			mcp.Description("page exports the active page; all exports every page in order (default)"),
			mcp.Enum("page", "all"),
		),
	), s.handleExportPDF)
}

func (s *Server) handleExportPDF(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var (
		out service.Exported
		err error
	)
	if req.GetString("scope", "all") == "page" {
		out, err = s.exports.ExportPagePDF(ctx)
	} else {
		out, err = s.exports.ExportAllPDF(ctx)
	}
	if err != nil {
		return nil, err
	}
	return jsonResult(out)
}
