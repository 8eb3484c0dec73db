package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"proprofile/internal/domain"
	"proprofile/internal/importer"
	"proprofile/internal/service"
)

func (s *Server) registerCompanyTools() {
	// ── set_company ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_company",
		mcp.WithDescription("Replace the company data the layouts are generated from. Existing pages are not rebuilt until generate_layout is called."),
		mcp.WithString("company",
			mcp.Description(`JSON object: {name, tagline, industry, about, vision, mission, contact, directorName, directorRole, directorMessage, infrastructure, `+
				`history:[{year,event}], legalities:[string], values:[string], services:[{title,description}], advantages:[{title,description}], `+
				`teamMembers:[{name,role}], projects:[{name,description}], clients:[string]}. Omitted fields fall back to placeholder text.`),
			mcp.Required(),
		),
	), s.handleSetCompany)

	// ── import_company ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("import_company",
		mcp.WithDescription("Load company data from a JSON or field/value CSV file, or a JSON http(s) URL, and make it the generator input"),
		mcp.WithString("location", mcp.Required(), mcp.Description("File path or URL")),
		mcp.WithString("dataPath", mcp.Description("Dot-separated path to the company object inside the JSON, e.g. data.company")),
	), s.handleImportCompany)

	// ── fill_content ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("fill_content",
		mcp.WithDescription("Write company text with the AI model. Without section, fills about, vision and mission; requires name and industry."),
		mcp.WithString("section", mcp.Description("Single field to write instead"), mcp.Enum(service.Sections()...)),
	), s.handleFillContent)
}

// ── Handlers ───────────────────────────────────────────────

func (s *Server) handleSetCompany(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("company", "")
	if raw == "" {
		return nil, fmt.Errorf("company is required")
	}
	var c domain.CompanyData
	if err := parseJSON(raw, &c); err != nil {
		return nil, fmt.Errorf("invalid company JSON: %w", err)
	}
	s.editor.SetCompany(ctx, c)
	return textResult(fmt.Sprintf("Company data set for %q", c.Name)), nil
}

func (s *Server) handleImportCompany(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location := req.GetString("location", "")
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}
	c, err := importer.Load(ctx, location, importer.Options{DataPath: req.GetString("dataPath", "")})
	if err != nil {
		return nil, fmt.Errorf("import company: %w", err)
	}
	s.editor.SetCompany(ctx, c)
	return jsonResult(map[string]any{"name": c.Name, "industry": c.Industry, "clients": len(c.Clients), "services": len(c.Services)})
}

func (s *Server) handleFillContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.content == nil {
		return nil, fmt.Errorf("AI content generation is not configured")
	}
	if section := req.GetString("section", ""); section != "" {
		text, err := s.content.FillSection(ctx, section)
		if err != nil {
			return nil, err
		}
		return jsonResult(map[string]string{section: text})
	}
	g, err := s.content.Fill(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResult(g)
}
