package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("build_company_profile",
		mcp.WithPromptDescription("Guide through building a complete multi-page company profile"),
		mcp.WithArgument("companyName",
			mcp.ArgumentDescription("Name of the company"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("industry",
			mcp.ArgumentDescription("Industry the company works in"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("language",
			mcp.ArgumentDescription("Profile language, en or id (default en)"),
		),
	), s.handleCompanyProfilePrompt)

	s.mcp.AddPrompt(mcp.NewPrompt("one_page_flyer",
		mcp.WithPromptDescription("Create a single-page company flyer on the active page"),
		mcp.WithArgument("companyName",
			mcp.ArgumentDescription("Name of the company"),
			mcp.RequiredArgument(),
		),
	), s.handleFlyerPrompt)
}

func (s *Server) handleCompanyProfilePrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := req.Params.Arguments["companyName"]
	industry := req.Params.Arguments["industry"]
	lang := req.Params.Arguments["language"]
	if lang == "" {
		lang = "en"
	}
	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Build a company profile for: %s", name),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf(`Build a company profile for "%s" (%s industry). Follow these steps:

1. Use set_company with at least name, industry and tagline. Add history, services, values, team and clients if you know them; anything omitted gets placeholder text.
2. Use fill_content to write about, vision and mission text.
3. Use set_language with "%s".
4. Use generate_layout with kind MULTI_PAGE_CORPORATE to build all 14 pages.
5. Review pages with get_document and navigate_page; fix any text with update_element.
6. Use export_pdf with scope "all" when the profile looks right.`, name, industry, lang),
				},
			},
		},
	}, nil
}

func (s *Server) handleFlyerPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := req.Params.Arguments["companyName"]
	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Create a flyer for: %s", name),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf(`Create a one-page flyer for "%s" on the active page. Follow these steps:

1. Use set_company with the name and a short about text.
2. Use generate_layout with kind BOLD_GEOMETRIC or COVER_MODERN.
3. Add a LOGO element with add_element if a logo is available as a data URL.
4. Adjust colors with update_element; keep the palette to #1e293b, #3b82f6 and #f59e0b.`, name),
				},
			},
		},
	}, nil
}
