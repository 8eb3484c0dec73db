package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"proprofile/internal/canvas"
	"proprofile/internal/domain"
	"proprofile/internal/service"
)

// Server is the MCP server for the profile editor.
// It exposes tools, resources, and prompts so AI agents can build and edit
// company profile documents. Element ids that are not on the active page are
// always reported as errors, whatever the editor's own strictness.
type Server struct {
	mcp      *server.MCPServer
	approval *ApprovalQueue

	httpMu sync.Mutex
	http   *server.StreamableHTTPServer

	placer *Placer

	editor  *service.EditorService
	exports *service.ExportService
	content *service.ContentService
}

// Deps holds all dependencies passed from the App layer to the MCP server.
type Deps struct {
	Emitter EventEmitter
	Editor  *service.EditorService
	Exports *service.ExportService // optional; export_pdf is omitted without it
	Content *service.ContentService
	// RequireApproval routes destructive tools through the user. The
	// standalone server has nobody to ask and leaves it off.
	RequireApproval bool
}

// New creates and configures a new MCP server with all tools and resources.
func New(ctx context.Context, deps Deps) *Server {
	s := &Server{
		approval: NewApprovalQueue(ctx, deps.Emitter, deps.RequireApproval),
		placer:   NewPlacer(),
		editor:   deps.Editor,
		exports:  deps.Exports,
		content:  deps.Content,
	}

	s.mcp = server.NewMCPServer(
		"proprofile-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerDocumentTools()
	s.registerElementTools()
	s.registerPageTools()
	s.registerLayoutTools()
	s.registerCompanyTools()
	if s.exports != nil {
		s.registerExportTools()
	}
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	log.Println("[MCP] Starting stdio server...")
	return server.ServeStdio(s.mcp)
}

// ServeHTTP serves MCP over streamable HTTP on addr until Shutdown.
func (s *Server) ServeHTTP(addr string) error {
	s.httpMu.Lock()
	s.http = server.NewStreamableHTTPServer(s.mcp)
	srv := s.http
	s.httpMu.Unlock()
	log.Printf("[MCP] Serving HTTP on %s", addr)
	return srv.Start(addr)
}

// Shutdown stops the HTTP transport if it is running.
func (s *Server) Shutdown(ctx context.Context) error {
	s.httpMu.Lock()
	srv := s.http
	s.httpMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Approve forwards a user approval to the approval queue.
func (s *Server) Approve(actionID string) {
	s.approval.Approve(actionID)
}

// PendingApprovals lists destructive calls still waiting for the user.
func (s *Server) PendingApprovals() []PendingAction {
	return s.approval.Pending()
}

// Reject forwards a user rejection to the approval queue.
func (s *Server) Reject(actionID string) {
	s.approval.Reject(actionID)
}

// ── Helpers ────────────────────────────────────────────────

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

func boolPtr(v bool) *bool { return &v }

func getFloat(args map[string]any, key string, fallback float64) float64 {
	if v, ok := args[key].(float64); ok {
		return v
	}
	return fallback
}

// requireElement returns the element with the id in args["id"] from the
// active page.
func (s *Server) requireElement(args map[string]any) (domain.Element, error) {
	id, _ := args["id"].(string)
	if id == "" {
		return domain.Element{}, fmt.Errorf("id is required")
	}
	p, err := s.editor.ActivePage()
	if err != nil {
		return domain.Element{}, err
	}
	if el := canvas.FindElement(&p, id); el != nil {
		return *el, nil
	}
	return domain.Element{}, fmt.Errorf("%w: %s", canvas.ErrElementNotFound, id)
}
