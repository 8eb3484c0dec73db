package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"proprofile/internal/config"
	mcpserver "proprofile/internal/mcp"
	"proprofile/internal/metrics"
	"proprofile/internal/secret"
	"proprofile/internal/service"
	"proprofile/internal/storage"
)

// App is the main Wails application struct.
// All exported methods are available as Wails bindings; they are thin
// delegates to the services.
type App struct {
	ctx context.Context
	cfg config.Config

	svc     *services
	mcp     *mcpserver.Server
	watcher *documentWatcher
}

// New creates a new App.
func New(cfg config.Config) *App {
	return &App{cfg: cfg}
}

// Emit implements service.EventEmitter over the Wails event bus.
func (a *App) Emit(_ context.Context, event string, data any) {
	if a.ctx != nil {
		wailsRuntime.EventsEmit(a.ctx, event, data)
	}
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	svc, err := openServices(ctx, a.cfg, a, secret.NewKeyringStore(), false)
	if err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to open database: %v", err)
		return
	}
	a.svc = svc
	svc.restoreLastDocument(ctx)

	a.watcher = newDocumentWatcher(ctx, svc.docs, svc.editor, a)
	a.watcher.Start()

	if a.cfg.MCPAddr != "" {
		a.mcp = mcpserver.New(ctx, mcpserver.Deps{
			Emitter:         a,
			Editor:          svc.editor,
			Exports:         svc.exports,
			Content:         svc.content,
			RequireApproval: true,
		})
		go func() {
			if err := a.mcp.ServeHTTP(a.cfg.MCPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				wailsRuntime.LogErrorf(ctx, "MCP server: %v", err)
			}
		}()
	}
	if a.cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, a.cfg.MetricsAddr); err != nil {
				wailsRuntime.LogErrorf(ctx, "metrics server: %v", err)
			}
		}()
	}
	wailsRuntime.LogInfof(ctx, "ProProfile started (data: %s)", a.cfg.DataDir)
}

// Shutdown is called when the app is closing.
func (a *App) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.mcp != nil {
		a.mcp.Shutdown(ctx)
	}
	if a.svc != nil {
		a.svc.close(ctx)
	}
}

// WindowSize returns the saved window size for main to size the window.
func WindowSize(cfg config.Config) service.WindowSize {
	db, err := storage.New(cfg.DBPath())
	if err != nil {
		return service.NewSettingsService(nil).LoadWindowSize()
	}
	defer db.Close()
	return service.NewSettingsService(storage.NewSettingsStore(db)).LoadWindowSize()
}

// SaveWindowSize persists the window size reported by the frontend.
func (a *App) SaveWindowSize(width, height int) error {
	return a.svc.settings.SaveWindowSize(width, height)
}

// ============================================================
// MCP approvals
// ============================================================

// ApproveMCPAction approves a pending destructive MCP tool call.
func (a *App) ApproveMCPAction(id string) {
	if a.mcp != nil {
		a.mcp.Approve(id)
	}
}

// RejectMCPAction rejects a pending destructive MCP tool call.
func (a *App) RejectMCPAction(id string) {
	if a.mcp != nil {
		a.mcp.Reject(id)
	}
}

// PendingMCPActions lists destructive MCP calls still awaiting an answer.
func (a *App) PendingMCPActions() []mcpserver.PendingAction {
	if a.mcp == nil {
		return []mcpserver.PendingAction{}
	}
	return a.mcp.PendingApprovals()
}
