package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"proprofile/internal/config"
	mcpserver "proprofile/internal/mcp"
	"proprofile/internal/metrics"
	"proprofile/internal/secret"
	"proprofile/internal/service"
)

// autosaveEmitter persists the document whenever it or the company data
// changes, so a running desktop app can pick up edits made over MCP.
type autosaveEmitter struct {
	mu     sync.Mutex
	editor *service.EditorService
}

func (e *autosaveEmitter) Emit(ctx context.Context, event string, _ any) {
	if event != service.EventDocumentChanged && event != service.EventCompanyChanged && event != service.EventContentFilled {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editor == nil {
		return
	}
	if err := e.editor.Save(ctx); err != nil {
		log.Printf("[MCP] autosave: %v", err)
	}
}

func (e *autosaveEmitter) attach(editor *service.EditorService) {
	e.mu.Lock()
	e.editor = editor
	e.mu.Unlock()
}

// ServeMCP runs the editor as a standalone MCP server on stdin/stdout with
// no GUI. Element ids are always checked and there is nobody to approve
// destructive tools, so approvals are off.
func ServeMCP(cfg config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	emitter := &autosaveEmitter{}
	svc, err := openServices(ctx, cfg, emitter, secret.NewKeyringStore(), true)
	if err != nil {
		return err
	}
	defer svc.close(context.Background())

	svc.restoreLastDocument(ctx)
	emitter.attach(svc.editor)
	if err := svc.editor.Save(ctx); err != nil {
		log.Printf("[MCP] initial save: %v", err)
	}
	svc.settings.SaveLastDocument(svc.editor.Document().ID)

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Printf("[METRICS] %v", err)
			}
		}()
	}

	srv := mcpserver.New(ctx, mcpserver.Deps{
		Editor:  svc.editor,
		Exports: svc.exports,
		Content: svc.content,
	})

	log.Println("[MCP] Starting standalone stdio server...")
	if err := srv.ServeStdio(); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
