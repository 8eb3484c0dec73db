package app

import (
	"context"
	"log"
	"sync"
	"time"

	"proprofile/internal/domain"
	"proprofile/internal/service"
)

const watchInterval = 2 * time.Second

type stampSource interface {
	UpdatedAt(id string) (time.Time, error)
}

type reloader interface {
	Document() *domain.Document
	Load(ctx context.Context, id string) error
}

// documentWatcher polls the database for saves of the open document made by
// another process (e.g. the standalone MCP server) and reloads the editor so
// the frontend picks them up.
type documentWatcher struct {
	ctx     context.Context
	stamps  stampSource
	editor  reloader
	emitter service.EventEmitter

	mu     sync.Mutex
	stopCh chan struct{}
}

func newDocumentWatcher(ctx context.Context, stamps stampSource, editor reloader, emitter service.EventEmitter) *documentWatcher {
	return &documentWatcher{ctx: ctx, stamps: stamps, editor: editor, emitter: emitter}
}

// Start begins the polling loop. Should be called once on app startup.
func (w *documentWatcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopCh != nil {
		return
	}
	w.stopCh = make(chan struct{})
	go w.pollLoop(w.stopCh)
}

// Stop terminates the polling loop.
func (w *documentWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopCh != nil {
		close(w.stopCh)
		w.stopCh = nil
	}
}

func (w *documentWatcher) pollLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.check()
		case <-stop:
			return
		case <-w.ctx.Done():
			return
		}
	}
}

// check reloads the open document when the stored copy is newer than the
// one in memory. Unsaved documents are ignored. It reports whether a reload
// happened.
func (w *documentWatcher) check() bool {
	doc := w.editor.Document()
	stored, err := w.stamps.UpdatedAt(doc.ID)
	if err != nil {
		return false
	}
	// SQLite round-trips timestamps with less precision than time.Now.
	if stored.Sub(doc.UpdatedAt) <= time.Millisecond {
		return false
	}
	if err := w.editor.Load(w.ctx, doc.ID); err != nil {
		log.Printf("[WATCH] reload %s: %v", doc.ID, err)
		return false
	}
	log.Printf("[WATCH] reloaded %s after external save", doc.ID)
	w.emitter.Emit(w.ctx, service.EventNotice, service.Notice{
		Level:   "info",
		Message: "Document reloaded after an external change.",
	})
	return true
}
