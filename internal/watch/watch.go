// Package watch re-runs a callback when watched files are written. Editors
// often save in several steps (truncate, write, rename), so events for a
// file are coalesced over a short quiet period.
package watch

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultQuiet is how long a file must stay untouched before the callback runs.
const DefaultQuiet = 200 * time.Millisecond

// ChangedHandler is called with the absolute path of a changed file.
type ChangedHandler func(path string)

// Watcher watches individual files through their parent directories.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange ChangedHandler
	quiet    time.Duration

	mu       sync.Mutex
	watching map[string]bool
	timers   map[string]*time.Timer
	done     chan struct{}
}

// New starts a watcher. Call Close to stop it.
func New(onChange ChangedHandler, quiet time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		quiet:    quiet,
		watching: make(map[string]bool),
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Add starts watching path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.watching[abs] = true
	w.mu.Unlock()

	// Watch the directory so renames over the file are seen too
	return w.watcher.Add(filepath.Dir(abs))
}

// Close stops the watcher and cancels pending callbacks.
func (w *Watcher) Close() error {
	w.mu.Lock()
	for _, t := range w.timers {
		t.Stop()
	}
	w.timers = map[string]*time.Timer{}
	w.mu.Unlock()
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, _ := filepath.Abs(event.Name)
			w.schedule(abs)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[WATCH] watcher error: %v", err)
		}
	}
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.watching[path] {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Reset(w.quiet)
		return
	}
	w.timers[path] = time.AfterFunc(w.quiet, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.onChange(path)
	})
}
