package watch_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"proprofile/internal/watch"
)

func TestWatcher_CoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "company.json")
	other := filepath.Join(dir, "other.json")
	if err := os.WriteFile(target, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	changed := make(chan string, 4)
	w, err := watch.New(func(path string) {
		calls.Add(1)
		changed <- path
	}, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()
	if err := w.Add(target); err != nil {
		t.Fatalf("add: %v", err)
	}

	for i := 0; i < 3; i++ {
		os.WriteFile(target, []byte(`{"name":"Acme"}`), 0o644)
	}
	os.WriteFile(other, []byte(`{}`), 0o644)

	select {
	case path := <-changed:
		want, _ := filepath.Abs(target)
		if path != want {
			t.Errorf("expected %s, got %s", want, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	time.Sleep(300 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("expected writes coalesced into one call, got %d", n)
	}
}
