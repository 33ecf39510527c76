package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"lokey/internal/logging"
	"lokey/internal/parser"
)

func TestDebouncerCoalesces(t *testing.T) {
	var mu sync.Mutex
	count := 0

	d := NewDebouncer(30 * time.Millisecond)
	for i := 0; i < 5; i++ {
		d.Trigger(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Errorf("debounced function ran %d times, want 1", count)
	}
}

func TestDebouncerCancel(t *testing.T) {
	ran := false
	d := NewDebouncer(20 * time.Millisecond)
	d.Trigger(func() { ran = true })
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	if ran {
		t.Error("cancelled function should not run")
	}
}

func TestDebouncerFlush(t *testing.T) {
	ran := false
	d := NewDebouncer(time.Hour)
	d.Trigger(func() { ran = true })
	d.Flush()

	if !ran {
		t.Error("Flush should run the pending function immediately")
	}
}

func TestWatcherDetectsChanges(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "locales")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	enPath := filepath.Join(dir, "en.json")
	if err := os.WriteFile(enPath, []byte(`{"k": "v"}`), 0644); err != nil {
		t.Fatal(err)
	}

	events := make(chan []Event, 1)
	w := New(Config{
		Root:         root,
		LocalePaths:  []string{"locales"},
		Registry:     parser.Default(),
		Debounce:     20 * time.Millisecond,
		PollInterval: 20 * time.Millisecond,
	}, logging.NewDiscard(), func(batch []Event) {
		select {
		case events <- batch:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	// Modify with a bumped mtime so the poll notices.
	if err := os.WriteFile(enPath, []byte(`{"k": "v2"}`), 0644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(enPath, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case batch := <-events:
		if len(batch) == 0 {
			t.Fatal("empty event batch")
		}
		if batch[0].Type != EventModify {
			t.Errorf("event type = %v, want modify", batch[0].Type)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change event within timeout")
	}
}

func TestWatcherIgnoresUnsupportedFiles(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "locales")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	events := make(chan []Event, 1)
	w := New(Config{
		Root:         root,
		LocalePaths:  []string{"locales"},
		Registry:     parser.Default(),
		Debounce:     20 * time.Millisecond,
		PollInterval: 20 * time.Millisecond,
	}, logging.NewDiscard(), func(batch []Event) {
		select {
		case events <- batch:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case batch := <-events:
		t.Errorf("unexpected events for unsupported file: %+v", batch)
	case <-time.After(200 * time.Millisecond):
	}
}
