package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/starford/algiz/internal/testutil"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatch_ChangeTriggersRerun(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	go func() {
		_ = Watch(ctx, root, 50*time.Millisecond, testutil.Logger(), func() {
			runs.Add(1)
		})
	}()

	// Give the watcher a moment to register the directory.
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<html lang=\"en\"></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		return runs.Load() >= 1
	}, "expected a re-run after a content change")
}

func TestWatch_IgnoresNonHTMLAndUnchangedContent(t *testing.T) {
	root := t.TempDir()
	content := []byte("<html></html>")
	if err := os.WriteFile(filepath.Join(root, "index.html"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	go func() {
		_ = Watch(ctx, root, 50*time.Millisecond, testutil.Logger(), func() {
			runs.Add(1)
		})
	}()

	time.Sleep(200 * time.Millisecond)

	// A non-.html file and a byte-identical rewrite should both be ignored.
	if err := os.WriteFile(filepath.Join(root, "style.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "index.html"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(500 * time.Millisecond)
	if got := runs.Load(); got != 0 {
		t.Errorf("runs = %d, want 0", got)
	}
}
