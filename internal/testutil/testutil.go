// Package testutil provides shared test helpers for building temporary site
// trees.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/algiz/internal/storage"
)

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestSite creates a temporary site root with a storage.FS provider.
func TestSite(t *testing.T) (string, *storage.FS) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return root, store
}

// WriteFile writes content at rel under root, creating parent directories.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// NoteHTML renders a minimal note page carrying all required metadata and
// linking to the given targets.
func NoteHTML(title string, links ...string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<title>` + title + `</title>
<meta name="description" content="` + title + `">
<meta name="keywords" content="notes">
<link rel="canonical" href="https://example.org/notes/">
</head>
<body>
`)
	for _, l := range links {
		b.WriteString(`<p><a href="` + l + `">` + l + `</a></p>` + "\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
