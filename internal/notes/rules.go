package notes

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/starford/algiz/internal/models"
	"github.com/starford/algiz/internal/report"
	"github.com/starford/algiz/internal/scan"
	"github.com/starford/algiz/internal/storage"
)

// readLimit caps concurrent note reads.
const readLimit = 8

// Check runs the notes consistency rules and returns the report sections in
// fixed rule order. Missing inputs (absent directory, absent index document)
// degrade to hard failures over empty fact sets; the check always completes.
func Check(ctx context.Context, store storage.Provider, cfg Config, logger *slog.Logger) []report.Section {
	inventory := report.Section{Title: "Note inventory"}
	completeness := report.Section{Title: "Index completeness"}
	targets := report.Section{Title: "Index link targets"}
	metadata := report.Section{Title: "Required metadata"}
	internal := report.Section{Title: "Internal links"}

	noteFiles, err := ListNotes(store, cfg)
	if err != nil {
		inventory.Fail("notes directory %s is missing or unreadable (%v)", cfg.Dir, err)
	} else if len(noteFiles) == 0 {
		inventory.Info("no notes found in %s", cfg.Dir)
	} else {
		inventory.OK("found %d notes in %s", len(noteFiles), cfg.Dir)
	}
	noteSet := make(map[string]struct{}, len(noteFiles))
	for _, n := range noteFiles {
		noteSet[n] = struct{}{}
	}

	// Read the index and all note documents up front; rules need the
	// complete fact set before evaluation. Reads are independent, so they
	// run concurrently; findings below still follow rule/document order.
	indexPath := path.Join(cfg.Dir, cfg.Index)
	var (
		mu       sync.Mutex
		contents = make(map[string]string, len(noteFiles)+1)
		readErrs = make(map[string]error)
	)
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(readLimit)
	for _, name := range append([]string{cfg.Index}, noteFiles...) {
		name := name
		g.Go(func() error {
			data, readErr := store.Read(path.Join(cfg.Dir, name))
			mu.Lock()
			defer mu.Unlock()
			if readErr != nil {
				readErrs[name] = readErr
				contents[name] = ""
				return nil
			}
			contents[name] = string(data)
			return nil
		})
	}
	_ = g.Wait() // reads never return errors through the group

	// Rule: every note must be linked from the index.
	if readErr, ok := readErrs[cfg.Index]; ok {
		completeness.Fail("index document %s is missing or unreadable (%v)", indexPath, readErr)
	}
	linked := LocalTargets(ExtractLinks(cfg.Index, contents[cfg.Index]))
	linkedSet := make(map[string]struct{}, len(linked))
	for _, l := range linked {
		linkedSet[l] = struct{}{}
	}
	for _, name := range noteFiles {
		if _, ok := linkedSet[name]; ok {
			completeness.OK("%s linked from %s", name, cfg.Index)
		} else {
			completeness.Fail("%s is not linked from %s", name, cfg.Index)
		}
	}

	// Rule: every index link (other than the index itself) must resolve.
	dangling := 0
	validated := 0
	for _, target := range linked {
		if target == "index.html" {
			continue
		}
		validated++
		if _, ok := noteSet[target]; !ok {
			targets.Fail("%s links to %s which does not exist", cfg.Index, target)
			dangling++
		}
	}
	if dangling == 0 {
		targets.OK("all %d index links resolve", validated)
	}

	// Rule: required metadata, index document first, then each note.
	for _, name := range append([]string{cfg.Index}, noteFiles...) {
		if name != cfg.Index {
			if readErr, ok := readErrs[name]; ok {
				metadata.Fail("%s is unreadable (%v)", name, readErr)
			}
		}
		findings := metadataFindings(name, contents[name])
		if !hasFailure(findings) {
			metadata.OK("%s: required metadata present", name)
		}
		for _, f := range findings {
			metadata.Add(f)
		}
	}

	// Rule: note-to-note links should point at existing pages. A note may
	// legitimately link to a not-yet-created page while drafting, so these
	// are warnings only.
	broken := 0
	for _, name := range noteFiles {
		for _, target := range LocalTargets(ExtractLinks(name, contents[name])) {
			if target == "index.html" {
				continue
			}
			if _, ok := noteSet[target]; !ok {
				internal.Warn("%s links to %s which does not exist", name, target)
				broken++
			}
		}
	}
	if broken == 0 {
		internal.OK("all internal note links resolve")
	}

	logger.Debug("notes check complete",
		slog.Int("notes", len(noteFiles)),
		slog.Int("index_links", len(linked)))

	return []report.Section{inventory, completeness, targets, metadata, internal}
}

// metadataFindings validates one document's required head elements. Missing
// description, canonical, title, or lang is a hard failure; missing keywords
// is advisory only.
func metadataFindings(name, text string) []models.Finding {
	var out []models.Finding
	add := func(sev models.Severity, format string, args ...any) {
		out = append(out, models.Finding{Severity: sev, Message: fmt.Sprintf(format, args...)})
	}
	if !scan.HasDescriptionMeta(text) {
		add(models.SeverityFailure, "%s: missing description meta tag", name)
	}
	if !scan.HasCanonicalLink(text) {
		add(models.SeverityFailure, "%s: missing canonical link tag", name)
	}
	if scan.Title(text) == "" {
		add(models.SeverityFailure, "%s: missing or empty title element", name)
	}
	if !scan.HasHTMLLang(text) {
		add(models.SeverityFailure, "%s: missing lang attribute on html element", name)
	}
	if !scan.HasKeywordsMeta(text) {
		add(models.SeverityWarning, "%s: missing keywords meta tag", name)
	}
	return out
}

func hasFailure(findings []models.Finding) bool {
	for _, f := range findings {
		if f.Severity == models.SeverityFailure {
			return true
		}
	}
	return false
}
