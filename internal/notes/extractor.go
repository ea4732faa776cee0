// Package notes implements the notes consistency check: the index document
// must link every note, every index link must resolve, each note carries the
// required metadata, and note-to-note links must point at existing pages.
package notes

import (
	"github.com/starford/algiz/internal/models"
	"github.com/starford/algiz/internal/scan"
	"github.com/starford/algiz/internal/storage"
)

// Config locates the notes collection within the site root.
type Config struct {
	// Dir is the notes directory, relative to the site root.
	Dir string
	// Index is the index document name within Dir.
	Index string
}

// ListNotes returns the note document names in Dir, in lexical order,
// excluding the index document itself.
func ListNotes(store storage.Provider, cfg Config) ([]string, error) {
	names, err := store.List(cfg.Dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, name := range names {
		if name == cfg.Index {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

// ExtractLinks returns every href-to-.html target found in text, classified
// and in document order. This is a lexical scan, not a markup parse, so
// targets inside comments or disabled code are matched too.
func ExtractLinks(source, text string) []models.LinkReference {
	targets := scan.HTMLHrefs(text)
	out := make([]models.LinkReference, 0, len(targets))
	for _, t := range targets {
		out = append(out, models.LinkReference{
			Source: source,
			Target: t,
			Kind:   models.ClassifyTarget(t),
		})
	}
	return out
}

// LocalTargets filters refs down to local-relative targets, deduplicated in
// first-seen order. Absolute, external, and parent-relative targets are
// discarded.
func LocalTargets(refs []models.LinkReference) []string {
	seen := make(map[string]struct{}, len(refs))
	var out []string
	for _, ref := range refs {
		if ref.Kind != models.LinkLocal {
			continue
		}
		if _, ok := seen[ref.Target]; ok {
			continue
		}
		seen[ref.Target] = struct{}{}
		out = append(out, ref.Target)
	}
	return out
}
