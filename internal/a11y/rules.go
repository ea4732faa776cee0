package a11y

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/starford/algiz/internal/models"
	"github.com/starford/algiz/internal/report"
)

// lowInfoPhrases are link texts that carry no information out of context.
// Matching is case-insensitive and exact.
var lowInfoPhrases = []string{"click here", "here", "read more", "more"}

// Check evaluates the accessibility checklist against one document and
// returns the report sections in checklist order. Every predicate runs
// regardless of earlier outcomes.
func Check(doc models.Document, logger *slog.Logger) []report.Section {
	name := doc.Name
	f := Extract(doc.Content)

	basics := report.Section{Title: "Document basics"}
	if f.HasLang {
		basics.OK("%s: html element has a lang attribute", name)
	} else {
		basics.Fail("%s: missing lang attribute on html element", name)
	}
	if f.Title != "" {
		basics.OK("%s: title element present", name)
	} else {
		basics.Fail("%s: missing or empty title element", name)
	}
	if f.HasViewport {
		basics.OK("%s: viewport meta tag present", name)
	} else {
		basics.Fail("%s: missing viewport meta tag", name)
	}

	images := report.Section{Title: "Images"}
	missingAlt := 0
	for i, img := range f.Images {
		if !img.HasAlt {
			images.Fail("image %d is missing an alt attribute", i+1)
			missingAlt++
		}
	}
	if missingAlt == 0 {
		images.OK("all %d images carry an alt attribute", len(f.Images))
	}

	links := report.Section{Title: "Link text"}
	emptyLinks := 0
	for i, a := range f.Anchors {
		if utf8.RuneCountInString(a.Text) < 2 {
			links.Fail("link %d has empty or too-short text", i+1)
			emptyLinks++
		}
	}
	if emptyLinks == 0 {
		links.OK("all %d links have accessible text", len(f.Anchors))
	}

	headings := report.Section{Title: "Heading structure"}
	headingIssues := 0
	if len(f.Headings) == 0 {
		headings.Info("no headings found")
	} else {
		if f.Headings[0] != 1 {
			headings.Warn("first heading is h%d, expected h1", f.Headings[0])
			headingIssues++
		}
		for i := 1; i < len(f.Headings); i++ {
			if f.Headings[i] > f.Headings[i-1]+1 {
				headings.Warn("heading level skips from h%d to h%d", f.Headings[i-1], f.Headings[i])
				headingIssues++
			}
		}
		if headingIssues == 0 {
			headings.OK("heading hierarchy is consistent")
		}
	}

	phrasing := report.Section{Title: "Link phrasing"}
	lowInfo := 0
	for i, a := range f.Anchors {
		if phrase := lowInfoPhrase(a.Text); phrase != "" {
			phrasing.Warn("link %d uses low-information text %q", i+1, phrase)
			lowInfo++
		}
	}
	if lowInfo == 0 {
		phrasing.OK("no low-information link text")
	}

	forms := report.Section{Title: "Forms"}
	if f.Inputs > 0 && f.Labels == 0 {
		forms.Warn("%d input elements but no label elements", f.Inputs)
	} else if f.Inputs > 0 {
		forms.OK("%d inputs, %d labels", f.Inputs, f.Labels)
	} else {
		forms.Info("no input elements found")
	}

	landmarks := report.Section{Title: "Landmarks"}
	if f.HasMain {
		landmarks.OK("main landmark present")
	} else {
		landmarks.Warn("no main landmark (main element or role=\"main\")")
	}
	if f.HasHeader {
		landmarks.OK("header landmark present")
	} else {
		landmarks.Warn("no header landmark (header element or role=\"banner\")")
	}
	if f.HasSkipLink {
		landmarks.OK("skip-to-content link present")
	} else {
		landmarks.Warn("no skip-to-content link")
	}

	logger.Debug("accessibility check complete",
		slog.String("document", name),
		slog.Int("images", len(f.Images)),
		slog.Int("links", len(f.Anchors)),
		slog.Int("headings", len(f.Headings)))

	return []report.Section{basics, images, links, headings, phrasing, forms, landmarks}
}

// lowInfoPhrase returns the matched phrase when text is a known
// low-information link label, or "".
func lowInfoPhrase(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for _, p := range lowInfoPhrases {
		if lowered == p {
			return p
		}
	}
	return ""
}
