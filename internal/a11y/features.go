// Package a11y implements a lightweight accessibility lint over one HTML
// document. It extracts structural features with lexical scanning and runs a
// fixed checklist of WCAG-flavored predicates against them.
package a11y

import "github.com/starford/algiz/internal/scan"

// Image is one img element with its alt-attribute presence flag. Only
// attribute presence matters; an empty alt value is valid.
type Image struct {
	HasAlt bool
}

// Anchor is one anchor element with its rendered text (markup stripped,
// entities decoded, whitespace trimmed).
type Anchor struct {
	Text string
}

// Features holds everything the rule set evaluates, extracted once per
// document.
type Features struct {
	HasLang     bool
	Title       string
	HasViewport bool
	Images      []Image
	Headings    []int
	Anchors     []Anchor
	Inputs      int
	Labels      int
	HasMain     bool
	HasHeader   bool
	HasSkipLink bool
}

// Extract scans one document's raw text and returns its structural features.
func Extract(text string) *Features {
	f := &Features{
		HasLang:     scan.HasHTMLLang(text),
		Title:       scan.Title(text),
		HasViewport: scan.HasViewportMeta(text),
		Headings:    scan.HeadingLevels(text),
		Inputs:      scan.CountInputs(text),
		Labels:      scan.CountLabels(text),
		HasMain:     scan.HasMainLandmark(text),
		HasHeader:   scan.HasHeaderLandmark(text),
		HasSkipLink: scan.HasSkipLink(text),
	}
	for _, hasAlt := range scan.Images(text) {
		f.Images = append(f.Images, Image{HasAlt: hasAlt})
	}
	for _, t := range scan.AnchorTexts(text) {
		f.Anchors = append(f.Anchors, Anchor{Text: t})
	}
	return f
}
