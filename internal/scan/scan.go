// Package scan provides lexical extraction of structural facts from raw HTML
// text. It deliberately uses pattern matching rather than a markup parser:
// the inputs are small hand-authored documents and best-effort matching is
// acceptable, including matches inside comments or disabled code.
package scan

import (
	"html"
	"regexp"
	"strings"
)

var (
	hrefHTMLRe  = regexp.MustCompile(`(?i)href\s*=\s*["']([^"']+\.html)["']`)
	htmlLangRe  = regexp.MustCompile(`(?i)<html[^>]*\slang\s*=`)
	titleRe     = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	descMetaRe  = metaNamedRe("description")
	keywordsRe  = metaNamedRe("keywords")
	viewportRe  = metaNamedRe("viewport")
	canonicalRe = regexp.MustCompile(`(?i)<link\b[^>]*\brel\s*=\s*["']canonical["'][^>]*>`)
	imgRe       = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	altAttrRe   = regexp.MustCompile(`(?i)\balt\s*=`)
	headingRe   = regexp.MustCompile(`(?i)<h([1-6])\b`)
	anchorRe    = regexp.MustCompile(`(?is)<a\b[^>]*>(.*?)</a>`)
	inputRe     = regexp.MustCompile(`(?i)<input\b`)
	labelRe     = regexp.MustCompile(`(?i)<label\b`)
	mainRe      = regexp.MustCompile(`(?i)<main\b|\brole\s*=\s*["']main["']`)
	bannerRe    = regexp.MustCompile(`(?i)<header\b|\brole\s*=\s*["']banner["']`)
	skipLinkRe  = regexp.MustCompile(`(?i)skip\s+to\s+(main\s+)?content`)
	tagRe       = regexp.MustCompile(`(?s)<[^>]*>`)
)

// HTMLHrefs returns, in document order, every quoted href attribute value
// ending in .html found anywhere in the text.
func HTMLHrefs(text string) []string {
	matches := hrefHTMLRe.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// HasHTMLLang reports whether an html element carries a lang attribute.
func HasHTMLLang(text string) bool {
	return htmlLangRe.MatchString(text)
}

// Title returns the trimmed content of the first title element, or "" when
// the element is absent or empty.
func Title(text string) string {
	m := titleRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// metaNamedRe builds a matcher for a meta tag with the given name attribute.
func metaNamedRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)<meta\b[^>]*\bname\s*=\s*["']` + regexp.QuoteMeta(name) + `["'][^>]*>`)
}

// HasDescriptionMeta reports whether a description meta tag is present.
func HasDescriptionMeta(text string) bool {
	return descMetaRe.MatchString(text)
}

// HasKeywordsMeta reports whether a keywords meta tag is present.
func HasKeywordsMeta(text string) bool {
	return keywordsRe.MatchString(text)
}

// HasViewportMeta reports whether a viewport meta tag is present.
func HasViewportMeta(text string) bool {
	return viewportRe.MatchString(text)
}

// HasCanonicalLink reports whether a rel="canonical" link tag is present.
func HasCanonicalLink(text string) bool {
	return canonicalRe.MatchString(text)
}

// Images returns, per img tag in document order, whether the tag carries an
// alt attribute. Only attribute presence is checked; the value may be empty.
func Images(text string) []bool {
	tags := imgRe.FindAllString(text, -1)
	out := make([]bool, 0, len(tags))
	for _, tag := range tags {
		out = append(out, altAttrRe.MatchString(tag))
	}
	return out
}

// HeadingLevels returns the heading levels (1-6) in document order.
func HeadingLevels(text string) []int {
	matches := headingRe.FindAllStringSubmatch(text, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, int(m[1][0]-'0'))
	}
	return out
}

// AnchorTexts returns the rendered text of each anchor element in document
// order: inner markup stripped, entities decoded, whitespace trimmed.
func AnchorTexts(text string) []string {
	matches := anchorRe.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, StripTags(m[1]))
	}
	return out
}

// StripTags removes markup from a fragment and returns the decoded, trimmed
// text content.
func StripTags(fragment string) string {
	return strings.TrimSpace(html.UnescapeString(tagRe.ReplaceAllString(fragment, "")))
}

// CountInputs returns the number of input elements.
func CountInputs(text string) int {
	return len(inputRe.FindAllString(text, -1))
}

// CountLabels returns the number of label elements.
func CountLabels(text string) int {
	return len(labelRe.FindAllString(text, -1))
}

// HasMainLandmark reports a main element or role="main".
func HasMainLandmark(text string) bool {
	return mainRe.MatchString(text)
}

// HasHeaderLandmark reports a header element or role="banner".
func HasHeaderLandmark(text string) bool {
	return bannerRe.MatchString(text)
}

// HasSkipLink reports a "skip to content"-style phrase anywhere in the text.
func HasSkipLink(text string) bool {
	return skipLinkRe.MatchString(text)
}
