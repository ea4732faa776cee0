// Package models defines the domain types for Algiz.
package models

import "strings"

// Severity classifies a finding. Failures force a non-zero exit; warnings
// are advisory and never affect the exit code.
type Severity int

const (
	SeverityFailure Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityFailure:
		return "failure"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Finding is one violated check: a fixed severity plus a human-readable
// message. Findings accumulate in rule/document evaluation order.
type Finding struct {
	Severity Severity
	Message  string
}

// Document pairs a file identifier with its raw contents. It is built once
// per run and never mutated.
type Document struct {
	Name    string
	Content string
}

// LinkKind classifies a hyperlink target.
type LinkKind int

const (
	// LinkLocal is a same-directory relative reference, the only kind
	// validated for existence.
	LinkLocal LinkKind = iota
	// LinkExternal starts with a URI scheme or a leading slash.
	LinkExternal
	// LinkParent starts with "..".
	LinkParent
)

// LinkReference is an extracted (source document, target href) pair.
type LinkReference struct {
	Source string
	Target string
	Kind   LinkKind
}

// ClassifyTarget buckets a href target into local, external, or
// parent-relative.
func ClassifyTarget(target string) LinkKind {
	if strings.HasPrefix(target, "..") {
		return LinkParent
	}
	if strings.HasPrefix(target, "/") || hasScheme(target) {
		return LinkExternal
	}
	return LinkLocal
}

// hasScheme reports whether target begins with an RFC 3986 scheme
// (ALPHA *(ALPHA / DIGIT / "+" / "-" / ".") followed by ":").
func hasScheme(target string) bool {
	for i, r := range target {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			continue
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
			continue
		case i > 0 && r == ':':
			return true
		default:
			return false
		}
	}
	return false
}
