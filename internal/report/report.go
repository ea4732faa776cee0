// Package report accumulates check results into ordered sections and prints
// the human-readable run report. Findings keep their insertion order; the
// failure/warning totals drive the process exit code.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/starford/algiz/internal/models"
)

// Level classifies one report line.
type Level int

const (
	LevelOK Level = iota
	LevelInfo
	LevelFailure
	LevelWarning
)

// Item is a single line within a section.
type Item struct {
	Level Level
	Text  string
}

// Section groups the items produced by one rule category.
type Section struct {
	Title string
	Items []Item
}

// OK appends a success line.
func (s *Section) OK(format string, args ...any) {
	s.Items = append(s.Items, Item{Level: LevelOK, Text: fmt.Sprintf(format, args...)})
}

// Info appends an informational line.
func (s *Section) Info(format string, args ...any) {
	s.Items = append(s.Items, Item{Level: LevelInfo, Text: fmt.Sprintf(format, args...)})
}

// Fail appends a hard-failure line.
func (s *Section) Fail(format string, args ...any) {
	s.Items = append(s.Items, Item{Level: LevelFailure, Text: fmt.Sprintf(format, args...)})
}

// Warn appends a soft-warning line.
func (s *Section) Warn(format string, args ...any) {
	s.Items = append(s.Items, Item{Level: LevelWarning, Text: fmt.Sprintf(format, args...)})
}

// Add appends a finding at its fixed severity.
func (s *Section) Add(f models.Finding) {
	switch f.Severity {
	case models.SeverityFailure:
		s.Fail("%s", f.Message)
	default:
		s.Warn("%s", f.Message)
	}
}

// Summary holds the run totals.
type Summary struct {
	Failures int
	Warnings int
}

// Count tallies failures and warnings across sections.
func Count(sections []Section) Summary {
	var sum Summary
	for _, sec := range sections {
		for _, it := range sec.Items {
			switch it.Level {
			case LevelFailure:
				sum.Failures++
			case LevelWarning:
				sum.Warnings++
			}
		}
	}
	return sum
}

// Reporter prints banners, numbered sections, and the summary line.
type Reporter struct {
	out io.Writer

	okColor   *color.Color
	failColor *color.Color
	warnColor *color.Color
	bold      *color.Color
}

// New creates a Reporter writing to out. Color is handled globally by the
// color package (disabled on non-TTY output).
func New(out io.Writer) *Reporter {
	return &Reporter{
		out:       out,
		okColor:   color.New(color.FgGreen),
		failColor: color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow),
		bold:      color.New(color.Bold),
	}
}

const bannerRule = "=========================================="

// Banner prints a titled banner.
func (r *Reporter) Banner(title string) {
	fmt.Fprintln(r.out, bannerRule)
	r.bold.Fprintf(r.out, " %s\n", strings.ToUpper(title))
	fmt.Fprintln(r.out, bannerRule)
}

// Print writes the numbered sections.
func (r *Reporter) Print(sections []Section) {
	for i, sec := range sections {
		fmt.Fprintf(r.out, "\n[%d] %s\n", i+1, sec.Title)
		for _, it := range sec.Items {
			switch it.Level {
			case LevelOK:
				r.okColor.Fprintf(r.out, "  ok: %s\n", it.Text)
			case LevelInfo:
				fmt.Fprintf(r.out, "  %s\n", it.Text)
			case LevelFailure:
				r.failColor.Fprintf(r.out, "  FAIL: %s\n", it.Text)
			case LevelWarning:
				r.warnColor.Fprintf(r.out, "  warn: %s\n", it.Text)
			}
		}
	}
	fmt.Fprintln(r.out)
}

// PrintSummary writes the closing banner with the run totals.
func (r *Reporter) PrintSummary(sum Summary) {
	fmt.Fprintln(r.out, bannerRule)
	if sum.Failures > 0 {
		r.failColor.Fprintf(r.out, " SUMMARY: %d failures, %d warnings\n", sum.Failures, sum.Warnings)
	} else {
		r.okColor.Fprintf(r.out, " SUMMARY: %d failures, %d warnings\n", sum.Failures, sum.Warnings)
	}
	fmt.Fprintln(r.out, bannerRule)
}
