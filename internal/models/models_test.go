package models

import "testing"

func TestClassifyTarget(t *testing.T) {
	cases := []struct {
		target string
		want   LinkKind
	}{
		{"a.html", LinkLocal},
		{"index.html", LinkLocal},
		{"sub/page.html", LinkLocal},
		{"../projects.html", LinkParent},
		{"..", LinkParent},
		{"/about.html", LinkExternal},
		{"https://example.org/a.html", LinkExternal},
		{"http://example.org", LinkExternal},
		{"mailto:me@example.org", LinkExternal},
		{"weird+scheme.x:path", LinkExternal},
		{"no-scheme-here.html", LinkLocal},
		{"", LinkLocal},
	}
	for _, tc := range cases {
		if got := ClassifyTarget(tc.target); got != tc.want {
			t.Errorf("ClassifyTarget(%q) = %v, want %v", tc.target, got, tc.want)
		}
	}
}
