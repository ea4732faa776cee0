package notes

import (
	"reflect"
	"testing"

	"github.com/starford/algiz/internal/models"
	"github.com/starford/algiz/internal/testutil"
)

func TestListNotes_ExcludesIndex(t *testing.T) {
	root, store := testutil.TestSite(t)
	testutil.WriteFile(t, root, "notes/a.html", "a")
	testutil.WriteFile(t, root, "notes/b.html", "b")
	testutil.WriteFile(t, root, "notes/index.html", "idx")
	testutil.WriteFile(t, root, "notes/style.css", "css")

	got, err := ListNotes(store, Config{Dir: "notes", Index: "index.html"})
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	want := []string{"a.html", "b.html"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("notes = %v, want %v", got, want)
	}
}

func TestListNotes_MissingDir(t *testing.T) {
	_, store := testutil.TestSite(t)
	if _, err := ListNotes(store, Config{Dir: "notes", Index: "index.html"}); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestExtractLinks_Classification(t *testing.T) {
	text := `<a href="a.html">A</a>
<a href="https://example.org/x.html">ext</a>
<a href="../projects.html">up</a>
<a href="/about.html">abs</a>`
	refs := ExtractLinks("index.html", text)
	if len(refs) != 4 {
		t.Fatalf("len(refs) = %d, want 4", len(refs))
	}
	wantKinds := []models.LinkKind{models.LinkLocal, models.LinkExternal, models.LinkParent, models.LinkExternal}
	for i, ref := range refs {
		if ref.Source != "index.html" {
			t.Errorf("ref %d source = %q", i, ref.Source)
		}
		if ref.Kind != wantKinds[i] {
			t.Errorf("ref %d (%q) kind = %v, want %v", i, ref.Target, ref.Kind, wantKinds[i])
		}
	}
}

func TestLocalTargets_FiltersAndDedupes(t *testing.T) {
	text := `<a href="a.html">A</a>
<a href="https://example.org/x.html">ext</a>
<a href="a.html">A again</a>
<a href="b.html">B</a>`
	got := LocalTargets(ExtractLinks("index.html", text))
	want := []string{"a.html", "b.html"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("targets = %v, want %v", got, want)
	}
}
