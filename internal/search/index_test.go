package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeNote(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
	return path
}

func TestIndexKeepsInsertionOrder(t *testing.T) {
	idx := NewIndex()
	idx.Add("b.md", []string{"## B"})
	idx.Add("a.md", nil)
	idx.Add("b.md", []string{"## B2"})

	if diff := cmp.Diff([]string{"b.md", "a.md"}, idx.Files()); diff != "" {
		t.Fatalf("Files mismatch (-want +got):\n%s", diff)
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", idx.Len())
	}

	hs, ok := idx.Headers("b.md")
	if !ok || len(hs) != 1 || hs[0] != "## B2" {
		t.Fatalf("expected replaced headers, got %v (ok=%v)", hs, ok)
	}
	if _, ok := idx.Headers("missing.md"); ok {
		t.Fatalf("expected missing note to be unknown")
	}
}

func TestIndexCopiesHeaders(t *testing.T) {
	idx := NewIndex()
	in := []string{"## One"}
	idx.Add("n.md", in)
	in[0] = "## Changed"

	hs, _ := idx.Headers("n.md")
	if hs[0] != "## One" {
		t.Fatalf("index aliased caller slice: %v", hs)
	}
}

func TestNilIndexIsEmpty(t *testing.T) {
	var idx *Index
	if idx.Len() != 0 || idx.Files() != nil {
		t.Fatalf("expected nil index to be empty")
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		raw  string
		want Query
	}{
		{"python", Query{PathGlob: "*python*", HasPath: true, Ambiguous: true}},
		{"*:Datetime", Query{PathGlob: "*", HasPath: true, HeaderGlob: "*Datetime*", HasHeader: true}},
		{":Random", Query{HeaderGlob: "*Random*", HasHeader: true}},
		{"python:", Query{PathGlob: "*python*", HasPath: true}},
		{":", Query{}},
		{"", Query{Ambiguous: true}},
		{"log:## Standup: 10:30", Query{PathGlob: "*log*", HasPath: true, HeaderGlob: "*## Standup: 10:30*", HasHeader: true}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseQuery(tt.raw)); diff != "" {
			t.Errorf("ParseQuery(%q) mismatch (-want +got):\n%s", tt.raw, diff)
		}
	}
}
