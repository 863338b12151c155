package render

import (
	"go/token"
	"testing"
)

func TestParseLoc(t *testing.T) {
	const content = "line one\nline two\nthree\nfour line\n"

	fset := token.NewFileSet()
	f := fset.AddFile("path/to/file.ext", -1, len(content))
	f.SetLinesForContent([]byte(content))

	t.Run("well-formed coordinate resolves", func(t *testing.T) {
		pos := ParseLoc(fset, "path/to/file.ext:4:2")
		if !pos.IsValid() {
			t.Fatal("expected a valid position")
		}

		p := fset.Position(pos)
		if p.Line != 4 || p.Column != 2 {
			t.Fatalf("expected 4:2, got %d:%d", p.Line, p.Column)
		}
	})

	bads := []struct {
		name string
		loc  string
	}{
		{name: "missing column segment", loc: "path/to/file.ext:4"},
		{name: "empty string", loc: ""},
		{name: "non-numeric line", loc: "path/to/file.ext:a:2"},
		{name: "non-numeric column", loc: "path/to/file.ext:4:b"},
		{name: "zero line", loc: "path/to/file.ext:0:1"},
		{name: "zero column", loc: "path/to/file.ext:1:0"},
		{name: "unknown file", loc: "other.ext:1:1"},
		{name: "line past end of file", loc: "path/to/file.ext:99:1"},
		{name: "column past end of line", loc: "path/to/file.ext:2:80"},
	}

	for _, tt := range bads {
		t.Run(tt.name, func(t *testing.T) {
			if pos := ParseLoc(fset, tt.loc); pos.IsValid() {
				t.Fatalf("expected no position for %q, got %s", tt.loc, fset.Position(pos))
			}
		})
	}
}
