package query

import (
	"strings"
	"testing"

	"github.com/toon-format/go-toon/ast"
	"github.com/toon-format/go-toon/parse"
	"github.com/toon-format/go-toon/token"
)

func parseDoc(t *testing.T, in string) *ast.Node {
	t.Helper()
	doc, err := parse.ParseString(in)
	if err != nil {
		t.Fatalf("# doc\n%s\n# error %v", in, err)
	}
	return doc
}

const tableDoc = `users[2]{id,name}:
  1,alice
  2,bob
`

func TestHoverKeyValue(t *testing.T) {
	doc := parseDoc(t, "a: b")
	tests := []struct {
		pos       token.Pos
		wantRange token.Range
	}{
		{token.Pos{Line: 0, Char: 0}, token.Span(0, 0, 1)},
		{token.Pos{Line: 0, Char: 3}, token.Span(0, 3, 4)},
	}
	for _, tt := range tests {
		h := HoverAt(doc, tt.pos)
		if h == nil {
			t.Fatalf("at %v: no hover", tt.pos)
		}
		want := "**Key:** `a`\n\n**Value:** `b`"
		if h.Contents != want {
			t.Errorf("at %v: contents %q, want %q", tt.pos, h.Contents, want)
		}
		if h.Range != tt.wantRange {
			t.Errorf("at %v: range %v, want %v", tt.pos, h.Range, tt.wantRange)
		}
	}
}

func TestHoverMiss(t *testing.T) {
	doc := parseDoc(t, "a: b")
	for _, pos := range []token.Pos{
		{Line: 0, Char: 1}, // the colon
		{Line: 0, Char: 4}, // past the value
		{Line: 5, Char: 0},
	} {
		if h := HoverAt(doc, pos); h != nil {
			t.Errorf("at %v: unexpected hover %q", pos, h.Contents)
		}
	}
}

func TestHoverSimpleArray(t *testing.T) {
	doc := parseDoc(t, "tags[2]: x,y")
	h := HoverAt(doc, token.Pos{Line: 0, Char: 0})
	if h == nil {
		t.Fatal("no hover on array name")
	}
	want := "**Array:** `tags`\n\n**Declared size:** 2\n\n**Values:** 2"
	if h.Contents != want {
		t.Errorf("contents %q, want %q", h.Contents, want)
	}
	if h.Range != token.Span(0, 0, 4) {
		t.Errorf("range %v", h.Range)
	}

	h = HoverAt(doc, token.Pos{Line: 0, Char: 11})
	if h == nil {
		t.Fatal("no hover on array value")
	}
	want = "**Array:** `tags`\n\n**Index:** 2"
	if h.Contents != want {
		t.Errorf("contents %q, want %q", h.Contents, want)
	}
}

func TestHoverStructuredArray(t *testing.T) {
	doc := parseDoc(t, tableDoc)

	h := HoverAt(doc, token.Pos{Line: 0, Char: 2})
	if h == nil {
		t.Fatal("no hover on table name")
	}
	if !strings.Contains(h.Contents, "**Table:** `users`") ||
		!strings.Contains(h.Contents, "**Fields:** `id`, `name`") {
		t.Errorf("contents %q", h.Contents)
	}

	h = HoverAt(doc, token.Pos{Line: 0, Char: 9})
	if h == nil {
		t.Fatal("no hover on field")
	}
	want := "**Field:** `id`\n\n**Position:** 1"
	if h.Contents != want {
		t.Errorf("contents %q, want %q", h.Contents, want)
	}

	h = HoverAt(doc, token.Pos{Line: 1, Char: 5})
	if h == nil {
		t.Fatal("no hover on cell")
	}
	want = "**Field:** `name`\n\n**Position:** 2"
	if h.Contents != want {
		t.Errorf("contents %q, want %q", h.Contents, want)
	}
	if h.Range != token.Span(1, 4, 9) {
		t.Errorf("range %v", h.Range)
	}
}

func TestHoverUnmatchedCell(t *testing.T) {
	doc := parseDoc(t, "t[1]{a}:\n  1,2\n")
	if h := HoverAt(doc, token.Pos{Line: 1, Char: 4}); h != nil {
		t.Errorf("cell past the field list hovered: %q", h.Contents)
	}
}

func TestDefinitionAt(t *testing.T) {
	doc := parseDoc(t, tableDoc)

	r, ok := DefinitionAt(doc, token.Pos{Line: 1, Char: 5})
	if !ok {
		t.Fatal("no definition for cell")
	}
	if want := token.Span(0, 12, 16); r != want {
		t.Errorf("range %v, want %v", r, want)
	}

	r, ok = DefinitionAt(doc, token.Pos{Line: 2, Char: 2})
	if !ok {
		t.Fatal("no definition for first cell of second row")
	}
	if want := token.Span(0, 9, 11); r != want {
		t.Errorf("range %v, want %v", r, want)
	}
}

func TestDefinitionMiss(t *testing.T) {
	doc := parseDoc(t, tableDoc+"\na: b\nlist[1]: x\n")
	for _, pos := range []token.Pos{
		{Line: 0, Char: 2},  // the table name
		{Line: 0, Char: 9},  // a field declaration
		{Line: 4, Char: 0},  // a plain key
		{Line: 5, Char: 9},  // a simple array value
		{Line: 9, Char: 0},  // outside the document
	} {
		if _, ok := DefinitionAt(doc, pos); ok {
			t.Errorf("at %v: unexpected definition", pos)
		}
	}
}

func TestDefinitionUnmatchedCell(t *testing.T) {
	doc := parseDoc(t, "t[1]{a}:\n  1,2\n")
	if _, ok := DefinitionAt(doc, token.Pos{Line: 1, Char: 4}); ok {
		t.Error("definition for cell past the field list")
	}
}
