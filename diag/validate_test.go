package diag

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/toon-format/go-toon/ast"
	"github.com/toon-format/go-toon/parse"
	"github.com/toon-format/go-toon/token"
)

func validateString(t *testing.T, in string) []Diagnostic {
	t.Helper()
	doc, err := parse.ParseString(in)
	if err != nil {
		t.Fatalf("# doc\n%s\n# error %v", in, err)
	}
	return Validate(doc)
}

func TestValidateClean(t *testing.T) {
	in := `name: demo
tags[2]: a,b
users[1]{id,name}:
  1,alice
server:
  host: localhost
`
	if ds := validateString(t, in); len(ds) != 0 {
		t.Errorf("got %v, want none", ds)
	}
}

func TestValidateKeyValue(t *testing.T) {
	tests := []struct {
		in   string
		want []Diagnostic
	}{
		{
			in: ": v",
			want: []Diagnostic{
				errorAt(token.Span(0, 0, 3), "missing key"),
			},
		},
		{
			in: "k:",
			want: []Diagnostic{
				errorAt(token.Span(0, 0, 2), "missing value"),
			},
		},
		{
			in: ":",
			want: []Diagnostic{
				errorAt(token.Span(0, 0, 1), "missing key"),
				errorAt(token.Span(0, 0, 1), "missing value"),
			},
		},
	}
	for _, tt := range tests {
		got := validateString(t, tt.in)
		if d := cmp.Diff(tt.want, got); d != "" {
			t.Errorf("%q: (-want +got)\n%s", tt.in, d)
		}
	}
}

func TestValidateSimpleArraySize(t *testing.T) {
	tests := []struct {
		in  string
		msg string
	}{
		{
			in:  "tags[3]: a,b",
			msg: "insufficient array values: declared 3, found 2",
		},
		{
			in:  "tags[1]: a,b",
			msg: "exceeded declared array size: declared 1, found 2",
		},
		{
			in:  "tags[1]:",
			msg: "insufficient array values: declared 1, found 0",
		},
	}
	for _, tt := range tests {
		want := []Diagnostic{errorAt(token.Span(0, 5, 6), tt.msg)}
		got := validateString(t, tt.in)
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%q: (-want +got)\n%s", tt.in, d)
		}
	}
}

func TestValidateStructuredArray(t *testing.T) {
	in := `users[3]{id,name}:
  1,alice
  2,bob,extra
`
	want := []Diagnostic{
		errorAt(token.Span(0, 6, 7), "insufficient data rows: declared 3, found 2"),
		errorAt(token.Span(2, 2, 13), "exceeded field count: expected 2, found 3"),
	}
	got := validateString(t, in)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestValidateRowArityBothWays(t *testing.T) {
	in := `hikes[2]{id,name,distance}:
  1,Trail
  2,Path,9.2,extra
`
	want := []Diagnostic{
		errorAt(token.Span(1, 2, 9), "insufficient values in row: expected 3, found 2"),
		errorAt(token.Span(2, 2, 18), "exceeded field count: expected 3, found 4"),
	}
	got := validateString(t, in)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestValidateRowTooShort(t *testing.T) {
	in := "t[1]{a,b,c}:\n  1,2\n"
	want := []Diagnostic{
		errorAt(token.Span(1, 2, 5), "insufficient values in row: expected 3, found 2"),
	}
	got := validateString(t, in)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestValidateEmptyBlock(t *testing.T) {
	// the parser never produces a childless block; a built tree can
	doc := ast.FromNodes(ast.FromBlock("empty"))
	want := []Diagnostic{warningAt(token.Range{}, "empty block")}
	got := Validate(doc)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestValidateOrder(t *testing.T) {
	in := `a[2]: x
b:
  c[0]: y
`
	got := validateString(t, in)
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 diagnostics", got)
	}
	if got[0].Range.Start.Line != 0 || got[1].Range.Start.Line != 2 {
		t.Errorf("out of traversal order: %v", got)
	}
}
