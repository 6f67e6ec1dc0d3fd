package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/toon-format/go-toon/ast"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		node *ast.Node
		want string
	}{
		{
			name: "key value",
			node: ast.FromNodes(ast.FromKeyValue("a", "b")),
			want: "a: b\n",
		},
		{
			name: "empty value",
			node: ast.FromNodes(ast.FromKeyValue("a", "")),
			want: "a:\n",
		},
		{
			name: "block",
			node: ast.FromNodes(
				ast.FromBlock("server",
					ast.FromKeyValue("host", "localhost"),
					ast.FromKeyValue("port", "8080"),
				),
			),
			want: "server:\n  host: localhost\n  port: 8080\n",
		},
		{
			name: "nested blocks",
			node: ast.FromNodes(
				ast.FromBlock("a",
					ast.FromBlock("b",
						ast.FromKeyValue("c", "1"),
					),
				),
			),
			want: "a:\n  b:\n    c: 1\n",
		},
		{
			name: "simple array",
			node: ast.FromNodes(ast.FromSimpleArray("tags", "red", "green", "blue")),
			want: "tags[3]: red,green,blue\n",
		},
		{
			name: "empty array",
			node: ast.FromNodes(ast.FromSimpleArray("tags")),
			want: "tags[0]:\n",
		},
		{
			name: "structured array",
			node: ast.FromNodes(
				ast.FromStructuredArray("users",
					[]string{"id", "name"},
					[]string{"1", "alice"},
					[]string{"2", "bob"},
				),
			),
			want: "users[2]{id,name}:\n  1,alice\n  2,bob\n",
		},
		{
			name: "empty node",
			node: ast.FromNodes(
				ast.FromKeyValue("a", "1"),
				&ast.Node{Kind: ast.EmptyKind},
				ast.FromKeyValue("b", "2"),
			),
			want: "a: 1\n\nb: 2\n",
		},
	}
	for _, tt := range tests {
		buf := bytes.NewBuffer(nil)
		if err := Encode(tt.node, buf); err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("%s: got\n%q\nwant\n%q", tt.name, got, tt.want)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	node := ast.FromNodes(
		ast.FromBlock("a", ast.FromKeyValue("b", "1")),
	)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, Indent(4)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "a:\n    b: 1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeDepth(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ast.FromKeyValue("a", "1"), buf, Depth(2)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "    a: 1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeNewline(t *testing.T) {
	node := ast.FromNodes(
		ast.FromKeyValue("a", "1"),
		ast.FromKeyValue("b", "2"),
	)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, Newline("\r\n")); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "a: 1\r\nb: 2\r\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeColorsCoverContent(t *testing.T) {
	node := ast.FromNodes(
		ast.FromStructuredArray("users",
			[]string{"id"},
			[]string{"1"},
		),
	)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, frag := range []string{"users", "id", "1"} {
		if !strings.Contains(got, frag) {
			t.Errorf("colored output lost %q: %q", frag, got)
		}
	}
}

func TestEncodeUnknownKind(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := Encode(&ast.Node{Kind: ast.Kind(99)}, buf)
	if err == nil {
		t.Fatal("no error for unknown kind")
	}
}
