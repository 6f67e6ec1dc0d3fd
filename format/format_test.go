package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"t", ToonFormat},
		{"toon", ToonFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("%q: got %v, %v", tt.in, got, err)
		}
	}
	for _, in := range []string{"", "xml", "TOON"} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("%q: got %v, want ErrBadFormat", in, err)
		}
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range []Format{ToonFormat, JSONFormat, YAMLFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil || g != f {
			t.Errorf("%s: round trip gave %v, %v", f, g, err)
		}
	}
}

func TestSuffix(t *testing.T) {
	if ToonFormat.Suffix() != ".toon" || JSONFormat.Suffix() != ".json" || YAMLFormat.Suffix() != ".yaml" {
		t.Error("bad suffixes")
	}
}
