package ast

import "fmt"

type Kind int

const (
	DocumentKind Kind = iota
	KeyValueKind
	BlockKind
	SimpleArrayKind
	StructuredArrayKind
	DataRowKind
	ValueKind
	FieldKind
	EmptyKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		DocumentKind:        "Document",
		KeyValueKind:        "KeyValue",
		BlockKind:           "Block",
		SimpleArrayKind:     "SimpleArray",
		StructuredArrayKind: "StructuredArray",
		DataRowKind:         "DataRow",
		ValueKind:           "Value",
		FieldKind:           "Field",
		EmptyKind:           "Empty",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Document":        DocumentKind,
		"KeyValue":        KeyValueKind,
		"Block":           BlockKind,
		"SimpleArray":     SimpleArrayKind,
		"StructuredArray": StructuredArrayKind,
		"DataRow":         DataRowKind,
		"Value":           ValueKind,
		"Field":           FieldKind,
		"Empty":           EmptyKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		DocumentKind,
		KeyValueKind,
		BlockKind,
		SimpleArrayKind,
		StructuredArrayKind,
		DataRowKind,
		ValueKind,
		FieldKind,
		EmptyKind,
	}
}

// IsLeaf reports whether nodes of this kind never carry children.
func (k Kind) IsLeaf() bool {
	switch k {
	case DocumentKind, BlockKind, SimpleArrayKind, StructuredArrayKind, DataRowKind:
		return false
	default:
		return true
	}
}
