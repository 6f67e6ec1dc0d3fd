package ast

import (
	"github.com/toon-format/go-toon/token"
)

// Node is a tagged-union AST node. Kind selects which payload fields are
// meaningful:
//
//	Document:        Children
//	KeyValue:        Key, Value, KeyRange, ValueRange, Colon
//	Block:           Key, KeyRange, Colon, Children
//	SimpleArray:     Name, NameRange, Size, SizeRange, Values
//	StructuredArray: Name, NameRange, Size, SizeRange, Fields, Rows
//	DataRow:         Values
//	Value:           Value
//	Field:           Name
//	Empty:           (none)
//
// Parent is a non-owning back-reference, nil for the root; ParentIndex is
// the node's index within the parent slice holding it. Both are set once,
// after the node's subtree is fully constructed. A tree is immutable
// after parsing; edits produce a wholly new tree.
type Node struct {
	Kind        Kind
	Span        token.Range
	Parent      *Node
	ParentIndex int

	Key        string
	Value      string
	KeyRange   token.Range
	ValueRange token.Range
	Colon      int

	Name      string
	NameRange token.Range
	Size      int
	SizeRange token.Range

	Children []*Node
	Fields   []*Node
	Rows     []*Node
	Values   []*Node
}

// Link sets Parent and ParentIndex on n's direct children. It is called
// exactly once per node, after the children are fully constructed and
// before n is attached to its own parent.
func (n *Node) Link() {
	for i, c := range n.Children {
		c.Parent = n
		c.ParentIndex = i
	}
	for i, f := range n.Fields {
		f.Parent = n
		f.ParentIndex = i
	}
	for i, r := range n.Rows {
		r.Parent = n
		r.ParentIndex = i
	}
	for i, v := range n.Values {
		v.Parent = n
		v.ParentIndex = i
	}
}

// kids returns the ordered children for traversal. Fields precede data
// rows in a structured array.
func (n *Node) kids() []*Node {
	switch n.Kind {
	case DocumentKind, BlockKind:
		return n.Children
	case SimpleArrayKind, DataRowKind:
		return n.Values
	case StructuredArrayKind:
		if len(n.Fields) == 0 && len(n.Rows) == 0 {
			return nil
		}
		res := make([]*Node, 0, len(n.Fields)+len(n.Rows))
		res = append(res, n.Fields...)
		res = append(res, n.Rows...)
		return res
	default:
		return nil
	}
}

func FromKeyValue(key, value string) *Node {
	return &Node{Kind: KeyValueKind, Key: key, Value: value}
}

func FromBlock(key string, children ...*Node) *Node {
	n := &Node{Kind: BlockKind, Key: key, Children: children}
	n.Link()
	return n
}

func FromSimpleArray(name string, values ...string) *Node {
	n := &Node{Kind: SimpleArrayKind, Name: name, Size: len(values)}
	for _, v := range values {
		n.Values = append(n.Values, &Node{Kind: ValueKind, Value: v})
	}
	n.Link()
	return n
}

func FromStructuredArray(name string, fields []string, rows ...[]string) *Node {
	n := &Node{Kind: StructuredArrayKind, Name: name, Size: len(rows)}
	for _, f := range fields {
		n.Fields = append(n.Fields, &Node{Kind: FieldKind, Name: f})
	}
	for _, cells := range rows {
		row := &Node{Kind: DataRowKind}
		for _, c := range cells {
			row.Values = append(row.Values, &Node{Kind: ValueKind, Value: c})
		}
		row.Link()
		n.Rows = append(n.Rows, row)
	}
	n.Link()
	return n
}

func FromNodes(children ...*Node) *Node {
	n := &Node{Kind: DocumentKind, Children: children}
	n.Link()
	return n
}
