package ast

// Visitor is the capability set consumed by Walk. A visitor implements
// any subset of the per-kind interfaces below; kinds with no matching
// method are traversed but produce no callback.
type Visitor interface{}

type DocumentVisitor interface{ VisitDocument(*Node) }
type KeyValueVisitor interface{ VisitKeyValue(*Node) }
type BlockVisitor interface{ VisitBlock(*Node) }
type SimpleArrayVisitor interface{ VisitSimpleArray(*Node) }
type StructuredArrayVisitor interface{ VisitStructuredArray(*Node) }
type DataRowVisitor interface{ VisitDataRow(*Node) }
type ValueVisitor interface{ VisitValue(*Node) }
type FieldVisitor interface{ VisitField(*Node) }
type EmptyVisitor interface{ VisitEmpty(*Node) }

type walker struct {
	v       Visitor
	observe func(*Node, int)
}

type WalkOption func(*walker)

// WalkObserver registers a callback invoked for every node before kind
// dispatch, with the node's depth (0 for the root).
func WalkObserver(f func(n *Node, depth int)) WalkOption {
	return func(w *walker) { w.observe = f }
}

// Walk traverses the tree rooted at n depth-first and pre-order, visiting
// every node exactly once: parent before children, fields before data
// rows, children in source order.
func Walk(n *Node, v Visitor, opts ...WalkOption) {
	w := &walker{v: v}
	for _, opt := range opts {
		opt(w)
	}
	w.walk(n, 0)
}

func (w *walker) walk(n *Node, depth int) {
	if n == nil {
		return
	}
	if w.observe != nil {
		w.observe(n, depth)
	}
	w.dispatch(n)
	for _, c := range n.kids() {
		w.walk(c, depth+1)
	}
}

func (w *walker) dispatch(n *Node) {
	switch n.Kind {
	case DocumentKind:
		if v, ok := w.v.(DocumentVisitor); ok {
			v.VisitDocument(n)
		}
	case KeyValueKind:
		if v, ok := w.v.(KeyValueVisitor); ok {
			v.VisitKeyValue(n)
		}
	case BlockKind:
		if v, ok := w.v.(BlockVisitor); ok {
			v.VisitBlock(n)
		}
	case SimpleArrayKind:
		if v, ok := w.v.(SimpleArrayVisitor); ok {
			v.VisitSimpleArray(n)
		}
	case StructuredArrayKind:
		if v, ok := w.v.(StructuredArrayVisitor); ok {
			v.VisitStructuredArray(n)
		}
	case DataRowKind:
		if v, ok := w.v.(DataRowVisitor); ok {
			v.VisitDataRow(n)
		}
	case ValueKind:
		if v, ok := w.v.(ValueVisitor); ok {
			v.VisitValue(n)
		}
	case FieldKind:
		if v, ok := w.v.(FieldVisitor); ok {
			v.VisitField(n)
		}
	case EmptyKind:
		if v, ok := w.v.(EmptyVisitor); ok {
			v.VisitEmpty(n)
		}
	}
}
