package parse

import "github.com/toon-format/go-toon/ast"

// DefaultMaxDepth bounds block nesting so pathological input cannot
// exhaust the stack.
const DefaultMaxDepth = 64

type parseOpts struct {
	maxDepth int
	observer func(*ast.Node, int)
}

type ParseOption func(*parseOpts)

// ParseMaxDepth overrides the block nesting limit.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// ParseObserver registers a callback invoked for each top-level node as
// it is produced, with the line it started on. This is the trace channel
// for consumers that want parse progress; there is no other side
// channel.
func ParseObserver(f func(n *ast.Node, line int)) ParseOption {
	return func(o *parseOpts) { o.observer = f }
}
