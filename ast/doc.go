// Package ast defines the TOON syntax tree and its traversal.
//
// A parsed document is a tree of *Node values sharing one envelope (Kind,
// Span, Parent) with per-kind payload fields. Walk performs a
// deterministic pre-order traversal, dispatching to whichever per-kind
// visitor interfaces the visitor implements.
//
// # Related Packages
//
//   - github.com/toon-format/go-toon/parse - Parse text to an AST
//   - github.com/toon-format/go-toon/encode - Encode an AST to text
//   - github.com/toon-format/go-toon/diag - Diagnostics over an AST
package ast
