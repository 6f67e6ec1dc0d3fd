// Package token provides source positions for TOON documents.
//
// Positions are 0-based (line, character) pairs; ranges are half-open on
// the end bound, so a range on one line with Start.Char=2, End.Char=5
// covers exactly characters 2, 3 and 4.
//
// # Related Packages
//
//   - github.com/toon-format/go-toon/ast - AST node model
//   - github.com/toon-format/go-toon/parse - Parse text to an AST
package token
