package token

import "fmt"

// Pos is a 0-based (line, character) source position.
type Pos struct {
	Line int
	Char int
}

func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Char < q.Char
}

func (p Pos) String() string {
	return fmt.Sprintf("line=%d, col=%d", p.Line, p.Char)
}

// Range is a source extent, half-open on the end bound: End is the first
// position not covered by the range.
type Range struct {
	Start Pos
	End   Pos
}

// Span is a convenience constructor for a range within a single line.
func Span(line, start, end int) Range {
	return Range{
		Start: Pos{Line: line, Char: start},
		End:   Pos{Line: line, Char: end},
	}
}

// Contains reports whether p lies in r: not before Start and strictly
// before End.
func (r Range) Contains(p Pos) bool {
	if p.Before(r.Start) {
		return false
	}
	return p.Before(r.End)
}

// Empty reports whether the range covers no characters.
func (r Range) Empty() bool {
	return r.Start == r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.Start.Line, r.Start.Char, r.End.Line, r.End.Char)
}
