// Package parse parses TOON text into an AST.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/toon-format/go-toon/ast"
	"github.com/toon-format/go-toon/debug"
	"github.com/toon-format/go-toon/token"
)

// Parse parses d into a Document node. Malformed lines never fail the
// parse; anything unrecognized degrades to an Empty node. The returned
// error is non-nil only for internal failures and for exceeding the
// nesting depth limit, and then no tree is returned.
func Parse(d []byte, opts ...ParseOption) (doc *ast.Node, err error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", errInternal, r)
		}
	}()
	lines := strings.Split(string(d), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	p := &parser{lines: lines, opts: pOpts}
	doc = &ast.Node{Kind: ast.DocumentKind}
	i := 0
	for i < len(lines) {
		n, consumed, err := p.classify(i, 0)
		if err != nil {
			return nil, err
		}
		doc.Children = append(doc.Children, n)
		if debug.Parse() {
			debug.Logf("parsed %s at line %d\n", n.Kind, i)
		}
		if pOpts.observer != nil {
			pOpts.observer(n, i)
		}
		i += consumed
	}
	last := len(lines) - 1
	doc.Span = token.Range{
		Start: token.Pos{Line: 0, Char: 0},
		End:   token.Pos{Line: last, Char: len(lines[last])},
	}
	doc.Link()
	return doc, nil
}

func ParseString(s string, opts ...ParseOption) (*ast.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	lines []string
	opts  *parseOpts
}

// classify recognizes the construct starting at line i and returns it
// with the number of lines consumed. Pattern order matters: structured
// and simple array headers share the name[size] prefix, and a key with
// an empty value is a block header only when an indented follower
// exists.
func (p *parser) classify(i, depth int) (*ast.Node, int, error) {
	line := p.lines[i]
	if strings.TrimSpace(line) == "" {
		return p.emptyNode(i), 1, nil
	}
	if n, consumed, ok := p.structuredArray(i); ok {
		return n, consumed, nil
	}
	if n, ok := p.simpleArray(i); ok {
		return n, 1, nil
	}
	n, consumed, ok, err := p.block(i, depth)
	if err != nil {
		return nil, 0, err
	}
	if ok {
		return n, consumed, nil
	}
	if n, ok := p.keyValue(i); ok {
		return n, 1, nil
	}
	return p.emptyNode(i), 1, nil
}

// structuredArray matches `name[digits]{f1,f2,...}:` with nothing but
// whitespace after the colon, then greedily consumes the immediately
// following non-blank indented lines as data rows.
func (p *parser) structuredArray(i int) (*ast.Node, int, bool) {
	line := p.lines[i]
	ind := indentWidth(line)
	nameEnd, ok := scanName(line, ind)
	if !ok {
		return nil, 0, false
	}
	sizeStart, sizeEnd, after, ok := scanSize(line, nameEnd)
	if !ok {
		return nil, 0, false
	}
	if after >= len(line) || line[after] != '{' {
		return nil, 0, false
	}
	braceClose := strings.IndexByte(line[after:], '}')
	if braceClose < 0 {
		return nil, 0, false
	}
	braceClose += after
	j := braceClose + 1
	if j >= len(line) || line[j] != ':' {
		return nil, 0, false
	}
	if strings.TrimSpace(line[j+1:]) != "" {
		// inline value disqualifies the header form
		return nil, 0, false
	}
	size, err := strconv.Atoi(line[sizeStart:sizeEnd])
	if err != nil {
		return nil, 0, false
	}
	n := &ast.Node{
		Kind:      ast.StructuredArrayKind,
		Name:      line[ind:nameEnd],
		NameRange: token.Span(i, ind, nameEnd),
		Size:      size,
		SizeRange: token.Span(i, sizeStart, sizeEnd),
		Fields:    splitCells(i, line, after+1, braceClose, ast.FieldKind),
	}
	end := token.Pos{Line: i, Char: j + 1}
	for r := i + 1; r < len(p.lines); r++ {
		ln := p.lines[r]
		if strings.TrimSpace(ln) == "" || !hasIndent(ln) {
			break
		}
		rowStart := indentWidth(ln)
		rowEnd := contentEnd(ln)
		row := &ast.Node{
			Kind:   ast.DataRowKind,
			Span:   token.Span(r, rowStart, rowEnd),
			Values: splitCells(r, ln, rowStart, rowEnd, ast.ValueKind),
		}
		row.Link()
		n.Rows = append(n.Rows, row)
		end = row.Span.End
	}
	n.Span = token.Range{Start: token.Pos{Line: i, Char: ind}, End: end}
	n.Link()
	return n, 1 + len(n.Rows), true
}

// simpleArray matches `name[digits]:` with an optional comma-separated
// value list after the colon.
func (p *parser) simpleArray(i int) (*ast.Node, bool) {
	line := p.lines[i]
	ind := indentWidth(line)
	nameEnd, ok := scanName(line, ind)
	if !ok {
		return nil, false
	}
	sizeStart, sizeEnd, after, ok := scanSize(line, nameEnd)
	if !ok {
		return nil, false
	}
	if after >= len(line) || line[after] != ':' {
		return nil, false
	}
	size, err := strconv.Atoi(line[sizeStart:sizeEnd])
	if err != nil {
		return nil, false
	}
	ce := contentEnd(line)
	n := &ast.Node{
		Kind:      ast.SimpleArrayKind,
		Name:      line[ind:nameEnd],
		NameRange: token.Span(i, ind, nameEnd),
		Size:      size,
		SizeRange: token.Span(i, sizeStart, sizeEnd),
		Span:      token.Span(i, ind, ce),
		Values:    splitCells(i, line, after+1, ce, ast.ValueKind),
	}
	n.Link()
	return n, true
}

// block matches a header `key:` with an empty inline value whose next
// line is non-blank and strictly more indented. All contiguous following
// lines indented at least as far as the first child belong to the block;
// blank lines inside it are consumed but produce no children.
func (p *parser) block(i, depth int) (*ast.Node, int, bool, error) {
	line := p.lines[i]
	ind := indentWidth(line)
	colon := colonAt(line)
	if colon < 0 {
		return nil, 0, false, nil
	}
	key := strings.TrimSpace(line[:colon])
	if key == "" || strings.TrimSpace(line[colon+1:]) != "" {
		return nil, 0, false, nil
	}
	if i+1 >= len(p.lines) {
		return nil, 0, false, nil
	}
	next := p.lines[i+1]
	if strings.TrimSpace(next) == "" || indentWidth(next) <= ind {
		return nil, 0, false, nil
	}
	if depth+1 > p.opts.maxDepth {
		return nil, 0, false, fmt.Errorf("%w: depth %d at line %d", ErrMaxDepth, p.opts.maxDepth, i)
	}
	childIndent := indentWidth(next)
	n := &ast.Node{
		Kind:     ast.BlockKind,
		Key:      key,
		KeyRange: token.Span(i, ind, ind+len(key)),
		Colon:    colon,
	}
	j := i + 1
	for j < len(p.lines) {
		ln := p.lines[j]
		if strings.TrimSpace(ln) == "" {
			k := j
			for k < len(p.lines) && strings.TrimSpace(p.lines[k]) == "" {
				k++
			}
			if k < len(p.lines) && indentWidth(p.lines[k]) >= childIndent {
				j = k
				continue
			}
			break
		}
		if indentWidth(ln) < childIndent {
			break
		}
		child, consumed, err := p.classify(j, depth+1)
		if err != nil {
			return nil, 0, false, err
		}
		n.Children = append(n.Children, child)
		j += consumed
	}
	last := n.Children[len(n.Children)-1]
	n.Span = token.Range{Start: token.Pos{Line: i, Char: ind}, End: last.Span.End}
	n.Link()
	return n, j - i, true, nil
}

// keyValue matches any line with a colon that is not inside an unmatched
// bracket. This is the last structural pattern; it makes no further
// commitment about the line.
func (p *parser) keyValue(i int) (*ast.Node, bool) {
	line := p.lines[i]
	colon := colonAt(line)
	if colon < 0 {
		return nil, false
	}
	ind := indentWidth(line)
	start := ind
	if start > colon {
		start = colon
	}
	key := strings.TrimSpace(line[:colon])
	value := strings.TrimSpace(line[colon+1:])
	vs := colon + 1
	for vs < len(line) && (line[vs] == ' ' || line[vs] == '\t') {
		vs++
	}
	if value == "" {
		vs = colon + 1
	}
	n := &ast.Node{
		Kind:       ast.KeyValueKind,
		Key:        key,
		Value:      value,
		KeyRange:   token.Span(i, start, start+len(key)),
		ValueRange: token.Span(i, vs, vs+len(value)),
		Colon:      colon,
		Span:       token.Span(i, start, contentEnd(line)),
	}
	return n, true
}

func (p *parser) emptyNode(i int) *ast.Node {
	return &ast.Node{
		Kind: ast.EmptyKind,
		Span: token.Span(i, 0, len(p.lines[i])),
	}
}

// splitCells splits line[start:end] on commas into trimmed cell nodes of
// the given kind. Cell ranges come from the scan offsets, never from
// re-searching the cell text in the line.
func splitCells(lineNo int, line string, start, end int, kind ast.Kind) []*ast.Node {
	if start > end {
		start = end
	}
	seg := line[start:end]
	if strings.TrimSpace(seg) == "" && !strings.Contains(seg, ",") {
		return nil
	}
	var res []*ast.Node
	cellStart := start
	for i := start; i <= end; i++ {
		if i < end && line[i] != ',' {
			continue
		}
		ls, le := cellStart, i
		for ls < le && (line[ls] == ' ' || line[ls] == '\t') {
			ls++
		}
		for le > ls && (line[le-1] == ' ' || line[le-1] == '\t') {
			le--
		}
		cell := &ast.Node{
			Kind: kind,
			Span: token.Span(lineNo, ls, le),
		}
		if kind == ast.FieldKind {
			cell.Name = line[ls:le]
		} else {
			cell.Value = line[ls:le]
		}
		res = append(res, cell)
		cellStart = i + 1
	}
	return res
}

// colonAt returns the index of the first colon not preceded by an
// unmatched '[', or -1. Brackets before the colon force the array
// patterns and disqualify key-value classification.
func colonAt(line string) int {
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func indentWidth(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

func hasIndent(line string) bool {
	return len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
}

// contentEnd returns the offset just past the last non-whitespace
// character.
func contentEnd(line string) int {
	e := len(line)
	for e > 0 && (line[e-1] == ' ' || line[e-1] == '\t') {
		e--
	}
	return e
}

// scanName scans an identifier [A-Za-z_][A-Za-z0-9_]* at offset at and
// returns the offset just past it.
func scanName(line string, at int) (int, bool) {
	i := at
	if i >= len(line) || !nameStart(line[i]) {
		return 0, false
	}
	i++
	for i < len(line) && namePart(line[i]) {
		i++
	}
	return i, true
}

// scanSize scans `[digits]` at offset at, returning the digit extent and
// the offset just past the closing bracket.
func scanSize(line string, at int) (start, end, after int, ok bool) {
	i := at
	if i >= len(line) || line[i] != '[' {
		return 0, 0, 0, false
	}
	i++
	start = i
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == start || i >= len(line) || line[i] != ']' {
		return 0, 0, 0, false
	}
	return start, i, i + 1, true
}

func nameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func namePart(c byte) bool {
	return nameStart(c) || (c >= '0' && c <= '9')
}
