package encode

type EncodeOption func(*EncState)

// Indent sets the indent unit width in spaces (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}

// Newline sets the line ending (default "\n").
func Newline(s string) EncodeOption {
	return func(es *EncState) {
		if s != "" {
			es.newline = s
		}
	}
}

// Depth sets the starting indentation level.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeColors enables ANSI-colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
