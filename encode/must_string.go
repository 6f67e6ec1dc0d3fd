package encode

import (
	"bytes"

	"github.com/toon-format/go-toon/ast"
)

func MustString(node *ast.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
