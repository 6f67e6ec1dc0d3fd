package main

import (
	"context"

	"go.lsp.dev/protocol"

	"github.com/toon-format/go-toon/debug"
	"github.com/toon-format/go-toon/query"
	"github.com/toon-format/go-toon/token"
)

// Definition resolves a structured-array data cell to its field
// declaration within the same document.
func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) (res []protocol.Location, err error) {
	defer func() {
		if r := recover(); r != nil {
			debug.Logf("toon-lsp: definition failed: %v\n", r)
			res, err = nil, nil
		}
	}()
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}

	pos := token.Pos{
		Line: int(params.Position.Line),
		Char: int(params.Position.Character),
	}
	target, ok := query.DefinitionAt(doc.root, pos)
	if !ok {
		return nil, nil
	}
	return []protocol.Location{
		{
			URI:   params.TextDocument.URI,
			Range: toProtocolRange(target),
		},
	}, nil
}
