package main

import (
	"context"

	"go.lsp.dev/protocol"

	"github.com/toon-format/go-toon/debug"
	"github.com/toon-format/go-toon/query"
	"github.com/toon-format/go-toon/token"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (res *protocol.Hover, err error) {
	// a provider failure answers "no result", never an error
	defer func() {
		if r := recover(); r != nil {
			debug.Logf("toon-lsp: hover failed: %v\n", r)
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
	h := query.HoverAt(doc.root, pos)
	if h == nil {
		return nil, nil
	}
	rng := toProtocolRange(h.Range)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: h.Contents,
		},
		Range: &rng,
	}, nil
}
