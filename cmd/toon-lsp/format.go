package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"

	"github.com/toon-format/go-toon/encode"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	opts := []encode.EncodeOption{}
	if params.Options.TabSize > 0 {
		opts = append(opts, encode.Indent(int(params.Options.TabSize)))
	}
	if err := encode.Encode(doc.root, &buf, opts...); err != nil {
		return nil, nil
	}

	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// one edit replacing the entire document
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
