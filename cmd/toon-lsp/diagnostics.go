package main

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/toon-format/go-toon/ast"
	"github.com/toon-format/go-toon/diag"
	"github.com/toon-format/go-toon/parse"
	"github.com/toon-format/go-toon/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri      string
	content  string
	version  int32
	root     *ast.Node
	parseErr error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

// put reparses the full text and swaps the cache entry atomically. On a
// parse failure the content is kept and the tree is nil.
func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	root, err := parse.Parse([]byte(content))
	ds.docs[uri] = &document{
		uri:      uri,
		content:  content,
		version:  version,
		root:     root,
		parseErr: err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.root == nil {
		if doc.parseErr != nil {
			r := protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 1},
			}
			if line, ok := extractLine(doc.parseErr.Error()); ok {
				r.Start = protocol.Position{Line: uint32(line), Character: 0}
				r.End = protocol.Position{Line: uint32(line), Character: 1}
			}
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    r,
				Severity: protocol.DiagnosticSeverityError,
				Message:  doc.parseErr.Error(),
				Source:   diag.Source,
			})
		}
		return diagnostics
	}

	for _, d := range diag.Validate(doc.root) {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    toProtocolRange(d.Range),
			Severity: toProtocolSeverity(d.Severity),
			Message:  d.Message,
			Source:   d.Source,
		})
	}
	return diagnostics
}

// extractLine pulls the 0-based line out of parse error text of the
// form "... at line N".
func extractLine(msg string) (int, bool) {
	i := strings.LastIndex(msg, "at line ")
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(msg[i+len("at line "):]))
	if err != nil {
		return 0, false
	}
	return n, true
}

func toProtocolRange(r token.Range) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: uint32(r.Start.Line), Character: uint32(r.Start.Char)},
		End:   protocol.Position{Line: uint32(r.End.Line), Character: uint32(r.End.Char)},
	}
}

func toProtocolSeverity(s diag.Severity) protocol.DiagnosticSeverity {
	if s == diag.SeverityWarning {
		return protocol.DiagnosticSeverityWarning
	}
	return protocol.DiagnosticSeverityError
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// DidChange runs under full sync: every change event carries the
// complete document text, so the last one wins and the whole document
// is reparsed.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
