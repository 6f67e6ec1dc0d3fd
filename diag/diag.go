// Package diag validates TOON syntax trees and reports structured
// diagnostics.
package diag

import (
	"fmt"

	"github.com/toon-format/go-toon/token"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("<severity %d>", int(s))
	}
}

// Source tags every diagnostic produced by this package.
const Source = "toon"

// Diagnostic is advisory output attached to the narrowest meaningful
// source range. Diagnostics are never fatal.
type Diagnostic struct {
	Severity Severity
	Range    token.Range
	Message  string
	Source   string
}

func errorAt(r token.Range, msg string) Diagnostic {
	return Diagnostic{Severity: SeverityError, Range: r, Message: msg, Source: Source}
}

func warningAt(r token.Range, msg string) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Range: r, Message: msg, Source: Source}
}
