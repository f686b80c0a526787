// Package diagnostics renders the engine's typed errors (internal/decl,
// internal/typeinfer, internal/parser) as source-anchored messages with
// a caret under the offending column.
//
// Grounded on the teacher's internal/errors.CompilerError: a
// position-plus-message value with a Format method that slices the
// faulting line out of the original source and underlines the column.
// This package drops the teacher's ANSI-color and multi-line-context
// options (spec.md §7's contract is one line, one position, no
// recovery — there's nothing here for a context window to add) and
// adds FromError, absent from the teacher, because this engine's
// errors come from three different packages with three different
// shapes instead of one compiler's single error type.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/lengyijun/tip-go/internal/decl"
	"github.com/lengyijun/tip-go/internal/parser"
	"github.com/lengyijun/tip-go/internal/token"
	"github.com/lengyijun/tip-go/internal/typeinfer"
)

// Diagnostic is a position-anchored error message.
type Diagnostic struct {
	Pos     token.Position
	Message string
	// HasPos is false for the rare internal-invariant errors that carry
	// no source position at all.
	HasPos bool
}

// FromError extracts a Diagnostic from any error this module produces.
// Errors it doesn't recognize are rendered message-only, with no
// position.
func FromError(err error) *Diagnostic {
	switch e := err.(type) {
	case *parser.SyntaxError:
		return &Diagnostic{Pos: e.Pos, Message: e.Msg, HasPos: true}

	case *decl.UnboundIdentifierError:
		return &Diagnostic{Pos: e.Node.Pos, Message: e.Error(), HasPos: true}

	case *typeinfer.ArityMismatchError:
		return &Diagnostic{Pos: e.Node.Pos, Message: e.Error(), HasPos: true}

	case *typeinfer.ConstructorMismatchError:
		if e.Node != nil {
			return &Diagnostic{Pos: e.Node.Pos, Message: e.Error(), HasPos: true}
		}
		return &Diagnostic{Message: e.Error()}

	case *typeinfer.FieldDomainMismatchError:
		return &Diagnostic{Message: e.Error()}

	case *typeinfer.InternalInvariantError:
		return &Diagnostic{Message: e.Error()}

	default:
		return &Diagnostic{Message: err.Error()}
	}
}

// Format renders d against source, with a line:column header, the
// faulting source line, and a caret under the column. source may be
// empty, in which case only the header and message are rendered.
func (d *Diagnostic) Format(source string) string {
	var sb strings.Builder

	if d.HasPos {
		fmt.Fprintf(&sb, "%s: %s\n", d.Pos, d.Message)
		if line := sourceLine(source, d.Pos.Line); line != "" {
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", max(d.Pos.Column-1, 0)))
			sb.WriteString("^")
		}
		return sb.String()
	}

	sb.WriteString(d.Message)
	return sb.String()
}

func sourceLine(source string, n int) string {
	if source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}
