// Package parser turns a TIP token stream into the internal/ast tree
// the type-inference engine consumes.
//
// Grounded on the teacher's internal/parser: curToken/peekToken lookahead,
// nextToken/expectPeek/curTokenIs/peekTokenIs helpers, and a
// precedence table keyed by token type for binary operators. TIP's
// grammar (spec.md §3.1, cross-checked against
// original_source/src/ast_parser.rs's pest grammar and precedence
// climber) is tiny next to DWScript's, so this drops the teacher's
// panic-mode recovery, block-context stack, and speculative
// backtracking machinery: spec.md §1's own non-goals rule out error
// recovery for the type engine, and the same applies here — the parser
// stops at the first syntax error instead of collecting a batch.
package parser

import (
	"fmt"

	"github.com/lengyijun/tip-go/internal/ast"
	"github.com/lengyijun/tip-go/internal/lexer"
	"github.com/lengyijun/tip-go/internal/token"
)

// SyntaxError is returned for any malformed input. Position-only, no
// recovery: matches the type engine's own error contract (spec.md §7).
type SyntaxError struct {
	Pos token.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Parser is a two-token-lookahead recursive-descent parser over a
// lexer.Lexer.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token
}

// New creates a Parser over l, priming the first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses src as a complete TIP program.
func Parse(src string) (*ast.Node, error) {
	return New(lexer.New(src)).ParseProgram()
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

// expectPeek advances past peek if it matches t, otherwise fails.
func (p *Parser) expectPeek(t token.Type) error {
	if !p.peekTokenIs(t) {
		return &SyntaxError{Pos: p.peekToken.Pos, Msg: fmt.Sprintf("expected %s, got %s", t, p.peekToken.Type)}
	}
	p.nextToken()
	return nil
}

// ParseProgram parses a whole program: one or more function definitions.
func (p *Parser) ParseProgram() (*ast.Node, error) {
	pos := p.curToken.Pos
	var funcs []*ast.Node
	for !p.curTokenIs(token.EOF) {
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, fn)
		p.nextToken()
	}
	if len(funcs) == 0 {
		return nil, &SyntaxError{Pos: pos, Msg: "empty program: expected at least one function"}
	}
	return ast.NewProgram(funcs, pos), nil
}
