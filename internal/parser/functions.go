package parser

import (
	"fmt"

	"github.com/lengyijun/tip-go/internal/ast"
	"github.com/lengyijun/tip-go/internal/token"
)

// parseFunction parses `name(params) { varDecls* stmt* return expr; }`.
// Grounded on original_source/src/ast_parser.rs's Rule::function arm:
// the tail statement (always `return E;`) is popped off into Ret, and
// every `var` group is flattened into a single Vars list rather than
// kept as the nested groups the surface syntax allows (spec.md §3.1:
// "vars:[Id]", one flat list).
func (p *Parser) parseFunction() (*ast.Node, error) {
	pos := p.curToken.Pos
	if !p.curTokenIs(token.IDENT) {
		return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("expected function name, got %s", p.curToken.Type)}
	}
	name := p.curToken.Literal

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseIdList(token.RPAREN)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}

	var vars []*ast.Node
	for p.peekTokenIs(token.VAR) {
		p.nextToken() // consume 'var'
		group, err := p.parseIdList(token.SEMICOLON)
		if err != nil {
			return nil, err
		}
		vars = append(vars, group...)
	}

	var stmts []*ast.Node
	for !p.peekTokenIs(token.RETURN) {
		p.nextToken()
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if err := p.expectPeek(token.RETURN); err != nil {
		return nil, err
	}
	p.nextToken()
	ret, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RBRACE); err != nil {
		return nil, err
	}

	return ast.NewFunction(name, params, vars, stmts, ret, pos), nil
}

// parseIdList parses a comma-separated list of identifiers up to and
// including close, e.g. "(a, b, c)" or "a, b, c;". On return curToken
// is close.
func (p *Parser) parseIdList(close token.Type) ([]*ast.Node, error) {
	var ids []*ast.Node
	if p.peekTokenIs(close) {
		p.nextToken()
		return ids, nil
	}
	for {
		if err := p.expectPeek(token.IDENT); err != nil {
			return nil, err
		}
		ids = append(ids, ast.NewId(p.curToken.Literal, p.curToken.Pos))
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if err := p.expectPeek(close); err != nil {
		return nil, err
	}
	return ids, nil
}
