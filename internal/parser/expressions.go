package parser

import (
	"strconv"

	"github.com/lengyijun/tip-go/internal/ast"
	"github.com/lengyijun/tip-go/internal/token"
)

// Precedence levels, lowest to highest. Grounded on
// original_source/src/ast_parser.rs's PREC_CLIMBER: {gt, equal} bind
// loosest, then {add, subtract}, then {multiply, divide}, all
// left-associative.
const (
	LOWEST int = iota
	EQUALITY
	SUM
	PRODUCT
)

var precedences = map[token.Type]int{
	token.GREATER:  EQUALITY,
	token.EQ_EQ:    EQUALITY,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
}

var binOps = map[token.Type]ast.Op{
	token.GREATER:  ast.Gt,
	token.EQ_EQ:    ast.Equal,
	token.PLUS:     ast.Add,
	token.MINUS:    ast.Sub,
	token.ASTERISK: ast.Mul,
	token.SLASH:    ast.Div,
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// parseExpression is a standard precedence-climbing loop: a unary-plus-
// postfix operand, then zero or more left-associative binary operators
// that bind tighter than prec.
func (p *Parser) parseExpression(prec int) (*ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for prec < p.peekPrecedence() {
		opTok := p.peekToken
		p.nextToken() // cur = operator
		p.nextToken() // cur = start of rhs
		right, err := p.parseExpression(precedences[opTok.Type])
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(binOps[opTok.Type], left, right, opTok.Pos)
	}
	return left, nil
}

// parseUnary parses one atom (including its prefix operators) and then
// wraps it in a postfix chain of field accesses and calls.
func (p *Parser) parseUnary() (*ast.Node, error) {
	core, err := p.parseUnaryCore()
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(core)
}

// parseUnaryCore parses `*`, `&`, and `alloc` prefixes and bottoms out
// at parsePrimary. It never consumes a trailing postfix chain itself —
// that's left to the caller — so `*n.p` parses as Deref(n) first, with
// the `.p` FieldAccess wrapped around the whole deref afterward: deref
// binds tighter than field access (spec.md §3.1; cross-checked against
// original_source/src/ast_parser.rs's test_deref, which asserts `*n.p`
// means `(*n).p`, not `*(n.p)`).
func (p *Parser) parseUnaryCore() (*ast.Node, error) {
	switch p.curToken.Type {
	case token.ASTERISK:
		pos := p.curToken.Pos
		p.nextToken()
		inner, err := p.parseUnaryCore()
		if err != nil {
			return nil, err
		}
		return ast.NewDeref(inner, pos), nil

	case token.AMP:
		pos := p.curToken.Pos
		if err := p.expectPeek(token.IDENT); err != nil {
			return nil, err
		}
		id := ast.NewId(p.curToken.Literal, p.curToken.Pos)
		return ast.NewRef(id, pos), nil

	case token.ALLOC:
		pos := p.curToken.Pos
		p.nextToken()
		inner, err := p.parseUnaryCore()
		if err != nil {
			return nil, err
		}
		return ast.NewAlloc(inner, pos), nil

	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() (*ast.Node, error) {
	switch p.curToken.Type {
	case token.IDENT:
		return ast.NewId(p.curToken.Literal, p.curToken.Pos), nil

	case token.INT:
		pos := p.curToken.Pos
		v, err := strconv.ParseInt(p.curToken.Literal, 10, 32)
		if err != nil {
			return nil, &SyntaxError{Pos: pos, Msg: "malformed integer literal " + p.curToken.Literal}
		}
		return ast.NewNumber(int32(v), pos), nil

	case token.INPUT:
		return ast.NewInput(p.curToken.Pos), nil

	case token.NULL:
		return ast.NewNull(p.curToken.Pos), nil

	case token.LPAREN:
		p.nextToken()
		inner, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil

	case token.LBRACE:
		return p.parseRecordLiteral()

	default:
		return nil, &SyntaxError{Pos: p.curToken.Pos, Msg: "unexpected token " + p.curToken.Type.String() + " in expression"}
	}
}

// parseRecordLiteral parses `{ name: expr, ... }`, cur positioned on
// `{` on entry.
func (p *Parser) parseRecordLiteral() (*ast.Node, error) {
	pos := p.curToken.Pos
	var fields []ast.Field

	if !p.peekTokenIs(token.RBRACE) {
		for {
			if err := p.expectPeek(token.IDENT); err != nil {
				return nil, err
			}
			name := p.curToken.Literal
			if err := p.expectPeek(token.COLON); err != nil {
				return nil, err
			}
			p.nextToken()
			expr, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.Field{Name: name, Expression: expr})

			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
				continue
			}
			break
		}
	}
	if err := p.expectPeek(token.RBRACE); err != nil {
		return nil, err
	}
	return ast.NewRecord(fields, pos), nil
}

// parsePostfix wraps base in zero or more `.field` / `(args)` suffixes,
// left-associatively: `a.b.c` is FieldAccess(FieldAccess(a,"b"),"c")
// (spec.md §3.1), and `(x)(p, x)` applies a call to whatever `x`
// evaluates to, not just a bare identifier.
func (p *Parser) parsePostfix(base *ast.Node) (*ast.Node, error) {
	for {
		switch p.peekToken.Type {
		case token.DOT:
			p.nextToken()
			if err := p.expectPeek(token.IDENT); err != nil {
				return nil, err
			}
			base = ast.NewFieldAccess(base, p.curToken.Literal, base.Pos)

		case token.LPAREN:
			p.nextToken()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			base = ast.NewFunApp(base, args, base.Pos)

		default:
			return base, nil
		}
	}
}

// parseArgs parses a call's argument list, cur positioned on `(` on
// entry; on return cur is `)`.
func (p *Parser) parseArgs() ([]*ast.Node, error) {
	var args []*ast.Node
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args, nil
	}
	p.nextToken()
	for {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}
