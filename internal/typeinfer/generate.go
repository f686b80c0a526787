package typeinfer

import (
	"fmt"

	"github.com/lengyijun/tip-go/internal/ast"
	"github.com/lengyijun/tip-go/internal/decl"
	"github.com/lengyijun/tip-go/internal/types"
)

// generator is the AST-directed constraint emitter of spec.md §4.6: one
// DFS pass over the program that calls uf.union at each node according
// to TIP's typing rules. Structural nodes (Block, Program, and the
// statement wrappers) impose no constraints of their own and are
// reached only so the walker can get to their children.
type generator struct {
	uf     *unionFind
	decl   decl.Map
	fields []string
	gen    *types.Gen
}

// typeOf returns T(n): the type variable for n, routed through the
// resolver so that every use of an identifier shares its binder's
// variable (spec.md §4.6).
func (g *generator) typeOf(n *ast.Node) Term {
	if target, ok := g.decl[n]; ok {
		return types.AstVar(target)
	}
	return types.AstVar(n)
}

// padded builds a Record term whose field domain is g.fields, with the
// given overrides substituted in and every other field bound to a
// fresh variable (spec.md §4.6's "padded"). This is what lets two
// record terms mentioning different subsets of fields still unify
// pointwise: they share the same key set from the very first pass.
func (g *generator) padded(overrides map[string]Term) *types.Record {
	values := make(map[string]Term, len(g.fields))
	for _, name := range g.fields {
		if t, ok := overrides[name]; ok {
			values[name] = t
		} else {
			values[name] = g.gen.FreshVar()
		}
	}
	return g.gen.NewRecord(values)
}

func (g *generator) unify(a, b Term, node *ast.Node) error {
	return g.uf.union(a, b, node)
}

// generate runs the constraint generator over program, which must be a
// *ast.Program.
func (g *generator) generate(program *ast.Node) error {
	var firstErr error
	ast.Walk(program, func(n *ast.Node) bool {
		if firstErr != nil {
			return false
		}
		if err := g.visit(n); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	return firstErr
}

func (g *generator) visit(n *ast.Node) error {
	switch k := n.Kind.(type) {
	case *ast.Number:
		return g.unify(g.typeOf(n), &types.Int{}, n)

	case *ast.Input:
		return g.unify(g.typeOf(n), &types.Int{}, n)

	case *ast.Null:
		return g.unify(g.typeOf(n), &types.Ptr{Of: g.gen.FreshVar()}, n)

	case *ast.Alloc:
		return g.unify(g.typeOf(n), &types.Ptr{Of: g.typeOf(k.Expr)}, n)

	case *ast.Ref:
		return g.unify(g.typeOf(n), &types.Ptr{Of: g.typeOf(k.Id)}, n)

	case *ast.Deref:
		return g.unify(g.typeOf(k.Atom), &types.Ptr{Of: g.typeOf(n)}, n)

	case *ast.BinaryOp:
		if k.Op == ast.Equal {
			if err := g.unify(g.typeOf(k.Left), g.typeOf(k.Right), n); err != nil {
				return err
			}
		} else {
			if err := g.unify(g.typeOf(k.Left), &types.Int{}, n); err != nil {
				return err
			}
			if err := g.unify(g.typeOf(k.Right), &types.Int{}, n); err != nil {
				return err
			}
		}
		return g.unify(g.typeOf(n), &types.Int{}, n)

	case *ast.If:
		return g.unify(g.typeOf(k.Guard), &types.Int{}, n)

	case *ast.While:
		return g.unify(g.typeOf(k.Guard), &types.Int{}, n)

	case *ast.Output:
		return g.unify(g.typeOf(k.Expr), &types.Int{}, n)

	case *ast.ErrorStmt:
		// spec.md §9 leaves Error's typing rule an open question: the
		// source gives it none, only Output forces Int. We follow the
		// source rather than guess.
		return nil

	case *ast.Record:
		overrides := make(map[string]Term, len(k.Fields))
		for _, f := range k.Fields {
			overrides[f.Name] = g.typeOf(f.Expression)
		}
		return g.unify(g.typeOf(n), g.padded(overrides), n)

	case *ast.FieldAccess:
		rec := g.padded(map[string]Term{k.FieldName: g.typeOf(n)})
		return g.unify(g.typeOf(k.Base), rec, n)

	case *ast.FunApp:
		argVars := make([]Term, len(k.Args))
		for i := range k.Args {
			argVars[i] = g.gen.FreshVar()
		}
		retVar := g.gen.FreshVar()
		if err := g.unify(g.typeOf(k.Callee), &types.Fun{Params: argVars, Ret: retVar}, n); err != nil {
			return err
		}
		for i, a := range k.Args {
			if err := g.unify(g.typeOf(a), argVars[i], n); err != nil {
				return err
			}
		}
		return g.unify(g.typeOf(n), retVar, n)

	case *ast.Assign:
		return g.visitAssign(n, k)

	case *ast.Function:
		paramTypes := make([]Term, len(k.Params))
		for i, p := range k.Params {
			paramTypes[i] = g.typeOf(p)
		}
		if err := g.unify(g.typeOf(n), &types.Fun{Params: paramTypes, Ret: g.typeOf(k.Ret)}, n); err != nil {
			return err
		}
		if k.Name == "main" {
			return g.unify(g.typeOf(k.Ret), &types.Int{}, n)
		}
		return nil

	case *ast.Program, *ast.Block, *ast.Id, *ast.DirectFieldWrite, *ast.IndirectFieldWrite, *ast.DerefWrite:
		// Structural or handled by their enclosing Assign; no standalone
		// constraint.
		return nil

	default:
		return &InternalInvariantError{Msg: fmt.Sprintf("generator: unhandled node kind %T", n.Kind)}
	}
}

func (g *generator) visitAssign(n *ast.Node, a *ast.Assign) error {
	switch left := a.Left.Kind.(type) {
	case *ast.Id:
		return g.unify(g.typeOf(a.Left), g.typeOf(a.Right), n)

	case *ast.DirectFieldWrite:
		rec := g.padded(map[string]Term{left.Field: g.typeOf(a.Right)})
		return g.unify(g.typeOf(left.Id), rec, n)

	case *ast.IndirectFieldWrite:
		rec := g.padded(map[string]Term{left.Field: g.typeOf(a.Right)})
		return g.unify(g.typeOf(left.Expr), &types.Ptr{Of: rec}, n)

	case *ast.DerefWrite:
		return g.unify(g.typeOf(left.Expr), &types.Ptr{Of: g.typeOf(a.Right)}, n)

	default:
		return &InternalInvariantError{Msg: fmt.Sprintf("generator: unexpected assignment target %T", a.Left.Kind)}
	}
}
