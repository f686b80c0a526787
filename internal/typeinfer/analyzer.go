// Package typeinfer is TIP's type inference engine: the AST-directed
// constraint generator, the union-find unification solver, and the
// closure pass that turns a solved graph into closed type terms with
// recursive types named via Mu.
//
// Analyze is the package's single entry point (spec.md §4.8, §6): it
// consumes an already-parsed program (internal/ast, produced here by
// internal/parser, itself out of the core's scope per spec.md §1) and
// returns one closed type per identifier declaration and per function.
// There is no partial result and no error recovery — the first
// unsolvable constraint aborts the whole analysis (spec.md §7).
package typeinfer

import (
	"github.com/lengyijun/tip-go/internal/ast"
	"github.com/lengyijun/tip-go/internal/decl"
	"github.com/lengyijun/tip-go/internal/types"
)

// Result maps every identifier declaration (function parameter, local
// variable) and every function definition to its inferred, closed
// type.
type Result map[*ast.Node]Term

// Analyze runs the full pipeline of spec.md §4.8 over program, which
// must be the *ast.Node produced by NewProgram.
func Analyze(program *ast.Node) (Result, error) {
	fields := collectFields(program)

	declMap, err := decl.Resolve(program)
	if err != nil {
		return nil, err
	}

	g := &generator{
		uf:     newUnionFind(),
		decl:   declMap,
		fields: fields,
		gen:    types.NewGen(),
	}
	if err := g.generate(program); err != nil {
		return nil, err
	}

	c := newCloser(g.uf)
	result := make(Result)

	prog, ok := program.Kind.(*ast.Program)
	if !ok {
		return nil, &InternalInvariantError{Msg: "Analyze: root node is not a Program"}
	}
	for _, fn := range prog.Functions {
		f := fn.Kind.(*ast.Function)
		result[fn] = c.close(types.AstVar(fn))
		for _, p := range f.Params {
			result[p] = c.close(types.AstVar(p))
		}
		for _, v := range f.Vars {
			result[v] = c.close(types.AstVar(v))
		}
	}

	return result, nil
}
