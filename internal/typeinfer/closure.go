package typeinfer

import "github.com/lengyijun/tip-go/internal/types"

// closer walks the solved union-find graph and materializes closed
// terms: no free unification variables, recursive positions named with
// a Mu binder. Grounded on spec.md §4.7's close(t, visited) and on the
// general shape of the teacher's multi-pass type resolution
// (internal/semantic/passes/type_resolution_pass.go resolves deferred
// type references the same way: look up what a name currently points
// to, and remember what's already being resolved to avoid looping).
type closer struct {
	uf *unionFind

	// fresh mints display-only variables, entirely separate from the
	// generator's own fresh-variable counter (spec.md §6's output
	// contract: every free Var in a closed term must be display-only,
	// never a node-bound AstVar).
	fresh *types.Gen

	// displayVars assigns one stable display variable per equivalence
	// class, keyed by the union-find key of the class's representative,
	// so the same class is named consistently everywhere it appears in
	// the output (spec.md §4.7's "fresh_vars.get_or_create").
	displayVars map[string]*types.Var
}

func newCloser(uf *unionFind) *closer {
	return &closer{uf: uf, fresh: types.NewGen(), displayVars: make(map[string]*types.Var)}
}

// close produces the closed form of t.
func (c *closer) close(t Term) Term {
	return c.closeWithPath(t, nil)
}

func (c *closer) displayVarFor(key string) *types.Var {
	if v, ok := c.displayVars[key]; ok {
		return v
	}
	v := c.fresh.FreshVar()
	c.displayVars[key] = v
	return v
}

// closeWithPath closes t, tracking the representative keys of the
// equivalence classes entered on the current descent so a genuine cycle
// back to one of them is recognized and wrapped in a Mu rather than
// looped forever.
func (c *closer) closeWithPath(t Term, path map[string]bool) Term {
	switch v := t.(type) {
	case *types.Var:
		root := c.uf.find(t)
		rk := keyOf(root)
		onCycle := rk != keyOf(t)

		if path[rk] || !onCycle {
			return c.displayVarFor(rk)
		}

		nextPath := make(map[string]bool, len(path)+1)
		for kk := range path {
			nextPath[kk] = true
		}
		nextPath[rk] = true

		body := c.closeWithPath(root, nextPath)
		disp := c.displayVarFor(rk)
		if types.Contains(body, disp) {
			return &types.Mu{Body: types.Substitute(body, disp, types.Placeholder())}
		}
		return body

	case *types.Int, *types.Absent:
		return t

	case *types.Fun:
		params := make([]Term, len(v.Params))
		for i, p := range v.Params {
			params[i] = c.closeWithPath(p, path)
		}
		return &types.Fun{Params: params, Ret: c.closeWithPath(v.Ret, path)}

	case *types.Ptr:
		return &types.Ptr{Of: c.closeWithPath(v.Of, path)}

	case *types.Record:
		fields := make(map[string]Term, len(v.Fields))
		for name, f := range v.Fields {
			fields[name] = c.closeWithPath(f, path)
		}
		return &types.Record{Fields: fields, ID: v.ID}

	case *types.Mu:
		return &types.Mu{Body: c.closeWithPath(v.Body, path)}

	default:
		panic("typeinfer: closure reached an unhandled term kind")
	}
}
