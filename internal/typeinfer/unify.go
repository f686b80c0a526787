package typeinfer

import (
	"github.com/lengyijun/tip-go/internal/ast"
	"github.com/lengyijun/tip-go/internal/types"
)

// Term is the type-algebra term type, re-exported for callers of this
// package that don't otherwise need to import internal/types.
type Term = types.Term

// unionFind is a union-find over Term, keyed by each term's structural
// key (see types.Term.Key). Grounded on
// original_source/src/union_find.rs's UnionFindSolver: a
// map<Term,Term> from each key to its parent representative, with path
// compression folded into find, and root-ward decomposition of
// constructor equalities in union.
type unionFind struct {
	parent map[string]Term
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[string]Term)}
}

// find returns the current representative of t, lazily initializing
// unseen terms as their own root and compressing the path it walks.
func (u *unionFind) find(t Term) Term {
	k := keyOf(t)
	parent, ok := u.parent[k]
	if !ok {
		u.parent[k] = t
		return t
	}
	if keyOf(parent) == k {
		return parent
	}
	root := u.find(parent)
	u.parent[k] = root // path compression
	return root
}

func keyOf(t Term) string {
	return t.Key()
}

// union merges the equivalence classes of a and b, decomposing
// constructor equalities structurally. It does not perform an occurs
// check: cycles (e.g. 'a = &'a) are permitted in the resulting graph
// and are named with a Mu binder later, by closure (spec.md §4.5, §9).
func (u *unionFind) union(a, b Term, node *ast.Node) error {
	ra, rb := u.find(a), u.find(b)
	if keyOf(ra) == keyOf(rb) {
		return nil
	}

	_, aVar := ra.(*types.Var)
	_, bVar := rb.(*types.Var)

	switch {
	case aVar && bVar:
		u.parent[keyOf(ra)] = rb
		return nil
	case aVar && !bVar:
		u.parent[keyOf(ra)] = rb
		return nil
	case !aVar && bVar:
		u.parent[keyOf(rb)] = ra
		return nil
	}

	// Both representatives are constructors (or, erroneously, Mu —
	// solving never produces those itself).
	return u.decompose(ra, rb, node)
}

func (u *unionFind) decompose(ra, rb Term, node *ast.Node) error {
	switch l := ra.(type) {
	case *types.Int:
		if _, ok := rb.(*types.Int); ok {
			return nil
		}
		return &ConstructorMismatchError{Left: ra, Right: rb, Node: node}

	case *types.Absent:
		if _, ok := rb.(*types.Absent); ok {
			return nil
		}
		return &ConstructorMismatchError{Left: ra, Right: rb, Node: node}

	case *types.Fun:
		r, ok := rb.(*types.Fun)
		if !ok {
			return &ConstructorMismatchError{Left: ra, Right: rb, Node: node}
		}
		if len(l.Params) != len(r.Params) {
			return &ArityMismatchError{Expected: len(l.Params), Actual: len(r.Params), Node: node}
		}
		for i := range l.Params {
			if err := u.union(l.Params[i], r.Params[i], node); err != nil {
				return err
			}
		}
		return u.union(l.Ret, r.Ret, node)

	case *types.Ptr:
		r, ok := rb.(*types.Ptr)
		if !ok {
			return &ConstructorMismatchError{Left: ra, Right: rb, Node: node}
		}
		return u.union(l.Of, r.Of, node)

	case *types.Record:
		r, ok := rb.(*types.Record)
		if !ok {
			return &ConstructorMismatchError{Left: ra, Right: rb, Node: node}
		}
		if len(l.Fields) != len(r.Fields) {
			return &FieldDomainMismatchError{Left: l, Right: r}
		}
		for name, lv := range l.Fields {
			rv, ok := r.Fields[name]
			if !ok {
				return &FieldDomainMismatchError{Left: l, Right: r}
			}
			if err := u.union(lv, rv, node); err != nil {
				return err
			}
		}
		return nil

	case *types.Mu:
		return &InternalInvariantError{Msg: "Mu term reached the unification solver; Mu is only introduced during closure"}

	default:
		return &InternalInvariantError{Msg: "unhandled term constructor during unification"}
	}
}
