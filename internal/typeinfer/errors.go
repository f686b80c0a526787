package typeinfer

import (
	"fmt"

	"github.com/lengyijun/tip-go/internal/ast"
	"github.com/lengyijun/tip-go/internal/types"
)

// ArityMismatchError is raised when a function-type unification or a
// function application sees mismatched parameter counts (spec.md §7).
type ArityMismatchError struct {
	Expected, Actual int
	Node             *ast.Node
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s: arity mismatch: expected %d argument(s), got %d",
		e.Node.Pos, e.Expected, e.Actual)
}

// ConstructorMismatchError is raised when unification meets two terms
// with incompatible head constructors (spec.md §7).
type ConstructorMismatchError struct {
	Left, Right Term
	Node        *ast.Node // nil when the offending node isn't known at the call site
}

func (e *ConstructorMismatchError) Error() string {
	if e.Node != nil {
		return fmt.Sprintf("%s: cannot unify %s with %s", e.Node.Pos, e.Left, e.Right)
	}
	return fmt.Sprintf("cannot unify %s with %s", e.Left, e.Right)
}

// FieldDomainMismatchError fires only if the generator's field padding
// invariant was somehow violated — spec.md §7 classifies this as an
// internal-invariant violation rather than a program error, since a
// correctly-padded generator never produces it.
type FieldDomainMismatchError struct {
	Left, Right *types.Record
}

func (e *FieldDomainMismatchError) Error() string {
	return fmt.Sprintf("internal error: record field domains disagree: %v vs %v",
		keysOf(e.Left), keysOf(e.Right))
}

func keysOf(r *types.Record) []string {
	names := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		names = append(names, k)
	}
	return names
}

// InternalInvariantError marks a branch that correct input can never
// reach (spec.md §7) — e.g. a Mu term appearing during solving, which
// the solver never produces itself (only closure introduces Mu, after
// solving has finished).
type InternalInvariantError struct {
	Msg string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Msg)
}
