// Package types implements TIP's type algebra: unification variables,
// first-order constructors, and equirecursive (μ) types.
//
// Grounded on original_source/src/term.rs (the Term/Var/Cons/Mu enum
// family) and, for the general shape of a small closed type language
// with a String() rendering, the teacher's internal/types package.
package types

import (
	"fmt"

	"github.com/lengyijun/tip-go/internal/ast"
)

// Term is any node of the type language: a variable, a first-order
// constructor, or a recursive binder.
type Term interface {
	// Key returns a string that two structurally-equal-for-hashing terms
	// share. It is used only as the union-find's internal map key, and
	// deliberately is NOT the same thing as Equal: a Record's key folds
	// in its instance ID so that two freshly-created record terms never
	// collide in the solver's map before they have been unified,
	// matching the instance-identity role spec.md §3.2 assigns to
	// Record.ID. Equal, below, ignores that ID.
	//
	// Exported (unlike isTerm) because internal/typeinfer's union-find
	// needs to call it from outside this package; an unexported method
	// would be a distinct selector per package and could never be
	// satisfied from there.
	Key() string
	// String renders the term for diagnostics and test fixtures.
	String() string
	isTerm()
}

// --- Variables -------------------------------------------------

// VarKind distinguishes the three flavors of Var described in spec.md
// §3.2.
type VarKind int

const (
	// FreshVarKind is a unification variable generated on demand.
	FreshVarKind VarKind = iota
	// AstVarKind is the type variable representing a specific AST node
	// (an Id binder or a Function).
	AstVarKind
	// PlaceholderKind marks a bound position inside a Mu body.
	PlaceholderKind
)

// Var is a unification variable.
type Var struct {
	Kind VarKind
	N    int       // sequence number, meaningful only for FreshVarKind
	Node *ast.Node // meaningful only for AstVarKind
}

func (*Var) isTerm() {}

func (v *Var) Key() string {
	switch v.Kind {
	case FreshVarKind:
		return fmt.Sprintf("fresh#%d", v.N)
	case AstVarKind:
		return fmt.Sprintf("astvar#%p", v.Node)
	case PlaceholderKind:
		return "placeholder"
	default:
		panic("types: unknown VarKind")
	}
}

func (v *Var) String() string {
	switch v.Kind {
	case FreshVarKind:
		return fmt.Sprintf("'t%d", v.N)
	case AstVarKind:
		return fmt.Sprintf("'node@%s", v.Node.Pos)
	case PlaceholderKind:
		return "'placeholder"
	default:
		return "'?"
	}
}

// AstVar returns the Term naming node's type variable.
func AstVar(node *ast.Node) *Var { return &Var{Kind: AstVarKind, Node: node} }

// Placeholder is the single sentinel variable occurring inside a Mu
// body at each recursive reference.
func Placeholder() *Var { return &Var{Kind: PlaceholderKind} }

// --- Constructors -------------------------------------------------

// Int is the integer type.
type Int struct{}

func (*Int) isTerm()      {}
func (*Int) Key() string  { return "int" }
func (*Int) String() string { return "int" }

// Fun is a function type `(params...) -> ret`.
type Fun struct {
	Params []Term
	Ret    Term
}

func (*Fun) isTerm() {}
func (f *Fun) Key() string {
	s := "fun("
	for i, p := range f.Params {
		if i > 0 {
			s += ","
		}
		s += p.Key()
	}
	return s + ")->" + f.Ret.Key()
}
func (f *Fun) String() string {
	s := "("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ") -> " + f.Ret.String()
}

// Ptr is a pointer type `&of`.
type Ptr struct {
	Of Term
}

func (*Ptr) isTerm()        {}
func (p *Ptr) Key() string  { return "ptr(" + p.Of.Key() + ")" }
func (p *Ptr) String() string { return "&" + p.Of.String() }

// Absent witnesses that a record's padded field domain does not
// actually contain the field at this position.
type Absent struct{}

func (*Absent) isTerm()      {}
func (*Absent) Key() string  { return "absent" }
func (*Absent) String() string { return "<absent>" }

// Record is a record type, padded (by the generator, see
// internal/typeinfer) to the program-wide field-name domain. ID exists
// purely to give freshly-created record terms distinct union-find keys
// before they've been unified with anything else; Equal ignores it.
type Record struct {
	Fields map[string]Term
	ID     int
}

func (*Record) isTerm()     {}
func (r *Record) Key() string { return fmt.Sprintf("record#%d", r.ID) }
func (r *Record) String() string {
	s := "{"
	first := true
	for _, name := range sortedKeys(r.Fields) {
		if !first {
			s += ", "
		}
		first = false
		s += name + ": " + r.Fields[name].String()
	}
	return s + "}"
}

func sortedKeys(m map[string]Term) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// simple insertion sort: field domains are small (program-wide field
	// count), no need to pull in sort for a handful of entries.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// --- Recursive types -------------------------------------------------

// Mu is an equirecursive type μ.Body, where Body contains a Placeholder
// Var at each position that refers back to the whole Mu.
type Mu struct {
	Body Term
}

func (*Mu) isTerm()       {}
func (m *Mu) Key() string { return "mu(" + m.Body.Key() + ")" }
func (m *Mu) String() string {
	return "mu " + m.Body.String()
}
