package types

// Equal reports whether a and b are the same type term, structurally.
// Two Record terms compare equal when their field maps match key for
// key and value for value; the instance ID that keeps them apart as
// union-find map keys (see Term.Key) plays no part here — see the
// design note on Record and spec.md §9 ("Record identity for
// hashing").
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case *Var:
		y, ok := b.(*Var)
		if !ok {
			return false
		}
		if x.Kind != y.Kind {
			return false
		}
		switch x.Kind {
		case FreshVarKind:
			return x.N == y.N
		case AstVarKind:
			return x.Node == y.Node
		case PlaceholderKind:
			return true
		}
		return false

	case *Int:
		_, ok := b.(*Int)
		return ok

	case *Absent:
		_, ok := b.(*Absent)
		return ok

	case *Fun:
		y, ok := b.(*Fun)
		if !ok || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if !Equal(x.Params[i], y.Params[i]) {
				return false
			}
		}
		return Equal(x.Ret, y.Ret)

	case *Ptr:
		y, ok := b.(*Ptr)
		if !ok {
			return false
		}
		return Equal(x.Of, y.Of)

	case *Record:
		y, ok := b.(*Record)
		if !ok || len(x.Fields) != len(y.Fields) {
			return false
		}
		for k, v := range x.Fields {
			yv, ok := y.Fields[k]
			if !ok || !Equal(v, yv) {
				return false
			}
		}
		return true

	case *Mu:
		y, ok := b.(*Mu)
		if !ok {
			return false
		}
		return Equal(x.Body, y.Body)

	default:
		return false
	}
}
