package types

// Contains reports whether v occurs anywhere inside t. Used by closure
// (internal/typeinfer) to decide whether a just-closed body genuinely
// refers back to the variable it was entered for, i.e. whether a Mu
// binder is needed at all (spec.md §4.4, §4.7).
func Contains(t Term, v *Var) bool {
	switch x := t.(type) {
	case *Var:
		return x.Kind == v.Kind && x.N == v.N && x.Node == v.Node
	case *Int, *Absent:
		return false
	case *Fun:
		for _, p := range x.Params {
			if Contains(p, v) {
				return true
			}
		}
		return Contains(x.Ret, v)
	case *Ptr:
		return Contains(x.Of, v)
	case *Record:
		for _, f := range x.Fields {
			if Contains(f, v) {
				return true
			}
		}
		return false
	case *Mu:
		return Contains(x.Body, v)
	default:
		return false
	}
}
