package types

// Substitute returns t with every occurrence of from replaced by to,
// compared structurally via Equal. For a Mu term, if the whole Mu
// equals from it is replaced outright; otherwise the replacement
// recurses into the body only (spec.md §4.4) — a μ-binder never needs
// rewriting through its own Placeholder, since Placeholder denotes the
// Mu itself, not a free variable from could ever name.
func Substitute(t, from, to Term) Term {
	if Equal(t, from) {
		return to
	}

	switch x := t.(type) {
	case *Var, *Int, *Absent:
		return t

	case *Fun:
		params := make([]Term, len(x.Params))
		for i, p := range x.Params {
			params[i] = Substitute(p, from, to)
		}
		return &Fun{Params: params, Ret: Substitute(x.Ret, from, to)}

	case *Ptr:
		return &Ptr{Of: Substitute(x.Of, from, to)}

	case *Record:
		fields := make(map[string]Term, len(x.Fields))
		for k, v := range x.Fields {
			fields[k] = Substitute(v, from, to)
		}
		return &Record{Fields: fields, ID: x.ID}

	case *Mu:
		return &Mu{Body: Substitute(x.Body, from, to)}

	default:
		panic("types.Substitute: unhandled term")
	}
}
