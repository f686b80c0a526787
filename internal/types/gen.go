package types

// Gen mints fresh unification variables and record instance IDs for one
// analysis run. spec.md §5 and §9 call out that these counters are
// process-global in the original Rust source but should be scoped to a
// single analyzer instance so that two analyses run in the same process
// are independent and their output is deterministic regardless of
// ordering — the fresh-var counter on a Gen only ever counts up within
// the Gen it belongs to.
type Gen struct {
	nextVar    int
	nextRecord int
}

// NewGen creates a counter set starting from zero.
func NewGen() *Gen { return &Gen{} }

// FreshVar returns a new, never-before-seen unification variable.
func (g *Gen) FreshVar() *Var {
	g.nextVar++
	return &Var{Kind: FreshVarKind, N: g.nextVar}
}

// NewRecord builds a Record term over the given field terms, assigning
// it a fresh instance ID.
func (g *Gen) NewRecord(fields map[string]Term) *Record {
	g.nextRecord++
	return &Record{Fields: fields, ID: g.nextRecord}
}
