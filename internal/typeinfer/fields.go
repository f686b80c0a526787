package typeinfer

import "github.com/lengyijun/tip-go/internal/ast"

// collectFields gathers every record-field name appearing anywhere in
// program, returning them sorted for determinism. Grounded on
// original_source/src/field_collector.rs's single DFS pass over
// ast.Record nodes.
//
// The result is the uniform field domain every record term the
// generator builds gets padded to (spec.md §4.2): without it,
// structural unification of two record literals mentioning different
// fields would fail on a field-domain mismatch even when the program
// never actually requires those fields to agree.
func collectFields(program *ast.Node) []string {
	seen := make(map[string]bool)
	ast.Walk(program, func(n *ast.Node) bool {
		if r, ok := n.Kind.(*ast.Record); ok {
			for _, f := range r.Fields {
				seen[f.Name] = true
			}
		}
		return true
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}
