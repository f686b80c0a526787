// Package decl resolves each identifier use in a TIP program to the AST
// node that binds it (a function parameter, a local variable, or a
// top-level function), storing the result in a DeclMap side table that
// the constraint generator reads but never writes.
//
// Grounded on original_source/src/declaration_analysis.rs: one DFS pass
// with a lexical environment, mirroring the teacher's split of semantic
// concerns into single-purpose passes (internal/semantic/passes) — name
// resolution here never touches typing, and the generator (package
// typeinfer) never touches scope. Like the original, this rides on the
// single shared traversal (internal/ast.Walk) rather than hand-rolling
// its own recursion.
package decl

import (
	"fmt"

	"github.com/lengyijun/tip-go/internal/ast"
)

// UnboundIdentifierError is returned when an Id use has no binder
// reachable from the enclosing scope (spec.md §7).
type UnboundIdentifierError struct {
	Name string
	Node *ast.Node
}

func (e *UnboundIdentifierError) Error() string {
	return fmt.Sprintf("%s: unbound identifier %q", e.Node.Pos, e.Name)
}

// Map is the resolver's output: every Id *use* node maps to the *Id (or
// *Function) node that binds it.
type Map map[*ast.Node]*ast.Node

// scope is a lexical environment: a chain of name -> binder maps.
// Shadowing lets a function's params/vars hide an outer binding.
type scope struct {
	names  map[string]*ast.Node
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{names: make(map[string]*ast.Node), parent: parent}
}

func (s *scope) define(name string, node *ast.Node) {
	s.names[name] = node
}

func (s *scope) lookup(name string) (*ast.Node, bool) {
	for c := s; c != nil; c = c.parent {
		if n, ok := c.names[name]; ok {
			return n, true
		}
	}
	return nil, false
}

// Resolve builds the DeclMap for program, which must be a *ast.Program
// node.
func Resolve(program *ast.Node) (Map, error) {
	p, ok := program.Kind.(*ast.Program)
	if !ok {
		return nil, fmt.Errorf("decl.Resolve: expected *ast.Program, got %T", program.Kind)
	}

	decl := make(Map)

	global := newScope(nil)
	for _, fn := range p.Functions {
		f, ok := fn.Kind.(*ast.Function)
		if !ok {
			return nil, fmt.Errorf("decl.Resolve: expected *ast.Function, got %T", fn.Kind)
		}
		global.define(f.Name, fn)
	}

	var firstErr error
	for _, fn := range p.Functions {
		f := fn.Kind.(*ast.Function)
		local := newScope(global)
		for _, param := range f.Params {
			local.define(param.Kind.(*ast.Id).Name, param)
		}
		for _, v := range f.Vars {
			local.define(v.Kind.(*ast.Id).Name, v)
		}

		ast.Walk(fn, func(n *ast.Node) bool {
			if firstErr != nil {
				return false
			}
			id, ok := n.Kind.(*ast.Id)
			if !ok {
				return true
			}
			target, ok := local.lookup(id.Name)
			if !ok {
				firstErr = &UnboundIdentifierError{Name: id.Name, Node: n}
				return false
			}
			decl[n] = target
			return false // Id is always a leaf
		})
		if firstErr != nil {
			return nil, firstErr
		}
	}

	return decl, nil
}
