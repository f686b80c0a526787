package decl

import (
	"testing"

	"github.com/lengyijun/tip-go/internal/ast"
)

func pos() ast.Position { return ast.Position{} }

// buildIdProgram builds: id(x) { return x; } main() { return id(5); }
func buildIdProgram(t *testing.T) (*ast.Node, *ast.Node, *ast.Node, *ast.Node) {
	t.Helper()
	paramX := ast.NewId("x", pos())
	useX := ast.NewId("x", pos())
	idFn := ast.NewFunction("id", []*ast.Node{paramX}, nil, nil, useX, pos())

	call := ast.NewFunApp(ast.NewId("id", pos()), []*ast.Node{ast.NewNumber(5, pos())}, pos())
	mainFn := ast.NewFunction("main", nil, nil, nil, call, pos())

	program := ast.NewProgram([]*ast.Node{idFn, mainFn}, pos())
	return program, paramX, useX, call
}

func TestResolveBindsUseToParam(t *testing.T) {
	program, paramX, useX, _ := buildIdProgram(t)

	d, err := Resolve(program)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d[useX] != paramX {
		t.Fatalf("expected use of x to resolve to its parameter binder")
	}
}

func TestResolveBindsCalleeToFunction(t *testing.T) {
	program, _, _, call := buildIdProgram(t)
	idFn := program.Kind.(*ast.Program).Functions[0]

	d, err := Resolve(program)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	callee := call.Kind.(*ast.FunApp).Callee
	if d[callee] != idFn {
		t.Fatalf("expected call's callee to resolve to the function definition")
	}
}

func TestResolveUnboundIdentifier(t *testing.T) {
	ret := ast.NewId("y", pos())
	mainFn := ast.NewFunction("main", nil, []*ast.Node{ast.NewId("x", pos())}, nil, ret, pos())
	program := ast.NewProgram([]*ast.Node{mainFn}, pos())

	_, err := Resolve(program)
	if err == nil {
		t.Fatalf("expected UnboundIdentifierError")
	}
	var uerr *UnboundIdentifierError
	if !asUnbound(err, &uerr) {
		t.Fatalf("expected UnboundIdentifierError, got %T: %v", err, err)
	}
	if uerr.Name != "y" {
		t.Fatalf("expected unbound name y, got %q", uerr.Name)
	}
}

func asUnbound(err error, target **UnboundIdentifierError) bool {
	if e, ok := err.(*UnboundIdentifierError); ok {
		*target = e
		return true
	}
	return false
}

func TestResolveShadowing(t *testing.T) {
	// f(p) { var p; return p; } -- local var p shadows the parameter p
	param := ast.NewId("p", pos())
	localVar := ast.NewId("p", pos())
	use := ast.NewId("p", pos())
	fn := ast.NewFunction("f", []*ast.Node{param}, []*ast.Node{localVar}, nil, use, pos())
	program := ast.NewProgram([]*ast.Node{fn}, pos())

	d, err := Resolve(program)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d[use] != localVar {
		t.Fatalf("expected local var to shadow the parameter")
	}
}
