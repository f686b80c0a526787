package parser

import (
	"testing"

	"github.com/lengyijun/tip-go/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return prog
}

func TestParseArithmeticMain(t *testing.T) {
	prog := mustParse(t, `main() { return 1 + 2 * 3; }`)
	p := prog.Kind.(*ast.Program)
	if len(p.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(p.Functions))
	}
	fn := p.Functions[0].Kind.(*ast.Function)
	if fn.Name != "main" {
		t.Fatalf("name: got %q", fn.Name)
	}
	ret := fn.Ret.Kind.(*ast.BinaryOp)
	if ret.Op != ast.Add {
		t.Fatalf("expected top-level op to be +, got %s (precedence climbing is broken)", ret.Op)
	}
	rhs := ret.Right.Kind.(*ast.BinaryOp)
	if rhs.Op != ast.Mul {
		t.Fatalf("expected rhs to be 2 * 3, got %s", rhs.Op)
	}
}

func TestParseFunctionWithParamsVarsAndCall(t *testing.T) {
	prog := mustParse(t, `
		id(x) { return x; }
		main() { var y; y = id(5); return y; }
	`)
	p := prog.Kind.(*ast.Program)
	if len(p.Functions) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(p.Functions))
	}
	main := p.Functions[1].Kind.(*ast.Function)
	if len(main.Vars) != 1 || main.Vars[0].Kind.(*ast.Id).Name != "y" {
		t.Fatalf("expected one var y, got %v", main.Vars)
	}
	if len(main.Statements) != 1 {
		t.Fatalf("expected one assignment statement before return, got %d", len(main.Statements))
	}
	assign := main.Statements[0].Kind.(*ast.Assign)
	if _, ok := assign.Left.Kind.(*ast.Id); !ok {
		t.Fatalf("expected assignment to a bare Id, got %T", assign.Left.Kind)
	}
	call := assign.Right.Kind.(*ast.FunApp)
	if len(call.Args) != 1 {
		t.Fatalf("expected 1 call argument, got %d", len(call.Args))
	}
}

func TestParseDerefBindsTighterThanDot(t *testing.T) {
	prog := mustParse(t, `f(n) { return *n.p; }`)
	fn := prog.Kind.(*ast.Program).Functions[0].Kind.(*ast.Function)
	fa, ok := fn.Ret.Kind.(*ast.FieldAccess)
	if !ok {
		t.Fatalf("expected *n.p to parse as a FieldAccess at the top, got %T", fn.Ret.Kind)
	}
	if fa.FieldName != "p" {
		t.Fatalf("field: got %q", fa.FieldName)
	}
	if _, ok := fa.Base.Kind.(*ast.Deref); !ok {
		t.Fatalf("expected *n.p's base to be a Deref (i.e. (*n).p), got %T", fa.Base.Kind)
	}
}

func TestParseChainedFieldAccessLeftAssociative(t *testing.T) {
	prog := mustParse(t, `f(a) { return a.b.c; }`)
	fn := prog.Kind.(*ast.Program).Functions[0].Kind.(*ast.Function)
	outer := fn.Ret.Kind.(*ast.FieldAccess)
	if outer.FieldName != "c" {
		t.Fatalf("outer field: got %q", outer.FieldName)
	}
	inner, ok := outer.Base.Kind.(*ast.FieldAccess)
	if !ok {
		t.Fatalf("expected a.b.c's base to itself be a FieldAccess, got %T", outer.Base.Kind)
	}
	if inner.FieldName != "b" {
		t.Fatalf("inner field: got %q", inner.FieldName)
	}
	if _, ok := inner.Base.Kind.(*ast.Id); !ok {
		t.Fatalf("expected innermost base to be Id a, got %T", inner.Base.Kind)
	}
}

func TestParseRecordLiteralAndDirectFieldWrite(t *testing.T) {
	prog := mustParse(t, `
		f() {
			var x;
			x = { a: 1, b: 2 };
			x.a = 3;
			return x.a;
		}
	`)
	fn := prog.Kind.(*ast.Program).Functions[0].Kind.(*ast.Function)
	if len(fn.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(fn.Statements))
	}

	rec := fn.Statements[0].Kind.(*ast.Assign).Right.Kind.(*ast.Record)
	if len(rec.Fields) != 2 || rec.Fields[0].Name != "a" || rec.Fields[1].Name != "b" {
		t.Fatalf("unexpected record fields: %+v", rec.Fields)
	}

	write := fn.Statements[1].Kind.(*ast.Assign).Left.Kind.(*ast.DirectFieldWrite)
	if write.Field != "a" {
		t.Fatalf("expected direct field write to field a, got %q", write.Field)
	}
}

func TestParseIndirectFieldWriteRequiresParens(t *testing.T) {
	prog := mustParse(t, `f(p) { (*p).a = 1; return 0; }`)
	fn := prog.Kind.(*ast.Program).Functions[0].Kind.(*ast.Function)
	write, ok := fn.Statements[0].Kind.(*ast.Assign).Left.Kind.(*ast.IndirectFieldWrite)
	if !ok {
		t.Fatalf("expected IndirectFieldWrite, got %T", fn.Statements[0].Kind.(*ast.Assign).Left.Kind)
	}
	if _, ok := write.Expr.Kind.(*ast.Deref); !ok {
		t.Fatalf("expected (*p).a's expr to be a Deref, got %T", write.Expr.Kind)
	}
}

func TestParseDerefWrite(t *testing.T) {
	prog := mustParse(t, `f(p) { *p = 1; return 0; }`)
	fn := prog.Kind.(*ast.Program).Functions[0].Kind.(*ast.Function)
	write, ok := fn.Statements[0].Kind.(*ast.Assign).Left.Kind.(*ast.DerefWrite)
	if !ok {
		t.Fatalf("expected DerefWrite, got %T", fn.Statements[0].Kind.(*ast.Assign).Left.Kind)
	}
	if _, ok := write.Expr.Kind.(*ast.Id); !ok {
		t.Fatalf("expected *p's target to be the bare Id p, got %T", write.Expr.Kind)
	}
}

func TestParseIfWhileAllocRefInput(t *testing.T) {
	prog := mustParse(t, `
		f() {
			var x, y;
			x = alloc input;
			y = &x;
			if (input > 0) {
				output input;
			} else {
				error input;
			}
			while (input > 0) {
				output 1;
			}
			return null;
		}
	`)
	fn := prog.Kind.(*ast.Program).Functions[0].Kind.(*ast.Function)

	alloc := fn.Statements[0].Kind.(*ast.Assign).Right.Kind.(*ast.Alloc)
	if _, ok := alloc.Expr.Kind.(*ast.Input); !ok {
		t.Fatalf("expected alloc input, got %T", alloc.Expr.Kind)
	}

	ref := fn.Statements[1].Kind.(*ast.Assign).Right.Kind.(*ast.Ref)
	if ref.Id.Kind.(*ast.Id).Name != "x" {
		t.Fatalf("expected &x, got &%s", ref.Id.Kind.(*ast.Id).Name)
	}

	ifStmt := fn.Statements[2].Kind.(*ast.If)
	if ifStmt.ElseStmt == nil {
		t.Fatalf("expected an else branch")
	}
	if len(ifStmt.Then.Kind.(*ast.Block).Statements) != 1 {
		t.Fatalf("expected one statement in the then-block")
	}

	whileStmt := fn.Statements[3].Kind.(*ast.While)
	if len(whileStmt.Block.Kind.(*ast.Block).Statements) != 1 {
		t.Fatalf("expected one statement in the while-block")
	}

	if _, ok := fn.Ret.Kind.(*ast.Null); !ok {
		t.Fatalf("expected null return, got %T", fn.Ret.Kind)
	}
}

func TestParseHigherOrderCall(t *testing.T) {
	// foo(p, x) { return (x)(p, x); }
	prog := mustParse(t, `foo(p, x) { return (x)(p, x); }`)
	fn := prog.Kind.(*ast.Program).Functions[0].Kind.(*ast.Function)
	call := fn.Ret.Kind.(*ast.FunApp)
	if _, ok := call.Callee.Kind.(*ast.Id); !ok {
		t.Fatalf("expected callee to resolve to the Id x, got %T", call.Callee.Kind)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
}

func TestParseNestedVarGroupsFlatten(t *testing.T) {
	prog := mustParse(t, `
		f() {
			var a, b;
			var c;
			return a;
		}
	`)
	fn := prog.Kind.(*ast.Program).Functions[0].Kind.(*ast.Function)
	if len(fn.Vars) != 3 {
		t.Fatalf("expected 3 flattened vars, got %d: %v", len(fn.Vars), fn.Vars)
	}
}

func TestParseSyntaxErrorMissingSemicolon(t *testing.T) {
	_, err := Parse(`main() { return 1 }`)
	if err == nil {
		t.Fatalf("expected a syntax error for a missing semicolon")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
}
