package ast

// Visitor decides, for a node being entered, whether Walk should
// continue descending into its semantic children. Returning false
// prunes the subtree.
type Visitor func(n *Node) bool

// Walk performs a depth-first traversal of n, calling visit on n first
// and then, if visit returned true, recursing into n's semantic
// children in the fixed order below. Traversal never mutates the tree.
//
// Grounded on original_source/src/dfs.rs's Dfs::dfs: the same per-kind
// child order is reproduced here, including the deliberate omission of
// Function.Params and Function.Vars — those *Id nodes are binders, not
// expression uses, and visiting them would make the resolver and
// constraint generator (which both ride on this walker) misclassify a
// binder as a use.
func Walk(n *Node, visit Visitor) {
	if n == nil || !visit(n) {
		return
	}

	switch k := n.Kind.(type) {
	case *Id, *Number, *Input, *Null:
		// leaves

	case *BinaryOp:
		Walk(k.Left, visit)
		Walk(k.Right, visit)

	case *Alloc:
		Walk(k.Expr, visit)

	case *Ref:
		Walk(k.Id, visit)

	case *Deref:
		Walk(k.Atom, visit)

	case *Record:
		for _, f := range k.Fields {
			Walk(f.Expression, visit)
		}

	case *FieldAccess:
		Walk(k.Base, visit)

	case *FunApp:
		Walk(k.Callee, visit)
		for _, a := range k.Args {
			Walk(a, visit)
		}

	case *DirectFieldWrite:
		// Id here is a use, not a binder: `x.f = e` reads x's binding.
		Walk(k.Id, visit)

	case *IndirectFieldWrite:
		Walk(k.Expr, visit)

	case *DerefWrite:
		Walk(k.Expr, visit)

	case *Assign:
		Walk(k.Left, visit)
		Walk(k.Right, visit)

	case *Output:
		Walk(k.Expr, visit)

	case *ErrorStmt:
		Walk(k.Expr, visit)

	case *If:
		Walk(k.Guard, visit)
		Walk(k.Then, visit)
		if k.ElseStmt != nil {
			Walk(k.ElseStmt, visit)
		}

	case *While:
		Walk(k.Guard, visit)
		Walk(k.Block, visit)

	case *Block:
		for _, s := range k.Statements {
			Walk(s, visit)
		}

	case *Function:
		// Params and Vars are binders: deliberately not walked.
		for _, s := range k.Statements {
			Walk(s, visit)
		}
		Walk(k.Ret, visit)

	case *Program:
		for _, f := range k.Functions {
			Walk(f, visit)
		}

	default:
		panic("ast.Walk: unhandled node kind")
	}
}
