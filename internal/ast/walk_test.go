package ast

import "testing"

func TestWalkSkipsBinders(t *testing.T) {
	p := NewId("p", Position{})
	x := NewId("x", Position{})
	ret := NewId("x", Position{}) // a *use* of x, distinct node from the binder

	fn := NewFunction("f", []*Node{p}, []*Node{x}, nil, ret, Position{})

	var visited []*Node
	Walk(fn, func(n *Node) bool {
		visited = append(visited, n)
		return true
	})

	// fn, ret -- never p or the Vars entry x.
	if len(visited) != 2 {
		t.Fatalf("expected 2 visited nodes, got %d: %v", len(visited), visited)
	}
	if visited[0] != fn || visited[1] != ret {
		t.Fatalf("unexpected visit order: %v", visited)
	}
}

func TestWalkPruneOnFalse(t *testing.T) {
	inner := NewNumber(1, Position{})
	outer := NewBinaryOp(Add, inner, NewNumber(2, Position{}), Position{})

	count := 0
	Walk(outer, func(n *Node) bool {
		count++
		return n != outer // stop descending once we hit outer
	})
	if count != 1 {
		t.Fatalf("expected traversal to stop at root, visited %d nodes", count)
	}
}

func TestWalkIfElseOptional(t *testing.T) {
	guard := NewNumber(1, Position{})
	then := NewBlock(nil, Position{})
	ifNode := NewIf(guard, then, nil, Position{})

	var visited []*Node
	Walk(ifNode, func(n *Node) bool {
		visited = append(visited, n)
		return true
	})
	if len(visited) != 3 {
		t.Fatalf("expected if, guard, then; got %d", len(visited))
	}
}
