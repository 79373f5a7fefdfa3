package cycle

import (
	"testing"
)

type node struct {
	next *node
}

type wrapper struct {
	inner node
}

func TestPushPop(t *testing.T) {
	a := &node{}
	b := &node{}

	tr := New()
	if !tr.Push(a) {
		t.Fatalf("TestPushPop: Push(a) on empty tracker returned false")
	}
	if !tr.Push(b) {
		t.Fatalf("TestPushPop: Push(b) returned false")
	}
	if tr.Push(a) {
		t.Errorf("TestPushPop: Push(a) while a is on the stack returned true")
	}
	if tr.Depth() != 2 {
		t.Errorf("TestPushPop: got depth %d, want 2", tr.Depth())
	}

	tr.Pop(b)
	tr.Pop(a)
	if tr.Depth() != 0 {
		t.Errorf("TestPushPop: got depth %d after pops, want 0", tr.Depth())
	}
	if !tr.Push(a) {
		t.Errorf("TestPushPop: Push(a) after it was popped returned false")
	}
}

func TestIdentityIncludesType(t *testing.T) {
	w := &wrapper{}
	tr := New()

	// &w.inner has the same address as w, but is a different type.
	if !tr.Push(w) {
		t.Fatalf("TestIdentityIncludesType: Push(w) returned false")
	}
	if !tr.Push(&w.inner) {
		t.Errorf("TestIdentityIncludesType: Push(&w.inner) collided with Push(w)")
	}
}

func TestSiblingsAreNotCycles(t *testing.T) {
	shared := &node{}
	tr := New()

	for i := 0; i < 2; i++ {
		if !tr.Push(shared) {
			t.Fatalf("TestSiblingsAreNotCycles: visit %d reported a cycle", i)
		}
		tr.Pop(shared)
	}
}

func TestNilTracker(t *testing.T) {
	var tr *Tracker
	a := &node{}

	for i := 0; i < 3; i++ {
		if !tr.Push(a) {
			t.Errorf("TestNilTracker: Push on nil tracker returned false")
		}
	}
	tr.Pop(a)
	if tr.Depth() != 0 {
		t.Errorf("TestNilTracker: got depth %d, want 0", tr.Depth())
	}
}

func TestPopOutOfOrderPanics(t *testing.T) {
	a, b := &node{}, &node{}
	tr := New()
	tr.Push(a)
	tr.Push(b)

	defer func() {
		if recover() == nil {
			t.Errorf("TestPopOutOfOrderPanics: expected a panic")
		}
	}()
	tr.Pop(a)
}
