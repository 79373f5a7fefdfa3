// Package cycle tracks the records currently being encoded so that a record reached again
// through its own descendants is reported instead of recursing forever.
//
// A Tracker lives for one top-level encode call and is handed explicitly to every generated
// encode function. A nil *Tracker means cycle detection is off.
package cycle

// Tracker is a stack of record identities. Identities are pointers held in an interface,
// so two records compare equal only when they share both address and type.
type Tracker struct {
	stack []any
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{stack: make([]any, 0, 16)}
}

// Push adds id to the stack. It returns false, leaving the stack unchanged, if id is already
// on it. Push on a nil Tracker always succeeds.
func (t *Tracker) Push(id any) bool {
	if t == nil {
		return true
	}
	for _, v := range t.stack {
		if v == id {
			return false
		}
	}
	t.stack = append(t.stack, id)
	return true
}

// Pop removes id, which must be the last identity pushed.
func (t *Tracker) Pop(id any) {
	if t == nil || len(t.stack) == 0 {
		return
	}
	last := len(t.stack) - 1
	if t.stack[last] != id {
		panic("bug: cycle.Tracker.Pop called out of order")
	}
	t.stack[last] = nil
	t.stack = t.stack[:last]
}

// Depth is the number of identities on the stack.
func (t *Tracker) Depth() int {
	if t == nil {
		return 0
	}
	return len(t.stack)
}

// Reset empties the Tracker for reuse.
func (t *Tracker) Reset() {
	clear(t.stack)
	t.stack = t.stack[:0]
}
