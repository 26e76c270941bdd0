/*
Package ringlist implements a doubly linked list backed by a single
circular ring of elements anchored by a sentinel. The sentinel marks both
ends of the sequence, so every mutation reduces to the same two constant
time ring operations with no boundary cases.

Elements are pointer-stable: an element keeps its identity across
insertions and removals elsewhere in the same list, and a Cursor bound to
an element stays valid until exactly that element is removed.
*/
package ringlist

import "iter"

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
// A List must not be copied after first use; use Clone or CopyFrom.
type List[V any] struct {
	root Element[V] // sentinel: root.next is the first element, root.prev the last
	len  int
}

// New creates an empty list.
func New[V any]() *List[V] {
	return new(List[V]).Init()
}

// Init initializes or clears list l. Any elements the list held are
// dropped from the ring and become unreachable through l.
func (l *List[V]) Init() *List[V] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

func (l *List[V]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[V]) IsEmpty() bool {
	return l.len == 0
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// Next returns the element after e or nil if e is the last element.
// e must be an element of list l.
func (l *List[V]) Next(e *Element[V]) *Element[V] {
	if n := e.next; n != &l.root {
		return n
	}
	return nil
}

// Prev returns the element before e or nil if e is the first element.
// e must be an element of list l.
func (l *List[V]) Prev(e *Element[V]) *Element[V] {
	if p := e.prev; p != &l.root {
		return p
	}
	return nil
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(v V) *Element[V] {
	l.lazyInit()

	e := newElement(v)
	l.root.prev.link(e)
	l.len++

	return e
}

// PushFront inserts a value at the front of list l and returns the new element.
func (l *List[V]) PushFront(v V) *Element[V] {
	l.lazyInit()

	e := newElement(v)
	l.root.link(e)
	l.len++

	return e
}

// Insert inserts a value immediately before the position of cursor c and
// returns a cursor bound to the new element. Inserting before Begin is
// PushFront, inserting before End is PushBack. c stays bound to its
// element and remains valid.
func (l *List[V]) Insert(v V, c Cursor[V]) Cursor[V] {
	l.checkCursor(c)

	e := newElement(v)
	c.node.prev.link(e)
	l.len++

	return Cursor[V]{list: l, node: e}
}

// PopFront removes the first element and returns its value.
// It returns the zero value and false if the list is empty.
func (l *List[V]) PopFront() (V, bool) {
	if l.len == 0 {
		var zero V
		return zero, false
	}
	return l.Remove(l.root.next), true
}

// PopBack removes the last element and returns its value.
// It returns the zero value and false if the list is empty.
func (l *List[V]) PopBack() (V, bool) {
	if l.len == 0 {
		var zero V
		return zero, false
	}
	return l.Remove(l.root.prev), true
}

// Remove removes an element from the list and returns its value.
// e must be an element of list l that has not already been removed.
func (l *List[V]) Remove(e *Element[V]) V {
	e.unlink()
	l.len--

	return e.Value
}

// Erase removes the element the cursor is bound to and returns its value.
// Erasing End is a harmless no-op returning the zero value and false.
// Only cursors bound to the removed element are invalidated.
func (l *List[V]) Erase(c Cursor[V]) (V, bool) {
	l.checkCursor(c)

	if c.node == &l.root {
		var zero V
		return zero, false
	}

	return l.Remove(c.node), true
}

// Begin returns a cursor bound to the first element,
// or End if the list is empty.
func (l *List[V]) Begin() Cursor[V] {
	l.lazyInit()

	return Cursor[V]{list: l, node: l.root.next}
}

// End returns the cursor marking one past the last element.
func (l *List[V]) End() Cursor[V] {
	l.lazyInit()

	return Cursor[V]{list: l, node: &l.root}
}

// Clone returns a new list holding a copy of each value of l in order.
// The clone shares no elements with l.
func (l *List[V]) Clone() *List[V] {
	c := New[V]()
	for e := l.Front(); e != nil; e = l.Next(e) {
		c.PushBack(e.Value)
	}

	return c
}

// CopyFrom replaces the contents of l with a copy of each value of src
// in order. Copying a list into itself is a no-op.
func (l *List[V]) CopyFrom(src *List[V]) {
	if l == src {
		return
	}

	l.Init()
	for e := src.Front(); e != nil; e = src.Next(e) {
		l.PushBack(e.Value)
	}
}

// TakeFrom moves the contents of src into l in constant time, replacing
// the previous contents of l. Afterwards src is a valid empty list.
// Moving a list into itself is a no-op.
func (l *List[V]) TakeFrom(src *List[V]) {
	if l == src {
		return
	}

	l.Init()
	src.lazyInit()

	if src.len == 0 {
		return
	}

	first, last := src.root.next, src.root.prev
	l.root.next = first
	first.prev = &l.root
	l.root.prev = last
	last.next = &l.root
	l.len = src.len

	src.Init()
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	for e := l.Front(); e != nil; e = l.Next(e) {
		if !f(e) {
			return
		}
	}
}

// All returns an iterator over the values of l in forward order.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := l.Front(); e != nil; e = l.Next(e) {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of l in backward order.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := l.Back(); e != nil; e = l.Prev(e) {
			if !yield(e.Value) {
				return
			}
		}
	}
}

func (l *List[V]) checkCursor(c Cursor[V]) {
	if c.node == nil {
		panic("ringlist: unbound cursor")
	}
	if c.list != l {
		panic("ringlist: cursor of wrong list")
	}
}
