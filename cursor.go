package ringlist

// Cursor is a bidirectional position in a list: either bound to an
// element, bound to the list's end marker, or unbound (the zero value).
//
// Cursors are comparable; two cursors are equal exactly when they are
// bound to the identical element. A cursor does not own the element it
// is bound to and stays valid for the element's lifetime regardless of
// insertions or removals elsewhere in the same list. Removing the
// element invalidates exactly the cursors bound to it.
//
// Stepping or dereferencing an unbound cursor panics. A cursor bound to
// the end marker may be stepped but not dereferenced.
type Cursor[V any] struct {
	list *List[V]
	node *Element[V]
}

// Next steps the cursor one position forward.
// The ring is closed: stepping forward from the last element yields the
// end marker and stepping forward from the end marker yields the first
// element again.
func (c *Cursor[V]) Next() {
	if c.node == nil {
		panic("ringlist: unbound cursor")
	}
	c.node = c.node.next
}

// Prev steps the cursor one position backward.
// The ring is closed: stepping backward from the first element yields
// the end marker, not an error.
func (c *Cursor[V]) Prev() {
	if c.node == nil {
		panic("ringlist: unbound cursor")
	}
	c.node = c.node.prev
}

// AtEnd reports whether the cursor is bound to the end marker of its list.
func (c Cursor[V]) AtEnd() bool {
	if c.node == nil {
		panic("ringlist: unbound cursor")
	}
	return c.node == &c.list.root
}

// Value returns the value of the element the cursor is bound to.
// It panics if the cursor is unbound or at the end marker.
func (c Cursor[V]) Value() V {
	return *c.Ptr()
}

// Ptr returns a pointer to the value of the element the cursor is bound
// to, allowing in-place mutation. It panics if the cursor is unbound or
// at the end marker.
func (c Cursor[V]) Ptr() *V {
	if c.node == nil {
		panic("ringlist: unbound cursor")
	}
	if c.node == &c.list.root {
		panic("ringlist: cursor out of range")
	}
	return &c.node.Value
}

// Elem returns the element the cursor is bound to,
// or nil if the cursor is unbound or at the end marker.
func (c Cursor[V]) Elem() *Element[V] {
	if c.node == nil || c.node == &c.list.root {
		return nil
	}
	return c.node
}
