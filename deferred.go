// Package deferred provides a container for values that are expected to be
// populated by the time they are read, but are not guaranteed to be populated
// at construction time. It models "filled in later by a trusted caller"
// without resorting to nil pointers: the cell is always in a well-defined
// state (populated or empty), and reading an empty cell is a loud,
// unconditional failure rather than a silently propagated zero value.
//
// An empty cell can only come into existence in a small, greppable set of
// ways: the zero value of Value, Empty, Placeholder, and a Take that moves
// the value out. When a read-before-write defect surfaces, those are the
// call sites to audit. The populated constructor Of is the normal path and
// is not part of the audit surface.
//
// Callers for whom emptiness is recoverable should probe with Populated or
// the Try variants before reading; the cell itself never recovers, it only
// informs.
package deferred

import "fmt"

// Value represents a deferred value of type T: either populated or empty.
// The zero value of Value is an empty cell, so a Value struct field or array
// element starts out empty without any constructor call.
//
// Value carries no synchronization. A cell shared across goroutines needs
// external locking or single-owner discipline, exactly like any other plain
// Go value.
type Value[T any] struct {
	value T
	isSet bool
}

// Of creates a populated cell holding the given value.
func Of[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// Empty creates an empty cell. Use it where the zero value of Value is
// unavailable or would be unclear at the call site.
//
// Reading the result before a Set is a defect; see Get, Mut and Take.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// Placeholder creates an empty cell, signalling that the caller intends to
// populate it immediately afterwards. It behaves identically to Empty; the
// distinct name exists so that "will be filled in right away" and "value not
// yet known" remain separately searchable when auditing empty-read defects.
func Placeholder[T any]() Value[T] {
	return Value[T]{}
}

// Populated reports whether the cell currently holds a value. It never
// fails and has no side effects. This is the safe probe to use when
// emptiness is a recoverable condition for the caller.
func (c Value[T]) Populated() bool {
	return c.isSet
}

// Set stores the given value in the cell, replacing any previous value.
// The cell is populated afterwards regardless of its prior state. There is
// no inverse operation: nothing on Value clears a populated cell back to
// empty except Take.
func (c *Value[T]) Set(value T) {
	c.value = value
	c.isSet = true
}

// Put stores the given value and returns the previously held value along
// with a boolean indicating whether one was present. Like Set, it always
// leaves the cell populated.
func (c *Value[T]) Put(value T) (T, bool) {
	prev, wasSet := c.value, c.isSet
	c.value = value
	c.isSet = true

	return prev, wasSet
}

// Get returns a copy of the held value. If the cell is empty, Get invokes
// the failure handler and panics; it never returns a zero value in place of
// a missing one. Probe with Populated or TryGet first if emptiness is
// expected.
func (c Value[T]) Get() T {
	if !c.isSet {
		badDeref[T]()
	}

	return c.value
}

// Mut returns a pointer to the held value, allowing in-place mutation.
// The pointer remains valid for the lifetime of the cell; a later Set or
// Take replaces what it points at. If the cell is empty, Mut invokes the
// failure handler and panics.
func (c *Value[T]) Mut() *T {
	if !c.isSet {
		badDeref[T]()
	}

	return &c.value
}

// Take moves the value out of the cell, leaving it empty and re-writable.
// If the cell is already empty, Take invokes the failure handler and panics.
//
// Take is the only operation besides the empty constructors that can produce
// an empty cell, which keeps the audit surface for read-before-write defects
// small.
func (c *Value[T]) Take() T {
	if !c.isSet {
		badTake[T]()
	}

	value := c.value

	var zero T
	c.value = zero
	c.isSet = false

	return value
}

// TryGet returns the held value and true, or the zero value and false if the
// cell is empty. It never panics.
func (c Value[T]) TryGet() (T, bool) {
	return c.value, c.isSet
}

// TryMut returns a pointer to the held value and true, or nil and false if
// the cell is empty. It never panics.
func (c *Value[T]) TryMut() (*T, bool) {
	if !c.isSet {
		return nil, false
	}

	return &c.value, true
}

// TryTake moves the value out of the cell if one is present, leaving the
// cell empty, and reports whether a value was moved. On an empty cell it
// returns the zero value and false without failing.
func (c *Value[T]) TryTake() (T, bool) {
	if !c.isSet {
		var zero T

		return zero, false
	}

	value := c.value

	var zero T
	c.value = zero
	c.isSet = false

	return value, true
}

// String returns a string representation of the cell.
// Returns "Populated(value)" if a value is held, or "Empty" otherwise.
func (c Value[T]) String() string {
	if c.isSet {
		return fmt.Sprintf("Populated(%v)", c.value)
	}

	return "Empty"
}
