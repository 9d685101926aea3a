// SPDX-License-Identifier: Unlicense OR MIT

/*

Package op implements the host's draw element list.

Widgets describe what they draw by adding operations to an Ops list
during the paint pass. The list is later executed in order by a
renderer such as package raster; operations added later paint over
operations added earlier within the same layer.

Drawing custom geometry restricted to a rectangle:

	import "imoverlay.org/op"
	import "imoverlay.org/op/clip"
	import "imoverlay.org/op/paint"

	ops := new(op.Ops)
	...
	ops.Reset()
	stack := clip.Rect(r).Push(ops)
	paint.CustomVertsOp{Layer: layer, Brush: b, Vertices: v, Indices: i}.Add(ops)
	stack.Pop()

State

Clip scopes are strictly nested: every Push must be matched by exactly
one Pop, in reverse order. Unbalanced scopes panic.

*/
package op

// Ops holds a list of operations. Operations are stored in
// serialized form to avoid garbage during construction of
// the ops list.
type Ops struct {
	// version is incremented at each Reset.
	version int
	// data contains the serialized operations.
	data []byte
	// External references for operations.
	refs []interface{}

	stack stack
}

// StackID identifies a scope pushed on an Ops list. It is for internal
// use only.
type StackID struct {
	id   int
	prev int
}

// stack tracks the integer identities of pushed scopes
// to ensure correct pairing of Push/Pop.
type stack struct {
	currentID int
	nextID    int
	depth     int
}

// Reset the Ops, preparing it for re-use.
func (o *Ops) Reset() {
	o.stack = stack{}
	// Leave references to the GC.
	for i := range o.refs {
		o.refs[i] = nil
	}
	o.data = o.data[:0]
	o.refs = o.refs[:0]
	o.version++
}

// Data is for internal use only.
func (o *Ops) Data() []byte {
	return o.data
}

// Refs is for internal use only.
func (o *Ops) Refs() []interface{} {
	return o.refs
}

// Version is for internal use only.
func (o *Ops) Version() int {
	return o.version
}

// Depth returns the number of scopes currently pushed.
func (o *Ops) Depth() int {
	return o.stack.depth
}

// Write is for internal use only.
func (o *Ops) Write(n int, refs ...interface{}) []byte {
	o.data = append(o.data, make([]byte, n)...)
	o.refs = append(o.refs, refs...)
	return o.data[len(o.data)-n:]
}

// Push is for internal use only.
func (o *Ops) Push() StackID {
	return o.stack.push()
}

// Pop is for internal use only.
func (o *Ops) Pop(sid StackID) {
	o.stack.pop(sid)
}

func (s *stack) push() StackID {
	s.nextID++
	sid := StackID{
		id:   s.nextID,
		prev: s.currentID,
	}
	s.currentID = s.nextID
	s.depth++
	return sid
}

func (s *stack) check(sid StackID) {
	if s.currentID != sid.id {
		panic("unbalanced operation")
	}
}

func (s *stack) pop(sid StackID) {
	s.check(sid)
	s.currentID = sid.prev
	s.depth--
}
