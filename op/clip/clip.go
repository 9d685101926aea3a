// SPDX-License-Identifier: Unlicense OR MIT

package clip

import (
	"encoding/binary"
	"math"

	"imoverlay.org/f32"
	"imoverlay.org/internal/opconst"
	"imoverlay.org/op"
)

// Op restricts subsequent drawing to the intersection of the
// existing clip zone and a rectangle.
type Op struct {
	rect f32.Rectangle
}

// Stack represents an Op pushed on the clip stack.
type Stack struct {
	ops *op.Ops
	id  op.StackID
}

// Rect returns the clip Op for the zone r.
func Rect(r f32.Rectangle) Op {
	return Op{rect: r}
}

// Bounds returns the clip zone.
func (p Op) Bounds() f32.Rectangle {
	return p.rect
}

// Push saves the current clip zone on the stack and intersects
// it with p.
func (p Op) Push(o *op.Ops) Stack {
	id := o.Push()
	data := o.Write(opconst.TypeClipLen)
	data[0] = byte(opconst.TypeClip)
	bo := binary.LittleEndian
	bo.PutUint32(data[1:], math.Float32bits(p.rect.Min.X))
	bo.PutUint32(data[5:], math.Float32bits(p.rect.Min.Y))
	bo.PutUint32(data[9:], math.Float32bits(p.rect.Max.X))
	bo.PutUint32(data[13:], math.Float32bits(p.rect.Max.Y))
	return Stack{ops: o, id: id}
}

// Pop restores the clip zone in effect before the matching Push.
func (s Stack) Pop() {
	s.ops.Pop(s.id)
	data := s.ops.Write(opconst.TypePopClipLen)
	data[0] = byte(opconst.TypePopClip)
}
