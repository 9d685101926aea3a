// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"encoding/binary"
	"math"

	"imoverlay.org/f32"
	"imoverlay.org/internal/opconst"
	"imoverlay.org/op"
	"imoverlay.org/op/paint"
)

// Re-exported op types for decoders outside the op packages.
const (
	TypeClip        = opconst.TypeClip
	TypePopClip     = opconst.TypePopClip
	TypeCustomVerts = opconst.TypeCustomVerts
)

// Reader parses an ops list.
type Reader struct {
	pc  pc
	ops *op.Ops
}

// EncodedOp represents an encoded op returned by
// Reader.
type EncodedOp struct {
	Key  Key
	Data []byte
	Refs []interface{}
}

// Key is a unique key for a given op.
type Key struct {
	ops     *op.Ops
	pc      int
	version int
}

type pc struct {
	data int
	refs int
}

// Reset start reading from the op list.
func (r *Reader) Reset(ops *op.Ops) {
	r.pc = pc{}
	r.ops = ops
}

// Decode returns the next op, or false when the list is exhausted.
func (r *Reader) Decode() (EncodedOp, bool) {
	if r.ops == nil {
		return EncodedOp{}, false
	}
	data := r.ops.Data()
	data = data[r.pc.data:]
	if len(data) == 0 {
		return EncodedOp{}, false
	}
	key := Key{ops: r.ops, pc: r.pc.data, version: r.ops.Version()}
	t := opconst.OpType(data[0])
	n := t.Size()
	nrefs := t.NumRefs()
	data = data[:n]
	refs := r.ops.Refs()
	refs = refs[r.pc.refs:]
	refs = refs[:nrefs]
	r.pc.data += n
	r.pc.refs += nrefs
	return EncodedOp{Key: key, Data: data, Refs: refs}, true
}

// Type returns the op type of e.
func (e EncodedOp) Type() opconst.OpType {
	return opconst.OpType(e.Data[0])
}

// DecodeClip decodes the rectangle of a clip op.
func DecodeClip(data []byte) f32.Rectangle {
	if opconst.OpType(data[0]) != opconst.TypeClip {
		panic("invalid op")
	}
	bo := binary.LittleEndian
	return f32.Rectangle{
		Min: f32.Point{
			X: math.Float32frombits(bo.Uint32(data[1:])),
			Y: math.Float32frombits(bo.Uint32(data[5:])),
		},
		Max: f32.Point{
			X: math.Float32frombits(bo.Uint32(data[9:])),
			Y: math.Float32frombits(bo.Uint32(data[13:])),
		},
	}
}

// DecodeCustomVerts decodes a custom geometry op.
func DecodeCustomVerts(data []byte, refs []interface{}) paint.CustomVertsOp {
	if opconst.OpType(data[0]) != opconst.TypeCustomVerts {
		panic("invalid op")
	}
	bo := binary.LittleEndian
	return paint.CustomVertsOp{
		Layer:    int(int32(bo.Uint32(data[1:]))),
		Brush:    refs[0].(paint.Brush),
		Vertices: refs[1].([]paint.Vertex),
		Indices:  refs[2].([]paint.Index),
	}
}
