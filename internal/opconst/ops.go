// SPDX-License-Identifier: Unlicense OR MIT

package opconst

type OpType byte

// Start at a high number for easier debugging.
const firstOpIndex = 200

const (
	TypeClip OpType = iota + firstOpIndex
	TypePopClip
	TypeCustomVerts
)

const (
	TypeClipLen        = 1 + 4*4
	TypePopClipLen     = 1
	TypeCustomVertsLen = 1 + 4
)

func (t OpType) Size() int {
	return [...]int{
		TypeClipLen,
		TypePopClipLen,
		TypeCustomVertsLen,
	}[t-firstOpIndex]
}

func (t OpType) NumRefs() int {
	switch t {
	case TypeCustomVerts:
		// Brush, vertices and indices.
		return 3
	default:
		return 0
	}
}

func (t OpType) String() string {
	switch t {
	case TypeClip:
		return "Clip"
	case TypePopClip:
		return "PopClip"
	case TypeCustomVerts:
		return "CustomVerts"
	default:
		panic("unknown OpType")
	}
}
