// Package wavefront provides parsers for Wavefront OBJ mesh files and
// their companion MTL material libraries.
//
// OBJ files are assembled into render-ready meshes: one Mesh per material,
// with an interleaved float32 vertex buffer and a uint32 triangle index
// buffer. Repeated references to the same position/texcoord/normal triple
// are welded into a single output vertex. Materials reference texture maps
// by file path only; decoding image data is the caller's concern, as is
// resolving a Mesh.Material name against a parsed material list.
package wavefront

import "errors"

// Parse errors.
var (
	ErrInvalidFile        = errors.New("structurally invalid file")
	ErrUnsupportedCommand = errors.New("unsupported command")
)

// VertexAttributes is a bitfield of the attributes present in a mesh's
// vertex layout.
type VertexAttributes uint32

const (
	AttribPosition VertexAttributes = 1 << iota
	AttribNormal
	AttribTexCoord
)

// Per-attribute component counts (in float32s).
const (
	attribSizePosition = 3
	attribSizeNormal   = 3
	attribSizeTexCoord = 2
)

// OffsetUnused marks an attribute that is not part of a mesh's vertex layout.
const OffsetUnused = ^uint32(0)

// Has returns true if all attributes in attr are set.
func (a VertexAttributes) Has(attr VertexAttributes) bool {
	return a&attr == attr
}

// String returns a human-readable attribute list.
func (a VertexAttributes) String() string {
	if a == 0 {
		return "None"
	}
	s := ""
	if a.Has(AttribPosition) {
		s = "Position"
	}
	if a.Has(AttribNormal) {
		if s != "" {
			s += "|"
		}
		s += "Normal"
	}
	if a.Has(AttribTexCoord) {
		if s != "" {
			s += "|"
		}
		s += "TexCoord"
	}
	return s
}
