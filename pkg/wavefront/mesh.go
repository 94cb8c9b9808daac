package wavefront

import "github.com/Faultbox/quickmesh/pkg/math"

// Mesh is an assembled single-material mesh. Vertices are interleaved
// float32s laid out according to the attribute offsets; Indices always
// describe whole triangles, so its length is a multiple of 3.
type Mesh struct {
	Attributes VertexAttributes
	Stride     uint32 // floats per vertex

	// Per-attribute offsets within a vertex, in floats, or OffsetUnused
	// when the attribute is absent.
	PosOffset      uint32
	NormalOffset   uint32
	TexCoordOffset uint32

	Vertices []float32
	Indices  []uint32

	// Material is the name given by the usemtl command, "" if none was in
	// effect. It is a textual reference only; resolve it against a
	// separately parsed material list with FindMaterial.
	Material string
}

// NumVertices returns the number of assembled vertices.
func (m *Mesh) NumVertices() int {
	if m.Stride == 0 {
		return 0
	}
	return len(m.Vertices) / int(m.Stride)
}

// NumTriangles returns the number of triangles.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Position returns vertex i's position, or the zero vector if positions
// are absent from the layout.
func (m *Mesh) Position(i int) math.Vec3 {
	if m.PosOffset == OffsetUnused {
		return math.Vec3{}
	}
	base := uint32(i)*m.Stride + m.PosOffset
	return math.Vec3{X: m.Vertices[base], Y: m.Vertices[base+1], Z: m.Vertices[base+2]}
}

// Normal returns vertex i's normal, or the zero vector if normals are
// absent from the layout.
func (m *Mesh) Normal(i int) math.Vec3 {
	if m.NormalOffset == OffsetUnused {
		return math.Vec3{}
	}
	base := uint32(i)*m.Stride + m.NormalOffset
	return math.Vec3{X: m.Vertices[base], Y: m.Vertices[base+1], Z: m.Vertices[base+2]}
}

// TexCoord returns vertex i's texture coordinate, or the zero vector if
// texture coordinates are absent from the layout.
func (m *Mesh) TexCoord(i int) math.Vec2 {
	if m.TexCoordOffset == OffsetUnused {
		return math.Vec2{}
	}
	base := uint32(i)*m.Stride + m.TexCoordOffset
	return math.Vec2{X: m.Vertices[base], Y: m.Vertices[base+1]}
}

// Bounds returns the axis-aligned bounding box of the mesh's positions.
// Both corners are zero for a mesh without positions or vertices.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if m.PosOffset == OffsetUnused || m.NumVertices() == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	min = m.Position(0)
	max = min
	for i := 1; i < m.NumVertices(); i++ {
		p := m.Position(i)
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}

// FindMeshByMaterial returns the first mesh referencing the named
// material, or nil if none does.
func FindMeshByMaterial(meshes []Mesh, name string) *Mesh {
	for i := range meshes {
		if meshes[i].Material == name {
			return &meshes[i]
		}
	}
	return nil
}

// TotalVertexCount returns the number of vertices across all meshes.
func TotalVertexCount(meshes []Mesh) int {
	total := 0
	for i := range meshes {
		total += meshes[i].NumVertices()
	}
	return total
}

// TotalTriangleCount returns the number of triangles across all meshes.
func TotalTriangleCount(meshes []Mesh) int {
	total := 0
	for i := range meshes {
		total += meshes[i].NumTriangles()
	}
	return total
}

// meshBuilder accumulates one mesh during OBJ parsing. The weld map is
// scoped to this mesh and discarded once parsing finishes.
type meshBuilder struct {
	mesh        Mesh
	verts       buffer[float32]
	indices     buffer[uint32]
	weld        *vertexMap
	numVertices uint32
}

// newMeshBuilder fixes the vertex layout from the attribute set of the
// face that created the mesh.
func newMeshBuilder(attribs VertexAttributes, material string) *meshBuilder {
	m := Mesh{
		Attributes:     attribs,
		PosOffset:      OffsetUnused,
		NormalOffset:   OffsetUnused,
		TexCoordOffset: OffsetUnused,
		Material:       material,
	}

	if attribs.Has(AttribPosition) {
		m.PosOffset = m.Stride
		m.Stride += attribSizePosition
	}
	if attribs.Has(AttribNormal) {
		m.NormalOffset = m.Stride
		m.Stride += attribSizeNormal
	}
	if attribs.Has(AttribTexCoord) {
		m.TexCoordOffset = m.Stride
		m.Stride += attribSizeTexCoord
	}

	return &meshBuilder{mesh: m, weld: newVertexMap()}
}

// finish hands the accumulated buffers to the mesh and drops the weld map.
func (b *meshBuilder) finish() Mesh {
	m := b.mesh
	m.Vertices = b.verts.elems
	m.Indices = b.indices.elems
	if m.Vertices == nil {
		m.Vertices = []float32{}
	}
	if m.Indices == nil {
		m.Indices = []uint32{}
	}
	return m
}
