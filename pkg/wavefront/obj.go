package wavefront

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// objParser holds one ParseOBJ call's working set. The raw attribute
// buffers are scratch space; only the finished meshes escape the call.
type objParser struct {
	tok *tokenizer

	positions buffer[float32]
	normals   buffer[float32]
	texCoords buffer[float32]

	builders    []*meshBuilder
	curMaterial string
	curMesh     int // index into builders, -1 when unset
}

// ParseOBJ parses OBJ data from a stream into a list of single-material
// meshes. Faces are triangulated as fans and vertices welded, so repeated
// references to the same position/texcoord/normal triple share one output
// vertex. The whole stream is consumed before any result is returned; on
// error the result is nil, never partial.
func ParseOBJ(r io.Reader) ([]Mesh, error) {
	p := &objParser{tok: newTokenizer(r), curMesh: -1}

	for {
		cmd := p.tok.nextToken()
		if cmd == "" {
			break
		}

		var err error
		switch {
		case cmd[0] == '#' || cmd == "o" || cmd == "g" || cmd == "s" || cmd == "mtllib":
			// organizational metadata, not modeled
			p.tok.skipLine()
		case cmd == "v":
			err = p.readFloats(&p.positions, attribSizePosition, "v")
		case cmd == "vn":
			err = p.readFloats(&p.normals, attribSizeNormal, "vn")
		case cmd == "vt":
			err = p.readTexCoord()
		case cmd == "usemtl":
			p.curMaterial = p.tok.restOfLine()
			p.curMesh = -1
		case cmd == "f":
			err = p.readFace()
		default:
			err = fmt.Errorf("%w: %q", ErrUnsupportedCommand, cmd)
		}
		if err != nil {
			return nil, err
		}
	}

	meshes := make([]Mesh, len(p.builders))
	for i, b := range p.builders {
		meshes[i] = b.finish()
	}
	return meshes, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) ([]Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()

	meshes, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return meshes, nil
}

// readFloats reads n floats into buf.
func (p *objParser) readFloats(buf *buffer[float32], n int, cmd string) error {
	for i := 0; i < n; i++ {
		tok := p.tok.nextToken()
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return fmt.Errorf("%w: %s command: bad float %q", ErrInvalidFile, cmd, tok)
		}
		buf.push(float32(v))
	}
	return nil
}

// readTexCoord reads a vt command: two floats, plus an optional third "w"
// component that is consumed and discarded.
func (p *objParser) readTexCoord() error {
	if err := p.readFloats(&p.texCoords, attribSizeTexCoord, "vt"); err != nil {
		return err
	}
	p.tok.nextOnLine()
	return nil
}

// parseVertexRef splits one face-vertex token into its slash-delimited
// index fields and derives the attribute set the token implies.
func parseVertexRef(tok string) (vertexRef, VertexAttributes, error) {
	fields := strings.SplitN(tok, "/", 4)

	var ref vertexRef
	attribs := VertexAttributes(0)

	parse := func(s string, dst *int32, attr VertexAttributes) error {
		if s == "" {
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: bad face index %q", ErrInvalidFile, tok)
		}
		*dst = int32(v)
		attribs |= attr
		return nil
	}

	if err := parse(fields[0], &ref.pos, AttribPosition); err != nil {
		return ref, 0, err
	}
	if len(fields) > 1 {
		if err := parse(fields[1], &ref.texCoord, AttribTexCoord); err != nil {
			return ref, 0, err
		}
	}
	if len(fields) > 2 {
		if err := parse(fields[2], &ref.normal, AttribNormal); err != nil {
			return ref, 0, err
		}
	}

	if !attribs.Has(AttribPosition) {
		return ref, 0, fmt.Errorf("%w: face reference %q has no position index", ErrInvalidFile, tok)
	}
	return ref, attribs, nil
}

// readFace processes an f command: resolves which mesh the face belongs
// to, then fan-triangulates however many references sit on the line.
func (p *objParser) readFace() error {
	first := p.tok.nextOnLine()
	if first == "" {
		return fmt.Errorf("%w: face with no vertex references", ErrInvalidFile)
	}
	v0, spec, err := parseVertexRef(first)
	if err != nil {
		return err
	}

	// A face whose attribute set differs from the active mesh's layout
	// must not write through that layout; force re-resolution.
	if p.curMesh >= 0 && p.builders[p.curMesh].mesh.Attributes != spec {
		p.curMesh = -1
	}

	// Meshes merge by material name across the whole file, so look for an
	// existing mesh before creating one.
	if p.curMesh < 0 {
		for i, b := range p.builders {
			if b.mesh.Material == p.curMaterial && b.mesh.Attributes == spec {
				p.curMesh = i
				break
			}
		}
	}
	if p.curMesh < 0 {
		p.builders = append(p.builders, newMeshBuilder(spec, p.curMaterial))
		p.curMesh = len(p.builders) - 1
	}
	b := p.builders[p.curMesh]

	r1 := p.tok.nextOnLine()
	r2 := p.tok.nextOnLine()
	if r1 == "" || r2 == "" {
		return fmt.Errorf("%w: face with fewer than 3 vertex references", ErrInvalidFile)
	}
	v1, _, err := parseVertexRef(r1)
	if err != nil {
		return err
	}
	v2, _, err := parseVertexRef(r2)
	if err != nil {
		return err
	}

	for {
		if err := p.addTriangle(b, v0, v1, v2); err != nil {
			return err
		}

		next := p.tok.nextOnLine()
		if next == "" {
			break
		}
		v1 = v2
		v2, _, err = parseVertexRef(next)
		if err != nil {
			return err
		}
	}
	return nil
}

// addTriangle reserves room for one triangle's worth of writes, then adds
// its three vertices.
func (p *objParser) addTriangle(b *meshBuilder, v0, v1, v2 vertexRef) error {
	b.indices.reserve(3)
	b.verts.reserve(3 * int(b.mesh.Stride))

	for _, v := range [3]vertexRef{v0, v1, v2} {
		if err := p.addVertex(b, v); err != nil {
			return err
		}
	}
	return nil
}

// resolveIndex normalizes a possibly negative (relative-to-end) 1-based
// index against count elements.
func resolveIndex(idx int32, count int32, what string) (int32, error) {
	if idx < 0 {
		idx += count + 1
	}
	if idx < 1 || idx > count {
		return 0, fmt.Errorf("%w: %s index %d out of range [1, %d]", ErrInvalidFile, what, idx, count)
	}
	return idx, nil
}

// addVertex welds one face reference into the mesh, copying the referenced
// attribute floats into the interleaved vertex buffer on first use.
func (p *objParser) addVertex(b *meshBuilder, v vertexRef) error {
	attribs := b.mesh.Attributes
	var err error

	if attribs.Has(AttribPosition) {
		v.pos, err = resolveIndex(v.pos, int32(p.positions.len()/attribSizePosition), "position")
		if err != nil {
			return err
		}
	} else {
		v.pos = 0
	}
	if attribs.Has(AttribNormal) {
		v.normal, err = resolveIndex(v.normal, int32(p.normals.len()/attribSizeNormal), "normal")
		if err != nil {
			return err
		}
	} else {
		v.normal = 0
	}
	if attribs.Has(AttribTexCoord) {
		v.texCoord, err = resolveIndex(v.texCoord, int32(p.texCoords.len()/attribSizeTexCoord), "texture coordinate")
		if err != nil {
			return err
		}
	} else {
		v.texCoord = 0
	}

	idx, added := b.weld.getOrAdd(v, b.numVertices)
	b.indices.push(idx)
	if !added {
		return nil
	}
	b.numVertices++

	if attribs.Has(AttribPosition) {
		i := (v.pos - 1) * attribSizePosition
		b.verts.push(p.positions.elems[i], p.positions.elems[i+1], p.positions.elems[i+2])
	}
	if attribs.Has(AttribNormal) {
		i := (v.normal - 1) * attribSizeNormal
		b.verts.push(p.normals.elems[i], p.normals.elems[i+1], p.normals.elems[i+2])
	}
	if attribs.Has(AttribTexCoord) {
		i := (v.texCoord - 1) * attribSizeTexCoord
		b.verts.push(p.texCoords.elems[i], p.texCoords.elems[i+1])
	}
	return nil
}
