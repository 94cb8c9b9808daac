package wavefront

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Color is an RGB color with float32 channels.
type Color struct {
	R, G, B float32
}

// Material is a single non-PBR material from an MTL library. Map fields
// are nil when the file names no such map; a non-nil empty path is a map
// command with an empty payload, which is distinct from absence.
type Material struct {
	Name string

	Ambient  Color
	Diffuse  Color
	Specular Color

	AmbientMap  *string
	DiffuseMap  *string
	SpecularMap *string
	NormalMap   *string

	Opacity         float32
	SpecularExp     float32
	RefractionIndex float32
}

// String returns a short human-readable summary.
func (m *Material) String() string {
	maps := 0
	for _, p := range []*string{m.AmbientMap, m.DiffuseMap, m.SpecularMap, m.NormalMap} {
		if p != nil {
			maps++
		}
	}
	return fmt.Sprintf("Material(%q, diffuse=%.3v, opacity=%g, maps=%d)", m.Name, m.Diffuse, m.Opacity, maps)
}

// FindMaterial returns the first material with the given name, or nil.
// Meshes reference materials by name only, so this is how a Mesh.Material
// field is resolved after loading the companion MTL file.
func FindMaterial(materials []Material, name string) *Material {
	for i := range materials {
		if materials[i].Name == name {
			return &materials[i]
		}
	}
	return nil
}

// mtlParser holds one ParseMTL call's state.
type mtlParser struct {
	tok       *tokenizer
	materials []Material
}

// ParseMTL parses an MTL material library from a stream. Each newmtl
// command starts a fresh material (opacity, specular exponent and
// refraction index default to 1) that subsequent property commands mutate
// until the next newmtl. Duplicate names produce distinct records.
// Unrecognized commands are skipped, matching common MTL extensions in the
// wild.
func ParseMTL(r io.Reader) ([]Material, error) {
	p := &mtlParser{tok: newTokenizer(r)}

	for {
		cmd := p.tok.nextToken()
		if cmd == "" {
			break
		}

		var err error
		switch {
		case cmd[0] == '#' || cmd == "illum" || cmd == "Tf":
			p.tok.skipLine()
		case cmd == "newmtl":
			p.materials = append(p.materials, Material{
				Name:            p.tok.restOfLine(),
				Opacity:         1,
				SpecularExp:     1,
				RefractionIndex: 1,
			})
		case cmd == "Ka":
			err = p.readColor(cmd, func(m *Material, c Color) { m.Ambient = c })
		case cmd == "Kd":
			err = p.readColor(cmd, func(m *Material, c Color) { m.Diffuse = c })
		case cmd == "Ks":
			err = p.readColor(cmd, func(m *Material, c Color) { m.Specular = c })
		case cmd == "d":
			err = p.readScalar(cmd, func(m *Material, v float32) { m.Opacity = v })
		case cmd == "Ns":
			err = p.readScalar(cmd, func(m *Material, v float32) { m.SpecularExp = v })
		case cmd == "Ni":
			err = p.readScalar(cmd, func(m *Material, v float32) { m.RefractionIndex = v })
		case cmd == "map_Ka":
			err = p.readMap(func(m *Material, path *string) { m.AmbientMap = path })
		case cmd == "map_Kd":
			err = p.readMap(func(m *Material, path *string) { m.DiffuseMap = path })
		case cmd == "map_Ks":
			err = p.readMap(func(m *Material, path *string) { m.SpecularMap = path })
		case cmd == "map_Bump":
			err = p.readMap(func(m *Material, path *string) { m.NormalMap = path })
		}
		if err != nil {
			return nil, err
		}
	}

	if p.materials == nil {
		p.materials = []Material{}
	}
	return p.materials, nil
}

// ParseMTLFile parses an MTL file from disk.
func ParseMTLFile(path string) ([]Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening MTL file: %w", err)
	}
	defer f.Close()

	materials, err := ParseMTL(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return materials, nil
}

// current returns the material under construction. A property command
// before the first newmtl is malformed.
func (p *mtlParser) current() (*Material, error) {
	if len(p.materials) == 0 {
		return nil, fmt.Errorf("%w: property command before first newmtl", ErrInvalidFile)
	}
	return &p.materials[len(p.materials)-1], nil
}

func (p *mtlParser) readFloat(cmd string) (float32, error) {
	tok := p.tok.nextToken()
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s command: bad float %q", ErrInvalidFile, cmd, tok)
	}
	return float32(v), nil
}

func (p *mtlParser) readColor(cmd string, set func(*Material, Color)) error {
	m, err := p.current()
	if err != nil {
		return err
	}
	var c Color
	for _, ch := range []*float32{&c.R, &c.G, &c.B} {
		if *ch, err = p.readFloat(cmd); err != nil {
			return err
		}
	}
	set(m, c)
	return nil
}

func (p *mtlParser) readScalar(cmd string, set func(*Material, float32)) error {
	m, err := p.current()
	if err != nil {
		return err
	}
	v, err := p.readFloat(cmd)
	if err != nil {
		return err
	}
	set(m, v)
	return nil
}

func (p *mtlParser) readMap(set func(*Material, *string)) error {
	m, err := p.current()
	if err != nil {
		return err
	}
	path := p.tok.restOfLine()
	set(m, &path)
	return nil
}
