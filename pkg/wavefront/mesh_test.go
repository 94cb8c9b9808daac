package wavefront

import (
	"strings"
	"testing"

	"github.com/Faultbox/quickmesh/pkg/math"
)

func TestMeshBounds(t *testing.T) {
	input := `
v -1 -2 -3
v 4 5 6
v 0 0 0
f 1 2 3
`
	meshes, err := ParseOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	min, max := meshes[0].Bounds()
	if min != (math.Vec3{X: -1, Y: -2, Z: -3}) {
		t.Errorf("Bounds min = %v, want (-1, -2, -3)", min)
	}
	if max != (math.Vec3{X: 4, Y: 5, Z: 6}) {
		t.Errorf("Bounds max = %v, want (4, 5, 6)", max)
	}
}

func TestMeshBoundsEmpty(t *testing.T) {
	m := Mesh{PosOffset: OffsetUnused}
	min, max := m.Bounds()
	if min != (math.Vec3{}) || max != (math.Vec3{}) {
		t.Errorf("Bounds of position-less mesh = %v %v, want zero vectors", min, max)
	}
}

func TestMeshAccessorsAbsentAttributes(t *testing.T) {
	input := "v 1 2 3\nv 4 5 6\nv 7 8 9\nf 1 2 3\n"
	meshes, err := ParseOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	m := &meshes[0]
	if got := m.Normal(0); got != (math.Vec3{}) {
		t.Errorf("Normal on normal-less mesh = %v, want zero", got)
	}
	if got := m.TexCoord(0); got != (math.Vec2{}) {
		t.Errorf("TexCoord on uv-less mesh = %v, want zero", got)
	}
	if got := m.Position(1); got != (math.Vec3{X: 4, Y: 5, Z: 6}) {
		t.Errorf("Position(1) = %v, want (4, 5, 6)", got)
	}
}

func TestSliceHelpers(t *testing.T) {
	input := `
v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
usemtl a
f 1 2 3
usemtl b
f 1 2 3 4
`
	meshes, err := ParseOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if got := TotalVertexCount(meshes); got != 7 {
		t.Errorf("TotalVertexCount = %d, want 7", got)
	}
	if got := TotalTriangleCount(meshes); got != 3 {
		t.Errorf("TotalTriangleCount = %d, want 3", got)
	}
	if FindMeshByMaterial(meshes, "b") == nil {
		t.Error("FindMeshByMaterial failed to find material b")
	}
	if FindMeshByMaterial(meshes, "c") != nil {
		t.Error("FindMeshByMaterial found a material that does not exist")
	}

	// helpers must be safe on empty results
	if TotalVertexCount(nil) != 0 || TotalTriangleCount(nil) != 0 {
		t.Error("totals over nil slice should be 0")
	}
	if FindMeshByMaterial(nil, "a") != nil {
		t.Error("FindMeshByMaterial over nil slice should be nil")
	}
}

func TestVertexAttributesString(t *testing.T) {
	tests := []struct {
		attribs VertexAttributes
		want    string
	}{
		{0, "None"},
		{AttribPosition, "Position"},
		{AttribPosition | AttribNormal, "Position|Normal"},
		{AttribPosition | AttribTexCoord, "Position|TexCoord"},
		{AttribPosition | AttribNormal | AttribTexCoord, "Position|Normal|TexCoord"},
	}

	for _, tt := range tests {
		if got := tt.attribs.String(); got != tt.want {
			t.Errorf("VertexAttributes(%d).String() = %q, want %q", tt.attribs, got, tt.want)
		}
	}
}
