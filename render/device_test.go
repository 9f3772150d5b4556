package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thedaneeffect/ebiten-obj-playground/objload"
	"github.com/thedaneeffect/ebiten-obj-playground/primitive"
)

const squareObj = `# Blender v2.78 (sub 0) OBJ File: ''
o Square
v -0.5 -0.5 0
v 0.5 -0.5 0
v 0.5 0.5 0
v -0.5 0.5 0
vn 0.6 0.8 0
f 1//1 2//1 3//1 4//1
o Outline
l 1 2
`

func newTestDevice(t *testing.T, opts ...Option) (*Device, *objload.Collection) {
	t.Helper()
	geoms, err := objload.ParseBytes([]byte(squareObj))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	d := NewDevice(NewViewport(0, 0, 100, 100), opts...)
	if err := geoms.UploadAll(d); err != nil {
		t.Fatalf("UploadAll() error = %v", err)
	}
	return d, geoms
}

func TestDeviceUploadTriangles(t *testing.T) {
	d, _ := newTestDevice(t, WithTint(vec3{0.5, 0.25, 1}))

	m := d.meshes[0]
	if m.name != "Square" {
		t.Fatalf("meshes[0] = %s, want Square", m.name)
	}
	if len(m.vertices) != 6 || len(m.indices) != 6 {
		t.Fatalf("got %d vertices, %d indices, want 6 and 6", len(m.vertices), len(m.indices))
	}
	for i, idx := range m.indices {
		if int(idx) != i {
			t.Errorf("indices[%d] = %d, want %d", i, idx, i)
		}
	}

	want := []vec2{{25, 75}, {75, 75}, {75, 25}, {75, 25}, {25, 25}, {25, 75}}
	for i, v := range m.vertices {
		if v.DstX != want[i].X() || v.DstY != want[i].Y() {
			t.Errorf("vertices[%d] = (%v, %v), want %v", i, v.DstX, v.DstY, want[i])
		}
		if v.Custom0 != 0.6 || v.Custom1 != 0.8 {
			t.Errorf("vertices[%d] normal = (%v, %v), want (0.6, 0.8)", i, v.Custom0, v.Custom1)
		}
		if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 1 || v.ColorA != 1 {
			t.Errorf("vertices[%d] color = %v %v %v %v, want tint", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestDeviceUploadLines(t *testing.T) {
	d, _ := newTestDevice(t, WithLineWidth(2))

	m := d.meshes[1]
	if m.name != "Outline" || m.style != objload.Lines {
		t.Fatalf("meshes[1] = %s %v, want Outline lines", m.name, m.style)
	}
	want := []vec2{{25, 74}, {75, 74}, {75, 76}, {25, 76}}
	if len(m.vertices) != len(want) {
		t.Fatalf("len(vertices) = %d, want %d", len(m.vertices), len(want))
	}
	for i, v := range m.vertices {
		if v.DstX != want[i].X() || v.DstY != want[i].Y() {
			t.Errorf("vertices[%d] = (%v, %v), want %v", i, v.DstX, v.DstY, want[i])
		}
		if v.Custom0 != 0 || v.Custom1 != 0 {
			t.Errorf("vertices[%d] has a normal, want none", i)
		}
	}
	wantIdx := []uint16{0, 1, 2, 2, 3, 0}
	for i := range wantIdx {
		if m.indices[i] != wantIdx[i] {
			t.Errorf("indices = %v, want %v", m.indices, wantIdx)
			break
		}
	}
}

func TestDeviceUploadEdgeCases(t *testing.T) {
	d := NewDevice(NewViewport(0, 0, 100, 100))

	degenerate := &objload.Geometry{
		Name:     "dot",
		Style:    objload.Lines,
		Vertices: []objload.Vertex{{}, {}},
	}
	if err := d.Upload(degenerate); err != nil {
		t.Fatalf("Upload(dot) error = %v", err)
	}
	if err := d.Upload(&objload.Geometry{Name: "empty"}); err != nil {
		t.Fatalf("Upload(empty) error = %v", err)
	}
	if d.TriangleCount() != 0 {
		t.Errorf("TriangleCount() = %d, want 0", d.TriangleCount())
	}

	err := d.Upload(&objload.Geometry{Name: "odd", Style: objload.DrawStyle(7)})
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("Upload(odd) error = %v, want ErrUnknownStyle", err)
	}

	huge := &objload.Geometry{
		Name:     "huge",
		Style:    objload.Triangles,
		Vertices: make([]objload.Vertex, 3*21846),
	}
	if err := d.Upload(huge); !errors.Is(err, ErrTooManyVertices) {
		t.Errorf("Upload(huge) error = %v, want ErrTooManyVertices", err)
	}

	if got := strings.Join(d.Names(), ","); got != "dot,empty" {
		t.Errorf("Names() = %s, want dot,empty", got)
	}
}

func TestDeviceReplace(t *testing.T) {
	d, geoms := newTestDevice(t)
	if err := d.Upload(geoms.Get("Square")); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(d.Names(), ","); got != "Outline,Square" {
		t.Errorf("Names() = %s, want Outline,Square", got)
	}
	if d.TriangleCount() != 4 {
		t.Errorf("TriangleCount() = %d, want 4", d.TriangleCount())
	}
}

func TestDeviceUploadPrimitive(t *testing.T) {
	d := NewDevice(NewViewport(0, 0, 200, 100))
	if err := d.UploadPrimitive("box", primitive.Box()); err != nil {
		t.Fatalf("UploadPrimitive() error = %v", err)
	}

	m := d.meshes[0]
	if len(m.vertices) != 4 || len(m.indices) != 6 {
		t.Fatalf("got %d vertices, %d indices, want 4 and 6", len(m.vertices), len(m.indices))
	}
	first := m.vertices[0]
	if first.DstX != 75 || first.DstY != 62.5 {
		t.Errorf("vertices[0] = (%v, %v), want (75, 62.5)", first.DstX, first.DstY)
	}
	if first.ColorR != 1 || first.ColorG != 0 || first.ColorB != 0 {
		t.Errorf("vertices[0] color = %v %v %v, want red", first.ColorR, first.ColorG, first.ColorB)
	}

	bad := &primitive.Mesh{Vertices: make([]primitive.ColorVertex, 2), Indices: []uint16{0, 1, 2}}
	if err := d.UploadPrimitive("bad", bad); err == nil {
		t.Error("UploadPrimitive(bad) error = nil, want index error")
	}
}

func TestDevicePick(t *testing.T) {
	d, _ := newTestDevice(t)

	tests := []struct {
		x, y float32
		want string
	}{
		{60, 60, "Square"},
		{40, 40, "Square"},
		{30, 75.5, "Outline"},
		{5, 5, ""},
		{95, 50, ""},
	}
	for _, tt := range tests {
		if got := d.Pick(tt.x, tt.y); got != tt.want {
			t.Errorf("Pick(%v, %v) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}

	d.SetHighlight("Square")
	if d.Highlight() != "Square" {
		t.Errorf("Highlight() = %q, want Square", d.Highlight())
	}
}

var _ objload.Uploader = (*Device)(nil)

func TestDeviceVertexLayout(t *testing.T) {
	// SrcX/SrcY stay zero: the shader samples no image
	d, _ := newTestDevice(t)
	for _, m := range d.meshes {
		for _, v := range m.vertices {
			if v != (ebiten.Vertex{DstX: v.DstX, DstY: v.DstY, ColorR: v.ColorR, ColorG: v.ColorG, ColorB: v.ColorB, ColorA: v.ColorA, Custom0: v.Custom0, Custom1: v.Custom1}) {
				t.Fatalf("vertex %+v sets unexpected fields", v)
			}
		}
	}
}
