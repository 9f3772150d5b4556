// Package primitive builds the fixed window-space shapes (triangle, box and
// circle) that the viewer can show next to the loaded geometry.
package primitive

import (
	"math"
	"math/rand/v2"

	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/thedaneeffect/ebiten-obj-playground/objload"
)

type (
	vec2 = mgl.Vec2
	vec3 = mgl.Vec3
)

var (
	red   = vec3{1, 0, 0}
	green = vec3{0, 1, 0}
	blue  = vec3{0, 0, 1}
)

// ColorVertex is a window-space position with an RGB color.
type ColorVertex struct {
	Position vec2
	Color    vec3
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []ColorVertex
	Indices  []uint16
	Style    objload.DrawStyle
}

// Triangle returns a 0.5 by 0.5 triangle centered on the origin with a red,
// a green and a blue corner.
func Triangle() *Mesh {
	return &Mesh{
		Vertices: []ColorVertex{
			{vec2{-0.25, -0.25}, red},   // left bottom
			{vec2{+0.25, -0.25}, green}, // right bottom
			{vec2{+0.00, +0.25}, blue},  // center top
		},
		// counterclockwise
		Indices: []uint16{0, 1, 2},
		Style:   objload.Triangles,
	}
}

// Box returns a 0.5 by 0.5 square centered on the origin.
func Box() *Mesh {
	return &Mesh{
		Vertices: []ColorVertex{
			{vec2{-0.25, -0.25}, red},   // left bottom
			{vec2{+0.25, -0.25}, green}, // right bottom
			{vec2{+0.25, +0.25}, blue},  // right top
			{vec2{-0.25, +0.25}, green}, // left top
		},
		Indices: []uint16{
			0, 1, 2,
			2, 3, 0,
		},
		Style: objload.Triangles,
	}
}

const (
	circle_segments = 32
	circle_radius   = 0.25
)

// Circle returns a 32 point circle of radius 0.25 with random vertex colors.
// rng may be nil to use the global source.
func Circle(rng *rand.Rand) *Mesh {
	return CircleN(circle_segments, circle_radius, rng)
}

// CircleN returns a circle with the given number of rim points, fanned from
// the first one. Fewer than 3 points yields an empty mesh.
//
// The points are produced by repeatedly rotating the previous one: step along
// the tangent, then pull back onto the circle. See
// http://slabode.exofire.net/circle_draw.shtml.
func CircleN(segments int, radius float32, rng *rand.Rand) *Mesh {
	m := &Mesh{Style: objload.Triangles}
	if segments < 3 || segments > math.MaxUint16 {
		return m
	}

	theta := 2 * math.Pi / float64(segments)
	tangential := float32(math.Tan(theta))
	radial := float32(math.Cos(theta))

	x, y := radius, float32(0)
	for range segments {
		m.Vertices = append(m.Vertices, ColorVertex{
			Position: vec2{x, y},
			Color:    random_color(rng),
		})

		tx := -y * tangential
		ty := x * tangential

		x += tx
		y += ty

		x *= radial
		y *= radial
	}

	// first rim point plus each successive pair
	for i := 1; i < segments-1; i++ {
		m.Indices = append(m.Indices, 0, uint16(i), uint16(i+1))
	}
	return m
}

func random_color(rng *rand.Rand) vec3 {
	if rng == nil {
		return vec3{rand.Float32(), rand.Float32(), rand.Float32()}
	}
	return vec3{rng.Float32(), rng.Float32(), rng.Float32()}
}

// Translated returns a copy of m moved by offset.
func (m *Mesh) Translated(offset vec2) *Mesh {
	out := &Mesh{
		Vertices: make([]ColorVertex, len(m.Vertices)),
		Indices:  append([]uint16(nil), m.Indices...),
		Style:    m.Style,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = ColorVertex{Position: v.Position.Add(offset), Color: v.Color}
	}
	return out
}

// Flatten expands the index list so that every 3 vertices form a triangle.
func (m *Mesh) Flatten() []ColorVertex {
	out := make([]ColorVertex, 0, len(m.Indices))
	for _, i := range m.Indices {
		out = append(out, m.Vertices[i])
	}
	return out
}

// Geometry converts m into the layout produced by objload, so that it can go
// through the same upload path as loaded objects. Colors are dropped and the
// normals are zero.
func (m *Mesh) Geometry(name string) *objload.Geometry {
	flat := m.Flatten()
	g := &objload.Geometry{
		Name:     name,
		Style:    m.Style,
		Vertices: make([]objload.Vertex, len(flat)),
	}
	for i, v := range flat {
		g.Vertices[i].Position = v.Position
	}
	return g
}
