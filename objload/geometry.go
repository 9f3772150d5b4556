package objload

import (
	"fmt"

	mgl "github.com/go-gl/mathgl/mgl32"
)

type (
	vec2 = mgl.Vec2
	vec3 = mgl.Vec3
)

// DrawStyle tells how the vertices of a Geometry are grouped into primitives.
type DrawStyle int

const (
	// StyleNone is the style of an object that has not seen a line or face yet.
	StyleNone DrawStyle = iota
	Lines
	Triangles
)

func (s DrawStyle) String() string {
	switch s {
	case StyleNone:
		return "none"
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	}
	return fmt.Sprintf("DrawStyle(%d)", int(s))
}

// VerticesPerPrimitive returns 2 for Lines, 3 for Triangles and 0 otherwise.
func (s DrawStyle) VerticesPerPrimitive() int {
	switch s {
	case Lines:
		return 2
	case Triangles:
		return 3
	}
	return 0
}

// Vertex is a single assembled vertex: the XY of a file position and the XY
// of a file normal. Line vertices have a zero normal.
type Vertex struct {
	Position vec2
	Normal   vec2
}

func new_vertex(position, normal vec3) Vertex {
	return Vertex{
		Position: position.Vec2(),
		Normal:   normal.Vec2(),
	}
}

// Geometry is one named object of a file.
type Geometry struct {
	Name     string
	Style    DrawStyle
	Vertices []Vertex

	// kinds of primitives seen so far, used by strict mode
	has_lines bool
	has_faces bool
}

// PrimitiveCount returns the number of whole segments or triangles in
// g.Vertices for g.Style.
func (g *Geometry) PrimitiveCount() int {
	n := g.Style.VerticesPerPrimitive()
	if n == 0 {
		return 0
	}
	return len(g.Vertices) / n
}

// Mixed reports whether both line and face records were assembled into g.
func (g *Geometry) Mixed() bool {
	return g.has_lines && g.has_faces
}

// Collection maps object names to their geometry, remembering the order in
// which the names were declared.
type Collection struct {
	by_name map[string]*Geometry
	order   []string

	// Diagnostics holds the non-fatal conditions met while parsing.
	Diagnostics []Diagnostic
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{by_name: make(map[string]*Geometry)}
}

// Len returns the number of objects.
func (c *Collection) Len() int {
	return len(c.order)
}

// Get returns the geometry named name, or nil.
func (c *Collection) Get(name string) *Geometry {
	return c.by_name[name]
}

// Names returns the object names in declaration order. A name declared twice
// appears once, at the position of its last declaration.
func (c *Collection) Names() []string {
	return append([]string(nil), c.order...)
}

// Each calls fn for every object in declaration order until fn returns false.
func (c *Collection) Each(fn func(g *Geometry) bool) {
	for _, name := range c.order {
		if !fn(c.by_name[name]) {
			return
		}
	}
}

// Declare creates an empty geometry called name, replacing any geometry that
// already has that name.
func (c *Collection) Declare(name string) *Geometry {
	if c.by_name == nil {
		c.by_name = make(map[string]*Geometry)
	}
	if _, ok := c.by_name[name]; ok {
		for i, n := range c.order {
			if n == name {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
	g := &Geometry{Name: name}
	c.by_name[name] = g
	c.order = append(c.order, name)
	return g
}

// Uploader hands geometry over to a graphics device.
type Uploader interface {
	Upload(g *Geometry) error
}

// UploadAll uploads every object in declaration order and stops at the first
// failure.
func (c *Collection) UploadAll(u Uploader) error {
	for _, name := range c.order {
		if err := u.Upload(c.by_name[name]); err != nil {
			return fmt.Errorf("upload %q: %w", name, err)
		}
	}
	return nil
}
