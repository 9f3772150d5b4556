// Package render uploads assembled geometry into ebiten vertex and index
// buffers and draws it.
package render

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thedaneeffect/ebiten-obj-playground/objload"
	"github.com/thedaneeffect/ebiten-obj-playground/primitive"
)

var (
	ErrTooManyVertices = errors.New("mesh needs more than 65535 vertices")
	ErrUnknownStyle    = errors.New("unknown draw style")
)

const default_line_width = 2

// Option configures a Device.
type Option func(*Device)

// WithLineWidth sets the on-screen width, in pixels, of line geometry.
func WithLineWidth(px float32) Option {
	return func(d *Device) {
		if px > 0 {
			d.line_width = px
		}
	}
}

// WithTint sets the color of geometry that has no colors of its own.
func WithTint(rgb vec3) Option {
	return func(d *Device) {
		d.tint = rgb
	}
}

// WithLight sets the 2D direction used to shade triangles by their normals.
func WithLight(dir vec2) Option {
	return func(d *Device) {
		if dir.Len() > 0 {
			d.light = dir.Normalize()
		}
	}
}

// WithLogger sets the logger. The default is objload.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(d *Device) {
		if l != nil {
			d.log = l
		}
	}
}

type mesh struct {
	name     string
	style    objload.DrawStyle
	vertices []ebiten.Vertex
	indices  []uint16
}

// Device keeps ebiten buffers for uploaded geometry. It implements
// objload.Uploader. A Device is not safe for concurrent use.
type Device struct {
	viewport   Viewport
	line_width float32
	tint       vec3
	light      vec2
	log        *slog.Logger

	shader    *ebiten.Shader
	meshes    []*mesh
	highlight string
}

func NewDevice(viewport Viewport, opts ...Option) *Device {
	d := &Device{
		viewport:   viewport,
		line_width: default_line_width,
		tint:       vec3{0.85, 0.85, 0.85},
		light:      vec2{0.6, 0.8},
		log:        objload.Logger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Upload converts g into screen-space ebiten vertices. Triangles map one to
// one; each line segment becomes a thin quad. Uploading a name twice
// replaces the earlier mesh.
func (d *Device) Upload(g *objload.Geometry) error {
	m := &mesh{name: g.Name, style: g.Style}
	cr, cg, cb := d.tint.Elem()

	switch g.Style {
	case objload.StyleNone:
		// declared but never given a line or face

	case objload.Triangles:
		n := len(g.Vertices) - len(g.Vertices)%3
		if n > math.MaxUint16 {
			return fmt.Errorf("%w: %d", ErrTooManyVertices, n)
		}
		m.vertices = make([]ebiten.Vertex, 0, n)
		m.indices = make([]uint16, 0, n)
		for _, v := range g.Vertices[:n] {
			p := d.viewport.to_screen(v.Position)
			m.indices = append(m.indices, uint16(len(m.vertices)))
			m.vertices = append(m.vertices, ebiten.Vertex{
				DstX:    p.X(),
				DstY:    p.Y(),
				ColorR:  cr,
				ColorG:  cg,
				ColorB:  cb,
				ColorA:  1,
				Custom0: v.Normal.X(),
				Custom1: v.Normal.Y(),
			})
		}

	case objload.Lines:
		segments := len(g.Vertices) / 2
		if segments*4 > math.MaxUint16 {
			return fmt.Errorf("%w: %d", ErrTooManyVertices, segments*4)
		}
		for i := 0; i < segments; i++ {
			a := d.viewport.to_screen(g.Vertices[2*i].Position)
			b := d.viewport.to_screen(g.Vertices[2*i+1].Position)
			quad, ok := thick_segment(a, b, d.line_width)
			if !ok {
				continue
			}
			base := uint16(len(m.vertices))
			for _, q := range quad {
				m.vertices = append(m.vertices, ebiten.Vertex{
					DstX:   q.X(),
					DstY:   q.Y(),
					ColorR: cr,
					ColorG: cg,
					ColorB: cb,
					ColorA: 1,
				})
			}
			m.indices = append(m.indices,
				base, base+1, base+2,
				base+2, base+3, base,
			)
		}

	default:
		return fmt.Errorf("%w: %v", ErrUnknownStyle, g.Style)
	}

	d.put(m)
	d.log.Debug("render: uploaded", "name", g.Name, "style", g.Style,
		"vertices", len(m.vertices), "indices", len(m.indices))
	return nil
}

// UploadPrimitive uploads an indexed primitive with its own vertex colors.
func (d *Device) UploadPrimitive(name string, p *primitive.Mesh) error {
	if len(p.Vertices) > math.MaxUint16 {
		return fmt.Errorf("%w: %d", ErrTooManyVertices, len(p.Vertices))
	}
	for _, i := range p.Indices {
		if int(i) >= len(p.Vertices) {
			return fmt.Errorf("primitive %q: index %d out of range", name, i)
		}
	}

	m := &mesh{
		name:     name,
		style:    p.Style,
		vertices: make([]ebiten.Vertex, len(p.Vertices)),
		indices:  append([]uint16(nil), p.Indices...),
	}
	for i, v := range p.Vertices {
		s := d.viewport.to_screen(v.Position)
		m.vertices[i] = ebiten.Vertex{
			DstX:   s.X(),
			DstY:   s.Y(),
			ColorR: v.Color.X(),
			ColorG: v.Color.Y(),
			ColorB: v.Color.Z(),
			ColorA: 1,
		}
	}
	d.put(m)
	return nil
}

func (d *Device) put(m *mesh) {
	for i, old := range d.meshes {
		if old.name == m.name {
			d.meshes = append(d.meshes[:i], d.meshes[i+1:]...)
			break
		}
	}
	d.meshes = append(d.meshes, m)
}

// Names returns the uploaded mesh names in draw order.
func (d *Device) Names() []string {
	names := make([]string, len(d.meshes))
	for i, m := range d.meshes {
		names[i] = m.name
	}
	return names
}

// TriangleCount returns the number of triangles Draw submits.
func (d *Device) TriangleCount() int {
	n := 0
	for _, m := range d.meshes {
		n += len(m.indices) / 3
	}
	return n
}

// SetHighlight draws the named mesh brighter. An empty name clears it.
func (d *Device) SetHighlight(name string) {
	d.highlight = name
}

func (d *Device) Highlight() string {
	return d.highlight
}

// Pick returns the name of the topmost mesh covering the screen point, or "".
func (d *Device) Pick(x, y float32) string {
	for i := len(d.meshes) - 1; i >= 0; i-- {
		m := d.meshes[i]
		for t := 0; t+2 < len(m.indices); t += 3 {
			a := m.vertices[m.indices[t]]
			b := m.vertices[m.indices[t+1]]
			c := m.vertices[m.indices[t+2]]
			if !point_in_triangle_bounds(x, y, a.DstX, a.DstY, b.DstX, b.DstY, c.DstX, c.DstY) {
				continue
			}
			if point_in_triangle(x, y, a.DstX, a.DstY, b.DstX, b.DstY, c.DstX, c.DstY) {
				return m.name
			}
		}
	}
	return ""
}

// Draw renders every uploaded mesh onto target in upload order. The shader
// is compiled on first use.
func (d *Device) Draw(target *ebiten.Image) error {
	if d.shader == nil {
		s, err := ebiten.NewShader([]byte(shader_src))
		if err != nil {
			return fmt.Errorf("compile shader: %w", err)
		}
		d.shader = s
	}

	for _, m := range d.meshes {
		if len(m.indices) == 0 {
			continue
		}
		var highlight float32
		if m.name == d.highlight {
			highlight = 1
		}
		target.DrawTrianglesShader(m.vertices, m.indices, d.shader, &ebiten.DrawTrianglesShaderOptions{
			Uniforms: map[string]any{
				"Light":     []float32{d.light.X(), d.light.Y()},
				"Highlight": highlight,
			},
			AntiAlias: true,
		})
	}
	return nil
}
