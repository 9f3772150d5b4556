package render

import mgl "github.com/go-gl/mathgl/mgl32"

type (
	float = float32
	vec2  = mgl.Vec2
	vec3  = mgl.Vec3
)

// Viewport maps window space (X and Y in [-1, +1], +Y up) onto a rectangle of
// screen pixels (+Y down).
type Viewport struct {
	x      int
	y      int
	w      int
	h      int
	w_half float
	h_half float
}

func NewViewport(x, y, w, h int) Viewport {
	return Viewport{
		x:      x,
		y:      y,
		w:      w,
		h:      h,
		w_half: float(w) / 2,
		h_half: float(h) / 2,
	}
}

func (v Viewport) Width() int  { return v.w }
func (v Viewport) Height() int { return v.h }

func viewport_transform(ndc, dimension_half float) float {
	return dimension_half*ndc + dimension_half
}

func (v Viewport) to_screen(p vec2) vec2 {
	return vec2{
		float(v.x) + viewport_transform(p.X(), v.w_half),
		float(v.y) + float(v.h) - viewport_transform(p.Y(), v.h_half),
	}
}

// thick_segment returns the corners of a quad of the given width centered on
// the segment a->b, or false when the segment has no length.
func thick_segment(a, b vec2, width float) ([4]vec2, bool) {
	d := b.Sub(a)
	if d.Len() == 0 {
		return [4]vec2{}, false
	}
	n := vec2{-d.Y(), d.X()}.Normalize().Mul(width / 2)
	return [4]vec2{a.Sub(n), b.Sub(n), b.Add(n), a.Add(n)}, true
}

func point_in_triangle_bounds(x, y, xA, yA, xB, yB, xC, yC float32) bool {
	if (y < yA) && (y < yB) && (y < yC) {
		return false
	}
	if (y > yA) && (y > yB) && (y > yC) {
		return false
	}
	if (x < xA) && (x < xB) && (x < xC) {
		return false
	}
	return (x <= xA) || (x <= xB) || (x <= xC)
}

func point_in_triangle(x, y, x1, y1, x2, y2, x3, y3 float32) bool {
	v0x, v0y := x3-x1, y3-y1
	v1x, v1y := x2-x1, y2-y1
	v2x, v2y := x-x1, y-y1
	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y
	b := dot00*dot11 - dot01*dot01
	var inv float32
	if b != 0 {
		inv = 1.0 / b
	}
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv
	return u >= 0 && v >= 0 && (u+v < 1.0)
}
