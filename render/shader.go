package render

// shader lights a fragment by the 2D normal carried in custom.xy. Zero
// normals (lines, primitives) keep the vertex color. Highlight blends toward
// white.
var shader_src = `
//kage:unit pixels
package main

var Light vec2
var Highlight float

func Fragment(dst vec4, src vec2, rgba vec4, custom vec4) vec4 {
	c := rgba
	n := custom.xy
	if length(n) > 0 {
		shade := 0.6 + 0.4*dot(normalize(n), Light)
		c = vec4(c.rgb*shade, c.a)
	}
	return vec4(mix(c.rgb, vec3(c.a), Highlight*0.35), c.a)
}
`
