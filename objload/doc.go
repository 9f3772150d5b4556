// Package objload reads the Wavefront OBJ files Blender exports for 2D scenes
// into flat, per-object vertex lists.
//
// Only the subset Blender writes for flat scenes is understood: object names
// (o), positions (v), normals (vn), two-point lines (l) and four-corner faces
// (f). Position and normal indices are 1-based and shared by every object in
// the file. Z is treated as up, so each vertex keeps the X and Y of its
// position and normal.
//
// Quads are split into two triangles, (v1, v2, v3) and (v3, v4, v1), and the
// result is written out without an element array: every 2 vertices of a
// [Lines] object form a segment, every 3 vertices of a [Triangles] object form
// a triangle.
//
//	geoms, err := objload.ParseFile("scene.obj", objload.WithHeaderPolicy(objload.HeaderWarn))
//	if err != nil {
//		return err
//	}
//	for _, name := range geoms.Names() {
//		g := geoms.Get(name)
//		fmt.Println(name, g.Style, g.PrimitiveCount())
//	}
package objload
