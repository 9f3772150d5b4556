package objload

// vertex_pool holds every position and normal of a file. Objects don't get
// their own pools: blender numbers vertices across the whole file, so the
// second object's first normal may well be normal 2.
type vertex_pool struct {
	positions []vec3
	normals   []vec3
}

func (p *vertex_pool) append_position(v vec3) {
	p.positions = append(p.positions, v)
}

func (p *vertex_pool) append_normal(v vec3) {
	p.normals = append(p.normals, v)
}

// position_at resolves a 1-based position index.
func (p *vertex_pool) position_at(index int) (vec3, error) {
	return lookup("position", p.positions, index)
}

// normal_at resolves a 1-based normal index.
func (p *vertex_pool) normal_at(index int) (vec3, error) {
	return lookup("normal", p.normals, index)
}

func lookup(pool string, values []vec3, index int) (vec3, error) {
	if index < 1 || index > len(values) {
		return vec3{}, &IndexError{Pool: pool, Index: index, Len: len(values)}
	}
	return values[index-1], nil
}
