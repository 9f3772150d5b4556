package objload

import (
	"fmt"
	"strconv"
	"strings"
)

// corner is one "position/texture/normal" entry of a face. The texture index
// is validated and then dropped; nothing downstream uses texture coordinates.
type corner struct {
	position int
	normal   int
}

func parse_vec3(payload string) (vec3, error) {
	fields := strings.Fields(payload)
	if len(fields) != 3 {
		return vec3{}, fmt.Errorf("%w: want 3 components, got %d", ErrMalformedRecord, len(fields))
	}
	var v vec3
	for i, field := range fields {
		x, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return vec3{}, fmt.Errorf("%w: bad component %q", ErrMalformedRecord, field)
		}
		v[i] = float32(x)
	}
	return v, nil
}

// parse_index reads an index as written in the file. Range checks happen in
// the pool; zero and negative values get through here on purpose.
func parse_index(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad index %q", ErrMalformedRecord, s)
	}
	return i, nil
}

func parse_line(payload string) (p1, p2 int, err error) {
	fields := strings.Fields(payload)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want 2 line indices, got %d", ErrMalformedRecord, len(fields))
	}
	if p1, err = parse_index(fields[0]); err != nil {
		return 0, 0, err
	}
	if p2, err = parse_index(fields[1]); err != nil {
		return 0, 0, err
	}
	return p1, p2, nil
}

// parse_face reads the four corners of a quad. Blender writes "p/t/n" when
// the mesh has UVs and "p//n" when it doesn't; a zero texture index counts as
// no texture. Either way only position and normal are kept.
func parse_face(payload string) ([4]corner, error) {
	var corners [4]corner
	fields := strings.Fields(payload)
	if len(fields) != len(corners) {
		return corners, fmt.Errorf("%w: got %d corners", ErrUnsupportedFaceArity, len(fields))
	}
	for i, field := range fields {
		c, err := parse_corner(field)
		if err != nil {
			return corners, err
		}
		corners[i] = c
	}
	return corners, nil
}

func parse_corner(field string) (c corner, err error) {
	parts := strings.Split(field, "/")
	if len(parts) != 3 {
		return c, fmt.Errorf("%w: face corner %q is not position/texture/normal", ErrMalformedRecord, field)
	}
	if c.position, err = parse_index(parts[0]); err != nil {
		return c, err
	}
	if parts[1] != "" {
		if _, err = parse_index(parts[1]); err != nil {
			return c, err
		}
	}
	if c.normal, err = parse_index(parts[2]); err != nil {
		return c, err
	}
	return c, nil
}

// fan splits a quad along its v1-v3 diagonal: (v1, v2, v3) then (v3, v4, v1).
func fan(q [4]Vertex) [6]Vertex {
	return [6]Vertex{
		q[0], q[1], q[2],
		q[2], q[3], q[0],
	}
}
