package objload

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// blender writes "# Blender v2.78 (sub 0) OBJ File: ''" as the first line
const header_marker = "OBJ"

const (
	header_object   = "o "
	header_position = "v "
	header_normal   = "vn "
	header_line     = "l "
	header_face     = "f "
	header_material = "usemtl "
	header_smooth   = "s "
)

type parser struct {
	opts    options
	log     *slog.Logger
	pool    vertex_pool
	geoms   *Collection
	current *Geometry
	line_no int
}

// ParseFile opens path and parses it with Parse. A file that cannot be opened
// is reported as ErrFileNotFound.
func ParseFile(path string, opts ...Option) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	defer f.Close()

	geoms, err := Parse(f, opts...)
	if err != nil {
		return geoms, fmt.Errorf("%s: %w", path, err)
	}
	return geoms, nil
}

// ParseBytes parses an OBJ file held in memory.
func ParseBytes(src []byte, opts ...Option) (*Collection, error) {
	return Parse(bytes.NewReader(src), opts...)
}

// Parse reads an OBJ export from r in a single pass.
//
// When a record cannot be assembled, Parse stops and returns what it has
// collected so far together with a *ParseError. That collection is best
// effort only; use WithSkipBadRecords to drop such records instead.
func Parse(r io.Reader, opts ...Option) (*Collection, error) {
	o := default_options()
	for _, opt := range opts {
		opt(&o)
	}

	p := &parser{
		opts:  o,
		log:   o.logger,
		geoms: NewCollection(),
	}
	if p.log == nil {
		p.log = Logger()
	}

	return p.geoms, p.run(r)
}

func (p *parser) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line_no++
		line := strings.TrimRight(scanner.Text(), "\r")

		if p.line_no == 1 {
			if strings.Contains(line, header_marker) {
				continue
			}
			if err := p.invalid_header(line); err != nil {
				return err
			}
		}

		if err := p.dispatch(line); err != nil {
			if !p.opts.skip_bad {
				return &ParseError{Line: p.line_no, Text: line, Err: err}
			}
			p.log.Warn("objload: skipping record", "line", p.line_no, "text", line, "err", err)
			p.diagnose(DiagSkippedRecord, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read obj: %w", err)
	}

	if p.line_no == 0 {
		return p.invalid_header("")
	}
	return nil
}

func (p *parser) invalid_header(line string) error {
	if p.opts.header == HeaderAbort {
		return &ParseError{Line: 1, Text: line, Err: ErrInvalidHeader}
	}
	p.log.Warn("objload: first line is not an OBJ header, continuing", "text", line)
	p.diagnose(DiagInvalidHeader, line, ErrInvalidHeader)
	return nil
}

func (p *parser) diagnose(kind DiagnosticKind, line string, err error) {
	p.geoms.Diagnostics = append(p.geoms.Diagnostics, Diagnostic{
		Line: p.line_no,
		Kind: kind,
		Text: line,
		Err:  err,
	})
}

func (p *parser) dispatch(line string) error {
	switch {
	case strings.TrimSpace(line) == "":
		return nil

	case strings.HasPrefix(line, header_object):
		return p.declare(strings.TrimSpace(line[len(header_object):]))

	case strings.HasPrefix(line, header_position):
		v, err := parse_vec3(line[len(header_position):])
		if err != nil {
			return fmt.Errorf("bad vertex: %w", err)
		}
		p.pool.append_position(v)

	case strings.HasPrefix(line, header_normal):
		v, err := parse_vec3(line[len(header_normal):])
		if err != nil {
			return fmt.Errorf("bad normal: %w", err)
		}
		p.pool.append_normal(v)

	case strings.HasPrefix(line, header_line):
		return p.add_line(line[len(header_line):])

	case strings.HasPrefix(line, header_face):
		return p.add_face(line[len(header_face):])

	case strings.HasPrefix(line, header_material), strings.HasPrefix(line, header_smooth):
		p.log.Debug("objload: ignoring directive", "line", p.line_no, "text", line)

	default:
		p.log.Warn("objload: unknown line header", "line", p.line_no, "text", line)
		p.diagnose(DiagUnknownHeader, line, nil)
	}
	return nil
}

// declare starts a new object. The vertex pool is left alone; indices in the
// new object keep counting from where the previous one stopped.
func (p *parser) declare(name string) error {
	if name == "" {
		return fmt.Errorf("%w: object without a name", ErrMalformedRecord)
	}
	if p.geoms.Get(name) != nil {
		p.log.Warn("objload: object declared twice, replacing", "line", p.line_no, "name", name)
	}
	p.current = p.geoms.Declare(name)
	p.log.Debug("objload: object", "line", p.line_no, "name", name,
		"positions", len(p.pool.positions), "normals", len(p.pool.normals))
	return nil
}

// add_line appends a segment. Blender never writes normals for lines, so
// both ends get a zero normal.
func (p *parser) add_line(payload string) error {
	g := p.current
	if g == nil {
		return ErrNoCurrentObject
	}
	if p.opts.strict && g.has_faces {
		return ErrMixedPrimitives
	}

	i1, i2, err := parse_line(payload)
	if err != nil {
		return fmt.Errorf("bad line: %w", err)
	}
	p1, err := p.pool.position_at(i1)
	if err != nil {
		return err
	}
	p2, err := p.pool.position_at(i2)
	if err != nil {
		return err
	}

	g.Vertices = append(g.Vertices,
		new_vertex(p1, vec3{}),
		new_vertex(p2, vec3{}),
	)
	g.Style = Lines
	g.has_lines = true
	return nil
}

// add_face turns a quad into two triangles.
func (p *parser) add_face(payload string) error {
	g := p.current
	if g == nil {
		return ErrNoCurrentObject
	}
	if p.opts.strict && g.has_lines {
		return ErrMixedPrimitives
	}

	corners, err := parse_face(payload)
	if err != nil {
		return fmt.Errorf("bad face: %w", err)
	}

	var quad [4]Vertex
	for i, c := range corners {
		pos, err := p.pool.position_at(c.position)
		if err != nil {
			return err
		}
		normal, err := p.pool.normal_at(c.normal)
		if err != nil {
			return err
		}
		quad[i] = new_vertex(pos, normal)
	}

	tris := fan(quad)
	g.Vertices = append(g.Vertices, tris[:]...)
	g.Style = Triangles
	g.has_faces = true
	return nil
}
