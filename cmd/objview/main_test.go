package main

import (
	"strings"
	"testing"

	"github.com/thedaneeffect/ebiten-obj-playground/objload"
	"github.com/thedaneeffect/ebiten-obj-playground/render"
)

func TestLoadSample(t *testing.T) {
	geoms, err := load("", nil)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if got := strings.Join(geoms.Names(), ","); got != "Frame,Plate,Ramp,Bar" {
		t.Errorf("Names() = %s, want Frame,Plate,Ramp,Bar", got)
	}

	tests := []struct {
		name  string
		style objload.DrawStyle
		prims int
	}{
		{"Frame", objload.Lines, 4},
		{"Plate", objload.Triangles, 2},
		{"Ramp", objload.Triangles, 4},
		{"Bar", objload.Triangles, 2},
	}
	for _, tt := range tests {
		g := geoms.Get(tt.name)
		if g == nil {
			t.Errorf("Get(%q) = nil", tt.name)
			continue
		}
		if g.Style != tt.style || g.PrimitiveCount() != tt.prims {
			t.Errorf("%s = %v x%d, want %v x%d", tt.name, g.Style, g.PrimitiveCount(), tt.style, tt.prims)
		}
	}

	// "# www.blender.org" and "mtllib sample.mtl"
	if len(geoms.Diagnostics) != 2 {
		t.Errorf("Diagnostics = %v, want 2", geoms.Diagnostics)
	}
}

func TestParseOptions(t *testing.T) {
	orig := *header
	t.Cleanup(func() { *header = orig })

	*header = "warn"
	opts, err := parse_options()
	if err != nil {
		t.Fatalf("parse_options() error = %v", err)
	}
	if _, err := objload.ParseBytes([]byte("o A\n"), opts...); err != nil {
		t.Errorf("ParseBytes() with -header=warn error = %v", err)
	}

	*header = "maybe"
	if _, err := parse_options(); err == nil {
		t.Error("parse_options() error = nil for -header=maybe")
	}
}

func TestUploadPrimitives(t *testing.T) {
	device := render.NewDevice(render.NewViewport(0, 0, game_width, game_height))
	if err := upload_primitives(device); err != nil {
		t.Fatalf("upload_primitives() error = %v", err)
	}
	if got := strings.Join(device.Names(), ","); got != "triangle,box,circle" {
		t.Errorf("Names() = %s, want triangle,box,circle", got)
	}
	// 1 + 2 + 30
	if device.TriangleCount() != 33 {
		t.Errorf("TriangleCount() = %d, want 33", device.TriangleCount())
	}
}
