// seehuhn.de/go/cells - shared cell buffers and line rasterisation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package scene defines declarative line-drawing scenes, used both by the
// tests and by the demo commands.  Scenes can be defined in Go (see the
// All registry) or loaded from YAML files.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/cells/array"
	"seehuhn.de/go/cells/grid"
	"seehuhn.de/go/cells/raster"
)

// maxDim bounds scene dimensions so that a malformed scene file cannot
// request an absurd allocation.
const maxDim = 1 << 14

// Segment is one line segment of a scene, in cell coordinates.
type Segment struct {
	X1    int   `yaml:"x1"`
	Y1    int   `yaml:"y1"`
	X2    int   `yaml:"x2"`
	Y2    int   `yaml:"y2"`
	Value uint8 `yaml:"value"`
}

// Scene describes a drawing: grid dimensions, a background intensity,
// and the segments to draw.
type Scene struct {
	Name       string    `yaml:"name"` // lowercase a-z and _ only
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Background uint8     `yaml:"background"`
	Segments   []Segment `yaml:"segments"`
}

// Load reads a scene from a YAML file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := &Scene{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return sc, nil
}

// Lookup finds a built-in scene by name.
func Lookup(name string) (*Scene, bool) {
	for _, scenes := range All {
		for i := range scenes {
			if scenes[i].Name == name {
				return &scenes[i], true
			}
		}
	}
	return nil, false
}

// Render draws all segments of the scene into a fresh byte grid, using
// saturating accumulation so that overlapping segments brighten up to
// 255 and never wrap around.
func Render(sc *Scene) (*grid.Grid[uint8], error) {
	if sc.Width < 1 || sc.Width > maxDim || sc.Height < 1 || sc.Height > maxDim {
		return nil, fmt.Errorf("scene %q: invalid dimensions %dx%d",
			sc.Name, sc.Width, sc.Height)
	}
	for i, s := range sc.Segments {
		if s.X1 < 0 || s.Y1 < 0 || s.X2 < 0 || s.Y2 < 0 {
			return nil, fmt.Errorf("scene %q: segment %d has negative coordinates",
				sc.Name, i)
		}
	}

	a, err := array.NewFilled(sc.Width*sc.Height, sc.Background)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(a, sc.Width, sc.Height)
	if err != nil {
		return nil, err
	}

	canvas := grid.Clamp[uint8]{Grid: g}
	for _, s := range sc.Segments {
		raster.DrawLine(canvas, s.X1, s.Y1, s.X2, s.Y2, s.Value)
	}
	return g, nil
}
