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

package scene

// All contains the built-in scenes, grouped by category.
var All = map[string][]Scene{
	"axis": axisScenes,
	"clip": clipScenes,
	"star": starScenes,
}

var axisScenes = []Scene{
	{
		Name:   "cross",
		Width:  64,
		Height: 64,
		Segments: []Segment{
			{X1: 0, Y1: 32, X2: 63, Y2: 32, Value: 200},
			{X1: 32, Y1: 0, X2: 32, Y2: 63, Value: 200},
		},
	},
	{
		Name:   "border",
		Width:  48,
		Height: 32,
		Segments: []Segment{
			{X1: 0, Y1: 0, X2: 47, Y2: 0, Value: 255},
			{X1: 47, Y1: 0, X2: 47, Y2: 31, Value: 255},
			{X1: 47, Y1: 31, X2: 0, Y2: 31, Value: 255},
			{X1: 0, Y1: 31, X2: 0, Y2: 0, Value: 255},
		},
	},
}

var clipScenes = []Scene{
	{
		Name:   "overshoot",
		Width:  40,
		Height: 40,
		Segments: []Segment{
			// all four segments leave the grid on at least one side
			{X1: 0, Y1: 0, X2: 80, Y2: 120, Value: 180},
			{X1: 0, Y1: 120, X2: 80, Y2: 0, Value: 180},
			{X1: 0, Y1: 20, X2: 200, Y2: 20, Value: 120},
			{X1: 20, Y1: 0, X2: 20, Y2: 200, Value: 120},
		},
	},
}

var starScenes = []Scene{
	{
		Name:   "fan",
		Width:  96,
		Height: 96,
		Segments: []Segment{
			// overlapping spokes saturate near the common origin
			{X1: 0, Y1: 0, X2: 95, Y2: 0, Value: 90},
			{X1: 0, Y1: 0, X2: 95, Y2: 23, Value: 90},
			{X1: 0, Y1: 0, X2: 95, Y2: 47, Value: 90},
			{X1: 0, Y1: 0, X2: 95, Y2: 71, Value: 90},
			{X1: 0, Y1: 0, X2: 95, Y2: 95, Value: 90},
			{X1: 0, Y1: 0, X2: 71, Y2: 95, Value: 90},
			{X1: 0, Y1: 0, X2: 47, Y2: 95, Value: 90},
			{X1: 0, Y1: 0, X2: 23, Y2: 95, Value: 90},
			{X1: 0, Y1: 0, X2: 0, Y2: 95, Value: 90},
		},
	},
}
