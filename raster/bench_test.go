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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/cells/array"
	"seehuhn.de/go/cells/grid"
)

// BenchmarkDrawLine benchmarks our rasteriser drawing a diagonal line
// into a byte grid.
func BenchmarkDrawLine(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			a, err := array.New[uint8](size * size)
			if err != nil {
				b.Fatal(err)
			}
			g, err := grid.New(a, size, size)
			if err != nil {
				b.Fatal(err)
			}
			c := grid.Accum[uint8]{Grid: g}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				DrawLine(c, 0, 0, size-1, size/3, 1)
			}
		})
	}
}

// BenchmarkDrawLineSaturating is the same workload with clamping
// accumulation.
func BenchmarkDrawLineSaturating(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			a, err := array.New[uint8](size * size)
			if err != nil {
				b.Fatal(err)
			}
			g, err := grid.New(a, size, size)
			if err != nil {
				b.Fatal(err)
			}
			c := grid.Clamp[uint8]{Grid: g}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				DrawLine(c, 0, 0, size-1, size/3, 1)
			}
		})
	}
}

// BenchmarkVectorLine benchmarks x/image/vector rasterising a one-pixel
// wide diagonal band, as a point of comparison.
func BenchmarkVectorLine(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			w := float32(size)
			h := float32(size) / 3

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(0, 0)
				r.LineTo(w, h-1)
				r.LineTo(w, h)
				r.LineTo(0, 1)
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
