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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Pen draws line segments given in user-space coordinates.  The endpoints
// are transformed by CTM, clipped against the intersection of Clip and
// the canvas bounds, and snapped to cells before being forwarded to
// [DrawLine].
type Pen[T any] struct {
	// CTM transforms from user space to cell space.
	// The zero value means identity.
	CTM matrix.Matrix

	// Clip restricts output to this cell-space rectangle in addition to
	// the canvas bounds.  The zero value means no extra clipping.
	Clip rect.Rect
}

// Segment adds value to every cell the segment from a to b passes
// through, after transformation and clipping.  Unlike [DrawLine], the
// coordinates may be arbitrary: parts of the segment left of x=0 or
// below y=0 are clipped away rather than rejected.
func (p *Pen[T]) Segment(c Canvas[T], a, b vec.Vec2, value T) {
	m := p.CTM
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}

	ax := m[0]*a.X + m[2]*a.Y + m[4]
	ay := m[1]*a.X + m[3]*a.Y + m[5]
	bx := m[0]*b.X + m[2]*b.Y + m[4]
	by := m[1]*b.X + m[3]*b.Y + m[5]

	xlo, ylo := 0.0, 0.0
	xhi, yhi := float64(c.Width()), float64(c.Height())
	if p.Clip != (rect.Rect{}) {
		xlo = max(xlo, p.Clip.LLx)
		ylo = max(ylo, p.Clip.LLy)
		xhi = min(xhi, p.Clip.URx)
		yhi = min(yhi, p.Clip.URy)
	}
	if xlo >= xhi || ylo >= yhi {
		return
	}

	ax, ay, bx, by, ok := clipSegment(ax, ay, bx, by, xlo, ylo, xhi, yhi)
	if !ok {
		return
	}

	// A clipped endpoint can land exactly on the upper boundary, where
	// flooring would name the first cell outside the window.  Rounding in
	// the parametric clip can also push an endpoint a hair below the lower
	// boundary, so clamp on both sides.
	loX := int(math.Floor(xlo))
	loY := int(math.Floor(ylo))
	hiX := int(math.Ceil(xhi)) - 1
	hiY := int(math.Ceil(yhi)) - 1
	x1 := min(max(int(math.Floor(ax)), loX), hiX)
	y1 := min(max(int(math.Floor(ay)), loY), hiY)
	x2 := min(max(int(math.Floor(bx)), loX), hiX)
	y2 := min(max(int(math.Floor(by)), loY), hiY)

	DrawLine(c, x1, y1, x2, y2, value)
}

// clipSegment clips the segment (ax,ay)-(bx,by) against the axis-aligned
// rectangle [xlo,xhi] x [ylo,yhi] using the Liang-Barsky parametric
// method.  ok is false if nothing of the segment remains.
func clipSegment(ax, ay, bx, by, xlo, ylo, xhi, yhi float64) (cx, cy, dx, dy float64, ok bool) {
	t0, t1 := 0.0, 1.0
	ddx := bx - ax
	ddy := by - ay

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0 // parallel to this boundary: keep iff inside
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	if !clip(-ddx, ax-xlo) || !clip(ddx, xhi-ax) ||
		!clip(-ddy, ay-ylo) || !clip(ddy, yhi-ay) {
		return 0, 0, 0, 0, false
	}

	cx = ax + t0*ddx
	cy = ay + t0*ddy
	dx = ax + t1*ddx
	dy = ay + t1*ddy
	return cx, cy, dx, dy, true
}
