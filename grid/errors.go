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

package grid

import "fmt"

// DimensionError is reported when a Grid with a non-positive width or
// height is requested.
type DimensionError struct {
	Width, Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("grid: invalid dimensions %dx%d", e.Width, e.Height)
}

// BufferTooSmallError is reported when the backing Array holds fewer
// elements than the Grid needs.
type BufferTooSmallError struct {
	Need, Have int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("grid: need %d elements but array holds %d", e.Need, e.Have)
}

// CoordError is reported when a checked access lies outside the grid.
type CoordError struct {
	X, Y          int
	Width, Height int
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("grid: coordinates (%d,%d) outside %dx%d grid",
		e.X, e.Y, e.Width, e.Height)
}
