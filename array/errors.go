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

package array

import (
	"errors"
	"fmt"
)

// ErrOverflow indicates that an index or range computation overflowed the
// native int type.  It is reported independently of bounds checking: a
// range whose end index wraps fails with ErrOverflow even if the wrapped
// value would happen to lie inside the Array.
var ErrOverflow = errors.New("array: index arithmetic overflow")

// InvalidSizeError is reported when an Array or sub-range of
// non-positive size is requested.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("array: invalid size %d", e.Size)
}

// BoundsError is reported when a checked access lies outside the Array.
type BoundsError struct {
	Index int // the offending index
	Size  int // the length of the Array
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("array: index is %d and size is %d", e.Index, e.Size)
}
