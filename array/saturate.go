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
	"unsafe"

	"golang.org/x/exp/constraints"
)

// saturatingAdd returns a+b clamped to the representable range of T.
// One routine covers all native integer widths and signednesses; the
// limits are derived from the bit width of T at instantiation time.
func saturatingAdd[T constraints.Integer](a, b T) T {
	sum := a + b

	var zero T
	if ^zero > zero {
		// unsigned: ^0 is the maximum value
		if sum < a {
			return ^zero
		}
		return sum
	}

	if b > 0 && sum < a {
		return maxValue[T]()
	}
	if b < 0 && sum > a {
		return minValue[T]()
	}
	return sum
}

// minValue returns the smallest value of the signed integer type T.
func minValue[T constraints.Integer]() T {
	var zero T
	width := unsafe.Sizeof(zero) * 8
	return T(1) << (width - 1)
}

// maxValue returns the largest value of the signed integer type T.
func maxValue[T constraints.Integer]() T {
	return ^minValue[T]()
}
