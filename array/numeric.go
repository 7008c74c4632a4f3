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

import "golang.org/x/exp/constraints"

// Addable lists the element types which support in-place accumulation.
// Integer types wrap around on overflow, following the language's native
// arithmetic.
type Addable interface {
	constraints.Integer | constraints.Float
}

// Add increases the element at the given index by amount.  Add panics
// with *BoundsError if the index is out of range.
func Add[T Addable](a *Array[T], index int, amount T) {
	a.checkBound(index)
	*a.elem(index) += amount
}

// AddUnchecked increases the element at the given index by amount without
// bounds checking.  If the index is out of range, behaviour is undefined.
func AddUnchecked[T Addable](a *Array[T], index int, amount T) {
	*a.elem(index) += amount
}

// AddRange increases the count elements starting at start by amount.  A
// count of 0 is a no-op.  AddRange panics under the same conditions as
// [Array.SetRange], and no element is modified before validation succeeds.
func AddRange[T Addable](a *Array[T], start, count int, amount T) {
	if count == 0 {
		return
	}
	end := a.checkRange(start, count)
	for index := start; index <= end; index++ {
		*a.elem(index) += amount
	}
}

// AddRangeUnchecked is like [AddRange] but performs no validation.
func AddRangeUnchecked[T Addable](a *Array[T], start, count int, amount T) {
	for index := start; index < start+count; index++ {
		*a.elem(index) += amount
	}
}

// AddAll increases every element of the Array by amount.
func AddAll[T Addable](a *Array[T], amount T) {
	for index := 0; index < a.size; index++ {
		*a.elem(index) += amount
	}
}

// SaturatingAdd increases the element at the given index by amount,
// clamping at the boundaries of T instead of wrapping around.
// SaturatingAdd panics with *BoundsError if the index is out of range.
func SaturatingAdd[T constraints.Integer](a *Array[T], index int, amount T) {
	a.checkBound(index)
	p := a.elem(index)
	*p = saturatingAdd(*p, amount)
}

// SaturatingAddUnchecked is like [SaturatingAdd] but performs no bounds
// checking.  If the index is out of range, behaviour is undefined.
func SaturatingAddUnchecked[T constraints.Integer](a *Array[T], index int, amount T) {
	p := a.elem(index)
	*p = saturatingAdd(*p, amount)
}

// SaturatingAddRange increases the count elements starting at start by
// amount, clamping at the boundaries of T.  A count of 0 is a no-op.
// SaturatingAddRange panics under the same conditions as [Array.SetRange].
func SaturatingAddRange[T constraints.Integer](a *Array[T], start, count int, amount T) {
	if count == 0 {
		return
	}
	end := a.checkRange(start, count)
	for index := start; index <= end; index++ {
		p := a.elem(index)
		*p = saturatingAdd(*p, amount)
	}
}

// SaturatingAddRangeUnchecked is like [SaturatingAddRange] but performs
// no validation.
func SaturatingAddRangeUnchecked[T constraints.Integer](a *Array[T], start, count int, amount T) {
	for index := start; index < start+count; index++ {
		p := a.elem(index)
		*p = saturatingAdd(*p, amount)
	}
}

// SaturatingAddAll increases every element of the Array by amount,
// clamping at the boundaries of T.
func SaturatingAddAll[T constraints.Integer](a *Array[T], amount T) {
	for index := 0; index < a.size; index++ {
		p := a.elem(index)
		*p = saturatingAdd(*p, amount)
	}
}
