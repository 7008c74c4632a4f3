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

// Package array provides a fixed-length block of values with interior
// mutability: every accessor takes the same handle, yet may write through
// it.  An Array either owns its backing storage or is a view aliasing the
// storage of another Array.
//
// The package trades safety for throughput.  Checked accessors validate
// indices before touching memory; the *Unchecked tier performs no
// validation at all and reads or writes through a raw pointer.  Views may
// be handed to other goroutines, but the package provides no locking and
// no atomicity: concurrent writes to the same cell from different
// goroutines are a data race.  Callers must either partition the index
// space or tolerate non-deterministic results.
package array

import "unsafe"

// Array is a fixed-length, index-addressable block of values of type T.
//
// All methods work through an immutable handle: an Array can be stored in
// shared state and mutated by any holder.  The zero value is not usable;
// Arrays are created with [New], [NewFilled], [Array.Alias] or
// [Array.AliasRange].
type Array[T any] struct {
	size int
	ptr  *T

	// mem is non-nil exactly when this Array owns its backing storage.
	// Views leave it nil; in either case ptr keeps the allocation
	// reachable for the garbage collector.
	mem []T
}

// New creates an Array of the given size with all elements set to the zero
// value of T.  The Array owns its backing storage.  New fails with
// *InvalidSizeError if size < 1.
func New[T any](size int) (*Array[T], error) {
	if size < 1 {
		return nil, &InvalidSizeError{Size: size}
	}
	mem := make([]T, size)
	return &Array[T]{
		size: size,
		ptr:  &mem[0],
		mem:  mem,
	}, nil
}

// NewFilled creates an Array of the given size with every element set to
// value.  NewFilled fails with *InvalidSizeError if size < 1.
func NewFilled[T any](size int, value T) (*Array[T], error) {
	a, err := New[T](size)
	if err != nil {
		return nil, err
	}
	a.SetAll(value)
	return a, nil
}

// Len returns the number of elements in the Array.
func (a *Array[T]) Len() int {
	return a.size
}

// checkBound panics with *BoundsError unless 0 <= index < a.size.
func (a *Array[T]) checkBound(index int) {
	if index < 0 || index >= a.size {
		panic(&BoundsError{Index: index, Size: a.size})
	}
}

// elem returns a pointer to element index without any validation.
func (a *Array[T]) elem(index int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(a.ptr), uintptr(index)*unsafe.Sizeof(*a.ptr)))
}

// Get returns a copy of the element at the given index.  Get panics with
// *BoundsError if the index is out of range.
func (a *Array[T]) Get(index int) T {
	a.checkBound(index)
	return *a.elem(index)
}

// GetUnchecked returns a copy of the element at the given index without
// bounds checking.  The caller must have established 0 <= index < Len();
// otherwise behaviour is undefined.
func (a *Array[T]) GetUnchecked(index int) T {
	return *a.elem(index)
}

// Set stores value at the given index.  Set panics with *BoundsError if
// the index is out of range.
func (a *Array[T]) Set(index int, value T) {
	a.checkBound(index)
	*a.elem(index) = value
}

// SetUnchecked stores value at the given index without bounds checking.
// The caller must have established 0 <= index < Len(); otherwise behaviour
// is undefined.
func (a *Array[T]) SetUnchecked(index int, value T) {
	*a.elem(index) = value
}

// At returns a pointer to the element at the given index, for element
// types where copying is undesirable.  The caller must not hold another
// live pointer into the same cell while writing through the result; this
// single-writer discipline is not enforced.  At panics with *BoundsError
// if the index is out of range.
func (a *Array[T]) At(index int) *T {
	a.checkBound(index)
	return a.elem(index)
}

// AtUnchecked is like [Array.At] but performs no bounds checking.  If the
// index is out of range, behaviour is undefined.
func (a *Array[T]) AtUnchecked(index int) *T {
	return a.elem(index)
}

// Alias returns a new view of the same length which aliases the memory of
// a.  Writes through either handle are visible through the other.
//
// The view does not own the backing storage.  The garbage collector keeps
// the storage alive while the view is reachable, but the package provides
// no synchronisation: a view may be sent to another goroutine, and
// concurrent writes to the same cell are then a data race.
func (a *Array[T]) Alias() *Array[T] {
	return &Array[T]{size: a.size, ptr: a.ptr}
}

// AliasRange returns a view of the sub-range [start, start+size) of a.
// It fails with *InvalidSizeError if size < 1, with ErrOverflow if
// start+size-1 wraps, and with *BoundsError if the range extends past the
// end of a.  The sharing contract is the same as for [Array.Alias].
func (a *Array[T]) AliasRange(start, size int) (*Array[T], error) {
	if size < 1 {
		return nil, &InvalidSizeError{Size: size}
	}
	end, ok := rangeEnd(start, size)
	if !ok {
		return nil, ErrOverflow
	}
	if start < 0 || end >= a.size {
		return nil, &BoundsError{Index: end, Size: a.size}
	}
	return &Array[T]{size: size, ptr: a.elem(start)}, nil
}

// SetRange sets the count elements starting at start to value.  A count of
// 0 is a no-op.  SetRange panics with *InvalidSizeError if count is
// negative, with ErrOverflow if start+count-1 wraps, and with *BoundsError
// if the range is not contained in the Array.  No element is written
// before validation succeeds.
func (a *Array[T]) SetRange(start, count int, value T) {
	if count == 0 {
		return
	}
	end := a.checkRange(start, count)
	for index := start; index <= end; index++ {
		*a.elem(index) = value
	}
}

// SetRangeUnchecked is like [Array.SetRange] but performs no validation.
// If the range is not contained in the Array, behaviour is undefined.
func (a *Array[T]) SetRangeUnchecked(start, count int, value T) {
	for index := start; index < start+count; index++ {
		*a.elem(index) = value
	}
}

// SetAll sets every element of the Array to value.
func (a *Array[T]) SetAll(value T) {
	for index := 0; index < a.size; index++ {
		*a.elem(index) = value
	}
}

// Slice returns a copy of the count elements starting at start as a fresh
// slice.  Slice panics under the same conditions as [Array.SetRange].
func (a *Array[T]) Slice(start, count int) []T {
	if count == 0 {
		return nil
	}
	a.checkRange(start, count)
	res := make([]T, count)
	for i := range res {
		res[i] = *a.elem(start + i)
	}
	return res
}

// checkRange validates the range [start, start+count) for count > 0 and
// returns the inclusive end index.  The end index computation is
// overflow-checked independently of the bounds check.
func (a *Array[T]) checkRange(start, count int) int {
	if count < 0 {
		panic(&InvalidSizeError{Size: count})
	}
	end, ok := rangeEnd(start, count)
	if !ok {
		panic(ErrOverflow)
	}
	if start < 0 || end >= a.size {
		panic(&BoundsError{Index: end, Size: a.size})
	}
	return end
}

// rangeEnd computes start+count-1 for count > 0, reporting overflow.
func rangeEnd(start, count int) (end int, ok bool) {
	end = start + (count - 1)
	if end < start {
		return 0, false
	}
	return end, true
}
