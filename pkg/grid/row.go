// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package grid

import "fmt"

// Row is a lightweight read-only handle on a single row of a grid.  It stores
// no elements itself, just the grid reference and the row index, hence it is
// intended to be constructed on demand and discarded, not stored long term.
type Row[T any] struct {
	grid Grid[T]
	y    uint
}

// NewRow returns row y of the given grid.  Panics if y is out of bounds.
func NewRow[T any](g Grid[T], y uint) Row[T] {
	row, ok := TryRow(g, y)
	//
	if !ok {
		panic("row index out-of-bounds")
	}
	//
	return row
}

// TryRow returns row y of the given grid, or false if y is out of bounds.
func TryRow[T any](g Grid[T], y uint) (Row[T], bool) {
	if y < g.Height() {
		return Row[T]{g, y}, true
	}
	//
	return Row[T]{}, false
}

// Index returns this row's y-position within its grid.
func (p Row[T]) Index() uint {
	return p.y
}

// Len returns the length of this row, which equals the grid's width.
func (p Row[T]) Len() uint {
	return p.grid.Width()
}

// Get returns the element in column x of this row, or false if x is out of
// bounds.
func (p Row[T]) Get(x uint) (T, bool) {
	return p.grid.Get(x, p.y)
}

// GetUnchecked returns the element in column x of this row without any bounds
// check.  See Grid.GetUnchecked for the caller contract.
func (p Row[T]) GetUnchecked(x uint) T {
	return p.grid.GetUnchecked(x, p.y)
}

// Slice returns this row as a contiguous slice when the grid's layout permits
// it, and nil otherwise.
func (p Row[T]) Slice() []T {
	return p.grid.RowSlice(p.y)
}

// Iter returns a fresh iterator over the values of this row.
func (p Row[T]) Iter() *RowIter[T] {
	return &RowIter[T]{p.grid, p.y, 0, p.Len()}
}

// ============================================================================
// Mutable Row
// ============================================================================

// MutRow is the writable counterpart of Row.
type MutRow[T any] struct {
	grid MutGrid[T]
	y    uint
}

// NewMutRow returns a mutable handle on row y of the given grid.  Panics if y
// is out of bounds.
func NewMutRow[T any](g MutGrid[T], y uint) MutRow[T] {
	row, ok := TryMutRow(g, y)
	//
	if !ok {
		panic("row index out-of-bounds")
	}
	//
	return row
}

// TryMutRow returns a mutable handle on row y of the given grid, or false if
// y is out of bounds.
func TryMutRow[T any](g MutGrid[T], y uint) (MutRow[T], bool) {
	if y < g.Height() {
		return MutRow[T]{g, y}, true
	}
	//
	return MutRow[T]{}, false
}

// AsRow coerces this mutable row into a read-only row handle.
func (p MutRow[T]) AsRow() Row[T] {
	return Row[T]{p.grid, p.y}
}

// Index returns this row's y-position within its grid.
func (p MutRow[T]) Index() uint {
	return p.y
}

// Len returns the length of this row, which equals the grid's width.
func (p MutRow[T]) Len() uint {
	return p.grid.Width()
}

// Get returns the element in column x of this row, or false if x is out of
// bounds.
func (p MutRow[T]) Get(x uint) (T, bool) {
	return p.grid.Get(x, p.y)
}

// GetUnchecked returns the element in column x of this row without any bounds
// check.
func (p MutRow[T]) GetUnchecked(x uint) T {
	return p.grid.GetUnchecked(x, p.y)
}

// Set overwrites the element in column x of this row, returning the value it
// replaced, or false (writing nothing) if x is out of bounds.
func (p MutRow[T]) Set(x uint, value T) (T, bool) {
	return p.grid.Set(x, p.y, value)
}

// SetUnchecked overwrites the element in column x of this row without any
// bounds check, returning the value it replaced.
func (p MutRow[T]) SetUnchecked(x uint, value T) T {
	return p.grid.SetUnchecked(x, p.y, value)
}

// Slice returns this row as a contiguous slice when the grid's layout permits
// it, and nil otherwise.
func (p MutRow[T]) Slice() []T {
	return p.grid.RowSlice(p.y)
}

// SliceMut returns this row as a contiguous slice for writing, when the
// grid's layout permits it.
func (p MutRow[T]) SliceMut() []T {
	return p.grid.RowSliceMut(p.y)
}

// Iter returns a fresh iterator over the values of this row.
func (p MutRow[T]) Iter() *RowIter[T] {
	return p.AsRow().Iter()
}

// Fill assigns the given value to every cell of this row, using the
// contiguous fast path when available.
func (p MutRow[T]) Fill(value T) {
	if slice := p.SliceMut(); slice != nil {
		for i := range slice {
			slice[i] = value
		}
		//
		return
	}
	//
	for x := uint(0); x < p.Len(); x++ {
		p.grid.SetUnchecked(x, p.y, value)
	}
}

// FillWith assigns values produced by the given generator to every cell of
// this row, invoking it once per cell in ascending column order.
func (p MutRow[T]) FillWith(fn func() T) {
	if slice := p.SliceMut(); slice != nil {
		for i := range slice {
			slice[i] = fn()
		}
		//
		return
	}
	//
	for x := uint(0); x < p.Len(); x++ {
		p.grid.SetUnchecked(x, p.y, fn())
	}
}

// CopyFrom copies every cell of the given row into this one.  Panics unless
// both rows have the same length, since a mismatch is a logic error rather
// than routine control flow.  Uses the contiguous fast path when both sides
// expose one, falling back to element-wise copying otherwise; the choice of
// path never affects the result.
func (p MutRow[T]) CopyFrom(row Row[T]) {
	if p.Len() != row.Len() {
		panic(fmt.Sprintf("incompatible row lengths (%d vs %d)", p.Len(), row.Len()))
	}
	//
	dst, src := p.SliceMut(), row.Slice()
	//
	switch {
	case dst != nil && src != nil:
		copy(dst, src)
	case dst != nil:
		for x := range dst {
			dst[x] = row.GetUnchecked(uint(x))
		}
	case src != nil:
		for x, val := range src {
			p.grid.SetUnchecked(uint(x), p.y, val)
		}
	default:
		for x := uint(0); x < row.Len(); x++ {
			p.grid.SetUnchecked(x, p.y, row.GetUnchecked(x))
		}
	}
}
