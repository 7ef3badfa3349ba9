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

// Col is a lightweight read-only handle on a single column of a grid.  Unlike
// a row, a column is never contiguous in a row-major store, so there is no
// slice accessor here.
type Col[T any] struct {
	grid Grid[T]
	x    uint
}

// NewCol returns column x of the given grid.  Panics if x is out of bounds.
func NewCol[T any](g Grid[T], x uint) Col[T] {
	col, ok := TryCol(g, x)
	//
	if !ok {
		panic("column index out-of-bounds")
	}
	//
	return col
}

// TryCol returns column x of the given grid, or false if x is out of bounds.
func TryCol[T any](g Grid[T], x uint) (Col[T], bool) {
	if x < g.Width() {
		return Col[T]{g, x}, true
	}
	//
	return Col[T]{}, false
}

// Index returns this column's x-position within its grid.
func (p Col[T]) Index() uint {
	return p.x
}

// Len returns the length of this column, which equals the grid's height.
func (p Col[T]) Len() uint {
	return p.grid.Height()
}

// Get returns the element in row y of this column, or false if y is out of
// bounds.
func (p Col[T]) Get(y uint) (T, bool) {
	return p.grid.Get(p.x, y)
}

// GetUnchecked returns the element in row y of this column without any bounds
// check.  See Grid.GetUnchecked for the caller contract.
func (p Col[T]) GetUnchecked(y uint) T {
	return p.grid.GetUnchecked(p.x, y)
}

// Iter returns a fresh iterator over the values of this column.
func (p Col[T]) Iter() *ColIter[T] {
	return &ColIter[T]{p.grid, p.x, 0, p.Len()}
}

// ============================================================================
// Mutable Col
// ============================================================================

// MutCol is the writable counterpart of Col.
type MutCol[T any] struct {
	grid MutGrid[T]
	x    uint
}

// NewMutCol returns a mutable handle on column x of the given grid.  Panics
// if x is out of bounds.
func NewMutCol[T any](g MutGrid[T], x uint) MutCol[T] {
	col, ok := TryMutCol(g, x)
	//
	if !ok {
		panic("column index out-of-bounds")
	}
	//
	return col
}

// TryMutCol returns a mutable handle on column x of the given grid, or false
// if x is out of bounds.
func TryMutCol[T any](g MutGrid[T], x uint) (MutCol[T], bool) {
	if x < g.Width() {
		return MutCol[T]{g, x}, true
	}
	//
	return MutCol[T]{}, false
}

// AsCol coerces this mutable column into a read-only column handle.
func (p MutCol[T]) AsCol() Col[T] {
	return Col[T]{p.grid, p.x}
}

// Index returns this column's x-position within its grid.
func (p MutCol[T]) Index() uint {
	return p.x
}

// Len returns the length of this column, which equals the grid's height.
func (p MutCol[T]) Len() uint {
	return p.grid.Height()
}

// Get returns the element in row y of this column, or false if y is out of
// bounds.
func (p MutCol[T]) Get(y uint) (T, bool) {
	return p.grid.Get(p.x, y)
}

// GetUnchecked returns the element in row y of this column without any bounds
// check.
func (p MutCol[T]) GetUnchecked(y uint) T {
	return p.grid.GetUnchecked(p.x, y)
}

// Set overwrites the element in row y of this column, returning the value it
// replaced, or false (writing nothing) if y is out of bounds.
func (p MutCol[T]) Set(y uint, value T) (T, bool) {
	return p.grid.Set(p.x, y, value)
}

// SetUnchecked overwrites the element in row y of this column without any
// bounds check, returning the value it replaced.
func (p MutCol[T]) SetUnchecked(y uint, value T) T {
	return p.grid.SetUnchecked(p.x, y, value)
}

// Iter returns a fresh iterator over the values of this column.
func (p MutCol[T]) Iter() *ColIter[T] {
	return p.AsCol().Iter()
}

// Fill assigns the given value to every cell of this column.
func (p MutCol[T]) Fill(value T) {
	for y := uint(0); y < p.Len(); y++ {
		p.grid.SetUnchecked(p.x, y, value)
	}
}

// FillWith assigns values produced by the given generator to every cell of
// this column, invoking it once per cell in ascending row order.
func (p MutCol[T]) FillWith(fn func() T) {
	for y := uint(0); y < p.Len(); y++ {
		p.grid.SetUnchecked(p.x, y, fn())
	}
}

// CopyFrom copies every cell of the given column into this one.  Panics
// unless both columns have the same length.
func (p MutCol[T]) CopyFrom(col Col[T]) {
	if p.Len() != col.Len() {
		panic(fmt.Sprintf("incompatible column lengths (%d vs %d)", p.Len(), col.Len()))
	}
	//
	for y := uint(0); y < col.Len(); y++ {
		p.grid.SetUnchecked(p.x, y, col.GetUnchecked(y))
	}
}
