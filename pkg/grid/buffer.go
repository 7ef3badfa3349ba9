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

import (
	"fmt"
	"math"
)

// Buffer is a dense grid which stores its elements in a single contiguous
// slice in row-major order, such that the element at (x, y) lives at linear
// offset y*width + x.  The store always holds exactly width*height elements;
// this is checked at construction and never violated afterwards, since no
// operation changes its length.
type Buffer[T any] struct {
	width  uint
	height uint
	store  []T
}

// NewBuffer constructs a width x height buffer grid with every element set to
// the zero value of T.
func NewBuffer[T any](width uint, height uint) *Buffer[T] {
	return &Buffer[T]{width, height, make([]T, area(width, height))}
}

// NewBufferWith constructs a width x height buffer grid filled by invoking the
// given generator once per cell with that cell's coordinates, in row-major
// order.
func NewBufferWith[T any](width uint, height uint, fn func(uint, uint) T) *Buffer[T] {
	store := make([]T, area(width, height))
	//
	for i := range store {
		i := uint(i)
		store[i] = fn(i%width, i/width)
	}
	//
	return &Buffer[T]{width, height, store}
}

// NewBufferOf constructs a buffer grid around an existing flat store, which
// must hold exactly width*height elements, otherwise this panics.  The store
// is aliased rather than copied, so mutations made through the grid remain
// visible to whoever supplied the slice (and vice versa).
func NewBufferOf[T any](width uint, height uint, store []T) *Buffer[T] {
	if n := area(width, height); n != uint(len(store)) {
		panic(fmt.Sprintf("incompatible store length (%d vs %d)", len(store), n))
	}
	//
	return &Buffer[T]{width, height, store}
}

// NewBufferFrom constructs a new buffer grid of matching dimensions and copies
// every cell of the given grid into it, producing an owned snapshot.
func NewBufferFrom[T any](g Grid[T]) *Buffer[T] {
	buf := NewBuffer[T](g.Width(), g.Height())
	Copy[T](buf, g)
	//
	return buf
}

// Width returns the number of columns in this grid.
func (p *Buffer[T]) Width() uint {
	return p.width
}

// Height returns the number of rows in this grid.
func (p *Buffer[T]) Height() uint {
	return p.height
}

// Get returns the element at the given coordinate, or false if the coordinate
// lies outside the grid.
func (p *Buffer[T]) Get(x uint, y uint) (T, bool) {
	if x < p.width && y < p.height {
		return p.store[y*p.width+x], true
	}
	//
	var empty T
	//
	return empty, false
}

// GetUnchecked returns the element at the given coordinate without any bounds
// check.  See Grid.GetUnchecked for the caller contract.
func (p *Buffer[T]) GetUnchecked(x uint, y uint) T {
	return p.store[y*p.width+x]
}

// RowSlice returns row y of the store.  Rows of a buffer grid are always
// contiguous, hence this only returns nil when y is out of range.  The slice
// is capped so appending to it cannot clobber the following row.
func (p *Buffer[T]) RowSlice(y uint) []T {
	if y < p.height {
		i := y * p.width
		return p.store[i : i+p.width : i+p.width]
	}
	//
	return nil
}

// Set overwrites the element at the given coordinate, returning the value it
// replaced, or false (writing nothing) if the coordinate lies outside the
// grid.
func (p *Buffer[T]) Set(x uint, y uint, value T) (T, bool) {
	if x < p.width && y < p.height {
		i := y*p.width + x
		prev := p.store[i]
		p.store[i] = value
		//
		return prev, true
	}
	//
	var empty T
	//
	return empty, false
}

// SetUnchecked overwrites the element at the given coordinate without any
// bounds check, returning the value it replaced.
func (p *Buffer[T]) SetUnchecked(x uint, y uint, value T) T {
	i := y*p.width + x
	prev := p.store[i]
	p.store[i] = value
	//
	return prev
}

// RowSliceMut returns row y of the store for writing.
func (p *Buffer[T]) RowSliceMut(y uint) []T {
	return p.RowSlice(y)
}

// Store returns the underlying flat store in row-major order.  The slice is
// aliased, not copied; this is the export half of the flat-buffer round trip
// (NewBufferOf being the import half).
func (p *Buffer[T]) Store() []T {
	return p.store
}

// Clone makes a deep copy of this buffer grid, producing an otherwise
// identical grid backed by a fresh store.
func (p *Buffer[T]) Clone() *Buffer[T] {
	store := make([]T, len(p.store))
	copy(store, p.store)
	//
	return &Buffer[T]{p.width, p.height, store}
}

// area computes width*height, panicking if the multiplication overflows.
// Guarding the one place dimensions are multiplied means per-access index
// arithmetic can never wrap back into range.
func area(width uint, height uint) uint {
	if height != 0 && width > math.MaxUint/height {
		panic(fmt.Sprintf("grid dimensions overflow (%d x %d)", width, height))
	}
	//
	return width * height
}
