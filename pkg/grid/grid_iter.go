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

// GridIter is an exact-length cursor over every cell of a grid, visiting
// cells in row-major order (left to right, then top to bottom).  Each step
// yields the cell's value along with its coordinates.
type GridIter[T any] struct {
	grid Grid[T]
	// Cursor positioned at the next cell to yield.  The iterator is
	// exhausted once y reaches the grid's height.
	x, y uint
}

// Iter returns an iterator over every cell of the given grid in row-major
// order.
func Iter[T any](g Grid[T]) *GridIter[T] {
	return &GridIter[T]{g, 0, 0}
}

// HasNext checks whether any cells remain to visit.
func (p *GridIter[T]) HasNext() bool {
	return p.y < p.grid.Height() && p.x < p.grid.Width()
}

// Len returns the exact number of cells remaining.
func (p *GridIter[T]) Len() uint {
	var (
		w = p.grid.Width()
		h = p.grid.Height()
	)
	// Exhausted, either because the cursor ran off the bottom or because
	// the grid has no cells at all.
	if p.y >= h || w == 0 {
		return 0
	}
	// Full rows below the cursor, plus the remainder of the current row.
	return (h-p.y-1)*w + (w - p.x)
}

// Next returns the value and coordinates of the next cell in row-major
// order, then advances the cursor.  Panics if the iterator is exhausted.
func (p *GridIter[T]) Next() (T, uint, uint) {
	if !p.HasNext() {
		panic("iterator out-of-bounds")
	}
	//
	var (
		x     = p.x
		y     = p.y
		value = p.grid.GetUnchecked(x, y)
	)
	// Advance, wrapping onto the next row when the current one is done.
	p.x++
	if p.x >= p.grid.Width() {
		p.x = 0
		p.y++
	}
	//
	return value, x, y
}

// Clone creates a copy of this iterator at its current cursor position.
func (p *GridIter[T]) Clone() *GridIter[T] {
	clone := *p
	return &clone
}

// Collect drains the iterator into a slice of values, discarding the
// coordinates.
func (p *GridIter[T]) Collect() []T {
	items := make([]T, 0, p.Len())
	//
	for p.HasNext() {
		value, _, _ := p.Next()
		items = append(items, value)
	}
	//
	return items
}
