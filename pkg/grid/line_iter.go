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

// RowIter is a bidirectional cursor over the values of a single row.  Next
// consumes from the low end and NextBack from the high end, the two meeting
// in the middle; together they visit every value exactly once.  The remaining
// length is always the distance between the two cursors, recomputed rather
// than cached.
type RowIter[T any] struct {
	grid Grid[T]
	y    uint
	// Low cursor (inclusive) and high bound (exclusive).
	x, b uint
}

// HasNext checks whether any values remain to visit.
func (p *RowIter[T]) HasNext() bool {
	return p.x < p.b
}

// Len returns the number of values remaining between the two cursors.
func (p *RowIter[T]) Len() uint {
	return p.b - p.x
}

// Next returns the lowest unvisited value and advances the low cursor.
// Panics if the iterator is exhausted.
func (p *RowIter[T]) Next() T {
	if p.x >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	next := p.grid.GetUnchecked(p.x, p.y)
	p.x++
	//
	return next
}

// NextBack returns the highest unvisited value and retreats the high bound.
// Panics if the iterator is exhausted.
func (p *RowIter[T]) NextBack() T {
	if p.x >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	p.b--
	//
	return p.grid.GetUnchecked(p.b, p.y)
}

// Clone creates a copy of this iterator at its current cursor positions.
// Advancing the clone does not affect the original.
func (p *RowIter[T]) Clone() *RowIter[T] {
	clone := *p
	return &clone
}

// Collect allocates a new array containing all remaining values, low to high.
// This drains the iterator.
func (p *RowIter[T]) Collect() []T {
	items := make([]T, 0, p.Len())
	//
	for p.HasNext() {
		items = append(items, p.Next())
	}
	//
	return items
}

// ============================================================================
// Column Iterator
// ============================================================================

// ColIter is the column analogue of RowIter, walking a fixed column from top
// to bottom (and bottom to top via NextBack).
type ColIter[T any] struct {
	grid Grid[T]
	x    uint
	// Low cursor (inclusive) and high bound (exclusive).
	y, b uint
}

// HasNext checks whether any values remain to visit.
func (p *ColIter[T]) HasNext() bool {
	return p.y < p.b
}

// Len returns the number of values remaining between the two cursors.
func (p *ColIter[T]) Len() uint {
	return p.b - p.y
}

// Next returns the topmost unvisited value and advances the low cursor.
// Panics if the iterator is exhausted.
func (p *ColIter[T]) Next() T {
	if p.y >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	next := p.grid.GetUnchecked(p.x, p.y)
	p.y++
	//
	return next
}

// NextBack returns the bottommost unvisited value and retreats the high
// bound.  Panics if the iterator is exhausted.
func (p *ColIter[T]) NextBack() T {
	if p.y >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	p.b--
	//
	return p.grid.GetUnchecked(p.x, p.b)
}

// Clone creates a copy of this iterator at its current cursor positions.
func (p *ColIter[T]) Clone() *ColIter[T] {
	clone := *p
	return &clone
}

// Collect allocates a new array containing all remaining values, top to
// bottom.  This drains the iterator.
func (p *ColIter[T]) Collect() []T {
	items := make([]T, 0, p.Len())
	//
	for p.HasNext() {
		items = append(items, p.Next())
	}
	//
	return items
}
