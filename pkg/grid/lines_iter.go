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

// RowsIter is a bidirectional, exact-length cursor over the rows of a grid,
// yielding a Row handle for each index in 0..Height().
type RowsIter[T any] struct {
	grid Grid[T]
	// Low cursor (inclusive) and high bound (exclusive).
	y, b uint
}

// Rows returns an iterator over all rows of the given grid, top to bottom.
func Rows[T any](g Grid[T]) *RowsIter[T] {
	return &RowsIter[T]{g, 0, g.Height()}
}

// HasNext checks whether any rows remain to visit.
func (p *RowsIter[T]) HasNext() bool {
	return p.y < p.b
}

// Len returns the number of rows remaining.
func (p *RowsIter[T]) Len() uint {
	return p.b - p.y
}

// Next returns the topmost unvisited row and advances the cursor.  Panics if
// the iterator is exhausted.
func (p *RowsIter[T]) Next() Row[T] {
	if p.y >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	row := Row[T]{p.grid, p.y}
	p.y++
	//
	return row
}

// NextBack returns the bottommost unvisited row and retreats the high bound.
// Panics if the iterator is exhausted.
func (p *RowsIter[T]) NextBack() Row[T] {
	if p.y >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	p.b--
	//
	return Row[T]{p.grid, p.b}
}

// Clone creates a copy of this iterator at its current cursor positions.
func (p *RowsIter[T]) Clone() *RowsIter[T] {
	clone := *p
	return &clone
}

// MutRowsIter is the mutable analogue of RowsIter, yielding MutRow handles.
type MutRowsIter[T any] struct {
	grid MutGrid[T]
	y, b uint
}

// MutRows returns an iterator over all rows of the given grid, top to bottom,
// yielding mutable row handles.
func MutRows[T any](g MutGrid[T]) *MutRowsIter[T] {
	return &MutRowsIter[T]{g, 0, g.Height()}
}

// HasNext checks whether any rows remain to visit.
func (p *MutRowsIter[T]) HasNext() bool {
	return p.y < p.b
}

// Len returns the number of rows remaining.
func (p *MutRowsIter[T]) Len() uint {
	return p.b - p.y
}

// Next returns the topmost unvisited row and advances the cursor.  Panics if
// the iterator is exhausted.
func (p *MutRowsIter[T]) Next() MutRow[T] {
	if p.y >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	row := MutRow[T]{p.grid, p.y}
	p.y++
	//
	return row
}

// NextBack returns the bottommost unvisited row and retreats the high bound.
// Panics if the iterator is exhausted.
func (p *MutRowsIter[T]) NextBack() MutRow[T] {
	if p.y >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	p.b--
	//
	return MutRow[T]{p.grid, p.b}
}

// ============================================================================
// Column Iterators
// ============================================================================

// ColsIter is a bidirectional, exact-length cursor over the columns of a
// grid, yielding a Col handle for each index in 0..Width().
type ColsIter[T any] struct {
	grid Grid[T]
	// Low cursor (inclusive) and high bound (exclusive).
	x, b uint
}

// Cols returns an iterator over all columns of the given grid, left to right.
func Cols[T any](g Grid[T]) *ColsIter[T] {
	return &ColsIter[T]{g, 0, g.Width()}
}

// HasNext checks whether any columns remain to visit.
func (p *ColsIter[T]) HasNext() bool {
	return p.x < p.b
}

// Len returns the number of columns remaining.
func (p *ColsIter[T]) Len() uint {
	return p.b - p.x
}

// Next returns the leftmost unvisited column and advances the cursor.
// Panics if the iterator is exhausted.
func (p *ColsIter[T]) Next() Col[T] {
	if p.x >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	col := Col[T]{p.grid, p.x}
	p.x++
	//
	return col
}

// NextBack returns the rightmost unvisited column and retreats the high
// bound.  Panics if the iterator is exhausted.
func (p *ColsIter[T]) NextBack() Col[T] {
	if p.x >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	p.b--
	//
	return Col[T]{p.grid, p.b}
}

// Clone creates a copy of this iterator at its current cursor positions.
func (p *ColsIter[T]) Clone() *ColsIter[T] {
	clone := *p
	return &clone
}

// MutColsIter is the mutable analogue of ColsIter, yielding MutCol handles.
type MutColsIter[T any] struct {
	grid MutGrid[T]
	x, b uint
}

// MutCols returns an iterator over all columns of the given grid, left to
// right, yielding mutable column handles.
func MutCols[T any](g MutGrid[T]) *MutColsIter[T] {
	return &MutColsIter[T]{g, 0, g.Width()}
}

// HasNext checks whether any columns remain to visit.
func (p *MutColsIter[T]) HasNext() bool {
	return p.x < p.b
}

// Len returns the number of columns remaining.
func (p *MutColsIter[T]) Len() uint {
	return p.b - p.x
}

// Next returns the leftmost unvisited column and advances the cursor.
// Panics if the iterator is exhausted.
func (p *MutColsIter[T]) Next() MutCol[T] {
	if p.x >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	col := MutCol[T]{p.grid, p.x}
	p.x++
	//
	return col
}

// NextBack returns the rightmost unvisited column and retreats the high
// bound.  Panics if the iterator is exhausted.
func (p *MutColsIter[T]) NextBack() MutCol[T] {
	if p.x >= p.b {
		panic("iterator out-of-bounds")
	}
	//
	p.b--
	//
	return MutCol[T]{p.grid, p.b}
}
