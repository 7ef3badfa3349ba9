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

// sparseKey identifies a cell within a sparse grid.
type sparseKey struct {
	x uint
	y uint
}

// Sparse is a map-backed implementation of MutGrid suited to large grids
// where most cells hold the zero value.  Reading an in-bounds cell which has
// never been written yields the zero value of T, and storage is consumed
// only by cells explicitly written.  Dimensions are fixed at construction,
// exactly as for Buffer.
type Sparse[T any] struct {
	width  uint
	height uint
	cells  map[sparseKey]T
}

// NewSparse constructs a sparse grid of the given dimensions in which every
// cell initially holds the zero value of T.
func NewSparse[T any](width uint, height uint) *Sparse[T] {
	// Check dimensions are representable, mirroring Buffer.
	area(width, height)
	//
	return &Sparse[T]{width, height, make(map[sparseKey]T)}
}

// Width returns the number of columns in this grid.
func (p *Sparse[T]) Width() uint {
	return p.width
}

// Height returns the number of rows in this grid.
func (p *Sparse[T]) Height() uint {
	return p.height
}

// Get returns the element at the given coordinate, or the zero value of T
// for any in-bounds cell which has never been written.
func (p *Sparse[T]) Get(x uint, y uint) (T, bool) {
	if x < p.width && y < p.height {
		return p.cells[sparseKey{x, y}], true
	}
	//
	var empty T
	//
	return empty, false
}

// GetUnchecked returns the element at the given coordinate without any
// bounds check.  Unlike the dense backing store, an out-of-bounds read here
// quietly yields the zero value rather than panicking or aliasing another
// cell, but callers should not rely on that.
func (p *Sparse[T]) GetUnchecked(x uint, y uint) T {
	return p.cells[sparseKey{x, y}]
}

// RowSlice always returns nil, since a sparse grid has no contiguous row
// storage.
func (p *Sparse[T]) RowSlice(y uint) []T {
	return nil
}

// RowSliceMut always returns nil, since a sparse grid has no contiguous row
// storage.
func (p *Sparse[T]) RowSliceMut(y uint) []T {
	return nil
}

// Set overwrites the element at the given coordinate, returning the value it
// replaced along with a flag indicating whether the coordinate was in
// bounds.  Writing the zero value still materialises the cell; use Delete to
// release its storage.
func (p *Sparse[T]) Set(x uint, y uint, value T) (T, bool) {
	if x < p.width && y < p.height {
		key := sparseKey{x, y}
		old := p.cells[key]
		p.cells[key] = value
		//
		return old, true
	}
	//
	var empty T
	//
	return empty, false
}

// SetUnchecked overwrites the element at the given coordinate without any
// bounds check, returning the value it replaced.
func (p *Sparse[T]) SetUnchecked(x uint, y uint, value T) T {
	key := sparseKey{x, y}
	old := p.cells[key]
	p.cells[key] = value
	//
	return old
}

// Delete releases the storage held by the given cell, restoring it to the
// zero value of T.  Deleting a cell which was never written is a no-op.
func (p *Sparse[T]) Delete(x uint, y uint) {
	delete(p.cells, sparseKey{x, y})
}

// Count returns the number of cells currently materialised in the backing
// map.  Observe this can differ from the number of non-zero cells, since
// writing a zero value also materialises a cell.
func (p *Sparse[T]) Count() uint {
	return uint(len(p.cells))
}

// Clone creates a deep copy of this grid.
func (p *Sparse[T]) Clone() *Sparse[T] {
	cells := make(map[sparseKey]T, len(p.cells))
	//
	for key, value := range p.cells {
		cells[key] = value
	}
	//
	return &Sparse[T]{p.width, p.height, cells}
}
