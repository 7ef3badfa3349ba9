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

// Grid provides a generic read-only interface to a rectangular 2D array of
// elements.  Implementations decide how elements are actually stored, e.g. as
// a flat row-major buffer, a map of assigned cells, or a window into another
// grid.  Dimensions are stable: no operation on a Grid ever changes its width
// or height.
type Grid[T any] interface {
	// Width returns the number of columns in this grid.
	Width() uint
	// Height returns the number of rows in this grid.
	Height() uint
	// Get returns the element at the given coordinate, or false if the
	// coordinate lies outside the grid.  An out-of-range read is a routine
	// outcome (e.g. when sampling neighbours at an edge), not an error.
	Get(x, y uint) (T, bool)
	// GetUnchecked returns the element at the given coordinate without any
	// bounds check.  The caller must ensure x < Width() and y < Height();
	// otherwise the result is unspecified and may panic.  This exists purely
	// as an escape hatch for hot loops which have already established the
	// bound (e.g. a loop over 0..Width()).
	GetUnchecked(x, y uint) T
	// RowSlice returns row y as a contiguous slice, or nil if either y is out
	// of range or the backing store cannot expose the row contiguously.
	// Callers must treat nil as "fall back to element-wise access".  The
	// returned slice must not be modified through a read-only grid handle.
	RowSlice(y uint) []T
}

// MutGrid extends Grid with write access.  At most one writer may operate on
// a given region at a time, and it must not overlap any concurrently used
// read-only handle of the same region.  This is a caller contract, not
// something enforced at runtime.
type MutGrid[T any] interface {
	Grid[T]
	// Set overwrites the element at the given coordinate, returning the value
	// it replaced.  If the coordinate lies outside the grid then nothing is
	// written and false is returned.
	Set(x, y uint, value T) (T, bool)
	// SetUnchecked overwrites the element at the given coordinate without any
	// bounds check, returning the value it replaced.  Same caller contract as
	// GetUnchecked.
	SetUnchecked(x, y uint, value T) T
	// RowSliceMut returns row y as a contiguous slice suitable for writing,
	// or nil under the same conditions as RowSlice.
	RowSliceMut(y uint) []T
}

// SameSize checks whether two grids have identical dimensions.
func SameSize[T any](lhs Grid[T], rhs Grid[T]) bool {
	return lhs.Width() == rhs.Width() && lhs.Height() == rhs.Height()
}

// Equals checks two grids for cell-by-cell equality.  Grids of differing
// dimensions are never equal.
func Equals[T comparable](lhs Grid[T], rhs Grid[T]) bool {
	if !SameSize(lhs, rhs) {
		return false
	}
	//
	for y := uint(0); y < lhs.Height(); y++ {
		if !rowEquals(lhs, rhs, y) {
			return false
		}
	}
	//
	return true
}

func rowEquals[T comparable](lhs Grid[T], rhs Grid[T], y uint) bool {
	lrow, rrow := lhs.RowSlice(y), rhs.RowSlice(y)
	// Fast path when both rows are contiguous.
	if lrow != nil && rrow != nil {
		for x := range lrow {
			if lrow[x] != rrow[x] {
				return false
			}
		}
		//
		return true
	}
	//
	for x := uint(0); x < lhs.Width(); x++ {
		if lhs.GetUnchecked(x, y) != rhs.GetUnchecked(x, y) {
			return false
		}
	}
	//
	return true
}
