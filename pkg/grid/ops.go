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
	"strings"
)

// Fill assigns the given value to every cell of the grid.
func Fill[T any](g MutGrid[T], value T) {
	var (
		w = g.Width()
		h = g.Height()
	)
	//
	for y := uint(0); y < h; y++ {
		if row := g.RowSliceMut(y); row != nil {
			for x := range row {
				row[x] = value
			}
		} else {
			for x := uint(0); x < w; x++ {
				g.SetUnchecked(x, y, value)
			}
		}
	}
}

// FillWith assigns to every cell of the grid the value produced by the given
// generator for that cell's coordinates.
func FillWith[T any](g MutGrid[T], fn func(uint, uint) T) {
	var (
		w = g.Width()
		h = g.Height()
	)
	//
	for y := uint(0); y < h; y++ {
		if row := g.RowSliceMut(y); row != nil {
			for x := range row {
				row[x] = fn(uint(x), y)
			}
		} else {
			for x := uint(0); x < w; x++ {
				g.SetUnchecked(x, y, fn(x, y))
			}
		}
	}
}

// Copy assigns every cell of the source grid to the corresponding cell of
// the destination grid.  This will panic if the two grids do not have
// identical dimensions.
func Copy[T any](dst MutGrid[T], src Grid[T]) {
	var (
		w = src.Width()
		h = src.Height()
	)
	//
	if dst.Width() != w || dst.Height() != h {
		panic(fmt.Sprintf("incompatible grid dimensions (%dx%d vs %dx%d)",
			dst.Width(), dst.Height(), w, h))
	}
	//
	for y := uint(0); y < h; y++ {
		dstRow := dst.RowSliceMut(y)
		srcRow := src.RowSlice(y)
		// Use contiguous row copies when both sides offer them.
		switch {
		case dstRow != nil && srcRow != nil:
			copy(dstRow, srcRow)
		case dstRow != nil:
			for x := range dstRow {
				dstRow[x] = src.GetUnchecked(uint(x), y)
			}
		case srcRow != nil:
			for x, value := range srcRow {
				dst.SetUnchecked(uint(x), y, value)
			}
		default:
			for x := uint(0); x < w; x++ {
				dst.SetUnchecked(x, y, src.GetUnchecked(x, y))
			}
		}
	}
}

// Sprint produces a human-readable rendering of the grid, with one line per
// row and every cell formatted as "[v]" padded to a common width.  This is
// intended for debugging and test diagnostics, not serialisation.
func Sprint[T any](g Grid[T]) string {
	var (
		w     = g.Width()
		h     = g.Height()
		cells = make([]string, 0, w*h)
		width = 0
	)
	// First pass determines the widest cell so columns line up.
	for y := uint(0); y < h; y++ {
		for x := uint(0); x < w; x++ {
			cell := fmt.Sprintf("%v", g.GetUnchecked(x, y))
			width = max(width, len(cell))
			cells = append(cells, cell)
		}
	}
	//
	var builder strings.Builder
	//
	for y := uint(0); y < h; y++ {
		for x := uint(0); x < w; x++ {
			cell := cells[y*w+x]
			builder.WriteString("[")
			builder.WriteString(strings.Repeat(" ", width-len(cell)))
			builder.WriteString(cell)
			builder.WriteString("]")
		}
		//
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
