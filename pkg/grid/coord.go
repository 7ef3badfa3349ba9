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

// Coord is a signed cell coordinate.  Unlike the unsigned coordinates used
// by the accessor methods on Grid, a Coord can lie outside a grid's bounds
// (including at negative positions) and be projected back in via wrapping or
// clamping.
type Coord struct {
	X int
	Y int
}

// Add returns the component-wise sum of two coordinates.
func (p Coord) Add(other Coord) Coord {
	return Coord{p.X + other.X, p.Y + other.Y}
}

// Sub returns the component-wise difference of two coordinates.
func (p Coord) Sub(other Coord) Coord {
	return Coord{p.X - other.X, p.Y - other.Y}
}

// Scale returns this coordinate with both components multiplied by the given
// factor.
func (p Coord) Scale(factor int) Coord {
	return Coord{p.X * factor, p.Y * factor}
}

// GetAt reads the cell identified by a signed coordinate, failing for any
// coordinate which lies outside the grid (including all negative
// coordinates).
func GetAt[T any](g Grid[T], c Coord) (T, bool) {
	if c.X < 0 || c.Y < 0 {
		var empty T
		return empty, false
	}
	//
	return g.Get(uint(c.X), uint(c.Y))
}

// SetAt writes the cell identified by a signed coordinate, failing for any
// coordinate which lies outside the grid.
func SetAt[T any](g MutGrid[T], c Coord, value T) (T, bool) {
	if c.X < 0 || c.Y < 0 {
		var empty T
		return empty, false
	}
	//
	return g.Set(uint(c.X), uint(c.Y), value)
}

// GetWrapped reads the cell identified by a signed coordinate after wrapping
// it toroidally into the grid's bounds.  For example, (-1,-1) identifies the
// bottom-right cell.  This will panic if the grid has no cells.
func GetWrapped[T any](g Grid[T], c Coord) T {
	x := wrapIndex(c.X, g.Width())
	y := wrapIndex(c.Y, g.Height())
	//
	return g.GetUnchecked(x, y)
}

// SetWrapped writes the cell identified by a signed coordinate after
// wrapping it toroidally into the grid's bounds, returning the value it
// replaced.  This will panic if the grid has no cells.
func SetWrapped[T any](g MutGrid[T], c Coord, value T) T {
	x := wrapIndex(c.X, g.Width())
	y := wrapIndex(c.Y, g.Height())
	//
	return g.SetUnchecked(x, y, value)
}

// GetClamped reads the cell nearest to a signed coordinate, with each
// component clamped independently into the grid's bounds.  This will panic
// if the grid has no cells.
func GetClamped[T any](g Grid[T], c Coord) T {
	x := clampIndex(c.X, g.Width())
	y := clampIndex(c.Y, g.Height())
	//
	return g.GetUnchecked(x, y)
}

// SetClamped writes the cell nearest to a signed coordinate, with each
// component clamped independently into the grid's bounds, returning the
// value it replaced.  This will panic if the grid has no cells.
func SetClamped[T any](g MutGrid[T], c Coord, value T) T {
	x := clampIndex(c.X, g.Width())
	y := clampIndex(c.Y, g.Height())
	//
	return g.SetUnchecked(x, y, value)
}

// ============================================================================
// Helpers
// ============================================================================

// Wrap a signed index into 0..bound, such that -1 maps to bound-1.
func wrapIndex(index int, bound uint) uint {
	if bound == 0 {
		panic("cannot wrap coordinate into empty grid")
	}
	//
	r := index % int(bound)
	if r < 0 {
		r += int(bound)
	}
	//
	return uint(r)
}

// Clamp a signed index into 0..bound, mapping negative indices to 0 and
// out-of-range indices to bound-1.
func clampIndex(index int, bound uint) uint {
	if bound == 0 {
		panic("cannot clamp coordinate into empty grid")
	}
	//
	switch {
	case index < 0:
		return 0
	case uint(index) >= bound:
		return bound - 1
	default:
		return uint(index)
	}
}
