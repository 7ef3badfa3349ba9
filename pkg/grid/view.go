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

// View is a rectangular window into a root grid.  It owns no storage of its
// own; coordinates given to its accessors are local (relative to the window's
// top-left corner) and are translated by offset addition before delegating to
// the root.  A view of a view flattens its offsets into the true root at
// construction time, so access through a view costs exactly one translation
// regardless of nesting depth.
type View[T any] struct {
	root Grid[T]
	// Offset of the window's top-left corner within the root grid.
	x, y uint
	// Dimensions of the window.
	w, h uint
}

// NewView constructs a read-only view of the given rectangle, which must be
// fully contained within the source grid, otherwise this panics.  A bad
// rectangle here is a logic error on the caller's part, matching the
// semantics of out-of-bounds slicing; use TryView where the rectangle is not
// known in advance to be valid.
func NewView[T any](g Grid[T], x uint, y uint, w uint, h uint) View[T] {
	view, ok := TryView(g, x, y, w, h)
	//
	if !ok {
		panic("view does not overlap grid's bounds")
	}
	//
	return view
}

// TryView constructs a read-only view of the given rectangle, or returns
// false if the rectangle is not fully contained within the source grid.
func TryView[T any](g Grid[T], x uint, y uint, w uint, h uint) (View[T], bool) {
	if !contains(g, x, y, w, h) {
		return View[T]{}, false
	}
	//
	root, rx, ry := flatten(g)
	//
	return View[T]{root, rx + x, ry + y, w, h}, true
}

// Width returns the number of columns in this view.
func (p View[T]) Width() uint {
	return p.w
}

// Height returns the number of rows in this view.
func (p View[T]) Height() uint {
	return p.h
}

// Get returns the element at the given local coordinate, or false if it lies
// outside the view.
func (p View[T]) Get(x uint, y uint) (T, bool) {
	if x < p.w && y < p.h {
		return p.root.Get(p.x+x, p.y+y)
	}
	//
	var empty T
	//
	return empty, false
}

// GetUnchecked returns the element at the given local coordinate without any
// bounds check against the view.  See Grid.GetUnchecked for the caller
// contract.
func (p View[T]) GetUnchecked(x uint, y uint) T {
	return p.root.GetUnchecked(p.x+x, p.y+y)
}

// RowSlice returns local row y as a contiguous slice whenever the root can
// expose its corresponding row contiguously, since the view's row is then a
// sub-slice of the root's.
func (p View[T]) RowSlice(y uint) []T {
	if y < p.h {
		if row := p.root.RowSlice(p.y + y); row != nil {
			return row[p.x : p.x+p.w : p.x+p.w]
		}
	}
	//
	return nil
}

// Offset returns the position of this view's top-left corner within the root
// grid it was carved from.
func (p View[T]) Offset() (uint, uint) {
	return p.x, p.y
}

// ============================================================================
// Mutable View
// ============================================================================

// MutView is the writable counterpart of View.  It holds the only handle
// through which its region of the root should be mutated for as long as it is
// in use; overlapping writers are a caller contract violation (see MutGrid).
type MutView[T any] struct {
	root MutGrid[T]
	x, y uint
	w, h uint
}

// NewMutView constructs a mutable view of the given rectangle, which must be
// fully contained within the source grid, otherwise this panics.
func NewMutView[T any](g MutGrid[T], x uint, y uint, w uint, h uint) MutView[T] {
	view, ok := TryMutView(g, x, y, w, h)
	//
	if !ok {
		panic("view does not overlap grid's bounds")
	}
	//
	return view
}

// TryMutView constructs a mutable view of the given rectangle, or returns
// false if the rectangle is not fully contained within the source grid.
func TryMutView[T any](g MutGrid[T], x uint, y uint, w uint, h uint) (MutView[T], bool) {
	if !contains[T](g, x, y, w, h) {
		return MutView[T]{}, false
	}
	//
	root, rx, ry := flattenMut(g)
	//
	return MutView[T]{root, rx + x, ry + y, w, h}, true
}

// Width returns the number of columns in this view.
func (p MutView[T]) Width() uint {
	return p.w
}

// Height returns the number of rows in this view.
func (p MutView[T]) Height() uint {
	return p.h
}

// Get returns the element at the given local coordinate, or false if it lies
// outside the view.
func (p MutView[T]) Get(x uint, y uint) (T, bool) {
	if x < p.w && y < p.h {
		return p.root.Get(p.x+x, p.y+y)
	}
	//
	var empty T
	//
	return empty, false
}

// GetUnchecked returns the element at the given local coordinate without any
// bounds check against the view.
func (p MutView[T]) GetUnchecked(x uint, y uint) T {
	return p.root.GetUnchecked(p.x+x, p.y+y)
}

// RowSlice returns local row y as a contiguous slice when the root's layout
// permits it.
func (p MutView[T]) RowSlice(y uint) []T {
	if y < p.h {
		if row := p.root.RowSlice(p.y + y); row != nil {
			return row[p.x : p.x+p.w : p.x+p.w]
		}
	}
	//
	return nil
}

// Set overwrites the element at the given local coordinate, returning the
// value it replaced, or false (writing nothing) if the coordinate lies
// outside the view.
func (p MutView[T]) Set(x uint, y uint, value T) (T, bool) {
	if x < p.w && y < p.h {
		return p.root.Set(p.x+x, p.y+y, value)
	}
	//
	var empty T
	//
	return empty, false
}

// SetUnchecked overwrites the element at the given local coordinate without
// any bounds check against the view, returning the value it replaced.
func (p MutView[T]) SetUnchecked(x uint, y uint, value T) T {
	return p.root.SetUnchecked(p.x+x, p.y+y, value)
}

// RowSliceMut returns local row y as a contiguous slice for writing, when the
// root's layout permits it.
func (p MutView[T]) RowSliceMut(y uint) []T {
	if y < p.h {
		if row := p.root.RowSliceMut(p.y + y); row != nil {
			return row[p.x : p.x+p.w : p.x+p.w]
		}
	}
	//
	return nil
}

// Offset returns the position of this view's top-left corner within the root
// grid it was carved from.
func (p MutView[T]) Offset() (uint, uint) {
	return p.x, p.y
}

// AsView coerces this mutable view into a read-only view of the same window,
// for handing to algorithms which only need read access.  This is an explicit
// coercion rather than a copy of any data.
func (p MutView[T]) AsView() View[T] {
	return View[T]{p.root, p.x, p.y, p.w, p.h}
}

// ============================================================================
// Helpers
// ============================================================================

// contains checks whether the given rectangle sits fully within the given
// grid.  Written subtractively so that a pathological x+w or y+h overflow
// cannot wrap back into range.
func contains[T any](g Grid[T], x uint, y uint, w uint, h uint) bool {
	var (
		gw = g.Width()
		gh = g.Height()
	)
	//
	return x <= gw && w <= gw-x && y <= gh && h <= gh-y
}

// flatten resolves a possibly-nested view down to its true root, yielding the
// root grid along with the accumulated offset.  Anything which is not a view
// is its own root at offset (0, 0).
func flatten[T any](g Grid[T]) (Grid[T], uint, uint) {
	switch v := g.(type) {
	case View[T]:
		return v.root, v.x, v.y
	case MutView[T]:
		return v.root, v.x, v.y
	default:
		return g, 0, 0
	}
}

// flattenMut is the mutable analogue of flatten.
func flattenMut[T any](g MutGrid[T]) (MutGrid[T], uint, uint) {
	if v, ok := g.(MutView[T]); ok {
		return v.root, v.x, v.y
	}
	//
	return g, 0, 0
}
