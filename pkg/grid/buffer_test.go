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
	"math"
	"strings"
	"testing"
)

func Test_Buffer_01(t *testing.T) {
	buf := NewBuffer[uint](3, 2)
	//
	checkDimensions(t, buf, 3, 2)
	// Every cell starts at the zero value
	for y := uint(0); y < 2; y++ {
		for x := uint(0); x < 3; x++ {
			checkGet(t, buf, x, y, 0)
		}
	}
}

func Test_Buffer_02(t *testing.T) {
	buf := initBuffer(4, 3)
	// Cells hold their row-major index
	for y := uint(0); y < 3; y++ {
		for x := uint(0); x < 4; x++ {
			checkGet(t, buf, x, y, y*4+x)
		}
	}
}

func Test_Buffer_03(t *testing.T) {
	buf := initBuffer(3, 3)
	// Reads outside either dimension fail
	if _, ok := buf.Get(3, 0); ok {
		t.Errorf("expected read at (3,0) to fail")
	}
	//
	if _, ok := buf.Get(0, 3); ok {
		t.Errorf("expected read at (0,3) to fail")
	}
	//
	if _, ok := buf.Get(3, 3); ok {
		t.Errorf("expected read at (3,3) to fail")
	}
}

func Test_Buffer_04(t *testing.T) {
	buf := initBuffer(3, 2)
	// In-bounds write returns the displaced value
	if old, ok := buf.Set(1, 1, 99); !ok {
		t.Errorf("expected write at (1,1) to succeed")
	} else if old != 4 {
		t.Errorf("expected displaced value 4, got %d", old)
	}
	//
	checkGet(t, buf, 1, 1, 99)
	// Out-of-bounds write fails and changes nothing
	if _, ok := buf.Set(3, 0, 99); ok {
		t.Errorf("expected write at (3,0) to fail")
	}
}

func Test_Buffer_05(t *testing.T) {
	buf := NewBufferOf(2, 2, []uint{1, 2, 3, 4})
	//
	checkGet(t, buf, 0, 0, 1)
	checkGet(t, buf, 1, 0, 2)
	checkGet(t, buf, 0, 1, 3)
	checkGet(t, buf, 1, 1, 4)
	// Writes are visible through the caller's store
	store := buf.Store()
	buf.Set(0, 0, 9)
	//
	if store[0] != 9 {
		t.Errorf("expected write to be visible in store, got %d", store[0])
	}
}

func Test_Buffer_06(t *testing.T) {
	defer checkPanic(t, "incompatible store length")
	// Store does not cover 3x3 cells
	NewBufferOf(3, 3, make([]uint, 8))
}

func Test_Buffer_07(t *testing.T) {
	defer checkPanic(t, "grid dimensions overflow")
	//
	NewBuffer[uint](math.MaxUint/2, 3)
}

func Test_Buffer_08(t *testing.T) {
	buf := initBuffer(3, 2)
	row := buf.RowSlice(1)
	//
	if len(row) != 3 {
		t.Errorf("expected row of length 3, got %d", len(row))
	}
	//
	for x, value := range row {
		if value != uint(3+x) {
			t.Errorf("expected cell (%d,1) to hold %d, got %d", x, 3+x, value)
		}
	}
}

func Test_Buffer_09(t *testing.T) {
	var (
		buf   = initBuffer(3, 2)
		clone = buf.Clone()
	)
	// Mutating the clone leaves the original untouched
	clone.Set(0, 0, 99)
	//
	checkGet(t, buf, 0, 0, 0)
	checkGet(t, clone, 0, 0, 99)
}

func Test_Buffer_10(t *testing.T) {
	var (
		src = initBuffer(2, 2)
		buf = NewBufferFrom[uint](src)
	)
	// Snapshot is independent of the source
	src.Set(0, 0, 99)
	//
	checkGet(t, buf, 0, 0, 0)
	checkGet(t, buf, 1, 1, 3)
}

func Test_Buffer_11(t *testing.T) {
	// Degenerate grids are permitted
	empty := NewBuffer[uint](0, 5)
	//
	checkDimensions(t, empty, 0, 5)
	//
	if _, ok := empty.Get(0, 0); ok {
		t.Errorf("expected read on empty grid to fail")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// Construct a dense grid in which each cell holds its row-major index.
func initBuffer(width uint, height uint) *Buffer[uint] {
	return NewBufferWith(width, height, func(x uint, y uint) uint {
		return y*width + x
	})
}

func checkDimensions[T any](t *testing.T, g Grid[T], width uint, height uint) {
	if g.Width() != width || g.Height() != height {
		t.Errorf("expected %dx%d grid, got %dx%d", width, height, g.Width(), g.Height())
	}
}

func checkGet[T comparable](t *testing.T, g Grid[T], x uint, y uint, expected T) {
	if value, ok := g.Get(x, y); !ok {
		t.Errorf("expected read at (%d,%d) to succeed", x, y)
	} else if value != expected {
		t.Errorf("expected cell (%d,%d) to hold %v, got %v", x, y, expected, value)
	}
}

// Check the enclosing test panics with a message containing the given
// fragment.
func checkPanic(t *testing.T, fragment string) {
	if r := recover(); r == nil {
		t.Errorf("expected panic containing %q", fragment)
	} else if msg, ok := r.(string); !ok || !strings.Contains(msg, fragment) {
		t.Errorf("expected panic containing %q, got %v", fragment, r)
	}
}
