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
	"testing"
)

func Test_Coord_01(t *testing.T) {
	var (
		a = Coord{1, 2}
		b = Coord{3, -1}
	)
	//
	if c := a.Add(b); c != (Coord{4, 1}) {
		t.Errorf("expected (4,1), got (%d,%d)", c.X, c.Y)
	}
	//
	if c := a.Sub(b); c != (Coord{-2, 3}) {
		t.Errorf("expected (-2,3), got (%d,%d)", c.X, c.Y)
	}
	//
	if c := b.Scale(-2); c != (Coord{-6, 2}) {
		t.Errorf("expected (-6,2), got (%d,%d)", c.X, c.Y)
	}
}

func Test_Coord_02(t *testing.T) {
	buf := initBuffer(3, 3)
	//
	if value, ok := GetAt[uint](buf, Coord{2, 1}); !ok || value != 5 {
		t.Errorf("expected read at (2,1) to yield 5, got %d", value)
	}
	// Negative and out-of-range coordinates fail
	if _, ok := GetAt[uint](buf, Coord{-1, 0}); ok {
		t.Errorf("expected read at (-1,0) to fail")
	}
	//
	if _, ok := GetAt[uint](buf, Coord{0, 3}); ok {
		t.Errorf("expected read at (0,3) to fail")
	}
}

func Test_Coord_03(t *testing.T) {
	buf := initBuffer(3, 3)
	//
	if old, ok := SetAt[uint](buf, Coord{1, 1}, 99); !ok || old != 4 {
		t.Errorf("expected write at (1,1) to displace 4, got %d", old)
	}
	//
	if _, ok := SetAt[uint](buf, Coord{1, -2}, 99); ok {
		t.Errorf("expected write at (1,-2) to fail")
	}
}

func Test_Coord_Wrap_01(t *testing.T) {
	buf := initBuffer(3, 3)
	// (-1,-1) wraps to the bottom-right cell
	if value := GetWrapped[uint](buf, Coord{-1, -1}); value != 8 {
		t.Errorf("expected 8, got %d", value)
	}
	// (3,-2) wraps to (0,1)
	if value := GetWrapped[uint](buf, Coord{3, -2}); value != 3 {
		t.Errorf("expected 3, got %d", value)
	}
	// In-bounds coordinates are untouched
	if value := GetWrapped[uint](buf, Coord{2, 0}); value != 2 {
		t.Errorf("expected 2, got %d", value)
	}
}

func Test_Coord_Wrap_02(t *testing.T) {
	buf := initBuffer(3, 3)
	//
	if old := SetWrapped[uint](buf, Coord{-1, -1}, 99); old != 8 {
		t.Errorf("expected displaced value 8, got %d", old)
	}
	//
	checkGet(t, buf, 2, 2, 99)
}

func Test_Coord_Wrap_03(t *testing.T) {
	buf := initBuffer(3, 3)
	// Wrapping is periodic in both directions
	for _, x := range []int{-4, -1, 2, 5, 8} {
		if value := GetWrapped[uint](buf, Coord{x, 0}); value != 2 {
			t.Errorf("expected x=%d to wrap onto column 2, got %d", x, value)
		}
	}
}

func Test_Coord_Wrap_04(t *testing.T) {
	defer checkPanic(t, "cannot wrap coordinate into empty grid")
	//
	GetWrapped[uint](NewBuffer[uint](0, 3), Coord{0, 0})
}

func Test_Coord_Clamp_01(t *testing.T) {
	buf := initBuffer(3, 3)
	// (-1,-1) clamps to the top-left cell
	if value := GetClamped[uint](buf, Coord{-1, -1}); value != 0 {
		t.Errorf("expected 0, got %d", value)
	}
	// (5,5) clamps to the bottom-right cell
	if value := GetClamped[uint](buf, Coord{5, 5}); value != 8 {
		t.Errorf("expected 8, got %d", value)
	}
	// Components clamp independently
	if value := GetClamped[uint](buf, Coord{-3, 1}); value != 3 {
		t.Errorf("expected 3, got %d", value)
	}
}

func Test_Coord_Clamp_02(t *testing.T) {
	buf := initBuffer(3, 3)
	//
	if old := SetClamped[uint](buf, Coord{5, -1}, 99); old != 2 {
		t.Errorf("expected displaced value 2, got %d", old)
	}
	//
	checkGet(t, buf, 2, 0, 99)
}
