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

func Test_Ops_Fill_01(t *testing.T) {
	buf := NewBuffer[uint](3, 2)
	//
	Fill[uint](buf, 7)
	//
	checkStore(t, buf, []uint{
		7, 7, 7,
		7, 7, 7,
	})
}

func Test_Ops_FillWith_01(t *testing.T) {
	buf := NewBuffer[uint](3, 2)
	// Generator receives each cell's coordinates
	FillWith[uint](buf, func(x uint, y uint) uint {
		return 10*y + x
	})
	//
	checkStore(t, buf, []uint{
		0, 1, 2,
		10, 11, 12,
	})
}

func Test_Ops_Copy_01(t *testing.T) {
	var (
		src = initBuffer(3, 2)
		dst = NewBuffer[uint](3, 2)
	)
	//
	Copy[uint](dst, src)
	//
	if !Equals[uint](dst, src) {
		t.Errorf("expected grids to be equal:\n%s\n%s", Sprint[uint](dst), Sprint[uint](src))
	}
}

func Test_Ops_Copy_02(t *testing.T) {
	defer checkPanic(t, "incompatible grid dimensions")
	//
	Copy[uint](NewBuffer[uint](2, 3), initBuffer(3, 2))
}

func Test_Ops_Copy_03(t *testing.T) {
	var (
		buf = initBuffer(4, 4)
		src = NewView[uint](buf, 0, 0, 2, 2)
		dst = NewMutView[uint](buf, 2, 2, 2, 2)
	)
	// Copy between non-overlapping views of the same buffer
	Copy[uint](dst, src)
	//
	checkStore(t, buf, []uint{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 0, 1,
		12, 13, 4, 5,
	})
}

func Test_Ops_Equals_01(t *testing.T) {
	var (
		lhs = initBuffer(3, 3)
		rhs = initBuffer(3, 3)
	)
	//
	if !Equals[uint](lhs, rhs) {
		t.Errorf("expected grids to be equal")
	}
	//
	rhs.Set(2, 2, 99)
	//
	if Equals[uint](lhs, rhs) {
		t.Errorf("expected grids to differ")
	}
	// Differing dimensions are never equal, even when both are empty
	if Equals[uint](initBuffer(2, 3), initBuffer(3, 2)) {
		t.Errorf("expected grids of different shapes to differ")
	}
}

func Test_Ops_Equals_02(t *testing.T) {
	var (
		buf  = initBuffer(4, 4)
		view = NewView[uint](buf, 1, 1, 2, 2)
		snap = NewBufferFrom[uint](view)
	)
	// A snapshot equals the view it was taken from
	if !Equals[uint](snap, view) {
		t.Errorf("expected snapshot to equal its view")
	}
	//
	buf.Set(1, 1, 99)
	//
	if Equals[uint](snap, view) {
		t.Errorf("expected snapshot to lag its view")
	}
}

func Test_Ops_SameSize_01(t *testing.T) {
	if !SameSize[uint](initBuffer(3, 2), NewBuffer[uint](3, 2)) {
		t.Errorf("expected grids to have the same size")
	}
	//
	if SameSize[uint](initBuffer(3, 2), NewBuffer[uint](2, 3)) {
		t.Errorf("expected grids to have different sizes")
	}
}

func Test_Ops_Sprint_01(t *testing.T) {
	var (
		buf      = NewBufferOf(2, 2, []uint{1, 10, 100, 0})
		expected = "[  1][ 10]\n[100][  0]\n"
	)
	//
	if s := Sprint[uint](buf); s != expected {
		t.Errorf("expected %q, got %q", expected, s)
	}
}
