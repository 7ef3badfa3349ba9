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

func Test_Sparse_01(t *testing.T) {
	sparse := NewSparse[uint](1000, 1000)
	//
	checkDimensions[uint](t, sparse, 1000, 1000)
	// Unwritten in-bounds cells read as zero
	checkGet[uint](t, sparse, 0, 0, 0)
	checkGet[uint](t, sparse, 999, 999, 0)
	// No cells are materialised by reading
	if sparse.Count() != 0 {
		t.Errorf("expected 0 cells, got %d", sparse.Count())
	}
}

func Test_Sparse_02(t *testing.T) {
	sparse := NewSparse[uint](10, 10)
	//
	sparse.Set(3, 4, 42)
	sparse.Set(9, 9, 7)
	//
	checkGet[uint](t, sparse, 3, 4, 42)
	checkGet[uint](t, sparse, 9, 9, 7)
	//
	if sparse.Count() != 2 {
		t.Errorf("expected 2 cells, got %d", sparse.Count())
	}
	// Out-of-bounds access fails, as for the dense store
	if _, ok := sparse.Get(10, 0); ok {
		t.Errorf("expected read at (10,0) to fail")
	}
	//
	if _, ok := sparse.Set(0, 10, 1); ok {
		t.Errorf("expected write at (0,10) to fail")
	}
}

func Test_Sparse_03(t *testing.T) {
	sparse := NewSparse[uint](10, 10)
	//
	sparse.Set(1, 1, 5)
	// Overwrites displace the previous value without growing the map
	if old, ok := sparse.Set(1, 1, 6); !ok || old != 5 {
		t.Errorf("expected displaced value 5, got %d", old)
	}
	//
	if sparse.Count() != 1 {
		t.Errorf("expected 1 cell, got %d", sparse.Count())
	}
}

func Test_Sparse_04(t *testing.T) {
	sparse := NewSparse[uint](10, 10)
	//
	sparse.Set(2, 2, 9)
	sparse.Delete(2, 2)
	// Deleted cells revert to zero and release storage
	checkGet[uint](t, sparse, 2, 2, 0)
	//
	if sparse.Count() != 0 {
		t.Errorf("expected 0 cells, got %d", sparse.Count())
	}
	// Deleting an unwritten cell is a no-op
	sparse.Delete(5, 5)
}

func Test_Sparse_05(t *testing.T) {
	// Writing a zero value still materialises the cell
	sparse := NewSparse[uint](10, 10)
	//
	sparse.Set(0, 0, 0)
	//
	if sparse.Count() != 1 {
		t.Errorf("expected 1 cell, got %d", sparse.Count())
	}
}

func Test_Sparse_06(t *testing.T) {
	var (
		sparse = NewSparse[uint](4, 4)
		view   = NewMutView[uint](sparse, 1, 1, 2, 2)
	)
	// Views compose over sparse grids using the element-wise paths
	Fill[uint](view, 9)
	//
	if sparse.Count() != 4 {
		t.Errorf("expected 4 cells, got %d", sparse.Count())
	}
	//
	checkGet[uint](t, sparse, 1, 1, 9)
	checkGet[uint](t, sparse, 2, 2, 9)
	checkGet[uint](t, sparse, 0, 0, 0)
}

func Test_Sparse_07(t *testing.T) {
	var (
		sparse = NewSparse[uint](3, 2)
		dense  = NewBuffer[uint](3, 2)
	)
	//
	sparse.Set(1, 0, 4)
	sparse.Set(2, 1, 8)
	// Dense and sparse grids interoperate through the common interface
	Copy[uint](dense, sparse)
	//
	checkStore(t, dense, []uint{
		0, 4, 0,
		0, 0, 8,
	})
	//
	if !Equals[uint](dense, sparse) {
		t.Errorf("expected grids to be equal:\n%s\n%s", Sprint[uint](dense), Sprint[uint](sparse))
	}
}

func Test_Sparse_08(t *testing.T) {
	var (
		sparse = NewSparse[uint](5, 5)
		clone  = sparse.Clone()
	)
	//
	sparse.Set(0, 0, 1)
	//
	checkGet[uint](t, clone, 0, 0, 0)
	//
	if clone.Count() != 0 {
		t.Errorf("expected 0 cells, got %d", clone.Count())
	}
}
