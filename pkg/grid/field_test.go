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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/assert"
)

// Check grids behave sensibly over a non-trivial element type, using field
// elements as a representative struct-valued payload.

func Test_FieldGrid_01(t *testing.T) {
	buf := NewBufferWith(3, 3, func(x uint, y uint) fr.Element {
		return fr.NewElement(uint64(y*3 + x))
	})
	//
	for y := uint(0); y < 3; y++ {
		for x := uint(0); x < 3; x++ {
			var expected fr.Element
			//
			expected.SetUint64(uint64(y*3 + x))
			value := buf.GetUnchecked(x, y)
			assert.True(t, value.Equal(&expected))
		}
	}
}

func Test_FieldGrid_02(t *testing.T) {
	var (
		buf  = NewBuffer[fr.Element](4, 4)
		view = NewMutView[fr.Element](buf, 1, 1, 2, 2)
		one  = fr.One()
	)
	//
	Fill[fr.Element](view, one)
	// Row sums: interior rows have exactly two ones
	for y := uint(1); y < 3; y++ {
		var sum fr.Element
		//
		for iter := NewRow[fr.Element](buf, y).Iter(); iter.HasNext(); {
			value := iter.Next()
			sum.Add(&sum, &value)
		}
		//
		expected := fr.NewElement(2)
		assert.True(t, sum.Equal(&expected), "row %d", y)
	}
}

func Test_FieldGrid_03(t *testing.T) {
	var (
		original = NewBufferWith(2, 2, func(x uint, y uint) fr.Element {
			return fr.NewElement(uint64(x + y + 1))
		})
		decoded Buffer[fr.Element]
	)
	// Field elements round-trip through the standard encoding
	roundTrip(t, original, &decoded)
	//
	assert.True(t, Equals[fr.Element](&decoded, original))
}
