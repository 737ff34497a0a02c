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
package gf101_test

import (
	"testing"

	"github.com/yokoyolk/valida/pkg/util/assert"
	"github.com/yokoyolk/valida/pkg/util/field/gf101"
)

func TestArithmetic(t *testing.T) {
	for a := uint32(0); a < gf101.Modulus; a++ {
		for b := uint32(0); b < gf101.Modulus; b++ {
			var (
				x = gf101.New(a)
				y = gf101.New(b)
			)
			//
			assert.Equal(t, (a+b)%gf101.Modulus, x.Add(y).Uint32())
			assert.Equal(t, (a+gf101.Modulus-b)%gf101.Modulus, x.Sub(y).Uint32())
			assert.Equal(t, (a*b)%gf101.Modulus, x.Mul(y).Uint32())
		}
	}
}

func TestInverseLaw(t *testing.T) {
	for a := uint32(1); a < gf101.Modulus; a++ {
		x := gf101.New(a)
		//
		assert.True(t, x.Mul(x.Inverse()).IsOne(), "bad inverse of %d", a)
	}
}

func TestInverseZero(t *testing.T) {
	assert.True(t, gf101.New(0).Inverse().IsZero())
}

func TestKnownInverses(t *testing.T) {
	// 37 * 71 = 2627 = 26*101 + 1
	assert.Equal(t, gf101.New(71), gf101.New(37).Inverse())
	// 57 * 39 = 2223 = 22*101 + 1
	assert.Equal(t, gf101.New(39), gf101.New(57).Inverse())
}

func TestModularConstruction(t *testing.T) {
	assert.Equal(t, gf101.New(4), gf101.New(105))
	assert.Equal(t, uint32(4), gf101.Element{}.SetUint64(105).Uint32())
	assert.True(t, gf101.New(101).IsZero())
}

// Confirms that 2 has no square root mod 101, so u² - 2 is irreducible and
// the quadratic extension is a field.
func TestTwoIsNonResidue(t *testing.T) {
	for a := uint32(0); a < gf101.Modulus; a++ {
		assert.False(t, (a*a)%gf101.Modulus == 2, "2 has square root %d", a)
	}
}
