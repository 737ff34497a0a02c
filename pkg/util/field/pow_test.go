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
package field_test

import (
	"testing"

	"github.com/yokoyolk/valida/pkg/util/assert"
	"github.com/yokoyolk/valida/pkg/util/field"
	"github.com/yokoyolk/valida/pkg/util/field/gf101"
)

func TestPowers(t *testing.T) {
	powers := field.Powers(gf101.New(5), 4)
	//
	assert.Equal(t, 4, len(powers))
	assert.Equal(t, gf101.New(1), powers[0])
	assert.Equal(t, gf101.New(5), powers[1])
	assert.Equal(t, gf101.New(25), powers[2])
	// 125 mod 101
	assert.Equal(t, gf101.New(24), powers[3])
}

func TestPowersCumulative(t *testing.T) {
	var (
		base   = gf101.New(3)
		powers = field.Powers(base, 32)
		acc    = field.One[gf101.Element]()
	)
	//
	for n, p := range powers {
		assert.Equal(t, acc, p, "mismatch at power %d", n)
		acc = acc.Mul(base)
	}
}

func TestPowersEmpty(t *testing.T) {
	assert.Equal(t, 0, len(field.Powers(gf101.New(5), 0)))
}
