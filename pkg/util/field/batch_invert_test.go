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
	"strconv"
	"testing"

	"github.com/yokoyolk/valida/pkg/util/assert"
	"github.com/yokoyolk/valida/pkg/util/field"
	"github.com/yokoyolk/valida/pkg/util/field/gf101"
)

func TestBatchInvertNonZero(t *testing.T) {
	var (
		values    = make([]gf101.Element, 100)
		originals = make([]gf101.Element, 100)
	)
	//
	for i := range values {
		values[i] = gf101.New(uint32(i + 1))
		originals[i] = values[i]
	}
	//
	field.BatchInvert(values)
	//
	for i := range values {
		assert.True(t, values[i].Mul(originals[i]).IsOne(), "bad inverse at %d", i)
	}
}

func TestBatchInvertZeroPassthrough(t *testing.T) {
	values := []gf101.Element{
		gf101.New(0), gf101.New(37), gf101.New(0), gf101.New(57), gf101.New(0),
	}
	//
	field.BatchInvert(values)
	//
	assert.True(t, values[0].IsZero())
	assert.Equal(t, gf101.New(71), values[1])
	assert.True(t, values[2].IsZero())
	assert.Equal(t, gf101.New(39), values[3])
	assert.True(t, values[4].IsZero())
}

func TestBatchInvertEmpty(t *testing.T) {
	// Must not panic.
	field.BatchInvert([]gf101.Element{})
}

func TestBatchInvertSingleInversion(t *testing.T) {
	values := make([]countingElement, 64)
	//
	for i := range values {
		values[i] = countingElement{gf101.New(uint32(i + 1))}
	}
	//
	inversions = 0
	field.BatchInvert(values)
	//
	assert.Equal(t, 1, inversions)
}

// inversions counts Inverse calls made against countingElement.
var inversions int

// countingElement wraps the mod-101 field to observe how many true field
// inversions an algorithm performs.
type countingElement struct {
	inner gf101.Element
}

func (x countingElement) Add(y countingElement) countingElement {
	return countingElement{x.inner.Add(y.inner)}
}

func (x countingElement) Sub(y countingElement) countingElement {
	return countingElement{x.inner.Sub(y.inner)}
}

func (x countingElement) Mul(y countingElement) countingElement {
	return countingElement{x.inner.Mul(y.inner)}
}

func (x countingElement) Inverse() countingElement {
	inversions++
	//
	return countingElement{x.inner.Inverse()}
}

func (x countingElement) IsZero() bool {
	return x.inner.IsZero()
}

func (x countingElement) IsOne() bool {
	return x.inner.IsOne()
}

func (x countingElement) SetUint64(val uint64) countingElement {
	return countingElement{x.inner.SetUint64(val)}
}

func (x countingElement) String() string {
	return strconv.FormatUint(uint64(x.inner.Uint32()), 10)
}
