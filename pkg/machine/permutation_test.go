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
package machine_test

import (
	"reflect"
	"testing"

	"github.com/yokoyolk/valida/pkg/machine"
	"github.com/yokoyolk/valida/pkg/trace"
	"github.com/yokoyolk/valida/pkg/util/assert"
	"github.com/yokoyolk/valida/pkg/util/field"
	"github.com/yokoyolk/valida/pkg/util/field/bls12_377"
	"github.com/yokoyolk/valida/pkg/util/field/gf101"
)

func TestEmptyArgument(t *testing.T) {
	chip := &testChip[gf101.Element, gf101.Element]{name: "empty", main: column(5, 6, 7)}
	m := machine.NewMachine[gf101.Element, gf101.Element](chip)
	//
	perm := machine.GeneratePermutationTrace(m, 0, chip.main, challenges(2, 3, 5))
	//
	assert.Equal(t, uint(1), perm.Width())
	assert.Equal(t, uint(3), perm.Height())
	//
	for k := uint(0); k < perm.Height(); k++ {
		assert.True(t, perm.Get(0, k).IsZero(), "non-zero entry at row %d", k)
	}
	//
	assert.True(t, machine.CumulativeSum(perm).IsZero())
	assert.Nil(t, machine.Accepts(m, 0, chip.main, perm, challenges(2, 3, 5), field.Zero[gf101.Element]()))
}

func TestRunningSumFirstRowZero(t *testing.T) {
	chip := &testChip[gf101.Element, gf101.Element]{
		name:       "boundary",
		main:       column(3, 1, 4, 1, 5),
		localSends: []machine.Interaction[gf101.Element]{interactionOn(machine.LocalArgument(1), 0)},
	}
	//
	m := machine.NewMachine[gf101.Element, gf101.Element](chip)
	perm := machine.GeneratePermutationTrace(m, 0, chip.main, challenges(7, 13, 17))
	//
	assert.True(t, perm.Get(perm.Width()-1, 0).IsZero())
}

func TestLocalSelfBalance(t *testing.T) {
	// A send and a receive with identical field and multiplicity cancel row
	// by row, so the running sum never leaves zero.
	chip := &testChip[gf101.Element, gf101.Element]{
		name:          "selfbalance",
		main:          column(9, 8, 7, 6, 5, 4),
		localSends:    []machine.Interaction[gf101.Element]{interactionOn(machine.LocalArgument(1), 0)},
		localReceives: []machine.Interaction[gf101.Element]{interactionOn(machine.LocalArgument(1), 0)},
	}
	//
	m := machine.NewMachine[gf101.Element, gf101.Element](chip)
	perm := machine.GeneratePermutationTrace(m, 0, chip.main, challenges(2, 3, 5))
	//
	assert.Equal(t, uint(3), perm.Width())
	//
	for k := uint(0); k < perm.Height(); k++ {
		assert.True(t, perm.Get(2, k).IsZero(), "running sum escaped zero at row %d", k)
	}
	//
	assert.Nil(t, machine.Accepts(m, 0, chip.main, perm, challenges(2, 3, 5), field.Zero[gf101.Element]()))
}

func TestGlobalCrossChipBalance(t *testing.T) {
	var (
		values = []uint32{12, 34, 56, 78}
		rand   = challenges(2, 3, 5)
		sender = &testChip[gf101.Element, gf101.Element]{
			name:        "sender",
			main:        column(values...),
			globalSends: []machine.Interaction[gf101.Element]{interactionOn(machine.GlobalArgument(1), 0)},
		}
		receiver = &testChip[gf101.Element, gf101.Element]{
			name:           "receiver",
			main:           column(values...),
			globalReceives: []machine.Interaction[gf101.Element]{interactionOn(machine.GlobalArgument(1), 0)},
		}
	)
	//
	m := machine.NewMachine[gf101.Element, gf101.Element](sender, receiver)
	//
	total := field.Zero[gf101.Element]()
	//
	for id := range m.Chips() {
		var (
			main = m.Chip(uint(id)).GenerateTrace(m)
			perm = machine.GeneratePermutationTrace(m, uint(id), main, rand)
			sum  = machine.CumulativeSum(perm)
		)
		//
		assert.Nil(t, machine.Accepts(m, uint(id), main, perm, rand, sum))
		//
		total = total.Add(sum)
	}
	// Nothing left unmatched.
	assert.True(t, total.IsZero())
}

func TestDeterminism(t *testing.T) {
	chip := &testChip[gf101.Element, gf101.Element]{
		name:        "deterministic",
		main:        column(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12),
		localSends:  []machine.Interaction[gf101.Element]{interactionOn(machine.LocalArgument(1), 0)},
		globalSends: []machine.Interaction[gf101.Element]{interactionOn(machine.GlobalArgument(1), 0)},
	}
	//
	m := machine.NewMachine[gf101.Element, gf101.Element](chip)
	//
	var (
		fst = machine.GeneratePermutationTrace(m, 0, chip.main, challenges(2, 3, 5))
		snd = machine.GeneratePermutationTrace(m, 0, chip.main, challenges(2, 3, 5))
	)
	// Bit-identical, despite the parallel fill.
	assert.True(t, reflect.DeepEqual(fst.Data(), snd.Data()))
}

func TestConcreteScenario(t *testing.T) {
	var (
		rand = challenges(2, 3, 5)
		chip = &testChip[gf101.Element, gf101.Element]{
			name:       "scenario",
			main:       column(7, 11),
			localSends: []machine.Interaction[gf101.Element]{interactionOn(machine.LocalArgument(1), 0)},
		}
	)
	//
	m := machine.NewMachine[gf101.Element, gf101.Element](chip)
	perm := machine.GeneratePermutationTrace(m, 0, chip.main, rand)
	//
	assert.Equal(t, uint(2), perm.Width())
	// Reciprocal inputs: alpha + beta*value = 2 + 5*7 = 37 and 2 + 5*11 = 57,
	// whose inverses mod 101 are 71 and 39.
	assert.Equal(t, gf101.New(71), perm.Get(0, 0))
	assert.Equal(t, gf101.New(39), perm.Get(0, 1))
	// Running sum: zero on row 0, then one send of multiplicity 1.
	assert.Equal(t, gf101.New(0), perm.Get(1, 0))
	assert.Equal(t, gf101.New(71), perm.Get(1, 1))
	//
	sum := machine.CumulativeSum(perm)
	//
	assert.Equal(t, gf101.New(71), sum)
	assert.Nil(t, machine.Accepts(m, 0, chip.main, perm, rand, sum))
}

func TestExtensionFieldEngine(t *testing.T) {
	// Run the whole argument with a genuine quadratic extension: base-field
	// traces, extension-field challenges and auxiliary values.
	var (
		rand = [3]gf101.Ext2{gf101.NewExt2(2, 1), gf101.NewExt2(3, 1), gf101.NewExt2(5, 1)}
		chip = &testChip[gf101.Element, gf101.Ext2]{
			name: "ext",
			main: column(7, 11, 13, 17),
			localSends: []machine.Interaction[gf101.Element]{
				interactionOn(machine.LocalArgument(1), 0),
			},
			localReceives: []machine.Interaction[gf101.Element]{
				interactionOn(machine.LocalArgument(1), 0),
			},
		}
	)
	//
	m := machine.NewMachine[gf101.Element, gf101.Ext2](chip)
	perm := machine.GeneratePermutationTrace(m, 0, chip.main, rand)
	//
	assert.True(t, perm.Get(perm.Width()-1, 0).IsZero())
	assert.Nil(t, machine.Accepts(m, 0, chip.main, perm, rand, field.Zero[gf101.Ext2]()))
}

func TestProductionFieldEngine(t *testing.T) {
	// The full argument over BLS12-377: a sender asserting (x, x²) pairs
	// onto a global bus, a receiver claiming them back, under freshly drawn
	// challenges.
	var (
		rows       = uint(8)
		randomness [3]bls12_377.Element
	)
	//
	for i := range randomness {
		r, err := bls12_377.Random()
		assert.Nil(t, err)
		//
		randomness[i] = r
	}
	//
	main := trace.NewBlankMatrix[bls12_377.Element](2, rows)
	//
	for k := uint(0); k < rows; k++ {
		x := field.Uint64[bls12_377.Element](uint64(k))
		main.Set(0, k, x)
		main.Set(1, k, x.Mul(x))
	}
	//
	pairOn := func(arg machine.BusArgument) []machine.Interaction[bls12_377.Element] {
		return []machine.Interaction[bls12_377.Element]{{
			Fields: []machine.VirtualColumn[bls12_377.Element]{
				machine.SingleColumn[bls12_377.Element](0),
				machine.SingleColumn[bls12_377.Element](1),
			},
			Count:    machine.ConstantColumn(field.One[bls12_377.Element]()),
			Argument: arg,
		}}
	}
	//
	var (
		sender = &testChip[bls12_377.Element, bls12_377.Element]{
			name:        "sender",
			main:        main,
			globalSends: pairOn(machine.GlobalArgument(1)),
		}
		receiver = &testChip[bls12_377.Element, bls12_377.Element]{
			name:           "receiver",
			main:           main.Clone(),
			globalReceives: pairOn(machine.GlobalArgument(1)),
		}
	)
	//
	m := machine.NewMachine[bls12_377.Element, bls12_377.Element](sender, receiver)
	//
	total := field.Zero[bls12_377.Element]()
	//
	for id := range m.Chips() {
		var (
			tr   = m.Chip(uint(id)).GenerateTrace(m)
			perm = machine.GeneratePermutationTrace(m, uint(id), tr, randomness)
			sum  = machine.CumulativeSum(perm)
		)
		//
		assert.True(t, perm.Get(perm.Width()-1, 0).IsZero())
		assert.Nil(t, machine.Accepts(m, uint(id), tr, perm, randomness, sum))
		//
		total = total.Add(sum)
	}
	//
	assert.True(t, total.IsZero())
}

func TestMultiFieldInteraction(t *testing.T) {
	// Two-column fields exercise the beta table beyond its first entry.
	var (
		rand = challenges(2, 3, 5)
		data = []gf101.Element{
			gf101.New(7), gf101.New(49),
			gf101.New(11), gf101.New(20),
		}
		main   = trace.NewMatrix(data, 2)
		sender = &testChip[gf101.Element, gf101.Element]{
			name:        "pairsender",
			main:        main,
			globalSends: []machine.Interaction[gf101.Element]{interactionOn(machine.GlobalArgument(1), 0, 1)},
		}
		receiver = &testChip[gf101.Element, gf101.Element]{
			name:           "pairreceiver",
			main:           main.Clone(),
			globalReceives: []machine.Interaction[gf101.Element]{interactionOn(machine.GlobalArgument(1), 0, 1)},
		}
	)
	//
	m := machine.NewMachine[gf101.Element, gf101.Element](sender, receiver)
	//
	total := field.Zero[gf101.Element]()
	//
	for id := range m.Chips() {
		var (
			tr   = m.Chip(uint(id)).GenerateTrace(m)
			perm = machine.GeneratePermutationTrace(m, uint(id), tr, rand)
			sum  = machine.CumulativeSum(perm)
		)
		//
		assert.Nil(t, machine.Accepts(m, uint(id), tr, perm, rand, sum))
		//
		total = total.Add(sum)
	}
	//
	assert.True(t, total.IsZero())
}
