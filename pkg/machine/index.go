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
package machine

import (
	"fmt"
	"slices"

	"github.com/yokoyolk/valida/pkg/util/field"
)

// IndexedInteraction pairs an interaction with its type tag and the
// auxiliary-trace column assigned to it.
type IndexedInteraction[F field.Element[F]] struct {
	// Interaction being indexed.
	Interaction Interaction[F]
	// Type of this occurrence.
	Type InteractionType
	// Column of the auxiliary trace holding this occurrence's reciprocals.
	// Every occurrence gets its own column, even when several occurrences
	// share a bus argument.
	Column uint
}

// InteractionIndex is the per-chip occurrence index: the flattened
// interaction list, the bus map, and the derived bounds which size the
// challenge tables.  It is built once, at machine construction, and reused
// immutably across the proving session.
type InteractionIndex[F field.Element[F]] struct {
	// Handle of the chip being indexed, for failure reports.
	chip string
	// Flattened occurrence list in canonical order.
	interactions []IndexedInteraction[F]
	// Maps each bus argument to the occurrence positions referencing it, in
	// encounter order.
	buses map[BusArgument][]uint
	// Largest local bus index referenced by any local interaction, or zero
	// when the chip has none (yielding an empty challenge table).
	maxLocal uint
	// Largest global bus index referenced by any global interaction, or
	// zero.  Derived from the global interactions only, never from the
	// local ones.
	maxGlobal uint
	// Longest field list of any interaction; sizes the beta table.
	maxFields uint
}

func newInteractionIndex[F field.Element[F], E field.Extension[F, E]](chip Chip[F, E],
	m *Machine[F, E]) *InteractionIndex[F] {
	//
	index := &InteractionIndex[F]{
		chip:  chip.Name(),
		buses: make(map[BusArgument][]uint),
	}
	// Flatten in canonical order
	index.add(chip.LocalSends(), LocalSend)
	index.add(chip.LocalReceives(), LocalReceive)
	index.add(chip.GlobalSends(m), GlobalSend)
	index.add(chip.GlobalReceives(m), GlobalReceive)
	//
	return index
}

func (p *InteractionIndex[F]) add(interactions []Interaction[F], kind InteractionType) {
	for _, ith := range interactions {
		// Sanity check the declaration.  Index zero would select the zeroth
		// challenge power (the multiplicative identity), destroying the
		// separating property of the argument.
		if ith.Argument.Index == 0 {
			panic(fmt.Sprintf("chip %s: %s declares reserved bus argument index 0", p.chip, kind))
		}
		//
		n := uint(len(p.interactions))
		p.interactions = append(p.interactions, IndexedInteraction[F]{ith, kind, n})
		p.buses[ith.Argument] = append(p.buses[ith.Argument], n)
		// Track scope-specific maxima
		if ith.Argument.IsLocal() {
			p.maxLocal = max(p.maxLocal, ith.Argument.Index)
		} else {
			p.maxGlobal = max(p.maxGlobal, ith.Argument.Index)
		}
		//
		p.maxFields = max(p.maxFields, uint(len(ith.Fields)))
	}
}

// Chip returns the handle of the chip being indexed.
func (p *InteractionIndex[F]) Chip() string {
	return p.chip
}

// Interactions returns the flattened occurrence list: local sends, local
// receives, global sends, global receives.
func (p *InteractionIndex[F]) Interactions() []IndexedInteraction[F] {
	return p.interactions
}

// Buses maps each bus argument to the occurrence positions referencing it,
// in encounter order.
func (p *InteractionIndex[F]) Buses() map[BusArgument][]uint {
	return p.buses
}

// Width of the auxiliary trace: one reciprocal column per occurrence, plus
// the trailing running-sum column.
func (p *InteractionIndex[F]) Width() uint {
	return uint(len(p.interactions)) + 1
}

// Verify the internal consistency of this index: every occurrence must be
// present in the bus map under its own argument.  A violation signals a bug
// in the shared derivation routine (prover and verifier would disagree on
// column assignments) and is fatal.
func (p *InteractionIndex[F]) Verify() {
	for n, ith := range p.interactions {
		positions, ok := p.buses[ith.Interaction.Argument]
		//
		if !ok {
			panic(fmt.Sprintf("chip %s: occurrence %d references unindexed bus %s",
				p.chip, n, ith.Interaction.Argument))
		}
		//
		if !slices.Contains(positions, uint(n)) {
			panic(fmt.Sprintf("chip %s: occurrence %d missing from bus %s index",
				p.chip, n, ith.Interaction.Argument))
		}
	}
}
