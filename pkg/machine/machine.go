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
	"github.com/yokoyolk/valida/pkg/util/field"
)

// Machine is a fixed collection of chips sharing the global bus arguments.
// The chip table is frozen at construction, along with one immutable
// interaction index per chip; nothing is rebuilt per proving call.
type Machine[F field.Element[F], E field.Extension[F, E]] struct {
	// Chips making up this machine, in slot order.
	chips []Chip[F, E]
	// Per-chip interaction indexes, aligned with the chip table.
	indexes []*InteractionIndex[F]
}

// NewMachine constructs a machine over the given chips, flattening and
// indexing every chip's interaction declarations.  Malformed declarations
// (reserved bus index 0) abort construction: they are configuration defects,
// not runtime conditions.
func NewMachine[F field.Element[F], E field.Extension[F, E]](chips ...Chip[F, E]) *Machine[F, E] {
	m := &Machine[F, E]{chips: chips}
	//
	for _, chip := range chips {
		m.indexes = append(m.indexes, newInteractionIndex(chip, m))
	}
	//
	return m
}

// Chips returns the chip table of this machine.
func (p *Machine[F, E]) Chips() []Chip[F, E] {
	return p.chips
}

// Chip returns the chip in a given slot.
func (p *Machine[F, E]) Chip(id uint) Chip[F, E] {
	return p.chips[id]
}

// Index returns the interaction index for the chip in a given slot.
func (p *Machine[F, E]) Index(id uint) *InteractionIndex[F] {
	return p.indexes[id]
}
