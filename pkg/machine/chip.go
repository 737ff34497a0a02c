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
	"github.com/yokoyolk/valida/pkg/trace"
	"github.com/yokoyolk/valida/pkg/util/field"
)

// Chip is an independent execution unit which produces a row-indexed trace of
// base-field columns, and declares the interactions through which it asserts
// facts to itself (local) and to other chips (global).  How a chip computes
// its row values is outside this package; only the declared interactions
// matter here.
type Chip[F field.Element[F], E field.Extension[F, E]] interface {
	// Name returns a handle identifying this chip in failure reports.
	Name() string
	// GenerateTrace produces the main trace for the chip given the provided
	// machine.
	GenerateTrace(m *Machine[F, E]) *trace.Matrix[F]
	// LocalSends declares this chip's sends onto chip-scoped buses.
	LocalSends() []Interaction[F]
	// LocalReceives declares this chip's receives from chip-scoped buses.
	LocalReceives() []Interaction[F]
	// GlobalSends declares this chip's sends onto machine-wide buses.
	GlobalSends(m *Machine[F, E]) []Interaction[F]
	// GlobalReceives declares this chip's receives from machine-wide buses.
	GlobalReceives(m *Machine[F, E]) []Interaction[F]
}

// BaseChip provides empty default interaction declarations, for embedding
// into chips which only use some of the four kinds.
type BaseChip[F field.Element[F], E field.Extension[F, E]] struct{}

// LocalSends declares no chip-scoped sends.
func (BaseChip[F, E]) LocalSends() []Interaction[F] {
	return nil
}

// LocalReceives declares no chip-scoped receives.
func (BaseChip[F, E]) LocalReceives() []Interaction[F] {
	return nil
}

// GlobalSends declares no machine-wide sends.
func (BaseChip[F, E]) GlobalSends(_ *Machine[F, E]) []Interaction[F] {
	return nil
}

// GlobalReceives declares no machine-wide receives.
func (BaseChip[F, E]) GlobalReceives(_ *Machine[F, E]) []Interaction[F] {
	return nil
}

// AllInteractions flattens a chip's declared interactions into their
// canonical order: local sends, local receives, global sends, global
// receives.  The order is load-bearing: the auxiliary-trace column assigned
// to occurrence m is its position in this list, so trace generation and
// constraint evaluation must both enumerate interactions through it.  Pure
// and deterministic for a fixed chip and machine.
func AllInteractions[F field.Element[F], E field.Extension[F, E]](chip Chip[F, E],
	m *Machine[F, E]) []IndexedInteraction[F] {
	//
	return newInteractionIndex(chip, m).Interactions()
}

// InteractionMap groups a chip's flattened interactions by bus argument,
// mapping each argument to the occurrence positions referencing it, in
// encounter order.
func InteractionMap[F field.Element[F], E field.Extension[F, E]](chip Chip[F, E],
	m *Machine[F, E]) map[BusArgument][]uint {
	//
	return newInteractionIndex(chip, m).Buses()
}
