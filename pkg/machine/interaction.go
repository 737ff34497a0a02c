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

// Package machine implements the cross-chip interaction argument: chips
// assert facts to each other ("I sent value X" / "I received value X")
// without ever materialising a shared table.  An auxiliary trace of
// reciprocal columns plus a running sum, together with the constraints of
// this package, proves that every send is matched by an equal-weighted
// receive: within one chip's trace for local bus arguments, and across the
// whole machine for global ones.
package machine

import (
	"fmt"

	"github.com/yokoyolk/valida/pkg/util/field"
)

// BusKind distinguishes the two disjoint bus-argument index spaces.
type BusKind uint8

const (
	// LocalBus scopes an argument to a single chip's own trace: its sends
	// and receives must balance within that chip.
	LocalBus BusKind = iota
	// GlobalBus scopes an argument across every chip in the machine;
	// balancing is enforced only at machine level, via a shared public
	// cumulative sum.
	GlobalBus
)

// BusArgument identifies the balancing argument which an interaction
// contributes to.  The local and global index spaces are disjoint: Local(3)
// and Global(3) never alias.  Indices are 1-based, since an argument's index
// doubles as the exponent of its separating challenge and the zeroth power
// (the multiplicative identity) must never be used.
type BusArgument struct {
	Kind  BusKind
	Index uint
}

// LocalArgument constructs a bus argument scoped to a single chip.
func LocalArgument(index uint) BusArgument {
	return BusArgument{LocalBus, index}
}

// GlobalArgument constructs a machine-wide bus argument.
func GlobalArgument(index uint) BusArgument {
	return BusArgument{GlobalBus, index}
}

// IsLocal checks whether this argument is scoped to a single chip.
func (p BusArgument) IsLocal() bool {
	return p.Kind == LocalBus
}

// IsGlobal checks whether this argument is scoped machine-wide.
func (p BusArgument) IsGlobal() bool {
	return p.Kind == GlobalBus
}

func (p BusArgument) String() string {
	if p.IsLocal() {
		return fmt.Sprintf("local(%d)", p.Index)
	}
	//
	return fmt.Sprintf("global(%d)", p.Index)
}

// InteractionType tags an interaction occurrence with its scope and
// direction.  Sends contribute positively to the running sum, receives
// negatively: Σ sends = Σ receives, weighted by multiplicity, for every bus
// argument.
type InteractionType uint8

const (
	// LocalSend sends onto a chip-scoped bus.
	LocalSend InteractionType = iota
	// LocalReceive receives from a chip-scoped bus.
	LocalReceive
	// GlobalSend sends onto a machine-wide bus.
	GlobalSend
	// GlobalReceive receives from a machine-wide bus.
	GlobalReceive
)

// IsSend checks whether this type contributes positively to the running sum.
func (p InteractionType) IsSend() bool {
	return p == LocalSend || p == GlobalSend
}

func (p InteractionType) String() string {
	switch p {
	case LocalSend:
		return "local send"
	case LocalReceive:
		return "local receive"
	case GlobalSend:
		return "global send"
	case GlobalReceive:
		return "global receive"
	}
	//
	return "???"
}

// Interaction is a single send/receive assertion made by a chip: on every
// row, the projected field values are placed onto (or taken off) the given
// bus argument, weighted by the projected multiplicity.
type Interaction[F field.Element[F]] struct {
	// Fields are the projections whose row values are being communicated.
	Fields []VirtualColumn[F]
	// Count is the multiplicity projection: how many copies of the field
	// values each row contributes.
	Count VirtualColumn[F]
	// Argument ties this interaction to the balancing argument it
	// contributes to.
	Argument BusArgument
}

// IsLocal checks whether this interaction targets a chip-scoped bus.
func (p *Interaction[F]) IsLocal() bool {
	return p.Argument.IsLocal()
}

// IsGlobal checks whether this interaction targets a machine-wide bus.
func (p *Interaction[F]) IsGlobal() bool {
	return p.Argument.IsGlobal()
}
