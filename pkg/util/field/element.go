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
package field

import "fmt"

// An Element of a prime-order field.  Implementations are value types: every
// operation returns a fresh element and never mutates its receiver.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x + y
	Add(y Operand) Operand
	// Sub x - y
	Sub(y Operand) Operand
	// Mul x * y
	Mul(y Operand) Operand
	// Inverse x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// IsZero checks whether this is the additive identity.
	IsZero() bool
	// IsOne checks whether this is the multiplicative identity.
	IsOne() bool
	// SetUint64 constructs an element representing a given natural number.
	// It's the canonical way to create new elements.
	SetUint64(val uint64) Operand
}

// An Extension of a prime-order field F.  A prime field is trivially its own
// degree-1 extension, with FromBase being the identity.
type Extension[F Element[F], Operand any] interface {
	Element[Operand]
	// FromBase lifts a base-field value into the extension.
	FromBase(val F) Operand
}

// Zero constructs a field element representing 0.
func Zero[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(0)
}

// One constructs a field element representing 1.
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 constructs a field element from a given uint64.
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// Lift a base-field value into a given extension of its field.
func Lift[F Element[F], E Extension[F, E]](val F) E {
	var element E
	//
	return element.FromBase(val)
}
