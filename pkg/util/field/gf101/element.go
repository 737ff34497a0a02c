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

// Package gf101 implements the prime field of order 101.  The field is far
// too small for any cryptographic use; it exists so that engine behaviour can
// be checked against hand-computed modular arithmetic.
package gf101

import "strconv"

// Modulus of the field.
const Modulus uint32 = 101

// Element of the field, held in canonical (non-Montgomery) form.  Defined as
// an array to prevent mistaken use of arithmetic operators, or naive
// assignments.
type Element [1]uint32

// New constructs the element representing a given natural number.
func New(val uint32) Element {
	return Element{val % Modulus}
}

// Add x + y
func (x Element) Add(y Element) Element {
	return Element{(x[0] + y[0]) % Modulus}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return Element{(x[0] + Modulus - y[0]) % Modulus}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return Element{x[0] * y[0] % Modulus}
}

// Inverse x⁻¹, or 0 if x = 0.  Computed via Fermat's little theorem as
// x^(p-2).
func (x Element) Inverse() Element {
	if x.IsZero() {
		return Element{}
	}
	//
	return pow(x, Modulus-2)
}

// IsZero checks whether this is the additive identity.
func (x Element) IsZero() bool {
	return x[0] == 0
}

// IsOne checks whether this is the multiplicative identity.
func (x Element) IsOne() bool {
	return x[0] == 1
}

// SetUint64 constructs an element representing a given natural number.
func (x Element) SetUint64(val uint64) Element {
	return Element{uint32(val % uint64(Modulus))}
}

// FromBase implementation for the field.Extension interface: the field acts
// as its own degree-1 extension.
func (x Element) FromBase(y Element) Element {
	return y
}

// Uint32 returns the numerical value of x.
func (x Element) Uint32() uint32 {
	return x[0]
}

func (x Element) String() string {
	return strconv.FormatUint(uint64(x[0]), 10)
}

func pow(x Element, n uint32) Element {
	res := Element{1}
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			res = res.Mul(x)
		}
		//
		x = x.Mul(x)
	}
	//
	return res
}
