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
package bls12_377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform to the field.Element interface.  The
// field is large enough that it also serves as its own degree-1 extension for
// the interaction argument.
type Element struct {
	inner fr.Element
}

// New constructs an element from a raw fr.Element.
func New(val fr.Element) Element {
	return Element{val}
}

// Random samples a uniformly random element.  This is a stand-in for a
// Fiat-Shamir transcript, which lives outside this repository.
func Random() (Element, error) {
	var val fr.Element
	//
	if _, err := val.SetRandom(); err != nil {
		return Element{}, err
	}
	//
	return Element{val}, nil
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.inner, &y.inner)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res fr.Element
	//
	res.Sub(&x.inner, &y.inner)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res fr.Element
	//
	res.Mul(&x.inner, &y.inner)
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res fr.Element
	//
	res.Inverse(&x.inner)
	//
	return Element{res}
}

// IsZero checks whether this is the additive identity.
func (x Element) IsZero() bool {
	return x.inner.IsZero()
}

// IsOne checks whether this is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.inner.IsOne()
}

// SetUint64 constructs an element representing a given natural number.
func (x Element) SetUint64(val uint64) Element {
	return Element{fr.NewElement(val)}
}

// FromBase implementation for the field.Extension interface: the field acts
// as its own degree-1 extension.
func (x Element) FromBase(y Element) Element {
	return y
}

func (x Element) String() string {
	return x.inner.String()
}
