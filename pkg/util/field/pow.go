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

// Powers returns the sequence (val⁰, val¹, …, valⁿ⁻¹).
func Powers[F Element[F]](val F, n uint) []F {
	powers := make([]F, n)
	//
	if n == 0 {
		return powers
	}
	//
	powers[0] = One[F]()
	for i := uint(1); i < n; i++ {
		powers[i] = powers[i-1].Mul(val)
	}
	//
	return powers
}
