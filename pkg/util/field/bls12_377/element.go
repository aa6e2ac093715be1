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
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element is an element of the scalar field of BLS12-377, which is the default
// numeric domain of the typed IR.  Elements are immutable values, with every
// conversion returning a fresh element.
type Element struct {
	fr.Element
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// Modulus returns the (253 bit) prime order of the field.
func (x Element) Modulus() *big.Int {
	return fr.Modulus()
}

// Bytes returns the big-endian encoding of x, which always has fr.Bytes bytes.
func (x Element) Bytes() []byte {
	bytes := x.Element.Bytes()
	//
	return bytes[:]
}

// SetBytes returns the element represented by some big-endian bytes, reduced
// modulo the field.  The receiver is unchanged.
func (x Element) SetBytes(bytes []byte) Element {
	var z Element
	//
	z.Element.SetBytes(bytes)
	//
	return z
}

// SetUint64 returns the element representing a given uint64.  The receiver is
// unchanged.
func (x Element) SetUint64(val uint64) Element {
	var z Element
	//
	z.Element.SetUint64(val)
	//
	return z
}

func (x Element) String() string {
	return x.Element.String()
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return x.Element.Text(base)
}
