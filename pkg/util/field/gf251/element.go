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
package gf251

import (
	"math/big"
	"strconv"
)

// N defines the modulus for the GF251 prime field.
const N = 251

// Element type for the GF251 prime field.  This is defined as an array of one
// element to prevent accidental use of native arithmetic operators (+,*).  The
// stored value is always the canonical representative in 0..N-1.
type Element [1]uint8

// Cmp returns 1 if p > q, 0 if p = q, and -1 if p < q.
func (p Element) Cmp(q Element) int {
	switch {
	case p[0] < q[0]:
		return -1
	case p[0] > q[0]:
		return 1
	default:
		return 0
	}
}

// Modulus implementation for the Element interface
func (p Element) Modulus() *big.Int {
	return big.NewInt(N)
}

// Bytes implementation for the Element interface
func (p Element) Bytes() []byte {
	return []byte{p[0]}
}

// SetBytes implementation for the Element interface.  The bytes are
// interpreted in big-endian order, and reduced modulo N.
func (p Element) SetBytes(bytes []byte) Element {
	var acc uint16
	//
	for _, b := range bytes {
		acc = ((acc << 8) + uint16(b)) % N
	}
	//
	return Element{uint8(acc)}
}

// SetUint64 implementation for the Element interface
func (p Element) SetUint64(val uint64) Element {
	return Element{uint8(val % N)}
}

func (p Element) String() string {
	return p.Text(10)
}

// Text implementation for the Element interface
func (p Element) Text(base int) string {
	return strconv.FormatUint(uint64(p[0]), base)
}
