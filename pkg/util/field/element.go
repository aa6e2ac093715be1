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

import (
	"fmt"
	"math/big"
)

// An Element of a prime-order field.  This is the native numeric domain of the
// circuit backend, and the type parameter of the typed IR as a whole.  The IR
// only ever converts and compares elements.
type Element[Operand any] interface {
	fmt.Stringer
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Bytes returns the big-endian encoded value of this element.
	Bytes() []byte
	// SetBytes initialises this element from a set of big-endian bytes,
	// reducing modulo the field as necessary.
	SetBytes([]byte) Operand
	// SetUint64 initialises this element from a given uint64.
	SetUint64(uint64) Operand
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// BigInt construct a field element from a given big.Int
func BigInt[F Element[F]](val big.Int) F {
	var (
		element F
	)
	// Handle negative values
	if val.Sign() < 0 {
		panic("negative value encountered")
	}
	//
	return element.SetBytes(val.Bytes())
}

// ToBigInt returns the canonical representative of a given field element.
func ToBigInt[F Element[F]](element F) big.Int {
	var val big.Int
	//
	val.SetBytes(element.Bytes())
	//
	return val
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// BandWidth returns the number of bits which can be safely held by any element
// of the given field without wrapping around.  That is, any natural number of
// at most this many bits is strictly below the modulus.
func BandWidth[F Element[F]]() uint {
	var element F
	//
	return uint(element.Modulus().BitLen() - 1)
}
