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
package math

import (
	"math/big"
	"math/bits"
)

// MaxUint128 is the largest value which can be held in a Uint128.
var MaxUint128 = Uint128{^uint64(0), ^uint64(0)}

// Uint128 is a fixed-capacity unsigned integer of 128 bits.  This is the
// representation used for literal values within fixed-width expressions, and is
// large enough to hold any literal of the supported bitwidths.  Values are
// comparable with ==.
type Uint128 struct {
	hi uint64
	lo uint64
}

// Uint128From64 constructs a 128-bit value from a given uint64.
func Uint128From64(val uint64) Uint128 {
	return Uint128{0, val}
}

// Uint128FromBig converts a big integer into a 128-bit value.  This fails if
// the given integer is negative, or requires more than 128 bits.
func Uint128FromBig(val *big.Int) (Uint128, bool) {
	if val.Sign() < 0 || val.BitLen() > 128 {
		return Uint128{}, false
	}
	//
	var (
		lo big.Int
		hi big.Int
	)
	//
	lo.And(val, new(big.Int).SetUint64(^uint64(0)))
	hi.Rsh(val, 64)
	//
	return Uint128{hi.Uint64(), lo.Uint64()}, true
}

// Cmp returns 1 if p > q, 0 if p = q, and -1 if p < q.
func (p Uint128) Cmp(q Uint128) int {
	switch {
	case p.hi > q.hi:
		return 1
	case p.hi < q.hi:
		return -1
	case p.lo > q.lo:
		return 1
	case p.lo < q.lo:
		return -1
	default:
		return 0
	}
}

// Big returns this value as a big integer.
func (p Uint128) Big() *big.Int {
	var val = new(big.Int).SetUint64(p.hi)
	//
	val.Lsh(val, 64)
	//
	return val.Or(val, new(big.Int).SetUint64(p.lo))
}

// Text returns the numerical value of this value in the given base.
func (p Uint128) Text(base int) string {
	if p.hi == 0 {
		return new(big.Int).SetUint64(p.lo).Text(base)
	}
	//
	return p.Big().Text(base)
}

func (p Uint128) String() string {
	return p.Text(10)
}

// BitLength returns the minimal number of bits required to represent a given
// value.  That is the (one-indexed) position of its most significant set bit,
// where zero has a bit length of zero.
func BitLength(val Uint128) uint {
	if val.hi != 0 {
		return 64 + uint(bits.Len64(val.hi))
	}
	//
	return uint(bits.Len64(val.lo))
}
