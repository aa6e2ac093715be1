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
package types

import "fmt"

// UBitwidth identifies one of the fixed widths supported for unsigned integer
// types.  The set of widths is closed: values can only be obtained from the
// predefined widths below (or via FromUint), and are compared with ==.
type UBitwidth struct {
	bits uint8
}

var (
	// B8 is the bitwidth of u8 values.
	B8 = UBitwidth{8}
	// B16 is the bitwidth of u16 values.
	B16 = UBitwidth{16}
	// B32 is the bitwidth of u32 values.
	B32 = UBitwidth{32}
	// B64 is the bitwidth of u64 values.
	B64 = UBitwidth{64}
)

// BITWIDTHS determines the set of supported bitwidths.
var BITWIDTHS = []UBitwidth{B8, B16, B32, B64}

// FromUint returns the supported bitwidth matching a given number of bits, or
// an error if no such bitwidth exists.
func FromUint(bits uint) (UBitwidth, error) {
	for _, bw := range BITWIDTHS {
		if bw.ToUint() == bits {
			return bw, nil
		}
	}
	//
	return UBitwidth{}, fmt.Errorf("unsupported bitwidth %d", bits)
}

// ToUint returns the number of bits of this bitwidth.
func (p UBitwidth) ToUint() uint {
	if p.bits == 0 {
		panic("invalid bitwidth")
	}
	//
	return uint(p.bits)
}

func (p UBitwidth) String() string {
	return fmt.Sprintf("u%d", p.bits)
}
