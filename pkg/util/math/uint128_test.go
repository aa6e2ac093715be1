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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BitLength_0(t *testing.T) {
	assert.Equal(t, uint(0), BitLength(Uint128From64(0)))
}

func Test_BitLength_1(t *testing.T) {
	assert.Equal(t, uint(1), BitLength(Uint128From64(1)))
}

func Test_BitLength_255(t *testing.T) {
	assert.Equal(t, uint(8), BitLength(Uint128From64(255)))
}

func Test_BitLength_256(t *testing.T) {
	assert.Equal(t, uint(9), BitLength(Uint128From64(256)))
}

func Test_BitLength_Max(t *testing.T) {
	assert.Equal(t, uint(128), BitLength(MaxUint128))
}

func Test_BitLength_Powers(t *testing.T) {
	for i := uint(0); i < 128; i++ {
		var (
			pow = new(big.Int).Lsh(big.NewInt(1), i)
			val = checkFromBig(t, pow)
		)
		//
		if n := BitLength(val); n != i+1 {
			t.Errorf("bitlength(2^%d) == %d != %d", i, n, i+1)
		}
	}
}

func Test_Uint128_FromBig(t *testing.T) {
	var (
		max   = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
		large = new(big.Int).Lsh(big.NewInt(1), 128)
	)
	//
	assert.Equal(t, MaxUint128, checkFromBig(t, max))
	assert.Equal(t, Uint128{1, 0}, checkFromBig(t, new(big.Int).Lsh(big.NewInt(1), 64)))
	assert.Equal(t, Uint128From64(200), checkFromBig(t, big.NewInt(200)))
	//
	_, ok := Uint128FromBig(large)
	assert.False(t, ok)
	//
	_, ok = Uint128FromBig(big.NewInt(-1))
	assert.False(t, ok)
}

func Test_Uint128_Text(t *testing.T) {
	assert.Equal(t, "0", Uint128From64(0).String())
	assert.Equal(t, "ff", Uint128From64(255).Text(16))
	assert.Equal(t, "340282366920938463463374607431768211455", MaxUint128.String())
	assert.Equal(t, "18446744073709551616", Uint128{1, 0}.String())
}

func Test_Uint128_Cmp(t *testing.T) {
	var (
		one   = Uint128From64(1)
		two   = Uint128From64(2)
		large = Uint128{1, 0}
	)
	//
	assert.Equal(t, 0, one.Cmp(one))
	assert.Equal(t, -1, one.Cmp(two))
	assert.Equal(t, 1, two.Cmp(one))
	assert.Equal(t, 1, large.Cmp(two))
	assert.Equal(t, -1, two.Cmp(large))
	assert.Equal(t, 1, MaxUint128.Cmp(large))
}

func checkFromBig(t *testing.T, val *big.Int) Uint128 {
	v, ok := Uint128FromBig(val)
	require.True(t, ok, "cannot convert %s", val.String())
	// Round trip must be lossless
	require.Equal(t, 0, val.Cmp(v.Big()))
	//
	return v
}
