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
	"math/big"
	"testing"

	"github.com/consensys/go-zkir/pkg/util/field/bls12_377"
	"github.com/consensys/go-zkir/pkg/util/field/gf251"
	"github.com/stretchr/testify/assert"
)

func init() {
	// make sure the interface is adhered to.
	_ = Element[gf251.Element](gf251.Element{})
	_ = Element[bls12_377.Element](bls12_377.Element{})
}

func Test_BandWidth(t *testing.T) {
	assert.Equal(t, GF_251.BandWidth, BandWidth[gf251.Element]())
	assert.Equal(t, BLS12_377.BandWidth, BandWidth[bls12_377.Element]())
}

func Test_GetConfig(t *testing.T) {
	assert.Equal(t, &BLS12_377, GetConfig("BLS12_377"))
	assert.Equal(t, &GF_251, GetConfig("GF_251"))
	assert.Equal(t, &BLS12_377, GetConfig("bls12_377"))
	assert.Nil(t, GetConfig("KOALABEAR"))
}

func Test_SupportsWidth(t *testing.T) {
	assert.True(t, BLS12_377.SupportsWidth(64))
	assert.False(t, BLS12_377.SupportsWidth(252))
	assert.False(t, GF_251.SupportsWidth(8))
	assert.True(t, GF_251.SupportsWidth(6))
	assert.Equal(t, "GF_251 (bandwidth 7)", GF_251.String())
}

func Test_BigInt(t *testing.T) {
	var val = *big.NewInt(1234)
	//
	assert.Equal(t, "1234", BigInt[bls12_377.Element](val).String())
	assert.Equal(t, "230", BigInt[gf251.Element](val).String())
	assert.Equal(t, "42", Uint64[bls12_377.Element](42).String())
}

func Test_ToBigInt(t *testing.T) {
	var val = new(big.Int).Lsh(big.NewInt(1), 200)
	//
	for _, v := range []uint64{0, 1, 250, 251, 1000} {
		x := ToBigInt(Uint64[gf251.Element](v))
		assert.Equal(t, v%gf251.N, x.Uint64(), "%d", v)
	}
	//
	x := ToBigInt(BigInt[bls12_377.Element](*val))
	assert.Equal(t, 0, val.Cmp(&x))
}
