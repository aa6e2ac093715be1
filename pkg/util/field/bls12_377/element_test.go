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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Cmp_01(t *testing.T) {
	var (
		zero  Element
		two   = zero.SetUint64(2)
		three = zero.SetUint64(3)
	)
	//
	assert.Equal(t, -1, two.Cmp(three))
	assert.Equal(t, 1, three.Cmp(two))
	assert.Equal(t, 0, two.Cmp(zero.SetUint64(2)))
	assert.Equal(t, "3", three.String())
	// Receiver is not modified
	assert.Equal(t, "0", zero.String())
}

func Test_Bytes_01(t *testing.T) {
	var (
		zero Element
		val  = new(big.Int).Lsh(big.NewInt(1), 200)
		x    = zero.SetBytes(val.Bytes())
	)
	//
	assert.Equal(t, val.Text(16), x.Text(16))
	assert.Equal(t, 0, new(big.Int).SetBytes(x.Bytes()).Cmp(val))
	assert.Equal(t, 253, x.Modulus().BitLen())
}
