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
)

func Test_Interval_Add_01(t *testing.T) {
	var p = interval(1, 3)
	//
	p.Add(interval(10, 20))
	check_Interval(t, p, 11, 23)
}

func Test_Interval_Sub_01(t *testing.T) {
	var p = interval(0, 255)
	//
	p.Sub(interval(1, 1))
	check_Interval(t, p, -1, 254)
	//
	width, signed := p.BitWidth()
	assert.Equal(t, uint(8), width)
	assert.True(t, signed)
}

func Test_Interval_Mul_01(t *testing.T) {
	var p = interval(-2, 3)
	//
	p.Mul(interval(-5, 4))
	check_Interval(t, p, -15, 12)
}

func Test_Interval_Shift_01(t *testing.T) {
	var p = interval(3, 5)
	//
	p.Shl(4)
	check_Interval(t, p, 48, 80)
	p.Shr(5)
	check_Interval(t, p, 1, 2)
}

func Test_Interval_Union_01(t *testing.T) {
	var (
		p = interval(3, 5)
		q = p.Union(interval(-1, 4))
	)
	//
	check_Interval(t, q, -1, 5)
	// Receiver is unchanged
	check_Interval(t, p, 3, 5)
}

func Test_Interval_Range_01(t *testing.T) {
	var (
		u8 = UnsignedRange(8)
		u0 = UnsignedRange(0)
		p  = interval(0, 200)
		q  = interval(0, 256)
	)
	//
	check_Interval(t, u8, 0, 255)
	check_Interval(t, u0, 0, 0)
	assert.True(t, p.Within(u8))
	assert.False(t, q.Within(u8))
	assert.True(t, u8.Within(u8))
	assert.False(t, u8.Within(p))
	//
	width, signed := u8.BitWidth()
	assert.Equal(t, uint(8), width)
	assert.False(t, signed)
	assert.Equal(t, "(0..255)", u8.String())
}

func Test_Interval_Set_01(t *testing.T) {
	var p, q Interval
	//
	p.Set(interval(2, 7))
	q.Set(p)
	q.Add(interval(1, 1))
	// Copies are independent
	check_Interval(t, p, 2, 7)
	check_Interval(t, q, 3, 8)
}

func Test_Interval_Invalid_01(t *testing.T) {
	assert.Panics(t, func() { interval(2, 1) })
}

func check_Interval(t *testing.T, p Interval, lower int64, upper int64) {
	var (
		pMin = p.MinIntValue()
		pMax = p.MaxIntValue()
	)
	//
	assert.Equal(t, lower, pMin.Int64(), "lower bound of %s", p.String())
	assert.Equal(t, upper, pMax.Int64(), "upper bound of %s", p.String())
}

func interval(lower int64, upper int64) Interval {
	return NewInterval(*big.NewInt(lower), *big.NewInt(upper))
}
