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
package intexpr

import (
	"math/big"
	"testing"

	"github.com/consensys/go-zkir/pkg/typed"
	"github.com/consensys/go-zkir/pkg/typed/types"
	"github.com/consensys/go-zkir/pkg/util/field"
	"github.com/consensys/go-zkir/pkg/util/field/gf251"
	"github.com/stretchr/testify/assert"
)

type F = gf251.Element

func Test_String_Value(t *testing.T) {
	var large, _ = new(big.Int).SetString("123456789012345678901234567890", 10)
	//
	assert.Equal(t, "0", NewValue64[F](0).String())
	assert.Equal(t, "123456789012345678901234567890", NewValue[F](large).String())
}

func Test_String_Binary(t *testing.T) {
	var (
		one = NewValue64[F](1)
		two = NewValue64[F](2)
		x   = NewIdentifier[F]("x")
	)
	//
	assert.Equal(t, "1 + 2", NewAdd[F](one, two).String())
	assert.Equal(t, "1 - x", NewSub[F](one, x).String())
	assert.Equal(t, "(1 + 2) * x", NewMult[F](NewAdd[F](one, two), x).String())
	assert.Equal(t, "x / (1 % 2)", NewDiv[F](x, NewRem[F](one, two)).String())
	assert.Equal(t, "x ** 2", NewPow[F](x, two).String())
	assert.Equal(t, "(1 & 2) | (x ^ 1)", NewOr[F](NewAnd[F](one, two), NewXor[F](x, one)).String())
}

func Test_String_Unary(t *testing.T) {
	var x = NewIdentifier[F]("x")
	//
	assert.Equal(t, "-x", NewNeg[F](x).String())
	assert.Equal(t, "!(x + 1)", NewNot[F](NewAdd[F](x, NewValue64[F](1))).String())
}

func Test_String_Shift(t *testing.T) {
	var (
		x  = NewIdentifier[F]("x")
		by = typed.NewFieldNumber(field.Uint64[F](3))
	)
	//
	assert.Equal(t, "x << 3", NewLeftShift[F](x, by).String())
	assert.Equal(t, "(x + x) >> n", NewRightShift[F](NewAdd[F](x, x), typed.NewFieldIdentifier[F]("n")).String())
}

func Test_String_IfElse(t *testing.T) {
	var (
		cond = typed.NewBooleanIdentifier[F]("c")
		e    = NewIfElse[F](cond, NewValue64[F](1), NewAdd[F](NewValue64[F](2), NewValue64[F](3)))
	)
	//
	assert.Equal(t, "c ? 1 : (2 + 3)", e.String())
}

func Test_String_Select(t *testing.T) {
	var (
		arr = typed.NewArrayIdentifier[F]("a", types.NewArray(types.NewUnsignedInt(types.B8), 4))
		e   = NewAdd[F](NewSelect[F](arr, NewAdd[F](NewValue64[F](1), NewValue64[F](1))), NewValue64[F](2))
	)
	//
	assert.Equal(t, "a[1 + 1] + 2", e.String())
}

func Test_NewValue_Copies(t *testing.T) {
	var (
		val = big.NewInt(42)
		e   = NewValue[F](val)
	)
	// Mutating the original must not affect the literal
	val.SetUint64(7)
	//
	assert.Equal(t, "42", e.String())
	assert.Panics(t, func() { NewValue[F](big.NewInt(-1)) })
}
