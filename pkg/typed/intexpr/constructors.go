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

	"github.com/consensys/go-zkir/pkg/typed"
)

// NewValue constructs an integer literal from a given (non-negative) big
// integer.  The given integer is copied.
func NewValue[F any](val *big.Int) Expr[F] {
	var e Value[F]
	// sanity check
	if val.Sign() < 0 {
		panic("negative integer literal")
	}
	//
	e.Value.Set(val)
	//
	return &e
}

// NewValue64 constructs an integer literal from a given uint64.
func NewValue64[F any](val uint64) Expr[F] {
	return NewValue[F](new(big.Int).SetUint64(val))
}

// NewIdentifier constructs a reference to a variable of unknown width.
func NewIdentifier[F any](id typed.Identifier) Expr[F] {
	return &Identifier[F]{id}
}

// NewAdd constructs the sum of two integer expressions.
func NewAdd[F any](lhs Expr[F], rhs Expr[F]) Expr[F] {
	return &Add[F]{lhs, rhs}
}

// NewSub constructs the difference of two integer expressions.
func NewSub[F any](lhs Expr[F], rhs Expr[F]) Expr[F] {
	return &Sub[F]{lhs, rhs}
}

// NewMult constructs the product of two integer expressions.
func NewMult[F any](lhs Expr[F], rhs Expr[F]) Expr[F] {
	return &Mult[F]{lhs, rhs}
}

// NewDiv constructs the quotient of two integer expressions.
func NewDiv[F any](lhs Expr[F], rhs Expr[F]) Expr[F] {
	return &Div[F]{lhs, rhs}
}

// NewRem constructs the remainder of two integer expressions.
func NewRem[F any](lhs Expr[F], rhs Expr[F]) Expr[F] {
	return &Rem[F]{lhs, rhs}
}

// NewPow constructs the exponentiation of two integer expressions.
func NewPow[F any](lhs Expr[F], rhs Expr[F]) Expr[F] {
	return &Pow[F]{lhs, rhs}
}

// NewAnd constructs the bitwise conjunction of two integer expressions.
func NewAnd[F any](lhs Expr[F], rhs Expr[F]) Expr[F] {
	return &And[F]{lhs, rhs}
}

// NewOr constructs the bitwise disjunction of two integer expressions.
func NewOr[F any](lhs Expr[F], rhs Expr[F]) Expr[F] {
	return &Or[F]{lhs, rhs}
}

// NewXor constructs the bitwise exclusive-or of two integer expressions.
func NewXor[F any](lhs Expr[F], rhs Expr[F]) Expr[F] {
	return &Xor[F]{lhs, rhs}
}

// NewNeg constructs the negation of an integer expression.
func NewNeg[F any](arg Expr[F]) Expr[F] {
	return &Neg[F]{arg}
}

// NewNot constructs the bitwise complement of an integer expression.
func NewNot[F any](arg Expr[F]) Expr[F] {
	return &Not[F]{arg}
}

// NewLeftShift constructs an integer expression shifted left by some amount.
func NewLeftShift[F any](arg Expr[F], by typed.FieldElementExpression[F]) Expr[F] {
	return &LeftShift[F]{arg, by}
}

// NewRightShift constructs an integer expression shifted right by some amount.
func NewRightShift[F any](arg Expr[F], by typed.FieldElementExpression[F]) Expr[F] {
	return &RightShift[F]{arg, by}
}

// NewIfElse constructs a conditional choice between two integer expressions.
func NewIfElse[F any](condition typed.BooleanExpression[F], consequence Expr[F], alternative Expr[F]) Expr[F] {
	return &IfElse[F]{condition, consequence, alternative}
}

// NewSelect constructs an access into an array of integer expressions.
func NewSelect[F any](array typed.ArrayExpression[F], index Expr[F]) Expr[F] {
	return &Select[F]{array, index}
}
