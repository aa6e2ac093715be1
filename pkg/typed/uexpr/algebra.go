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
package uexpr

import (
	"fmt"
	"slices"

	"github.com/consensys/go-zkir/pkg/typed"
	"github.com/consensys/go-zkir/pkg/typed/types"
	"github.com/consensys/go-zkir/pkg/util/math"
)

// NewIdentifier constructs a reference to a variable of a given bitwidth.
func NewIdentifier[F any](id typed.Identifier, bitwidth types.UBitwidth) UExpression[F] {
	return Annotate[F](Identifier[F]{id}, bitwidth)
}

// NewValue constructs a literal of a given bitwidth.  Observe that the value is
// not checked against the bitwidth.
func NewValue[F any](value math.Uint128, bitwidth types.UBitwidth) UExpression[F] {
	return Annotate[F](Value[F]{value}, bitwidth)
}

// NewAdd constructs the sum of two expressions.  Both expressions must have the
// same bitwidth, otherwise this panics.
func NewAdd[F any](lhs UExpression[F], rhs UExpression[F]) UExpression[F] {
	bitwidth := checkBitwidths("+", lhs, rhs)
	//
	return Annotate[F](Add[F]{&lhs, &rhs}, bitwidth)
}

// NewSub constructs the difference of two expressions.  Both expressions must
// have the same bitwidth, otherwise this panics.
func NewSub[F any](lhs UExpression[F], rhs UExpression[F]) UExpression[F] {
	bitwidth := checkBitwidths("-", lhs, rhs)
	//
	return Annotate[F](Sub[F]{&lhs, &rhs}, bitwidth)
}

// NewMult constructs the product of two expressions.  Both expressions must
// have the same bitwidth, otherwise this panics.
func NewMult[F any](lhs UExpression[F], rhs UExpression[F]) UExpression[F] {
	bitwidth := checkBitwidths("*", lhs, rhs)
	//
	return Annotate[F](Mult[F]{&lhs, &rhs}, bitwidth)
}

// NewXor constructs the bitwise exclusive-or of two expressions.  Both
// expressions must have the same bitwidth, otherwise this panics.
func NewXor[F any](lhs UExpression[F], rhs UExpression[F]) UExpression[F] {
	bitwidth := checkBitwidths("^", lhs, rhs)
	//
	return Annotate[F](Xor[F]{&lhs, &rhs}, bitwidth)
}

// NewAnd constructs the bitwise conjunction of two expressions.  Both
// expressions must have the same bitwidth, otherwise this panics.
func NewAnd[F any](lhs UExpression[F], rhs UExpression[F]) UExpression[F] {
	bitwidth := checkBitwidths("&", lhs, rhs)
	//
	return Annotate[F](And[F]{&lhs, &rhs}, bitwidth)
}

// NewOr constructs the bitwise disjunction of two expressions.  Both
// expressions must have the same bitwidth, otherwise this panics.
func NewOr[F any](lhs UExpression[F], rhs UExpression[F]) UExpression[F] {
	bitwidth := checkBitwidths("|", lhs, rhs)
	//
	return Annotate[F](Or[F]{&lhs, &rhs}, bitwidth)
}

// NewNot constructs the bitwise complement of an expression.
func NewNot[F any](arg UExpression[F]) UExpression[F] {
	return Annotate[F](Not[F]{&arg}, arg.bitwidth)
}

// NewLeftShift constructs an expression shifted left by a given amount.  Bits
// shifted beyond the declared bitwidth are not accounted for here.
func NewLeftShift[F any](arg UExpression[F], by typed.FieldElementExpression[F]) UExpression[F] {
	return Annotate[F](LeftShift[F]{&arg, by}, arg.bitwidth)
}

// NewRightShift constructs an expression shifted right by a given amount.
func NewRightShift[F any](arg UExpression[F], by typed.FieldElementExpression[F]) UExpression[F] {
	return Annotate[F](RightShift[F]{&arg, by}, arg.bitwidth)
}

// NewIfElse constructs a conditional choice between two expressions.  Both
// branches must have the same bitwidth, otherwise this panics.
func NewIfElse[F any](condition typed.BooleanExpression[F], consequence UExpression[F],
	alternative UExpression[F]) UExpression[F] {
	bitwidth := checkBitwidths("?:", consequence, alternative)
	//
	return Annotate[F](IfElse[F]{condition, &consequence, &alternative}, bitwidth)
}

// NewFunctionCall constructs a call to a function returning a value of the given
// bitwidth.  The arguments are not checked against the function's signature.
func NewFunctionCall[F any](key types.FunctionKey, args []typed.Expression[F],
	bitwidth types.UBitwidth) UExpression[F] {
	return Annotate[F](FunctionCall[F]{key, slices.Clone(args)}, bitwidth)
}

// NewMember constructs an access to a member of a struct, where that member has
// the given bitwidth.
func NewMember[F any](operand typed.StructExpression[F], id types.MemberId, bitwidth types.UBitwidth) UExpression[F] {
	return Annotate[F](Member[F]{operand, id}, bitwidth)
}

// NewSelect constructs an access into an array whose elements have the given
// bitwidth.
func NewSelect[F any](array typed.ArrayExpression[F], index UExpression[F], bitwidth types.UBitwidth) UExpression[F] {
	return Annotate[F](Select[F]{array, &index}, bitwidth)
}

// checkBitwidths ensures both operands of a given operator have identical
// bitwidths.  A mismatch indicates an earlier phase failed to unify them, and
// is therefore an internal failure rather than an error.
func checkBitwidths[F any](operator string, lhs UExpression[F], rhs UExpression[F]) types.UBitwidth {
	if lhs.bitwidth != rhs.bitwidth {
		panic(fmt.Sprintf("inconsistent bitwidths for \"%s\" (%s vs %s)", operator, lhs.bitwidth, rhs.bitwidth))
	}
	//
	return lhs.bitwidth
}
