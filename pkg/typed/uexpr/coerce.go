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
	"math/big"

	"github.com/consensys/go-zkir/pkg/typed/intexpr"
	"github.com/consensys/go-zkir/pkg/typed/types"
	"github.com/consensys/go-zkir/pkg/util/math"
)

// CoercionKind identifies the reason an integer expression could not be
// coerced into an unsigned integer expression.
type CoercionKind uint8

var (
	// LITERAL_TOO_LARGE indicates a literal exceeds the range permitted for the
	// target bitwidth.
	LITERAL_TOO_LARGE = CoercionKind(1)
	// UNEXPECTED_EXPRESSION indicates an expression which cannot be given the
	// target bitwidth.
	UNEXPECTED_EXPRESSION = CoercionKind(2)
)

func (k CoercionKind) String() string {
	switch k {
	case LITERAL_TOO_LARGE:
		return "LITERAL_TOO_LARGE"
	case UNEXPECTED_EXPRESSION:
		return "UNEXPECTED_EXPRESSION"
	default:
		return "UNKNOWN"
	}
}

// CoercionError describes why an integer expression could not be coerced into
// an unsigned integer expression of a given bitwidth.
type CoercionError struct {
	Kind CoercionKind
	// Bitwidth being coerced into
	Bitwidth types.UBitwidth
	// Rendering of the offending expression
	Expr string
}

func (e *CoercionError) Error() string {
	switch e.Kind {
	case LITERAL_TOO_LARGE:
		return fmt.Sprintf("Literal `%s` is too large for type %s", e.Expr, e.Bitwidth)
	case UNEXPECTED_EXPRESSION:
		return fmt.Sprintf("Expected a `%s` but found expression `%s`", e.Bitwidth, e.Expr)
	default:
		panic("unknown coercion error")
	}
}

// TryFromInt coerces an integer expression into an expression of the given
// bitwidth, such that every node of the result has that bitwidth.  The
// structure of the expression is otherwise unchanged.  This fails on the first
// literal which is out of range, or subexpression which cannot be coerced (with
// left operands being considered first).  Array selections are not supported,
// and coercing them (or a nil expression) panics.
func TryFromInt[F any](e intexpr.Expr[F], bitwidth types.UBitwidth) (UExpression[F], error) {
	switch e := e.(type) {
	case *intexpr.Value[F]:
		return coerceValue[F](&e.Value, bitwidth)
	case *intexpr.Add[F]:
		return coerceBinary(NewAdd[F], e.Lhs, e.Rhs, bitwidth)
	case *intexpr.Sub[F]:
		return coerceBinary(NewSub[F], e.Lhs, e.Rhs, bitwidth)
	case *intexpr.Mult[F]:
		return coerceBinary(NewMult[F], e.Lhs, e.Rhs, bitwidth)
	case *intexpr.And[F]:
		return coerceBinary(NewAnd[F], e.Lhs, e.Rhs, bitwidth)
	case *intexpr.Or[F]:
		return coerceBinary(NewOr[F], e.Lhs, e.Rhs, bitwidth)
	case *intexpr.Xor[F]:
		return coerceBinary(NewXor[F], e.Lhs, e.Rhs, bitwidth)
	case *intexpr.LeftShift[F]:
		arg, err := TryFromInt[F](e.Arg, bitwidth)
		if err != nil {
			return UExpression[F]{}, err
		}
		//
		return NewLeftShift(arg, e.By), nil
	case *intexpr.RightShift[F]:
		arg, err := TryFromInt[F](e.Arg, bitwidth)
		if err != nil {
			return UExpression[F]{}, err
		}
		//
		return NewRightShift(arg, e.By), nil
	case *intexpr.IfElse[F]:
		consequence, err := TryFromInt[F](e.Consequence, bitwidth)
		if err != nil {
			return UExpression[F]{}, err
		}
		//
		alternative, err := TryFromInt[F](e.Alternative, bitwidth)
		if err != nil {
			return UExpression[F]{}, err
		}
		//
		return NewIfElse(e.Condition, consequence, alternative), nil
	case *intexpr.Select[F]:
		panic(fmt.Sprintf("cannot coerce array selection \"%s\" to %s", e.String(), bitwidth))
	case nil:
		panic(fmt.Sprintf("cannot coerce missing expression to %s", bitwidth))
	default:
		return UExpression[F]{}, &CoercionError{UNEXPECTED_EXPRESSION, bitwidth, e.String()}
	}
}

// coerceValue checks a literal against the range permitted for the target
// bitwidth, which is (inclusively) bounded by 2^(bitwidth-1).
//
// TODO: confirm whether this bound should be widened to 2^bitwidth - 1, since
// it currently rejects literals such as 200 for u8.
func coerceValue[F any](value *big.Int, bitwidth types.UBitwidth) (UExpression[F], error) {
	var bound = math.Uint128From64(1 << (bitwidth.ToUint() - 1))
	// Anything beyond 128 bits is certainly out of range.
	val, ok := math.Uint128FromBig(value)
	//
	if !ok || val.Cmp(bound) > 0 {
		return UExpression[F]{}, &CoercionError{LITERAL_TOO_LARGE, bitwidth, value.String()}
	}
	//
	return NewValue[F](val, bitwidth), nil
}

func coerceBinary[F any](constructor func(UExpression[F], UExpression[F]) UExpression[F], lhs intexpr.Expr[F],
	rhs intexpr.Expr[F], bitwidth types.UBitwidth) (UExpression[F], error) {
	l, err := TryFromInt[F](lhs, bitwidth)
	if err != nil {
		return UExpression[F]{}, err
	}
	//
	r, err := TryFromInt[F](rhs, bitwidth)
	if err != nil {
		return UExpression[F]{}, err
	}
	//
	return constructor(l, r), nil
}
