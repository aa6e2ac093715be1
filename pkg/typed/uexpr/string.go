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
	"strings"
)

// String provides a generic facility for converting an expression into a
// suitable string.  Declared bitwidths and metadata are not included; see
// Describe for that.
func String[F any](e UExpression[F]) string {
	var (
		lhs, rhs fmt.Stringer
		operator string
	)
	//
	switch e := e.inner.(type) {
	case Identifier[F]:
		return e.Id.String()
	case Value[F]:
		return e.Value.String()
	case Add[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "+"
	case Sub[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "-"
	case Mult[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "*"
	case Xor[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "^"
	case And[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "&"
	case Or[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "|"
	case LeftShift[F]:
		lhs, rhs, operator = e.Arg, e.By, "<<"
	case RightShift[F]:
		lhs, rhs, operator = e.Arg, e.By, ">>"
	case Not[F]:
		return fmt.Sprintf("!%s", braces[F](e.Arg))
	case FunctionCall[F]:
		return stringOfCall(e)
	case IfElse[F]:
		return fmt.Sprintf("%s ? %s : %s", e.Condition.String(), braces[F](e.Consequence), braces[F](e.Alternative))
	case Member[F]:
		return fmt.Sprintf("%s.%s", e.Struct.String(), e.Id)
	case Select[F]:
		return fmt.Sprintf("%s[%s]", e.Array.String(), e.Index.String())
	default:
		panic("unreachable")
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(braces[F](lhs))
	builder.WriteString(" ")
	builder.WriteString(operator)
	builder.WriteString(" ")
	builder.WriteString(braces[F](rhs))
	//
	return builder.String()
}

// Describe renders an expression together with its declared bitwidth, and its
// metadata (when present).  This is intended for use in diagnostics.
func Describe[F any](e UExpression[F]) string {
	if e.metadata.HasValue() {
		return fmt.Sprintf("%s: %s %s", e.String(), e.bitwidth, e.metadata.Unwrap())
	}
	//
	return fmt.Sprintf("%s: %s", e.String(), e.bitwidth)
}

func (p Metadata) String() string {
	return fmt.Sprintf("{bits=%s, reduce=%s}", p.Bitwidth.String(), p.ShouldReduce.String())
}

func stringOfCall[F any](e FunctionCall[F]) string {
	var builder strings.Builder
	//
	builder.WriteString(e.Key.Id)
	builder.WriteString("(")
	//
	for i, arg := range e.Args {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

func braces[F any](e fmt.Stringer) string {
	if needsBraces[F](e) {
		return fmt.Sprintf("(%s)", e.String())
	}
	//
	return e.String()
}

func needsBraces[F any](e fmt.Stringer) bool {
	if e, ok := e.(*UExpression[F]); ok {
		switch e.inner.(type) {
		case Identifier[F], Value[F], FunctionCall[F], Member[F], Select[F]:
			return false
		default:
			return true
		}
	}
	// Operands from other expression forms are atomic.
	return false
}
