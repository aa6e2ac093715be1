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
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-zkir/pkg/typed"
)

// Expr represents an integer expression whose type has not yet been fixed.
// Such expressions arise from integer literals (e.g. "1 + 2"), whose values are
// arbitrary precision and non-negative, and are later resolved against a
// concrete bitwidth.  The set of expression forms is closed.
type Expr[F any] interface {
	fmt.Stringer
	// marker restricting implementations to this package.
	isIntExpr()
}

// Value is an arbitrary precision (non-negative) integer literal.
type Value[F any] struct {
	Value big.Int
}

// Identifier is a reference to a variable whose type has not been fixed.
type Identifier[F any] struct {
	Id typed.Identifier
}

// Add represents the sum of two integer expressions.
type Add[F any] struct {
	Lhs Expr[F]
	Rhs Expr[F]
}

// Sub represents the difference of two integer expressions.
type Sub[F any] struct {
	Lhs Expr[F]
	Rhs Expr[F]
}

// Mult represents the product of two integer expressions.
type Mult[F any] struct {
	Lhs Expr[F]
	Rhs Expr[F]
}

// Div represents the quotient of two integer expressions.
type Div[F any] struct {
	Lhs Expr[F]
	Rhs Expr[F]
}

// Rem represents the remainder of two integer expressions.
type Rem[F any] struct {
	Lhs Expr[F]
	Rhs Expr[F]
}

// Pow represents the exponentiation of two integer expressions.
type Pow[F any] struct {
	Lhs Expr[F]
	Rhs Expr[F]
}

// And represents the bitwise conjunction of two integer expressions.
type And[F any] struct {
	Lhs Expr[F]
	Rhs Expr[F]
}

// Or represents the bitwise disjunction of two integer expressions.
type Or[F any] struct {
	Lhs Expr[F]
	Rhs Expr[F]
}

// Xor represents the bitwise exclusive-or of two integer expressions.
type Xor[F any] struct {
	Lhs Expr[F]
	Rhs Expr[F]
}

// Neg represents the negation of an integer expression.
type Neg[F any] struct {
	Arg Expr[F]
}

// Not represents the bitwise complement of an integer expression.
type Not[F any] struct {
	Arg Expr[F]
}

// LeftShift represents shifting an integer expression left by some amount.
// The amount is not itself an integer expression, but a field element.
type LeftShift[F any] struct {
	Arg Expr[F]
	By  typed.FieldElementExpression[F]
}

// RightShift represents shifting an integer expression right by some amount.
// The amount is not itself an integer expression, but a field element.
type RightShift[F any] struct {
	Arg Expr[F]
	By  typed.FieldElementExpression[F]
}

// IfElse represents a conditional choice between two integer expressions.
type IfElse[F any] struct {
	Condition   typed.BooleanExpression[F]
	Consequence Expr[F]
	Alternative Expr[F]
}

// Select represents an access into an array whose elements are integer
// expressions.
type Select[F any] struct {
	Array typed.ArrayExpression[F]
	Index Expr[F]
}

func (p *Value[F]) isIntExpr()      {}
func (p *Identifier[F]) isIntExpr() {}
func (p *Add[F]) isIntExpr()        {}
func (p *Sub[F]) isIntExpr()        {}
func (p *Mult[F]) isIntExpr()       {}
func (p *Div[F]) isIntExpr()        {}
func (p *Rem[F]) isIntExpr()        {}
func (p *Pow[F]) isIntExpr()        {}
func (p *And[F]) isIntExpr()        {}
func (p *Or[F]) isIntExpr()         {}
func (p *Xor[F]) isIntExpr()        {}
func (p *Neg[F]) isIntExpr()        {}
func (p *Not[F]) isIntExpr()        {}
func (p *LeftShift[F]) isIntExpr()  {}
func (p *RightShift[F]) isIntExpr() {}
func (p *IfElse[F]) isIntExpr()     {}
func (p *Select[F]) isIntExpr()     {}

func (p *Value[F]) String() string      { return String[F](p) }
func (p *Identifier[F]) String() string { return String[F](p) }
func (p *Add[F]) String() string        { return String[F](p) }
func (p *Sub[F]) String() string        { return String[F](p) }
func (p *Mult[F]) String() string       { return String[F](p) }
func (p *Div[F]) String() string        { return String[F](p) }
func (p *Rem[F]) String() string        { return String[F](p) }
func (p *Pow[F]) String() string        { return String[F](p) }
func (p *And[F]) String() string        { return String[F](p) }
func (p *Or[F]) String() string         { return String[F](p) }
func (p *Xor[F]) String() string        { return String[F](p) }
func (p *Neg[F]) String() string        { return String[F](p) }
func (p *Not[F]) String() string        { return String[F](p) }
func (p *LeftShift[F]) String() string  { return String[F](p) }
func (p *RightShift[F]) String() string { return String[F](p) }
func (p *IfElse[F]) String() string     { return String[F](p) }
func (p *Select[F]) String() string     { return String[F](p) }

// String provides a generic facility for converting an expression into a
// suitable string.
func String[F any](e Expr[F]) string {
	var (
		lhs, rhs fmt.Stringer
		operator string
	)
	//
	switch e := e.(type) {
	case *Value[F]:
		return e.Value.String()
	case *Identifier[F]:
		return e.Id.String()
	case *Add[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "+"
	case *Sub[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "-"
	case *Mult[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "*"
	case *Div[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "/"
	case *Rem[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "%"
	case *Pow[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "**"
	case *And[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "&"
	case *Or[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "|"
	case *Xor[F]:
		lhs, rhs, operator = e.Lhs, e.Rhs, "^"
	case *LeftShift[F]:
		lhs, rhs, operator = e.Arg, e.By, "<<"
	case *RightShift[F]:
		lhs, rhs, operator = e.Arg, e.By, ">>"
	case *Neg[F]:
		return fmt.Sprintf("-%s", braces[F](e.Arg))
	case *Not[F]:
		return fmt.Sprintf("!%s", braces[F](e.Arg))
	case *IfElse[F]:
		return fmt.Sprintf("%s ? %s : %s", braces[F](e.Condition), braces[F](e.Consequence), braces[F](e.Alternative))
	case *Select[F]:
		return fmt.Sprintf("%s[%s]", braces[F](e.Array), e.Index.String())
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

func braces[F any](e fmt.Stringer) string {
	if needsBraces[F](e) {
		return fmt.Sprintf("(%s)", e.String())
	}
	//
	return e.String()
}

// needsBraces determines whether a given subexpression must be bracketed when
// rendered within a larger expression.  Operands which are not integer
// expressions (e.g. shift amounts or conditions) are treated as atomic.
func needsBraces[F any](e fmt.Stringer) bool {
	switch e.(type) {
	case *Value[F], *Identifier[F], *Select[F]:
		return false
	case Expr[F]:
		return true
	default:
		return false
	}
}
