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
	"github.com/consensys/go-zkir/pkg/typed"
	"github.com/consensys/go-zkir/pkg/typed/types"
	"github.com/consensys/go-zkir/pkg/util/math"
)

// Inner represents the node of an unsigned integer expression, independently
// of its declared bitwidth.  The set of nodes is closed, and nodes are plain
// values (i.e. matched with "case Add[F]:" rather than "case *Add[F]:").
// Subexpressions are held by pointer, and are shared between an expression and
// any copy of it made by WithMetadata.  Hence, the fields of a node are
// read-only: rewriting a subexpression requires rebuilding its parent with the
// relevant constructor (e.g. NewAdd), which takes a private copy of each
// operand.
type Inner[F any] interface {
	isInner()
}

// Identifier is a reference to a variable.
type Identifier[F any] struct {
	Id typed.Identifier
}

// Value is a literal value.
type Value[F any] struct {
	Value math.Uint128
}

// Add represents the sum of two expressions.
type Add[F any] struct {
	Lhs *UExpression[F]
	Rhs *UExpression[F]
}

// Sub represents the difference of two expressions.
type Sub[F any] struct {
	Lhs *UExpression[F]
	Rhs *UExpression[F]
}

// Mult represents the product of two expressions.
type Mult[F any] struct {
	Lhs *UExpression[F]
	Rhs *UExpression[F]
}

// Xor represents the bitwise exclusive-or of two expressions.
type Xor[F any] struct {
	Lhs *UExpression[F]
	Rhs *UExpression[F]
}

// And represents the bitwise conjunction of two expressions.
type And[F any] struct {
	Lhs *UExpression[F]
	Rhs *UExpression[F]
}

// Or represents the bitwise disjunction of two expressions.
type Or[F any] struct {
	Lhs *UExpression[F]
	Rhs *UExpression[F]
}

// Not represents the bitwise complement of an expression.
type Not[F any] struct {
	Arg *UExpression[F]
}

// LeftShift represents an expression shifted left by an amount given as a
// field element.
type LeftShift[F any] struct {
	Arg *UExpression[F]
	By  typed.FieldElementExpression[F]
}

// RightShift represents an expression shifted right by an amount given as a
// field element.
type RightShift[F any] struct {
	Arg *UExpression[F]
	By  typed.FieldElementExpression[F]
}

// FunctionCall represents a call to a function returning an unsigned integer.
type FunctionCall[F any] struct {
	Key  types.FunctionKey
	Args []typed.Expression[F]
}

// IfElse represents a conditional choice between two expressions of the same
// bitwidth.
type IfElse[F any] struct {
	Condition   typed.BooleanExpression[F]
	Consequence *UExpression[F]
	Alternative *UExpression[F]
}

// Member represents an access to a member of a struct.
type Member[F any] struct {
	Struct typed.StructExpression[F]
	Id     types.MemberId
}

// Select represents an access into an array.
type Select[F any] struct {
	Array typed.ArrayExpression[F]
	Index *UExpression[F]
}

func (Identifier[F]) isInner()   {}
func (Value[F]) isInner()        {}
func (Add[F]) isInner()          {}
func (Sub[F]) isInner()          {}
func (Mult[F]) isInner()         {}
func (Xor[F]) isInner()          {}
func (And[F]) isInner()          {}
func (Or[F]) isInner()           {}
func (Not[F]) isInner()          {}
func (LeftShift[F]) isInner()    {}
func (RightShift[F]) isInner()   {}
func (FunctionCall[F]) isInner() {}
func (IfElse[F]) isInner()       {}
func (Member[F]) isInner()       {}
func (Select[F]) isInner()       {}
