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
package vector

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-zkir/pkg/typed"
	"github.com/consensys/go-zkir/pkg/typed/intexpr"
	"github.com/consensys/go-zkir/pkg/typed/types"
	"github.com/consensys/go-zkir/pkg/util/field"
)

// Node is the serialised form of an integer expression within a test vector.
// Exactly one of Op, Value or Ident should be given.  For example:
//
//	op: add
//	args:
//	  - ident: x
//	  - value: "3"
type Node struct {
	// Operator name for compound expressions.
	Op string `yaml:"op,omitempty"`
	// Operands of a compound expression.
	Args []Node `yaml:"args,omitempty"`
	// Literal value (decimal, or hex with 0x prefix).
	Value string `yaml:"value,omitempty"`
	// Variable name.
	Ident string `yaml:"ident,omitempty"`
	// Shift amount, for shl / shr.
	By *Leaf `yaml:"by,omitempty"`
	// Condition, for if.
	Cond *Leaf `yaml:"cond,omitempty"`
	// Array name and size, for select.
	Array string `yaml:"array,omitempty"`
	Size  uint   `yaml:"size,omitempty"`
}

// Leaf is the serialised form of a field element or boolean operand, such as
// a shift amount or a condition.
type Leaf struct {
	Field string `yaml:"field,omitempty"`
	Bool  *bool  `yaml:"bool,omitempty"`
	Ident string `yaml:"ident,omitempty"`
}

// ErrMalformed is returned for nodes which do not describe any expression.
var ErrMalformed = errors.New("malformed expression")

// Build constructs the integer expression described by a given node.
func Build[F field.Element[F]](n Node) (intexpr.Expr[F], error) {
	switch {
	case n.Value != "":
		val, err := parseNatural(n.Value)
		if err != nil {
			return nil, err
		}
		//
		return intexpr.NewValue[F](val), nil
	case n.Ident != "":
		return intexpr.NewIdentifier[F](typed.Identifier(n.Ident)), nil
	case n.Op == "":
		return nil, ErrMalformed
	}
	//
	args, err := buildArgs[F](n)
	if err != nil {
		return nil, err
	}
	//
	switch n.Op {
	case "add", "sub", "mul", "div", "rem", "pow", "and", "or", "xor":
		if len(args) != 2 {
			return nil, arityError(n, 2)
		}
		//
		return buildBinary[F](n.Op, args[0], args[1]), nil
	case "neg", "not":
		if len(args) != 1 {
			return nil, arityError(n, 1)
		}
		//
		if n.Op == "neg" {
			return intexpr.NewNeg[F](args[0]), nil
		}
		//
		return intexpr.NewNot[F](args[0]), nil
	case "shl", "shr":
		if len(args) != 1 {
			return nil, arityError(n, 1)
		} else if n.By == nil {
			return nil, fmt.Errorf("%s: missing shift amount: %w", n.Op, ErrMalformed)
		}
		//
		by, err := buildField[F](*n.By)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n.Op, err)
		} else if n.Op == "shl" {
			return intexpr.NewLeftShift[F](args[0], by), nil
		}
		//
		return intexpr.NewRightShift[F](args[0], by), nil
	case "if":
		if len(args) != 2 {
			return nil, arityError(n, 2)
		} else if n.Cond == nil {
			return nil, fmt.Errorf("if: missing condition: %w", ErrMalformed)
		}
		//
		cond, err := buildBool[F](*n.Cond)
		if err != nil {
			return nil, fmt.Errorf("if: %w", err)
		}
		//
		return intexpr.NewIfElse[F](cond, args[0], args[1]), nil
	case "select":
		if len(args) != 1 {
			return nil, arityError(n, 1)
		} else if n.Array == "" {
			return nil, fmt.Errorf("select: missing array: %w", ErrMalformed)
		}
		//
		datatype := types.NewArray(&types.FieldElement{}, n.Size)
		//
		return intexpr.NewSelect[F](typed.NewArrayIdentifier[F](typed.Identifier(n.Array), datatype), args[0]), nil
	default:
		return nil, fmt.Errorf("unknown operator \"%s\": %w", n.Op, ErrMalformed)
	}
}

func buildArgs[F field.Element[F]](n Node) ([]intexpr.Expr[F], error) {
	var args = make([]intexpr.Expr[F], len(n.Args))
	//
	for i, arg := range n.Args {
		var err error
		//
		if args[i], err = Build[F](arg); err != nil {
			return nil, fmt.Errorf("%s (operand %d): %w", n.Op, i, err)
		}
	}
	//
	return args, nil
}

func buildBinary[F any](op string, lhs intexpr.Expr[F], rhs intexpr.Expr[F]) intexpr.Expr[F] {
	switch op {
	case "add":
		return intexpr.NewAdd[F](lhs, rhs)
	case "sub":
		return intexpr.NewSub[F](lhs, rhs)
	case "mul":
		return intexpr.NewMult[F](lhs, rhs)
	case "div":
		return intexpr.NewDiv[F](lhs, rhs)
	case "rem":
		return intexpr.NewRem[F](lhs, rhs)
	case "pow":
		return intexpr.NewPow[F](lhs, rhs)
	case "and":
		return intexpr.NewAnd[F](lhs, rhs)
	case "or":
		return intexpr.NewOr[F](lhs, rhs)
	default:
		return intexpr.NewXor[F](lhs, rhs)
	}
}

func buildField[F field.Element[F]](l Leaf) (typed.FieldElementExpression[F], error) {
	switch {
	case l.Field != "":
		val, err := parseNatural(l.Field)
		if err != nil {
			return nil, err
		}
		//
		return typed.NewFieldNumber(field.BigInt[F](*val)), nil
	case l.Ident != "":
		return typed.NewFieldIdentifier[F](typed.Identifier(l.Ident)), nil
	default:
		return nil, fmt.Errorf("expected field element: %w", ErrMalformed)
	}
}

func buildBool[F any](l Leaf) (typed.BooleanExpression[F], error) {
	switch {
	case l.Bool != nil:
		return typed.NewBooleanValue[F](*l.Bool), nil
	case l.Ident != "":
		return typed.NewBooleanIdentifier[F](typed.Identifier(l.Ident)), nil
	default:
		return nil, fmt.Errorf("expected boolean: %w", ErrMalformed)
	}
}

func parseNatural(text string) (*big.Int, error) {
	val, ok := new(big.Int).SetString(text, 0)
	//
	if !ok || val.Sign() < 0 {
		return nil, fmt.Errorf("invalid literal \"%s\": %w", text, ErrMalformed)
	}
	//
	return val, nil
}

func arityError(n Node, expected int) error {
	return fmt.Errorf("%s: expected %d operand(s), found %d: %w", n.Op, expected, len(n.Args), ErrMalformed)
}
