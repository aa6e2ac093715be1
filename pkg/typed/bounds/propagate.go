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
package bounds

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-zkir/pkg/typed"
	"github.com/consensys/go-zkir/pkg/typed/uexpr"
	"github.com/consensys/go-zkir/pkg/util/field"
	"github.com/consensys/go-zkir/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

// Propagate annotates every node of a given expression with an upper bound on
// its natural bitwidth (i.e. the bits required under exact arithmetic), and
// whether it must be reduced before being used at its declared bitwidth.  The
// bounds are derived from the range of values each node could evaluate to, and
// never exceed the given bandwidth of the underlying field: when composing two
// operands would exceed the bandwidth, those operands are assumed reduced to
// their declared bitwidth first.  This fails if the declared bitwidth of some
// node is too large to safely compose within the field.
//
// A subtraction which could underflow is assumed offset by 2^k, for some k no
// smaller than the declared bitwidth or the bitwidth of either operand.  Its
// result therefore remains non-negative (and congruent modulo 2^w), but
// requires k+1 bits.
func Propagate[F field.Element[F]](e uexpr.UExpression[F], bandwidth uint) (uexpr.UExpression[F], error) {
	p := propagator[F]{bandwidth}
	//
	r, _, err := p.propagate(e)
	//
	return r, err
}

// Bitwidth returns the natural bitwidth recorded for a given expression.  If
// none has been recorded, then the declared bitwidth is returned.
func Bitwidth[F any](e uexpr.UExpression[F]) uint {
	if m := e.Metadata(); m.HasValue() {
		return m.Unwrap().Bitwidth.UnwrapOr(e.Bitwidth().ToUint())
	}
	//
	return e.Bitwidth().ToUint()
}

type propagator[F field.Element[F]] struct {
	bandwidth uint
}

// Signature of an arithmetic operator over value ranges, for a given declared
// bitwidth.
type rangeOp = func(width uint, lhs math.Interval, rhs math.Interval) math.Interval

func (p *propagator[F]) propagate(e uexpr.UExpression[F]) (uexpr.UExpression[F], math.Interval, error) {
	var (
		width    = e.Bitwidth().ToUint()
		declared = math.UnsignedRange(width)
	)
	// Sanity check the declared bitwidth leaves room for at least one carry.
	if width >= p.bandwidth {
		return e, declared, fmt.Errorf("bitwidth %s too large for field bandwidth %d", e.Bitwidth(), p.bandwidth)
	}
	//
	switch inner := e.Inner().(type) {
	case uexpr.Identifier[F], uexpr.FunctionCall[F], uexpr.Member[F]:
		return annotate(e, declared)
	case uexpr.Value[F]:
		return annotate(e, math.NewInterval(*inner.Value.Big(), *inner.Value.Big()))
	case uexpr.Add[F]:
		return p.arithmetic(e, inner.Lhs, inner.Rhs, uexpr.NewAdd[F], addRange)
	case uexpr.Sub[F]:
		return p.arithmetic(e, inner.Lhs, inner.Rhs, uexpr.NewSub[F], subRange)
	case uexpr.Mult[F]:
		return p.arithmetic(e, inner.Lhs, inner.Rhs, uexpr.NewMult[F], mulRange)
	case uexpr.Xor[F]:
		return p.bitwise(e, inner.Lhs, inner.Rhs, uexpr.NewXor[F])
	case uexpr.And[F]:
		return p.bitwise(e, inner.Lhs, inner.Rhs, uexpr.NewAnd[F])
	case uexpr.Or[F]:
		return p.bitwise(e, inner.Lhs, inner.Rhs, uexpr.NewOr[F])
	case uexpr.Not[F]:
		arg, _, err := p.propagate(*inner.Arg)
		if err != nil {
			return e, declared, err
		}
		// Operand is decomposed into bits, hence the result is exact.
		return annotate(uexpr.NewNot(arg), declared)
	case uexpr.LeftShift[F]:
		arg, values, err := p.propagate(*inner.Arg)
		if err != nil {
			return e, declared, err
		}
		//
		return annotate(uexpr.NewLeftShift(arg, inner.By), shlRange[F](width, truncate(width, values), inner.By))
	case uexpr.RightShift[F]:
		arg, values, err := p.propagate(*inner.Arg)
		if err != nil {
			return e, declared, err
		}
		//
		return annotate(uexpr.NewRightShift(arg, inner.By), shrRange[F](width, truncate(width, values), inner.By))
	case uexpr.IfElse[F]:
		consequence, lhs, err := p.propagate(*inner.Consequence)
		if err != nil {
			return e, declared, err
		}
		//
		alternative, rhs, err := p.propagate(*inner.Alternative)
		if err != nil {
			return e, declared, err
		}
		//
		return annotate(uexpr.NewIfElse(inner.Condition, consequence, alternative), lhs.Union(rhs))
	case uexpr.Select[F]:
		index, _, err := p.propagate(*inner.Index)
		if err != nil {
			return e, declared, err
		}
		//
		return annotate(uexpr.NewSelect(inner.Array, index, e.Bitwidth()), declared)
	default:
		panic(fmt.Sprintf("unknown expression \"%s\"", e.String()))
	}
}

// arithmetic handles arithmetic operators, whose range of values grows with
// that of their operands.
func (p *propagator[F]) arithmetic(e uexpr.UExpression[F], lhs *uexpr.UExpression[F], rhs *uexpr.UExpression[F],
	constructor func(uexpr.UExpression[F], uexpr.UExpression[F]) uexpr.UExpression[F],
	op rangeOp) (uexpr.UExpression[F], math.Interval, error) {
	//
	var (
		width    = e.Bitwidth().ToUint()
		declared = math.UnsignedRange(width)
	)
	//
	l, lValues, err := p.propagate(*lhs)
	if err != nil {
		return e, declared, err
	}
	//
	r, rValues, err := p.propagate(*rhs)
	if err != nil {
		return e, declared, err
	}
	//
	values := op(width, lValues, rValues)
	// Check whether result fits within the field
	if bits, _ := values.BitWidth(); bits > p.bandwidth {
		log.Debugf("reducing operands of \"%s\" (%d bits exceeds bandwidth %d)", e.String(), bits, p.bandwidth)
		// Operands are now assumed reduced to their declared bitwidth
		values = op(width, declared, declared)
		//
		if bits, _ = values.BitWidth(); bits > p.bandwidth {
			return e, declared, fmt.Errorf("expression \"%s\" overflows field bandwidth %d", e.String(), p.bandwidth)
		}
	}
	//
	return annotate(constructor(l, r), values)
}

// bitwise handles bitwise operators, whose operands are always decomposed into
// bits of their declared bitwidth.
func (p *propagator[F]) bitwise(e uexpr.UExpression[F], lhs *uexpr.UExpression[F], rhs *uexpr.UExpression[F],
	constructor func(uexpr.UExpression[F], uexpr.UExpression[F]) uexpr.UExpression[F]) (uexpr.UExpression[F],
	math.Interval, error) {
	var declared = math.UnsignedRange(e.Bitwidth().ToUint())
	//
	l, _, err := p.propagate(*lhs)
	if err != nil {
		return e, declared, err
	}
	//
	r, _, err := p.propagate(*rhs)
	if err != nil {
		return e, declared, err
	}
	//
	return annotate(constructor(l, r), declared)
}

// annotate attaches the natural bitwidth of a given range of values to an
// expression, flagging it for reduction whenever that range leaves its declared
// bitwidth.
func annotate[F any](e uexpr.UExpression[F], values math.Interval) (uexpr.UExpression[F], math.Interval, error) {
	var (
		declared     = math.UnsignedRange(e.Bitwidth().ToUint())
		bits, signed = values.BitWidth()
	)
	// Ranges are never negative.
	if signed {
		panic(fmt.Sprintf("negative range %s for \"%s\"", values.String(), e.String()))
	}
	//
	return e.WithMetadata(uexpr.NewMetadata(bits, !values.Within(declared))), values, nil
}

func addRange(_ uint, lhs math.Interval, rhs math.Interval) math.Interval {
	var values math.Interval
	//
	values.Set(lhs)
	values.Add(rhs)
	//
	return values
}

func subRange(width uint, lhs math.Interval, rhs math.Interval) math.Interval {
	var values math.Interval
	//
	values.Set(lhs)
	values.Sub(rhs)
	//
	if lower := values.MinIntValue(); lower.Sign() >= 0 {
		return values
	}
	// Could underflow, hence offset by 2^k.
	lBits, _ := lhs.BitWidth()
	rBits, _ := rhs.BitWidth()
	//
	return math.UnsignedRange(max(width, lBits, rBits) + 1)
}

func mulRange(_ uint, lhs math.Interval, rhs math.Interval) math.Interval {
	var values math.Interval
	//
	values.Set(lhs)
	values.Mul(rhs)
	//
	return values
}

// truncate returns the range of an operand once reduced to its declared
// bitwidth.  This is unchanged if the operand cannot exceed that bitwidth.
func truncate(width uint, values math.Interval) math.Interval {
	var declared = math.UnsignedRange(width)
	//
	if values.Within(declared) {
		return values
	}
	//
	return declared
}

func shlRange[F field.Element[F]](width uint, values math.Interval, by typed.FieldElementExpression[F]) math.Interval {
	var declared = math.UnsignedRange(width)
	//
	n, ok := shiftAmount[F](width, by)
	//
	switch {
	case !ok:
		return declared
	case n >= width:
		return math.UnsignedRange(0)
	}
	//
	var shifted math.Interval
	//
	shifted.Set(values)
	shifted.Shl(n)
	// Bits shifted beyond the bitwidth are discarded
	return truncate(width, shifted)
}

func shrRange[F field.Element[F]](width uint, values math.Interval, by typed.FieldElementExpression[F]) math.Interval {
	var shifted math.Interval
	//
	n, ok := shiftAmount[F](width, by)
	//
	switch {
	case !ok:
		// Shifting right never increases a value
		upper := values.MaxIntValue()
		return math.NewInterval(*big.NewInt(0), upper)
	case n >= width:
		return math.UnsignedRange(0)
	}
	//
	shifted.Set(values)
	shifted.Shr(n)
	//
	return shifted
}

// shiftAmount determines the amount of a constant shift, which is capped at the
// given bitwidth.  This fails if the amount is not constant.
func shiftAmount[F field.Element[F]](width uint, by typed.FieldElementExpression[F]) (uint, bool) {
	c, ok := by.(*typed.FieldNumber[F])
	//
	switch {
	case !ok:
		return 0, false
	case c.Value.Cmp(field.Uint64[F](uint64(width))) >= 0:
		return width, true
	}
	//
	n := field.ToBigInt(c.Value)
	//
	return uint(n.Uint64()), true
}
