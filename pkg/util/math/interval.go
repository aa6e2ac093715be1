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
	"fmt"
	"math/big"
)

// Interval provides a discrete (and finite) range of integers, such as 0..1,
// 1..18, etc.  An interval approximates the set of values that a given
// expression could evaluate to, and can therefore be used to bound the number
// of bits required to hold any such value.  Since every leaf of a fixed-width
// expression is bounded by its bitwidth, there is no need for infinite bounds.
type Interval struct {
	min big.Int
	max big.Int
}

// NewInterval creates an interval representing a given range.
func NewInterval(lower big.Int, upper big.Int) Interval {
	var p Interval
	// sanity check
	if lower.Cmp(&upper) > 0 {
		panic(fmt.Sprintf("invalid interval (%s..%s)", lower.String(), upper.String()))
	}
	//
	p.min.Set(&lower)
	p.max.Set(&upper)
	//
	return p
}

// UnsignedRange returns the interval 0..2^n-1 of values which can be held in an
// unsigned integer of n bits.
func UnsignedRange(n uint) Interval {
	var p Interval
	//
	p.max.Lsh(big.NewInt(1), n)
	p.max.Sub(&p.max, big.NewInt(1))
	//
	return p
}

// MinIntValue returns the minimum value that this interval includes.
func (p *Interval) MinIntValue() big.Int {
	var val big.Int
	//
	val.Set(&p.min)
	//
	return val
}

// MaxIntValue returns the maximum value that this interval includes.
func (p *Interval) MaxIntValue() big.Int {
	var val big.Int
	//
	val.Set(&p.max)
	//
	return val
}

// BitWidth returns the minimum number of bits required to store all elements in
// this interval.  Observe that, if the interval can contain negative numbers
// then it is considered to be "signed", and the bitwidth returned the maximum
// of either the positive or negative sides.
func (p *Interval) BitWidth() (width uint, signed bool) {
	signed = p.min.Sign() < 0
	//
	return uint(max(p.min.BitLen(), p.max.BitLen())), signed
}

// Set assigns a given value to this interval.
func (p *Interval) Set(val Interval) {
	p.min.Set(&val.min)
	p.max.Set(&val.max)
}

// Within checks whether this interval is contained within the given bounds.
func (p *Interval) Within(val Interval) bool {
	return p.min.Cmp(&val.min) >= 0 && p.max.Cmp(&val.max) <= 0
}

// Add two intervals together
func (p *Interval) Add(q Interval) {
	p.min.Add(&p.min, &q.min)
	p.max.Add(&p.max, &q.max)
}

// Sub subtracts another interval from this.
func (p *Interval) Sub(q Interval) {
	var lower big.Int
	// lower bound
	lower.Sub(&p.min, &q.max)
	// upper bound
	p.max.Sub(&p.max, &q.min)
	p.min.Set(&lower)
}

// Mul multiplies this interval by another.
func (p *Interval) Mul(q Interval) {
	var x1, x2, x3, x4 big.Int
	//
	x1.Mul(&p.min, &q.min)
	x2.Mul(&p.min, &q.max)
	x3.Mul(&p.max, &q.min)
	x4.Mul(&p.max, &q.max)
	// Compute min / max
	p.min.Set(least(&x1, &x2, &x3, &x4))
	p.max.Set(greatest(&x1, &x2, &x3, &x4))
}

// Shl multiplies this interval by 2^n.
func (p *Interval) Shl(n uint) {
	p.min.Lsh(&p.min, n)
	p.max.Lsh(&p.max, n)
}

// Shr divides this interval by 2^n, rounding towards negative infinity.
func (p *Interval) Shr(n uint) {
	p.min.Rsh(&p.min, n)
	p.max.Rsh(&p.max, n)
}

// Union returns the smallest interval enclosing both this and another.
func (p *Interval) Union(other Interval) Interval {
	var q Interval
	//
	q.min.Set(least(&p.min, &other.min))
	q.max.Set(greatest(&p.max, &other.max))
	//
	return q
}

func (p *Interval) String() string {
	return fmt.Sprintf("(%s..%s)", p.min.String(), p.max.String())
}

func least(vals ...*big.Int) *big.Int {
	var m = vals[0]
	//
	for _, v := range vals[1:] {
		if v.Cmp(m) < 0 {
			m = v
		}
	}
	//
	return m
}

func greatest(vals ...*big.Int) *big.Int {
	var m = vals[0]
	//
	for _, v := range vals[1:] {
		if v.Cmp(m) > 0 {
			m = v
		}
	}
	//
	return m
}
