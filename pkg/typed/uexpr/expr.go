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
	"github.com/consensys/go-zkir/pkg/typed/types"
	"github.com/consensys/go-zkir/pkg/util"
)

// UExpression is an expression over unsigned integers of a fixed bitwidth,
// parameterised by the numeric domain F of the underlying field.  Every
// expression carries its declared bitwidth and an (optional) metadata
// annotation describing its overflow bounds.  Expressions are immutable values:
// "modifying" an expression always produces a new one.
type UExpression[F any] struct {
	bitwidth types.UBitwidth
	metadata util.Option[Metadata]
	inner    Inner[F]
}

// Annotate wraps a given inner expression with its declared bitwidth.  The
// resulting expression has no metadata.
func Annotate[F any](inner Inner[F], bitwidth types.UBitwidth) UExpression[F] {
	return UExpression[F]{bitwidth, util.None[Metadata](), inner}
}

// Bitwidth returns the declared bitwidth of this expression.
func (e UExpression[F]) Bitwidth() types.UBitwidth {
	return e.bitwidth
}

// Metadata returns the overflow annotation of this expression (if any).
func (e UExpression[F]) Metadata() util.Option[Metadata] {
	return e.metadata
}

// Inner returns the node of this expression, without its annotations.
func (e UExpression[F]) Inner() Inner[F] {
	return e.inner
}

// WithMetadata returns a copy of this expression with its metadata replaced
// by that given.  The node and declared bitwidth are unchanged.
func (e UExpression[F]) WithMetadata(metadata Metadata) UExpression[F] {
	return UExpression[F]{e.bitwidth, util.Some(metadata), e.inner}
}

// Type implementation for the typed.Expression interface.
func (e UExpression[F]) Type() types.Type {
	return types.NewUnsignedInt(e.bitwidth)
}

func (e UExpression[F]) String() string {
	return String(e)
}

// Metadata records what is known about the natural growth of an expression.
// It is populated by a bound propagation pass and consumed when lowering
// expressions into constraints.
type Metadata struct {
	// Bitwidth is an upper bound on the number of bits required to hold any
	// value of the expression under exact (i.e. non-modular) arithmetic.
	Bitwidth util.Option[uint]
	// ShouldReduce indicates whether the expression must be explicitly reduced
	// modulo its declared bitwidth before it can be used as a value of that
	// bitwidth.
	ShouldReduce util.Option[bool]
}

// NewMetadata constructs a fully determined metadata record.
func NewMetadata(bitwidth uint, shouldReduce bool) Metadata {
	return Metadata{util.Some(bitwidth), util.Some(shouldReduce)}
}
