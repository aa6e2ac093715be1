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
package typed

import (
	"strconv"

	"github.com/consensys/go-zkir/pkg/typed/types"
	"github.com/consensys/go-zkir/pkg/util/field"
)

// BooleanValue is a constant boolean.
type BooleanValue[F any] struct {
	Value bool
}

// NewBooleanValue constructs a constant boolean expression.
func NewBooleanValue[F any](val bool) BooleanExpression[F] {
	return &BooleanValue[F]{val}
}

// Type implementation for the Expression interface.
func (p *BooleanValue[F]) Type() types.Type {
	return &types.Boolean{}
}

func (p *BooleanValue[F]) String() string {
	return strconv.FormatBool(p.Value)
}

// BooleanIdentifier is a reference to a boolean variable.
type BooleanIdentifier[F any] struct {
	Id Identifier
}

// NewBooleanIdentifier constructs a reference to a boolean variable.
func NewBooleanIdentifier[F any](id Identifier) BooleanExpression[F] {
	return &BooleanIdentifier[F]{id}
}

// Type implementation for the Expression interface.
func (p *BooleanIdentifier[F]) Type() types.Type {
	return &types.Boolean{}
}

func (p *BooleanIdentifier[F]) String() string {
	return p.Id.String()
}

// FieldNumber is a constant element of the field.
type FieldNumber[F field.Element[F]] struct {
	Value F
}

// NewFieldNumber constructs a constant field element expression.
func NewFieldNumber[F field.Element[F]](val F) FieldElementExpression[F] {
	return &FieldNumber[F]{val}
}

// Type implementation for the Expression interface.
func (p *FieldNumber[F]) Type() types.Type {
	return &types.FieldElement{}
}

func (p *FieldNumber[F]) String() string {
	return p.Value.String()
}

// FieldIdentifier is a reference to a field element variable.
type FieldIdentifier[F any] struct {
	Id Identifier
}

// NewFieldIdentifier constructs a reference to a field element variable.
func NewFieldIdentifier[F any](id Identifier) FieldElementExpression[F] {
	return &FieldIdentifier[F]{id}
}

// Type implementation for the Expression interface.
func (p *FieldIdentifier[F]) Type() types.Type {
	return &types.FieldElement{}
}

func (p *FieldIdentifier[F]) String() string {
	return p.Id.String()
}

// ArrayIdentifier is a reference to an array variable of a given type.
type ArrayIdentifier[F any] struct {
	Id       Identifier
	Datatype *types.Array
}

// NewArrayIdentifier constructs a reference to an array variable.
func NewArrayIdentifier[F any](id Identifier, datatype *types.Array) ArrayExpression[F] {
	return &ArrayIdentifier[F]{id, datatype}
}

// Type implementation for the Expression interface.
func (p *ArrayIdentifier[F]) Type() types.Type {
	return p.Datatype
}

// ArrayType implementation for the ArrayExpression interface.
func (p *ArrayIdentifier[F]) ArrayType() *types.Array {
	return p.Datatype
}

func (p *ArrayIdentifier[F]) String() string {
	return p.Id.String()
}

// StructIdentifier is a reference to a struct variable of a given type.
type StructIdentifier[F any] struct {
	Id       Identifier
	Datatype *types.Struct
}

// NewStructIdentifier constructs a reference to a struct variable.
func NewStructIdentifier[F any](id Identifier, datatype *types.Struct) StructExpression[F] {
	return &StructIdentifier[F]{id, datatype}
}

// Type implementation for the Expression interface.
func (p *StructIdentifier[F]) Type() types.Type {
	return p.Datatype
}

// StructType implementation for the StructExpression interface.
func (p *StructIdentifier[F]) StructType() *types.Struct {
	return p.Datatype
}

func (p *StructIdentifier[F]) String() string {
	return p.Id.String()
}
