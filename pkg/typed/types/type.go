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
package types

import (
	"fmt"
	"strings"
)

// Type represents the type of a typed expression.  The only types which are
// given any meaning here are the unsigned integer types; the remainder exist so
// that operands of function calls, member accesses and array selections can be
// described.
type Type interface {
	fmt.Stringer
}

// FieldElement represents the native numeric domain of the underlying field.
type FieldElement struct{}

func (p *FieldElement) String() string {
	return "field"
}

// Boolean represents the type of conditions.
type Boolean struct{}

func (p *Boolean) String() string {
	return "bool"
}

// UnsignedInt represents an unsigned integer type of a given bitwidth.
type UnsignedInt struct {
	Bitwidth UBitwidth
}

// NewUnsignedInt constructs an unsigned int type of a given width.
func NewUnsignedInt(bitwidth UBitwidth) *UnsignedInt {
	return &UnsignedInt{bitwidth}
}

func (p *UnsignedInt) String() string {
	return p.Bitwidth.String()
}

// Array represents a fixed-size array of a given type.
type Array struct {
	Element Type
	Size    uint
}

// NewArray constructs a new array type.
func NewArray(element Type, size uint) *Array {
	return &Array{element, size}
}

func (p *Array) String() string {
	return fmt.Sprintf("%s[%d]", p.Element.String(), p.Size)
}

// MemberId identifies a member of a struct.
type MemberId = string

// Member is a named field within a struct type.
type Member struct {
	Id   MemberId
	Type Type
}

// Struct represents a (non-recursive) data structure composed of one or more
// named members, each of which has a declared type.
type Struct struct {
	Name    string
	Members []Member
}

// NewStruct constructs a new struct type.
func NewStruct(name string, members ...Member) *Struct {
	return &Struct{name, members}
}

// Member returns the type of a given member, or false if no such member exists.
func (p *Struct) Member(id MemberId) (Type, bool) {
	for _, m := range p.Members {
		if m.Id == id {
			return m.Type, true
		}
	}
	//
	return nil, false
}

func (p *Struct) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Name)
	builder.WriteString(" {")
	//
	for i, m := range p.Members {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprintf(" %s: %s", m.Id, m.Type.String()))
	}
	//
	builder.WriteString(" }")
	//
	return builder.String()
}

// Signature represents the input and output types of a function.
type Signature struct {
	Inputs  []Type
	Outputs []Type
}

// FunctionKey uniquely identifies a function, since functions can be
// overloaded on their signatures.
type FunctionKey struct {
	Id        string
	Signature Signature
}

// NewFunctionKey constructs a new function key.
func NewFunctionKey(id string, inputs []Type, outputs []Type) FunctionKey {
	return FunctionKey{id, Signature{inputs, outputs}}
}

func (p FunctionKey) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Id)
	builder.WriteString(typesToString(p.Signature.Inputs))
	builder.WriteString(" -> ")
	builder.WriteString(typesToString(p.Signature.Outputs))
	//
	return builder.String()
}

func typesToString(types []Type) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, t := range types {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(t.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
