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
	"fmt"

	"github.com/consensys/go-zkir/pkg/typed/types"
)

// Expression represents an arbitrary typed expression over some numeric domain
// F.  Expressions of different types can be mixed, for example, as the
// arguments of a function call.
type Expression[F any] interface {
	fmt.Stringer
	// Type returns the declared type of this expression.
	Type() types.Type
}

// BooleanExpression represents an expression evaluating to a boolean, such as
// the condition of an if-else expression.
type BooleanExpression[F any] interface {
	Expression[F]
}

// FieldElementExpression represents an expression evaluating to an element of
// the underlying field, such as the amount of a shift.
type FieldElementExpression[F any] interface {
	Expression[F]
}

// ArrayExpression represents an expression evaluating to a fixed-size array.
type ArrayExpression[F any] interface {
	Expression[F]
	// ArrayType returns the declared type of this array.
	ArrayType() *types.Array
}

// StructExpression represents an expression evaluating to a struct.
type StructExpression[F any] interface {
	Expression[F]
	// StructType returns the declared type of this struct.
	StructType() *types.Struct
}

// Identifier names a variable in scope.
type Identifier string

func (p Identifier) String() string {
	return string(p)
}
