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
	"fmt"
	"testing"

	"github.com/consensys/go-zkir/pkg/typed/intexpr"
	"github.com/consensys/go-zkir/pkg/util/field/bls12_377"
	"github.com/consensys/go-zkir/pkg/util/field/gf251"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDir determines the (relative) location of the test vectors.
const TestDir = "../../testdata/vectors"

type F = bls12_377.Element

func Test_Vectors_Literals(t *testing.T) {
	check_VectorFile(t, "literals")
}

func Test_Vectors_Arithmetic(t *testing.T) {
	check_VectorFile(t, "arithmetic")
}

func Test_Vectors_Structure(t *testing.T) {
	check_VectorFile(t, "structure")
}

func Test_Vectors_Unexpected(t *testing.T) {
	check_VectorFile(t, "unexpected")
}

func Test_Vectors_SmallField(t *testing.T) {
	// Coercion itself is independent of the field.
	vectors, err := ReadFile(fmt.Sprintf("%s/unexpected.yaml", TestDir))
	require.NoError(t, err)
	//
	for _, v := range vectors {
		assert.NoError(t, Run[gf251.Element](v))
	}
}

func Test_Parse_01(t *testing.T) {
	var text = `
vectors:
  - name: v
    width: 8
    expr: {op: add, args: [{value: "1"}, {value: "2"}]}
    expect: "1 + 2"
`
	vectors, err := Parse([]byte(text))
	require.NoError(t, err)
	require.Len(t, vectors, 1)
	assert.Equal(t, "v", vectors[0].Name)
	assert.Equal(t, uint(8), vectors[0].Width)
	assert.Nil(t, vectors[0].Bits)
	assert.NoError(t, Run[F](vectors[0]))
}

func Test_Parse_02(t *testing.T) {
	// Both expect and error
	_, err := Parse([]byte("vectors: [{name: v, width: 8, expr: {value: \"1\"}, expect: \"1\", error: PANIC}]"))
	assert.ErrorIs(t, err, ErrMalformed)
	// Neither expect nor error
	_, err = Parse([]byte("vectors: [{name: v, width: 8, expr: {value: \"1\"}}]"))
	assert.ErrorIs(t, err, ErrMalformed)
	// Not yaml
	_, err = Parse([]byte("vectors: [[["))
	assert.Error(t, err)
}

func Test_Build_01(t *testing.T) {
	var (
		by   = Leaf{Field: "3"}
		node = Node{Op: "shl", Args: []Node{{Op: "neg", Args: []Node{{Ident: "x"}}}}, By: &by}
	)
	//
	e, err := Build[F](node)
	require.NoError(t, err)
	assert.Equal(t, "(-x) << 3", e.String())
	//
	_, ok := e.(*intexpr.LeftShift[F])
	assert.True(t, ok)
}

func Test_Build_02(t *testing.T) {
	var malformed = []Node{
		{},
		{Op: "add", Args: []Node{{Value: "1"}}},
		{Op: "not"},
		{Op: "shl", Args: []Node{{Value: "1"}}},
		{Op: "shr", Args: []Node{{Value: "1"}}, By: &Leaf{}},
		{Op: "if", Args: []Node{{Value: "1"}, {Value: "2"}}},
		{Op: "select", Args: []Node{{Value: "1"}}},
		{Op: "frobnicate", Args: []Node{{Value: "1"}}},
		{Value: "-1"},
		{Value: "one"},
		{Op: "add", Args: []Node{{Value: "1"}, {}}},
	}
	//
	for i, n := range malformed {
		_, err := Build[F](n)
		assert.ErrorIs(t, err, ErrMalformed, "node %d", i)
	}
}

func Test_Run_01(t *testing.T) {
	var (
		bits = uint(4)
		node = Node{Op: "add", Args: []Node{{Value: "1"}, {Value: "2"}}}
	)
	// Wrong rendering
	assert.Error(t, Run[F](Vector{Name: "a", Width: 8, Expr: node, Expect: "2 + 1"}))
	// Unexpected success
	assert.Error(t, Run[F](Vector{Name: "b", Width: 8, Expr: node, Error: PANIC}))
	// Wrong failure
	assert.Error(t, Run[F](Vector{Name: "c", Width: 8, Expr: Node{Value: "200"}, Error: PANIC}))
	// Wrong bits
	assert.Error(t, Run[F](Vector{Name: "d", Width: 8, Expr: node, Expect: "1 + 2", Bits: &bits}))
	// Invalid width
	assert.Error(t, Run[F](Vector{Name: "e", Width: 7, Expr: node, Expect: "1 + 2"}))
}

func Test_Execute_01(t *testing.T) {
	var node = Node{Op: "select", Array: "a", Size: 2, Args: []Node{{Value: "1"}}}
	//
	_, err := Execute[F](Vector{Name: "a", Width: 8, Expr: node, Error: PANIC})
	assert.ErrorIs(t, err, ErrPanic)
}

func check_VectorFile(t *testing.T, name string) {
	vectors, err := ReadFile(fmt.Sprintf("%s/%s.yaml", TestDir, name))
	require.NoError(t, err)
	require.NotEmpty(t, vectors)
	//
	for _, v := range vectors {
		assert.NoError(t, Run[F](v))
	}
}
