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
package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Option_Some(t *testing.T) {
	var opt = Some[uint](8)
	//
	assert.True(t, opt.HasValue())
	assert.False(t, opt.IsEmpty())
	assert.Equal(t, uint(8), opt.Unwrap())
	assert.Equal(t, uint(8), opt.UnwrapOr(16))
	assert.Equal(t, "8", opt.String())
}

func Test_Option_None(t *testing.T) {
	var opt = None[bool]()
	//
	assert.False(t, opt.HasValue())
	assert.True(t, opt.IsEmpty())
	assert.True(t, opt.UnwrapOr(true))
	assert.Equal(t, "_", opt.String())
	assert.Panics(t, func() { opt.Unwrap() })
}

func Test_Option_Equality(t *testing.T) {
	assert.True(t, Some(true) == Some(true))
	assert.False(t, Some(true) == Some(false))
	assert.True(t, None[bool]() == None[bool]())
	assert.False(t, Some(false) == None[bool]())
}
