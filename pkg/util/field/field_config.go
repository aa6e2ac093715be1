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
package field

import (
	"fmt"
	"slices"
	"strings"
)

// Config identifies one of the prime fields supported as the numeric domain of
// the typed IR.
type Config struct {
	// Name suitable for identifying the config (e.g. on the command line).
	Name string
	// Maximum field bandwidth available in the field.  This bounds the natural
	// bitwidth any intermediate value can reach before a reduction is forced.
	BandWidth uint
}

var (
	// GF_251 is a tiny prime field used exclusively for testing.
	GF_251 = Config{"GF_251", 7}
	// BLS12_377 is the scalar field of the BLS12-377 curve, and the default.
	BLS12_377 = Config{"BLS12_377", 252}
)

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{GF_251, BLS12_377}

// GetConfig returns the field configuration with the given name (ignoring
// case), or nil no such config exists.
func GetConfig(name string) *Config {
	i := slices.IndexFunc(FIELD_CONFIGS, func(c Config) bool {
		return strings.EqualFold(c.Name, name)
	})
	//
	if i < 0 {
		return nil
	}
	//
	return &FIELD_CONFIGS[i]
}

// SupportsWidth checks whether unsigned integers of a given bitwidth can be
// composed within this field.  That requires room for at least one carry bit.
func (c Config) SupportsWidth(bits uint) bool {
	return bits < c.BandWidth
}

func (c Config) String() string {
	return fmt.Sprintf("%s (bandwidth %d)", c.Name, c.BandWidth)
}
