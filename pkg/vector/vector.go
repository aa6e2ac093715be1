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
	"os"

	"github.com/consensys/go-zkir/pkg/typed/bounds"
	"github.com/consensys/go-zkir/pkg/typed/types"
	"github.com/consensys/go-zkir/pkg/typed/uexpr"
	"github.com/consensys/go-zkir/pkg/util/field"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// PANIC is the expected error of a vector whose coercion is a fatal defect.
const PANIC = "PANIC"

// File is the top-level structure of a test vector file.
type File struct {
	Vectors []Vector `yaml:"vectors"`
}

// Vector describes the coercion of a single integer expression into a given
// bitwidth, along with its expected outcome.  Exactly one of Expect or Error
// should be given.
type Vector struct {
	Name  string `yaml:"name"`
	Width uint   `yaml:"width"`
	Expr  Node   `yaml:"expr"`
	// Expected rendering of the coerced expression.
	Expect string `yaml:"expect,omitempty"`
	// Expected failure, which is either the name of a coercion error kind or
	// PANIC.
	Error string `yaml:"error,omitempty"`
	// Expected natural bitwidth of the coerced expression, after bound
	// propagation.
	Bits *uint `yaml:"bits,omitempty"`
}

// ReadFile reads all test vectors from a given file.
func ReadFile(filename string) ([]Vector, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return Parse(bytes)
}

// Parse test vectors from a given set of bytes.
func Parse(bytes []byte) ([]Vector, error) {
	var file File
	//
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("invalid vector file: %w", err)
	}
	//
	for i, v := range file.Vectors {
		if (v.Expect == "") == (v.Error == "") {
			return nil, fmt.Errorf("vector %d (%s): exactly one of expect or error required: %w", i, v.Name,
				ErrMalformed)
		}
	}
	//
	return file.Vectors, nil
}

// Execute the coercion described by a given vector.  A fatal defect arising
// during coercion is returned as an error wrapping ErrPanic, rather than
// propagated.
func Execute[F field.Element[F]](v Vector) (result uexpr.UExpression[F], err error) {
	bitwidth, err := types.FromUint(v.Width)
	if err != nil {
		return result, err
	}
	//
	expr, err := Build[F](v.Expr)
	if err != nil {
		return result, err
	}
	//
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v: %w", r, ErrPanic)
		}
	}()
	//
	return uexpr.TryFromInt[F](expr, bitwidth)
}

// ErrPanic indicates coercion raised a fatal defect.
var ErrPanic = errors.New("coercion aborted")

// Run a given vector, returning an error if its outcome differs from that
// expected.
func Run[F field.Element[F]](v Vector) error {
	result, err := Execute[F](v)
	//
	switch {
	case err != nil:
		return checkFailure(v, err)
	case v.Error != "":
		return fmt.Errorf("%s: expected %s, found \"%s\"", v.Name, v.Error, result.String())
	case result.String() != v.Expect:
		return fmt.Errorf("%s: expected \"%s\", found \"%s\"", v.Name, v.Expect, result.String())
	case v.Bits != nil:
		return checkBits(v, result, field.BandWidth[F]())
	}
	//
	return nil
}

func checkFailure(v Vector, err error) error {
	var (
		cerr  *uexpr.CoercionError
		found string
	)
	//
	switch {
	case errors.As(err, &cerr):
		found = cerr.Kind.String()
	case errors.Is(err, ErrPanic):
		found = PANIC
	default:
		return fmt.Errorf("%s: %w", v.Name, err)
	}
	//
	if found != v.Error {
		return fmt.Errorf("%s: unexpected failure (%w)", v.Name, err)
	}
	//
	log.Debugf("%s: failed as expected (%s)", v.Name, err)
	//
	return nil
}

func checkBits[F field.Element[F]](v Vector, result uexpr.UExpression[F], bandwidth uint) error {
	annotated, err := bounds.Propagate(result, bandwidth)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Name, err)
	}
	//
	if bits := bounds.Bitwidth(annotated); bits != *v.Bits {
		return fmt.Errorf("%s: expected %d bits, found %s", v.Name, *v.Bits, uexpr.Describe(annotated))
	}
	//
	return nil
}
