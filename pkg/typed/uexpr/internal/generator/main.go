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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// literal describes the typed literal constructor generated for one of the
// supported bitwidths.
type literal struct {
	Name     string
	Type     string
	GoType   string
	Bitwidth string
}

type literalConfig struct {
	Widths []literal
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-zkir")
	//
	cfg := literalConfig{}
	//
	for _, bits := range []uint{8, 16, 32, 64} {
		cfg.Widths = append(cfg.Widths, literal{
			Name:     fmt.Sprintf("U%d", bits),
			Type:     fmt.Sprintf("u%d", bits),
			GoType:   fmt.Sprintf("uint%d", bits),
			Bitwidth: fmt.Sprintf("B%d", bits),
		})
	}
	//
	assertNoError(bgen.Generate(cfg, "uexpr", "templates",
		bavard.Entry{
			File:      "../../literals_gen.go",
			Templates: []string{"literals.go.tmpl"},
		},
	), "for literals")
	// run gofmt on generated file
	runCmd("gofmt", "-w", "../../literals_gen.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, context string) {
	if err != nil {
		if context != "" {
			fmt.Printf("%s: %v\n", context, err)
		} else {
			fmt.Println(err)
		}
		//
		os.Exit(1)
	}
}
