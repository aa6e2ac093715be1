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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-zkir/pkg/typed/bounds"
	"github.com/consensys/go-zkir/pkg/typed/uexpr"
	"github.com/consensys/go-zkir/pkg/util/field"
	"github.com/consensys/go-zkir/pkg/util/field/bls12_377"
	"github.com/consensys/go-zkir/pkg/util/field/gf251"
	"github.com/consensys/go-zkir/pkg/util/termio"
	"github.com/consensys/go-zkir/pkg/vector"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] vector_file(s)",
	Short: "Check one or more files of coercion test vectors.",
	Long: `Check one or more files of coercion test vectors.
	Each vector coerces an integer expression into a given bitwidth, and
	describes either the expected result or the expected failure.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runFieldAgnosticCmd(cmd, args, checkCmds)
	},
}

// Available instances
var checkCmds = []FieldAgnosticCmd{
	{field.GF_251, runCheckCmd[gf251.Element]},
	{field.BLS12_377, runCheckCmd[bls12_377.Element]},
}

func runCheckCmd[F field.Element[F]](cmd *cobra.Command, args []string) {
	var (
		showBounds = GetFlag(cmd, "bounds")
		colour     = termio.NewColouriser()
	)
	//
	nTests, nFailed, err := checkFiles[F](os.Stdout, args, showBounds, colour)
	if err != nil {
		log.Error(err)
		os.Exit(3)
	} else if nFailed != 0 {
		log.Errorf("%d of %d vector(s) failed", nFailed, nTests)
		os.Exit(4)
	}
	//
	log.Infof("%d vector(s) passed", nTests)
}

// Run every vector in the given files, reporting the outcome of each.  This
// returns the number of vectors run and the number which failed, or an error
// if some file could not be read.
func checkFiles[F field.Element[F]](out io.Writer, filenames []string, showBounds bool,
	colour termio.Colouriser) (nTests uint, nFailed uint, err error) {
	//
	for _, filename := range filenames {
		vectors, err := vector.ReadFile(filename)
		if err != nil {
			return nTests, nFailed, err
		}
		//
		log.Debugf("read %d vector(s) from %s", len(vectors), filename)
		//
		for _, v := range vectors {
			nTests++
			//
			if err := vector.Run[F](v); err != nil {
				nFailed++
				//
				fmt.Fprintf(out, "%s %s: %s\n", colour.Colour("FAIL", termio.TERM_RED), filename, err)
			} else {
				fmt.Fprintf(out, "%s %s: %s\n", colour.Colour("PASS", termio.TERM_GREEN), filename, v.Name)
			}
			//
			if showBounds {
				reportBounds[F](out, v, colour)
			}
		}
	}
	//
	return nTests, nFailed, nil
}

// Print the coerced expression of a vector, annotated with its bounds.
func reportBounds[F field.Element[F]](out io.Writer, v vector.Vector, colour termio.Colouriser) {
	result, err := vector.Execute[F](v)
	if err != nil {
		// Nothing to report
		return
	}
	//
	annotated, err := bounds.Propagate(result, field.BandWidth[F]())
	if err != nil {
		fmt.Fprintf(out, "\t%s %s\n", colour.Colour("WARN", termio.TERM_YELLOW), err)
		return
	}
	//
	fmt.Fprintf(out, "\t%s\n", uexpr.Describe(annotated))
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("bounds", false, "report natural bitwidth bounds of coerced expressions")
}
