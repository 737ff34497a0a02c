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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yokoyolk/valida/pkg/machine"
	"github.com/yokoyolk/valida/pkg/trace"
	"github.com/yokoyolk/valida/pkg/util/field"
	"github.com/yokoyolk/valida/pkg/util/field/bls12_377"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest [flags]",
	Short: "Run the interaction argument end-to-end over BLS12-377.",
	Long: `Build a two-chip demonstration machine, generate its main and auxiliary
	 traces under fresh randomness, and check every permutation constraint plus the
	 machine-wide balance.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		rows := GetUint(cmd, "rows")
		//
		if err := runSelftest(rows); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Println("OK")
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(selftestCmd)
	selftestCmd.Flags().Uint("rows", 16, "number of rows per chip trace")
}

// runSelftest drives the whole argument over a square/check chip pair: the
// square chip asserts (x, x²) pairs onto a global bus, the check chip claims
// to have received them, and the permutation constraints plus the machine
// balance confirm both sides agree.
func runSelftest(rows uint) error {
	m := machine.NewMachine[bls12_377.Element, bls12_377.Element](
		&squareChip{rows: rows}, &checkChip{rows: rows},
	)
	// Draw challenges.  In a real proving session these come out of a
	// Fiat-Shamir transcript after the main traces are committed.
	var randomness [3]bls12_377.Element
	//
	for i := range randomness {
		r, err := bls12_377.Random()
		if err != nil {
			return err
		}
		//
		randomness[i] = r
	}
	//
	total := field.Zero[bls12_377.Element]()
	//
	for id := range m.Chips() {
		var (
			chip = m.Chip(uint(id))
			main = chip.GenerateTrace(m)
			perm = machine.GeneratePermutationTrace(m, uint(id), main, randomness)
			sum  = machine.CumulativeSum(perm)
		)
		//
		if failure := machine.Accepts(m, uint(id), main, perm, randomness, sum); failure != nil {
			return fmt.Errorf("selftest: %s", failure.Message())
		}
		//
		log.Debugf("chip %s: %d rows, %d auxiliary columns, cumulative sum %s",
			chip.Name(), main.Height(), perm.Width(), sum)
		//
		total = total.Add(sum)
	}
	// Global balance across the machine.
	if !total.IsZero() {
		return fmt.Errorf("selftest: machine-wide cumulative sum %s is not zero", total)
	}
	//
	return nil
}

// squareChip produces a trace of (x, x²) rows and sends every row onto
// global bus 1.  It additionally sends and receives its own first column on
// local bus 1, exercising the chip-scoped argument.
type squareChip struct {
	machine.BaseChip[bls12_377.Element, bls12_377.Element]
	rows uint
}

// Name returns a handle identifying this chip in failure reports.
func (p *squareChip) Name() string {
	return "square"
}

// GenerateTrace produces the (x, x²) main trace.
func (p *squareChip) GenerateTrace(_ *machine.Machine[bls12_377.Element, bls12_377.Element],
) *trace.Matrix[bls12_377.Element] {
	//
	tr := trace.NewBlankMatrix[bls12_377.Element](2, p.rows)
	//
	for k := uint(0); k < p.rows; k++ {
		x := field.Uint64[bls12_377.Element](uint64(k))
		tr.Set(0, k, x)
		tr.Set(1, k, x.Mul(x))
	}
	//
	return tr
}

// LocalSends declares the chip-scoped self-check send.
func (p *squareChip) LocalSends() []machine.Interaction[bls12_377.Element] {
	return []machine.Interaction[bls12_377.Element]{{
		Fields:   []machine.VirtualColumn[bls12_377.Element]{machine.SingleColumn[bls12_377.Element](0)},
		Count:    machine.ConstantColumn(field.One[bls12_377.Element]()),
		Argument: machine.LocalArgument(1),
	}}
}

// LocalReceives declares the matching chip-scoped receive.
func (p *squareChip) LocalReceives() []machine.Interaction[bls12_377.Element] {
	return []machine.Interaction[bls12_377.Element]{{
		Fields:   []machine.VirtualColumn[bls12_377.Element]{machine.SingleColumn[bls12_377.Element](0)},
		Count:    machine.ConstantColumn(field.One[bls12_377.Element]()),
		Argument: machine.LocalArgument(1),
	}}
}

// GlobalSends declares the (x, x²) send onto global bus 1.
func (p *squareChip) GlobalSends(_ *machine.Machine[bls12_377.Element, bls12_377.Element],
) []machine.Interaction[bls12_377.Element] {
	//
	return []machine.Interaction[bls12_377.Element]{{
		Fields: []machine.VirtualColumn[bls12_377.Element]{
			machine.SingleColumn[bls12_377.Element](0),
			machine.SingleColumn[bls12_377.Element](1),
		},
		Count:    machine.ConstantColumn(field.One[bls12_377.Element]()),
		Argument: machine.GlobalArgument(1),
	}}
}

// checkChip claims to have received every (x, x²) pair the square chip sent.
// Its trace is generated independently, so any disagreement between the two
// chips shows up as a non-zero machine-wide cumulative sum.
type checkChip struct {
	machine.BaseChip[bls12_377.Element, bls12_377.Element]
	rows uint
}

// Name returns a handle identifying this chip in failure reports.
func (p *checkChip) Name() string {
	return "check"
}

// GenerateTrace produces the receiving side's view of the (x, x²) pairs.
func (p *checkChip) GenerateTrace(_ *machine.Machine[bls12_377.Element, bls12_377.Element],
) *trace.Matrix[bls12_377.Element] {
	//
	tr := trace.NewBlankMatrix[bls12_377.Element](2, p.rows)
	//
	for k := uint(0); k < p.rows; k++ {
		x := field.Uint64[bls12_377.Element](uint64(k))
		tr.Set(0, k, x)
		tr.Set(1, k, x.Mul(x))
	}
	//
	return tr
}

// GlobalReceives declares the (x, x²) receive from global bus 1.
func (p *checkChip) GlobalReceives(_ *machine.Machine[bls12_377.Element, bls12_377.Element],
) []machine.Interaction[bls12_377.Element] {
	//
	return []machine.Interaction[bls12_377.Element]{{
		Fields: []machine.VirtualColumn[bls12_377.Element]{
			machine.SingleColumn[bls12_377.Element](0),
			machine.SingleColumn[bls12_377.Element](1),
		},
		Count:    machine.ConstantColumn(field.One[bls12_377.Element]()),
		Argument: machine.GlobalArgument(1),
	}}
}
