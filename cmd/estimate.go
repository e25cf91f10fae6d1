/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogodcarvalho/osiris-utils/estimate"
	"github.com/diogodcarvalho/osiris-utils/params"
)

// EstimateCmd represents the estimate command
var EstimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Stability limit, runtime and disk footprint for a planned run",
	Long: `
Reads a YAML run deck and prints the Courant time-step bound, the projected
wall-clock time and the per-dump output size, for example:

########################################
Title: "LWFA scan 03"
Dx: 0.2
Dy: 0.2
NCells: 1e6
PPC: 16
PushTime: 1e-8
TSteps: 20000
NCPU: 512
GridPoints: 1048576
########################################`,
	Run: func(cmd *cobra.Command, args []string) {
		deckFile, err := cmd.Flags().GetString("inputFile")
		if err != nil {
			panic(err)
		}
		rp := processDeck(deckFile)
		RunEstimate(rp)
	},
}

func processDeck(deckFile string) (rp *params.RunParameters) {
	if len(deckFile) == 0 {
		fmt.Println("error: must supply a run deck (-I, --inputFile) in YAML format")
		os.Exit(1)
	}
	data, err := os.ReadFile(deckFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	rp = &params.RunParameters{}
	if err = rp.Parse(data); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = rp.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func init() {
	rootCmd.AddCommand(EstimateCmd)
	EstimateCmd.Flags().StringP("inputFile", "I", "", "YAML run deck with grid spacings and run cost parameters")
}

func RunEstimate(rp *params.RunParameters) {
	rp.Print()
	dtMax, err := estimate.CourantLimit2D(rp.Dx, rp.Dy)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	seconds, err := estimate.Runtime(rp.NCells, rp.PPC, rp.PushTime, rp.TSteps, rp.NCPU)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	mib, err := estimate.FileSize(rp.GridPoints)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("%8.5f\t\t= dt max (Courant)\n", dtMax)
	fmt.Printf("%12.1f\t= est. runtime [s]\n", seconds)
	fmt.Printf("%12.3f\t= est. runtime [h]\n", seconds/3600)
	fmt.Printf("%12.3f\t= est. dump size [MiB]\n", mib)
}
