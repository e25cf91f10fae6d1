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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/diogodcarvalho/osiris-utils/dataio"
	"github.com/diogodcarvalho/osiris-utils/diagnostics"
)

type ReduceJob struct {
	FieldFile string
	OutFile   string
	InFormat  dataio.Format
	OutFormat dataio.Format
	Dx        float64
	Profile   bool
}

// ReduceCmd represents the reduce command
var ReduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Reduce a 2D field snapshot to an integrated longitudinal profile",
	Long: `
Loads a 2D field snapshot from a text file, averages it along the transverse
axis and cumulatively integrates the result from the right boundary, then
writes the 1D profile back out.

osiris-utils reduce -F e2-000080.txt --dx 0.2 -o psi.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			job = &ReduceJob{}
			err error
		)
		job.FieldFile, _ = cmd.Flags().GetString("fieldFile")
		job.OutFile, _ = cmd.Flags().GetString("outFile")
		job.Dx, _ = cmd.Flags().GetFloat64("dx")
		job.Profile, _ = cmd.Flags().GetBool("cpuprofile")
		inF, _ := cmd.Flags().GetString("format")
		outF, _ := cmd.Flags().GetString("outFormat")
		if job.InFormat, err = dataio.ParseFormat(inF); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if job.OutFormat, err = dataio.ParseFormat(outF); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if len(job.FieldFile) == 0 || len(job.OutFile) == 0 {
			fmt.Println("error: must supply a field file (-F, --fieldFile) and an output file (-o, --outFile)")
			os.Exit(1)
		}
		RunReduce(job)
	},
}

func init() {
	rootCmd.AddCommand(ReduceCmd)
	ReduceCmd.Flags().StringP("fieldFile", "F", "", "text file holding the 2D field snapshot")
	ReduceCmd.Flags().StringP("outFile", "o", "", "output file for the integrated profile")
	ReduceCmd.Flags().String("format", string(dataio.FormatNumpy), "snapshot file layout: numpy or pandas")
	ReduceCmd.Flags().String("outFormat", string(dataio.FormatNumpy), "output file layout: numpy or pandas")
	ReduceCmd.Flags().Float64("dx", 0, "grid spacing along the longitudinal axis")
	ReduceCmd.Flags().Bool("cpuprofile", false, "write a CPU profile for the reduction")
}

func RunReduce(job *ReduceJob) {
	if job.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	field, err := dataio.Load(job.FieldFile, job.InFormat)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	out, err := diagnostics.LongitudinalProfile(field, job.Dx)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = dataio.Save(out, job.OutFile, job.OutFormat); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("wrote %d samples to %s\n", out.Size(), job.OutFile)
}
