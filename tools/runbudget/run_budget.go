package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/diogodcarvalho/osiris-utils/estimate"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing one planned run per row: title, dx, dy, n_cells, ppc, push_time, t_steps, n_cpu, gridpoints")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	runs := readCSV(csvFile)
	fmt.Printf("%-24s %10s %12s %12s %12s\n", "title", "dt_max", "runtime[s]", "runtime[h]", "dump[MiB]")
	for _, pr := range runs {
		dtMax, err := estimate.CourantLimit2D(pr.dx, pr.dy)
		if err != nil {
			panic(err)
		}
		seconds, err := estimate.Runtime(pr.nCells, pr.ppc, pr.pushTime, pr.tSteps, pr.nCPU)
		if err != nil {
			panic(err)
		}
		mib, err := estimate.FileSize(pr.gridPoints)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-24s %10.5f %12.1f %12.3f %12.3f\n", pr.title, dtMax, seconds, seconds/3600, mib)
	}
}

type PlannedRun struct {
	title        string
	dx, dy       float64
	nCells, ppc  float64
	pushTime     float64
	tSteps, nCPU int
	gridPoints   int
}

func readCSV(csvFile string) (runs []PlannedRun) {
	var (
		records [][]string
		err     error
		f       *os.File
	)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 9 {
			panic(fmt.Errorf("row %d has %d fields, need 9", i, len(rec)))
		}
		pr := PlannedRun{title: rec[0]}
		pr.dx = parseF(rec[1])
		pr.dy = parseF(rec[2])
		pr.nCells = parseF(rec[3])
		pr.ppc = parseF(rec[4])
		pr.pushTime = parseF(rec[5])
		pr.tSteps, _ = strconv.Atoi(rec[6])
		pr.nCPU, _ = strconv.Atoi(rec[7])
		pr.gridPoints, _ = strconv.Atoi(rec[8])
		runs = append(runs, pr)
	}
	return
}

func parseF(s string) (v float64) {
	_, _ = fmt.Sscanf(s, "%f", &v)
	return
}
