// Package params parses the YAML run deck describing a planned OSIRIS run.
package params

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/diogodcarvalho/osiris-utils/utils"
)

// RunParameters obtained from the YAML input file
type RunParameters struct {
	Title      string  `yaml:"Title"`
	Dx         float64 `yaml:"Dx"`
	Dy         float64 `yaml:"Dy"`
	NCells     float64 `yaml:"NCells"`
	PPC        float64 `yaml:"PPC"`
	PushTime   float64 `yaml:"PushTime"` // seconds per particle push
	TSteps     int     `yaml:"TSteps"`
	NCPU       int     `yaml:"NCPU"`
	GridPoints int     `yaml:"GridPoints"` // points per grid diagnostic dump
}

func (rp *RunParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

// Validate checks the positivity invariants before any estimate runs.
func (rp *RunParameters) Validate() error {
	positives := []struct {
		name string
		val  float64
	}{
		{"Dx", rp.Dx},
		{"Dy", rp.Dy},
		{"NCells", rp.NCells},
		{"PPC", rp.PPC},
		{"PushTime", rp.PushTime},
		{"TSteps", float64(rp.TSteps)},
		{"NCPU", float64(rp.NCPU)},
	}
	for _, p := range positives {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s = %v must be positive", utils.ErrInvalidArgument, p.name, p.val)
		}
	}
	if rp.GridPoints < 0 {
		return fmt.Errorf("%w: GridPoints = %d must be non-negative", utils.ErrInvalidArgument, rp.GridPoints)
	}
	return nil
}

func (rp *RunParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("%8.5f\t\t= Dx\n", rp.Dx)
	fmt.Printf("%8.5f\t\t= Dy\n", rp.Dy)
	fmt.Printf("%8.3g\t\t= NCells\n", rp.NCells)
	fmt.Printf("%8.3g\t\t= PPC\n", rp.PPC)
	fmt.Printf("%8.3e\t\t= PushTime [s]\n", rp.PushTime)
	fmt.Printf("[%d]\t\t\t= TSteps\n", rp.TSteps)
	fmt.Printf("[%d]\t\t\t= NCPU\n", rp.NCPU)
	fmt.Printf("[%d]\t\t\t= GridPoints\n", rp.GridPoints)
}
