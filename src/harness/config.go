package harness

import (
	"fmt"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"scp_harness/src/scp"
)

type Size struct {
	N int `yaml:"n"`
	M int `yaml:"m"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.N, s.M)
}

// Config describes the trial grid: sizes × densities × trials.
type Config struct {
	Sizes      []Size          `yaml:"sizes"`
	Densities  []float64       `yaml:"densities"`
	MaxCost    int             `yaml:"max_cost"`
	Trials     int             `yaml:"trials"`
	Format     scp.Format      `yaml:"format"`
	InputDir   string          `yaml:"input_dir"`
	OutputDir  string          `yaml:"output_dir"`
	WriteInput bool            `yaml:"write_input"`
	Algorithms []scp.Algorithm `yaml:"algorithms"`

	// The exact engines only run below these sizes.
	ExactMaxSets     int `yaml:"exact_max_sets"`
	ExactMaxElements int `yaml:"exact_max_elements"`
}

func DefaultConfig() *Config {
	return &Config{
		Sizes: []Size{
			{N: 20, M: 1000},
			{N: 1000, M: 20},
			{N: 1000, M: 1000},
		},
		Densities:        []float64{0.01, 0.1, 0.2, 0.5},
		MaxCost:          100,
		Trials:           1,
		Format:           scp.FormatColumns,
		InputDir:         "input",
		OutputDir:        "output",
		WriteInput:       true,
		Algorithms:       slices.Clone(scp.Algorithms),
		ExactMaxSets:     20,
		ExactMaxElements: 20,
	}
}

// LoadConfig reads a YAML file over the defaults; omitted keys keep their default value.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", filename)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", filename)
	}
	return cfg, nil
}

func violation(parameter string, value, limit float64) error {
	return &scp.PreconditionViolatedError{Algorithm: "harness", Parameter: parameter, Value: value, Limit: limit}
}

func (cfg *Config) Validate() error {
	if len(cfg.Sizes) == 0 {
		return errors.New("no sizes configured")
	}
	for _, s := range cfg.Sizes {
		if s.N < 1 {
			return violation("n", float64(s.N), 1)
		}
		if s.M < 1 {
			return violation("m", float64(s.M), 1)
		}
	}
	if len(cfg.Densities) == 0 {
		return errors.New("no densities configured")
	}
	for _, d := range cfg.Densities {
		if !(d >= 0 && d <= 1) {
			return violation("density", d, 1)
		}
	}
	if cfg.MaxCost < 1 || cfg.MaxCost > scp.MaxCost {
		return violation("max_cost", float64(cfg.MaxCost), 1)
	}
	if cfg.Trials < 1 {
		return violation("trials", float64(cfg.Trials), 1)
	}
	if _, err := scp.ParseFormat(string(cfg.Format)); err != nil {
		return err
	}
	if len(cfg.Algorithms) == 0 {
		return errors.New("no algorithms configured")
	}
	for _, a := range cfg.Algorithms {
		if _, err := scp.ParseAlgorithm(string(a)); err != nil {
			return err
		}
	}
	if cfg.ExactMaxSets < 0 || cfg.ExactMaxSets > scp.MaxExactSets {
		return violation("exact_max_sets", float64(cfg.ExactMaxSets), scp.MaxExactSets)
	}
	if cfg.ExactMaxElements < 0 || cfg.ExactMaxElements > scp.MaxExactElements {
		return violation("exact_max_elements", float64(cfg.ExactMaxElements), scp.MaxExactElements)
	}
	return nil
}

// admissible filters the configured algorithms down to the ones that may run on an n×m instance.
func (cfg *Config) admissible(s Size) []scp.Algorithm {
	var algs []scp.Algorithm
	for _, a := range cfg.Algorithms {
		switch {
		case a == scp.SubfamilyExact && s.M > cfg.ExactMaxSets:
		case a == scp.UniverseExact && s.N > cfg.ExactMaxElements:
		default:
			algs = append(algs, a)
		}
	}
	return algs
}
