// Package harness runs the solver over a grid of generated instances and
// aggregates averaged statistics per size.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"scp_harness/src/scp"
)

// NotApplicable marks an approximation ratio with no exact reference.
const NotApplicable = -1.0

type Result struct {
	Algorithm scp.Algorithm
	Solution  *scp.Solution
	Ratio     float64
}

type Trial struct {
	Name    string
	Size    Size
	Density float64
	Seed    int64
	Results []Result
}

// DataSetName follows rand-<format>-<n>x<m>-MC<max cost>-D<density>-S<seed>.
func DataSetName(format scp.Format, s Size, maxCost int, density float64, seed int64) string {
	return fmt.Sprintf("rand-%s-%s-MC%d-D%s-S%d", format, s, maxCost, strconv.FormatFloat(density, 'g', -1, 64), seed)
}

// exactReference picks the optimum to divide by: 2NE when it ran, else 2ME.
func exactReference(results []Result) (int64, bool) {
	for _, alg := range []scp.Algorithm{scp.UniverseExact, scp.SubfamilyExact} {
		for _, res := range results {
			if res.Algorithm == alg {
				return res.Solution.TotalCost, true
			}
		}
	}
	return 0, false
}

func fillRatios(results []Result) {
	exact, ok := exactReference(results)
	for i := range results {
		results[i].Ratio = NotApplicable
		if ok && exact > 0 {
			results[i].Ratio = float64(results[i].Solution.TotalCost) / float64(exact)
		}
	}
}

// Runner executes the configured grid. Files go to the configured directories only.
type Runner struct {
	cfg    *Config
	logger logrus.FieldLogger
}

func NewRunner(cfg *Config, logger logrus.FieldLogger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, logger: logger}, nil
}

func (h *Runner) totalTrials() int {
	return len(h.cfg.Sizes) * len(h.cfg.Densities) * h.cfg.Trials
}

// runTrial generates one instance, runs every admissible algorithm on it and
// writes the instance and solution files.
func (h *Runner) runTrial(s Size, density float64, seed int64) (*Trial, error) {
	cfg := h.cfg
	name := DataSetName(cfg.Format, s, cfg.MaxCost, density, seed)
	log := h.logger.WithField("dataset", name)

	log.Debug("generating instance")
	inst, err := scp.Generate(s.N, s.M, cfg.MaxCost, density, seed)
	if err != nil {
		return nil, err
	}
	if cfg.WriteInput {
		log.Debug("writing input file")
		if err := scp.SaveInstance(filepath.Join(cfg.InputDir, name+".txt"), inst, cfg.Format); err != nil {
			return nil, err
		}
	}

	trial := &Trial{Name: name, Size: s, Density: density, Seed: seed}
	for _, alg := range cfg.admissible(s) {
		sol, err := scp.Solve(inst, alg)
		if err != nil {
			return nil, errors.Wrapf(err, "%s on %s", alg, name)
		}
		if err := scp.SaveSolution(filepath.Join(cfg.OutputDir, string(alg)+"-"+name+".txt"), sol); err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"algorithm": alg,
			"cost":      sol.TotalCost,
			"runtime":   sol.Runtime.Seconds(),
		}).Info("solved")
		trial.Results = append(trial.Results, Result{Algorithm: alg, Solution: sol})
	}
	fillRatios(trial.Results)
	return trial, nil
}

// Run executes every trial of the grid, seeding trial k with k, and returns them in order.
func (h *Runner) Run() ([]*Trial, error) {
	cfg := h.cfg
	if cfg.WriteInput {
		if err := os.MkdirAll(cfg.InputDir, 0o755); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, err
	}

	h.logger.WithFields(logrus.Fields{
		"sizes":     cfg.Sizes,
		"densities": cfg.Densities,
		"max_cost":  cfg.MaxCost,
		"trials":    cfg.Trials,
		"format":    cfg.Format,
	}).Info("running SCP trials")

	start := time.Now()
	total := h.totalTrials()
	trials := make([]*Trial, 0, total)
	for _, s := range cfg.Sizes {
		for _, density := range cfg.Densities {
			for seed := int64(1); seed <= int64(cfg.Trials); seed++ {
				h.logger.WithFields(logrus.Fields{
					"size":    s.String(),
					"density": density,
					"trial":   seed,
				}).Infof("(%d/%d)", len(trials)+1, total)

				trial, err := h.runTrial(s, density, seed)
				if err != nil {
					return nil, err
				}
				trials = append(trials, trial)
			}
		}
	}
	h.logger.WithField("elapsed", time.Since(start).String()).Infof("completed %d trials", total)
	return trials, nil
}

// WriteTables aggregates trials and writes one table per size and statistic
// to <output_dir>/stats-<n>x<m>-<statistic>.txt.
func (h *Runner) WriteTables(trials []*Trial, sys SysInfo) error {
	for _, table := range Aggregate(h.cfg, trials) {
		filename := filepath.Join(h.cfg.OutputDir, fmt.Sprintf("stats-%s-%s.txt", table.Size, table.Statistic))
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		if err := WriteTable(file, table, sys); err != nil {
			file.Close()
			return errors.Wrapf(err, "writing %s", filename)
		}
		if err := file.Close(); err != nil {
			return err
		}
		h.logger.WithField("file", filename).Debug("wrote statistics")
	}
	return nil
}
