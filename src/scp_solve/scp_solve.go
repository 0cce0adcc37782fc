package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"scp_harness/src/scp"
)

// solveHighs is set by highs.go when the binary is built with the highs tag.
var solveHighs func(*scp.Instance) (*scp.Solution, error)

type options struct {
	format     string
	algorithms []string
	outDir     string
	useHighs   bool
	debug      bool
}

func newRootCmd(logger *logrus.Logger) *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:          "scp_solve [instance files...]",
		Short:        "Solves set cover instances with the selected algorithms",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, paths []string) error {
			if o.debug {
				logger.SetLevel(logrus.DebugLevel)
			}

			format, err := scp.ParseFormat(o.format)
			if err != nil {
				return err
			}
			algorithms := make([]scp.Algorithm, 0, len(o.algorithms))
			for _, tag := range o.algorithms {
				alg, err := scp.ParseAlgorithm(tag)
				if err != nil {
					return err
				}
				algorithms = append(algorithms, alg)
			}
			if len(algorithms) == 0 && !o.useHighs {
				return fmt.Errorf("must specify a solving algorithm")
			}
			if o.useHighs && solveHighs == nil {
				return fmt.Errorf("--highs needs a binary built with -tags highs")
			}
			if o.outDir != "" {
				if err := os.MkdirAll(o.outDir, 0o755); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, p := range paths {
				log := logger.WithField("instance", p)
				inst, err := scp.LoadInstance(p, format)
				if err != nil {
					log.WithError(err).Error("skipping")
					continue
				}
				log.Debugf("loaded %d elements, %d sets", inst.NumElements, inst.NumSubsets)

				for _, alg := range algorithms {
					sol, err := scp.Solve(inst, alg)
					if err != nil {
						log.WithError(err).WithField("algorithm", alg).Error("solve failed")
						continue
					}
					log.WithFields(logrus.Fields{"algorithm": alg, "runtime": sol.Runtime.Seconds()}).Info("solved")
					fmt.Fprintf(out, "Instance %v, %s:\n%v\n\n", p, alg, sol)
					if o.outDir != "" {
						name := string(alg) + "-" + filepath.Base(p)
						if err := scp.SaveSolution(filepath.Join(o.outDir, name), sol); err != nil {
							return err
						}
					}
				}

				if o.useHighs {
					sol, err := solveHighs(inst)
					if err != nil {
						log.WithError(err).Error("HiGHS failed")
						continue
					}
					fmt.Fprintf(out, "Instance %v, HiGHS:\n%v\n\n", p, sol)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&o.format, "format", string(scp.FormatColumns), "instance format: rows or columns")
	cmd.Flags().StringSliceVarP(&o.algorithms, "algorithms", "a", []string{"NG", "OG"}, "algorithms to run: NG, OG, 2ME, 2NE")
	cmd.Flags().StringVar(&o.outDir, "out-dir", "", "directory for solution files, named <ALG>-<instance file>")
	cmd.Flags().BoolVar(&o.useHighs, "highs", false, "also solve with the HiGHS MIP solver")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "use debug log level")

	return cmd
}

func main() {
	if err := newRootCmd(logrus.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
