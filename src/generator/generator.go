package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"scp_harness/src/scp"
)

type options struct {
	outPath     string
	numElements int
	numSubsets  int
	maxCost     int
	density     float64
	seed        int64
	format      string
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:          "generator",
		Short:        "Generates a random set cover instance",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := scp.ParseFormat(o.format)
			if err != nil {
				return err
			}
			inst, err := scp.Generate(o.numElements, o.numSubsets, o.maxCost, o.density, o.seed)
			if err != nil {
				return err
			}
			if o.outPath == "-" {
				return scp.WriteInstance(cmd.OutOrStdout(), inst, format)
			}
			if err := scp.SaveInstance(o.outPath, inst, format); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"elements": o.numElements,
				"sets":     o.numSubsets,
				"density":  o.density,
				"seed":     o.seed,
			}).Infof("wrote %s", o.outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&o.outPath, "out", "out.txt", "the output file, - for stdout")
	cmd.Flags().IntVarP(&o.numElements, "elems", "n", 0, "the number of elements")
	cmd.Flags().IntVarP(&o.numSubsets, "sets", "m", 0, "the number of subsets")
	cmd.Flags().IntVar(&o.maxCost, "max-cost", 100, "the maximum cost of a subset")
	cmd.Flags().Float64Var(&o.density, "density", 0.1, "the probability that a subset contains a given element")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "the generator seed")
	cmd.Flags().StringVar(&o.format, "format", string(scp.FormatColumns), "instance format: rows or columns")
	cmd.MarkFlagRequired("elems")
	cmd.MarkFlagRequired("sets")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
