package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"scp_harness/src/harness"
)

type options struct {
	configPath string
	debug      bool
}

func newRootCmd(logger *logrus.Logger) *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:          "scp_harness",
		Short:        "Runs the set cover algorithms over a grid of random instances",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.debug {
				logger.SetLevel(logrus.DebugLevel)
			}

			cfg := harness.DefaultConfig()
			if o.configPath != "" {
				var err error
				if cfg, err = harness.LoadConfig(o.configPath); err != nil {
					return err
				}
			}

			runner, err := harness.NewRunner(cfg, logger)
			if err != nil {
				return err
			}
			trials, err := runner.Run()
			if err != nil {
				return err
			}
			return runner.WriteTables(trials, harness.GetSysInfo())
		},
	}

	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "YAML file describing the trial grid; defaults are used when empty")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "use debug log level")

	return cmd
}

func main() {
	if err := newRootCmd(logrus.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
