package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/damonsim/config"
)

type flagValues struct {
	config.Config

	envFile string
}

func newRootCmd() *cobra.Command {
	values := flagValues{Config: config.Default()}

	cmd := &cobra.Command{
		Use:   "damonsim",
		Short: "Simulate adaptive region-based memory access monitoring",
		Long: `damonsim splits a page space into regions and, every monitoring
cycle, samples which pages were accessed, splits the regions with more
accessed pages than the threshold and merges the others with their right
neighbor.

Options are read from the flags, then from DAMON_* environment variables
(optionally loaded from a .env file), then from the defaults.

Example:
  damonsim --cycles 3 --realtime=false
  damonsim --pattern "1111111000 1110000000" --cycles 1 --realtime=false
  damonsim --record --output run1 --monitor --open`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, values)
			if err != nil {
				return err
			}

			return runSimulation(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.IntVar(&values.PageCount, "pages", values.PageCount,
		"number of pages in the page space")
	f.IntVar(&values.InitialRegionSize, "region-size", values.InitialRegionSize,
		"number of pages of each initial region")
	f.IntVar(&values.AccessThreshold, "threshold", values.AccessThreshold,
		"regions with more accessed pages split, others merge")
	f.IntVar(&values.NumCycles, "cycles", values.NumCycles,
		"number of monitoring cycles")
	f.DurationVar(&values.Interval, "interval", values.Interval,
		"time between two cycles")
	f.Int64Var(&values.Seed, "seed", values.Seed,
		"seed of the random access signal, 0 for a time-based seed")
	f.BoolVar(&values.RealTime, "realtime", values.RealTime,
		"wait the interval in wall-clock time between cycles")
	f.StringVar(&values.Pattern, "pattern", values.Pattern,
		"fixed access pattern replayed every cycle, e.g. \"1100 0010\"")
	f.BoolVar(&values.Record, "record", values.Record,
		"record regions, events and traces into a SQLite database")
	f.StringVar(&values.OutputFile, "output", values.OutputFile,
		"database file name without the .sqlite3 suffix")
	f.BoolVar(&values.Monitor, "monitor", values.Monitor,
		"serve the monitoring web page")
	f.IntVar(&values.MonitorPort, "monitor-port", values.MonitorPort,
		"port of the monitoring server, 0 for a random port")
	f.BoolVar(&values.OpenBrowser, "open", values.OpenBrowser,
		"open the monitoring page in the browser")
	f.BoolVar(&values.Verbose, "verbose", values.Verbose,
		"log every cycle and adjustment to stderr")
	f.StringVar(&values.envFile, "env-file", "",
		"dotenv file to load before reading the environment")

	return cmd
}

// resolveConfig layers the flags that were set over the environment over the
// defaults.
func resolveConfig(cmd *cobra.Command, values flagValues) (config.Config, error) {
	var err error

	if values.envFile != "" {
		err = config.LoadEnvFile(values.envFile)
	} else {
		err = config.LoadEnvFile()
	}

	if err != nil {
		return config.Config{}, fmt.Errorf("loading env file: %w", err)
	}

	cfg, err := config.FromEnv(config.Default())
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	overrides := []struct {
		flag  string
		apply func()
	}{
		{"pages", func() { cfg.PageCount = values.PageCount }},
		{"region-size", func() { cfg.InitialRegionSize = values.InitialRegionSize }},
		{"threshold", func() { cfg.AccessThreshold = values.AccessThreshold }},
		{"cycles", func() { cfg.NumCycles = values.NumCycles }},
		{"interval", func() { cfg.Interval = values.Interval }},
		{"seed", func() { cfg.Seed = values.Seed }},
		{"realtime", func() { cfg.RealTime = values.RealTime }},
		{"pattern", func() { cfg.Pattern = values.Pattern }},
		{"record", func() { cfg.Record = values.Record }},
		{"output", func() { cfg.OutputFile = values.OutputFile }},
		{"monitor", func() { cfg.Monitor = values.Monitor }},
		{"monitor-port", func() { cfg.MonitorPort = values.MonitorPort }},
		{"open", func() { cfg.OpenBrowser = values.OpenBrowser }},
		{"verbose", func() { cfg.Verbose = values.Verbose }},
	}

	for _, o := range overrides {
		if f.Changed(o.flag) {
			o.apply()
		}
	}

	err = cfg.Validate()
	if err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
