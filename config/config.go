// Package config holds the options of a region monitoring run and loads them
// from the environment.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a configuration value is malformed or out
// of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config collects all the options of a simulation run.
type Config struct {
	// PageCount is the number of pages in the simulated page space.
	PageCount int

	// InitialRegionSize is the number of pages per region before the first
	// adjustment. The last region absorbs the remainder.
	InitialRegionSize int

	// AccessThreshold splits regions with more accessed pages and merges
	// regions with no more accessed pages.
	AccessThreshold int

	// NumCycles is the number of monitoring cycles to run.
	NumCycles int

	// Interval is the time between two cycles.
	Interval time.Duration

	// Seed seeds the random access signal. Zero means a time-based seed.
	Seed int64

	// RealTime makes the driver wait Interval of wall-clock time after each
	// cycle.
	RealTime bool

	// Pattern, if set, replaces the random access signal with a fixed
	// pattern. See pagespace.ParsePattern.
	Pattern string

	Record     bool
	OutputFile string

	Monitor     bool
	MonitorPort int
	OpenBrowser bool

	Verbose bool
}

// Default returns the configuration of the reference run: 100 pages in
// regions of 10, threshold 5, 10 cycles, one second apart.
func Default() Config {
	return Config{
		PageCount:         100,
		InitialRegionSize: 10,
		AccessThreshold:   5,
		NumCycles:         10,
		Interval:          time.Second,
		RealTime:          true,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch {
	case c.PageCount < 1:
		return invalid("page count", c.PageCount, "must be at least 1")
	case c.InitialRegionSize < 1:
		return invalid("initial region size", c.InitialRegionSize,
			"must be at least 1")
	case c.AccessThreshold < 0:
		return invalid("access threshold", c.AccessThreshold,
			"must not be negative")
	case c.NumCycles < 0:
		return invalid("number of cycles", c.NumCycles, "must not be negative")
	case c.Interval <= 0:
		return invalid("interval", c.Interval, "must be positive")
	case c.MonitorPort != 0 && (c.MonitorPort < 1024 || c.MonitorPort > 65535):
		return invalid("monitor port", c.MonitorPort,
			"must be 0 or within [1024, 65535]")
	case !c.Monitor && c.MonitorPort != 0:
		return invalid("monitor port", c.MonitorPort,
			"cannot be set when monitoring is disabled")
	case !c.Monitor && c.OpenBrowser:
		return invalid("open browser", c.OpenBrowser,
			"requires monitoring")
	case !c.Record && c.OutputFile != "":
		return invalid("output file", c.OutputFile,
			"cannot be set when recording is disabled")
	}

	return nil
}

func invalid(field string, value any, reason string) error {
	return fmt.Errorf("%w: %s %v %s", ErrInvalidConfig, field, value, reason)
}
