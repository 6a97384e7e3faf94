package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by FromEnv.
const (
	EnvPageCount         = "DAMON_PAGE_COUNT"
	EnvInitialRegionSize = "DAMON_INITIAL_REGION_SIZE"
	EnvAccessThreshold   = "DAMON_ACCESS_THRESHOLD"
	EnvNumCycles         = "DAMON_NUM_CYCLES"
	EnvInterval          = "DAMON_INTERVAL"
	EnvSeed              = "DAMON_SEED"
	EnvRealTime          = "DAMON_REALTIME"
	EnvPattern           = "DAMON_PATTERN"
	EnvRecord            = "DAMON_RECORD"
	EnvOutputFile        = "DAMON_OUTPUT"
	EnvMonitor           = "DAMON_MONITOR"
	EnvMonitorPort       = "DAMON_MONITOR_PORT"
	EnvOpenBrowser       = "DAMON_OPEN_BROWSER"
	EnvVerbose           = "DAMON_VERBOSE"
)

// LoadEnvFile loads variables from the given dotenv files into the process
// environment without overriding variables that are already set. Without
// arguments it loads ".env" and silently skips it when it does not exist.
func LoadEnvFile(filenames ...string) error {
	if len(filenames) == 0 {
		err := godotenv.Load()
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	return godotenv.Load(filenames...)
}

// A LookupFunc returns the value of a variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// FromEnv overrides the base configuration with the DAMON_* variables of the
// process environment.
func FromEnv(base Config) (Config, error) {
	return FromLookup(base, os.LookupEnv)
}

// FromMap overrides the base configuration with the DAMON_* entries of a
// variable map, such as the one returned by godotenv.Read.
func FromMap(base Config, vars map[string]string) (Config, error) {
	return FromLookup(base, func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

// FromLookup overrides the base configuration with the DAMON_* variables
// provided by lookup.
func FromLookup(base Config, lookup LookupFunc) (Config, error) {
	l := loader{lookup: lookup}
	c := base

	l.readInt(EnvPageCount, &c.PageCount)
	l.readInt(EnvInitialRegionSize, &c.InitialRegionSize)
	l.readInt(EnvAccessThreshold, &c.AccessThreshold)
	l.readInt(EnvNumCycles, &c.NumCycles)
	l.readDuration(EnvInterval, &c.Interval)
	l.readInt64(EnvSeed, &c.Seed)
	l.readBool(EnvRealTime, &c.RealTime)
	l.readString(EnvPattern, &c.Pattern)
	l.readBool(EnvRecord, &c.Record)
	l.readString(EnvOutputFile, &c.OutputFile)
	l.readBool(EnvMonitor, &c.Monitor)
	l.readInt(EnvMonitorPort, &c.MonitorPort)
	l.readBool(EnvOpenBrowser, &c.OpenBrowser)
	l.readBool(EnvVerbose, &c.Verbose)

	if l.err != nil {
		return base, l.err
	}

	return c, nil
}

type loader struct {
	lookup LookupFunc
	err    error
}

func (l *loader) get(key string) (string, bool) {
	if l.err != nil {
		return "", false
	}

	return l.lookup(key)
}

func (l *loader) fail(key, value string, err error) {
	l.err = errors.Join(
		invalid(key, strconv.Quote(value), "cannot be parsed"), err)
}

func (l *loader) readString(key string, dst *string) {
	if v, ok := l.get(key); ok {
		*dst = v
	}
}

func (l *loader) readInt(key string, dst *int) {
	v, ok := l.get(key)
	if !ok {
		return
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		l.fail(key, v, err)
		return
	}

	*dst = n
}

func (l *loader) readInt64(key string, dst *int64) {
	v, ok := l.get(key)
	if !ok {
		return
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		l.fail(key, v, err)
		return
	}

	*dst = n
}

func (l *loader) readBool(key string, dst *bool) {
	v, ok := l.get(key)
	if !ok {
		return
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		l.fail(key, v, err)
		return
	}

	*dst = b
}

func (l *loader) readDuration(key string, dst *time.Duration) {
	v, ok := l.get(key)
	if !ok {
		return
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		l.fail(key, v, err)
		return
	}

	*dst = d
}
