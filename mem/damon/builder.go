package damon

import (
	"log"
	"time"

	"github.com/sarchlab/damonsim/config"
	"github.com/sarchlab/damonsim/mem/pagespace"
	"github.com/sarchlab/damonsim/mem/region"
	"github.com/sarchlab/damonsim/sim"
)

// A Builder can build the cycle driver.
type Builder struct {
	engine            sim.Engine
	pageCount         int
	initialRegionSize int
	accessThreshold   int
	numCycles         int
	interval          time.Duration
	realTime          bool
	provider          pagespace.AccessProvider
	reporters         []CycleReporter
}

// MakeBuilder creates a builder with the reference setting: 100 pages in
// regions of 10 pages, threshold 5, 10 cycles one second apart.
func MakeBuilder() Builder {
	return Builder{
		pageCount:         100,
		initialRegionSize: 10,
		accessThreshold:   5,
		numCycles:         10,
		interval:          time.Second,
	}
}

// WithEngine sets the engine that drives the cycles.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithPageCount sets the number of pages in the page space.
func (b Builder) WithPageCount(n int) Builder {
	b.pageCount = n
	return b
}

// WithInitialRegionSize sets the number of pages of each initial region.
func (b Builder) WithInitialRegionSize(n int) Builder {
	b.initialRegionSize = n
	return b
}

// WithAccessThreshold sets the split/merge threshold.
func (b Builder) WithAccessThreshold(n int) Builder {
	b.accessThreshold = n
	return b
}

// WithNumCycles sets the number of cycles to run.
func (b Builder) WithNumCycles(n int) Builder {
	b.numCycles = n
	return b
}

// WithInterval sets the time between two cycles. The driver ticks once per
// interval of virtual time.
func (b Builder) WithInterval(interval time.Duration) Builder {
	b.interval = interval
	return b
}

// WithRealTimePacing makes the driver also wait the interval in wall-clock
// time between cycles.
func (b Builder) WithRealTimePacing(realTime bool) Builder {
	b.realTime = realTime
	return b
}

// WithAccessProvider sets where the access flags come from. By default, the
// flags are random with a time-based seed.
func (b Builder) WithAccessProvider(p pagespace.AccessProvider) Builder {
	b.provider = p
	return b
}

// WithReporter adds a reporter.
func (b Builder) WithReporter(r CycleReporter) Builder {
	b.reporters = append(append([]CycleReporter(nil), b.reporters...), r)
	return b
}

// WithConfig copies the sizing and pacing options of a configuration.
func (b Builder) WithConfig(c config.Config) Builder {
	b.pageCount = c.PageCount
	b.initialRegionSize = c.InitialRegionSize
	b.accessThreshold = c.AccessThreshold
	b.numCycles = c.NumCycles
	b.interval = c.Interval
	b.realTime = c.RealTime

	return b
}

// Build creates the driver. The first cycle is scheduled by Start.
func (b Builder) Build(name string) *Comp {
	b.parametersMustBeValid()

	c := &Comp{
		pages:     pagespace.New(b.pageCount),
		partition: region.NewPartition(b.pageCount, b.initialRegionSize),
		monitor:   region.NewMonitor(),
		adjuster:  region.NewAdjuster(b.accessThreshold),
		provider:  b.provider,
		reporters: append([]CycleReporter(nil), b.reporters...),
		numCycles: b.numCycles,
		interval:  b.interval,
		realTime:  b.realTime,
		sleep:     time.Sleep,
	}

	if c.provider == nil {
		c.provider = pagespace.NewTimeSeededProvider()
	}

	c.TickingComponent = sim.NewTickingComponent(
		name, b.engine, sim.FreqFromInterval(b.interval), c)

	c.adjuster.AcceptHook(sim.HookFunc(c.traceAdjustment))

	return c
}

func (b Builder) parametersMustBeValid() {
	if b.engine == nil {
		log.Panic("engine is not set")
	}

	if b.pageCount <= 0 {
		log.Panicf("page count must be positive, got %d", b.pageCount)
	}

	if b.initialRegionSize <= 0 {
		log.Panicf("initial region size must be positive, got %d",
			b.initialRegionSize)
	}

	if b.accessThreshold < 0 {
		log.Panicf("access threshold must not be negative, got %d",
			b.accessThreshold)
	}

	if b.numCycles < 0 {
		log.Panicf("number of cycles must not be negative, got %d",
			b.numCycles)
	}
}
