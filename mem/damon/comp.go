// Package damon drives the adaptive region monitoring cycles.
package damon

import (
	"fmt"
	"log"
	"time"

	"github.com/sarchlab/damonsim/mem/pagespace"
	"github.com/sarchlab/damonsim/mem/region"
	"github.com/sarchlab/damonsim/sim"
	"github.com/sarchlab/damonsim/tracing"
)

// A CycleReporter consumes the partition once per cycle, after adjustment.
type CycleReporter interface {
	Report(cycle int, regions []region.Region) error
}

// Comp is the cycle driver. Every tick it refreshes the access flags,
// recounts the regions, adjusts the partition and reports it.
type Comp struct {
	*sim.TickingComponent

	pages     *pagespace.Space
	partition *region.Partition
	monitor   *region.Monitor
	adjuster  *region.Adjuster
	provider  pagespace.AccessProvider
	reporters []CycleReporter

	numCycles int
	cycle     int
	interval  time.Duration
	realTime  bool
	sleep     func(time.Duration)

	taskID string
	err    error
}

// AcceptHook registers a hook on the driver and on its adjuster, so that a
// single hook observes both cycle and split/merge events.
func (c *Comp) AcceptHook(hook sim.Hook) {
	c.TickingComponent.AcceptHook(hook)
	c.adjuster.AcceptHook(hook)
}

// AddReporter appends a reporter that is called at the end of every cycle.
func (c *Comp) AddReporter(r CycleReporter) {
	c.Lock()
	defer c.Unlock()

	c.reporters = append(c.reporters, r)
}

// Start schedules the first cycle at the current time.
func (c *Comp) Start() {
	if c.numCycles == 0 {
		return
	}

	c.TickNow()
}

// Tick runs one monitoring cycle.
func (c *Comp) Tick() bool {
	c.Lock()

	if c.err != nil || c.cycle >= c.numCycles {
		c.Unlock()
		return false
	}

	c.cycle++
	c.runCycle()

	more := c.err == nil && c.cycle < c.numCycles

	c.Unlock()

	if more && c.realTime {
		c.sleep(c.interval)
	}

	return more
}

func (c *Comp) runCycle() {
	info := CycleInfo{
		Cycle:     c.cycle,
		NumCycles: c.numCycles,
		Time:      c.CurrentTime(),
	}

	c.taskID = sim.GetIDGenerator().Generate()
	tracing.StartTask(c.taskID, "", c, "cycle",
		fmt.Sprintf("cycle %d", c.cycle), info)

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosCycleStart,
		Item:   info,
	})

	c.pages.Refresh(c.provider)

	err := c.monitor.ComputeCounts(c.partition, c.pages)
	if err != nil {
		log.Panicf("cycle %d: %v", c.cycle, err)
	}

	result := c.adjuster.Adjust(c.partition)

	err = c.partition.Validate()
	if err != nil {
		log.Panicf("cycle %d: %v", c.cycle, err)
	}

	regions := c.partition.Regions()

	for _, r := range c.reporters {
		err = r.Report(c.cycle, regions)
		if err != nil {
			c.err = fmt.Errorf("cycle %d: reporting: %w", c.cycle, err)
			break
		}
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosCycleEnd,
		Item: CycleSummary{
			CycleInfo: info,
			Splits:    result.Splits,
			Merges:    result.Merges,
			Regions:   regions,
		},
	})

	tracing.EndTask(c.taskID, c)
}

// traceAdjustment marks the split and merge steps of the running cycle.
func (c *Comp) traceAdjustment(ctx sim.HookCtx) {
	switch ctx.Pos {
	case region.HookPosSplit:
		tracing.AddTaskStep(c.taskID, c, "split")
	case region.HookPosMerge:
		tracing.AddTaskStep(c.taskID, c, "merge")
	}
}

// Err returns the error that stopped the cycles early, if any.
func (c *Comp) Err() error {
	c.Lock()
	defer c.Unlock()

	return c.err
}

// Cycle returns the number of cycles completed.
func (c *Comp) Cycle() int {
	c.Lock()
	defer c.Unlock()

	return c.cycle
}

// NumCycles returns the number of cycles the driver runs.
func (c *Comp) NumCycles() int {
	return c.numCycles
}

// Regions returns a snapshot of the current partition.
func (c *Comp) Regions() []region.Region {
	c.Lock()
	defer c.Unlock()

	return c.partition.Regions()
}

// AccessedPages returns a snapshot of the access flags of the last cycle.
func (c *Comp) AccessedPages() []bool {
	c.Lock()
	defer c.Unlock()

	return c.pages.Snapshot()
}

// Threshold returns the access threshold of the adjuster.
func (c *Comp) Threshold() int {
	return c.adjuster.Threshold()
}
