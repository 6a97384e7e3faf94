package damon

import (
	"github.com/sarchlab/damonsim/mem/region"
	"github.com/sarchlab/damonsim/sim"
)

// Hook positions at which the driver reports the progress of the cycles.
var (
	HookPosCycleStart = &sim.HookPos{Name: "CycleStart"}
	HookPosCycleEnd   = &sim.HookPos{Name: "CycleEnd"}
)

// CycleInfo is the hook item at the start of a cycle. Cycle counts from 1.
type CycleInfo struct {
	Cycle     int
	NumCycles int
	Time      sim.VTimeInSec
}

// CycleSummary is the hook item at the end of a cycle.
type CycleSummary struct {
	CycleInfo

	Splits  int
	Merges  int
	Regions []region.Region
}
