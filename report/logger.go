package report

import (
	"log"

	"github.com/sarchlab/damonsim/mem/damon"
	"github.com/sarchlab/damonsim/mem/region"
	"github.com/sarchlab/damonsim/sim"
)

// AdjustmentLogger is a hook that logs the cycles and the partition changes
// with their virtual time.
type AdjustmentLogger struct {
	sim.LogHookBase

	now sim.VTimeInSec
}

// NewAdjustmentLogger returns an AdjustmentLogger that writes to the logger.
func NewAdjustmentLogger(logger *log.Logger) *AdjustmentLogger {
	h := new(AdjustmentLogger)
	h.Logger = logger

	return h
}

// Func writes the hook item into the logger.
func (h *AdjustmentLogger) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case damon.HookPosCycleStart:
		info := ctx.Item.(damon.CycleInfo)
		h.now = info.Time
		h.Printf("%.10f, cycle %d/%d started", h.now, info.Cycle, info.NumCycles)
	case damon.HookPosCycleEnd:
		s := ctx.Item.(damon.CycleSummary)
		h.Printf("%.10f, cycle %d ended, %d splits, %d merges, %d regions",
			h.now, s.Cycle, s.Splits, s.Merges, len(s.Regions))
	case region.HookPosSplit, region.HookPosMerge:
		h.Printf("%.10f, %s", h.now, ctx.Item)
	}
}
