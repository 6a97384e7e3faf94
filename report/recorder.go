package report

import (
	"github.com/sarchlab/damonsim/datarecording"
	"github.com/sarchlab/damonsim/mem/damon"
	"github.com/sarchlab/damonsim/mem/region"
	"github.com/sarchlab/damonsim/sim"
)

const (
	snapshotTableName = "region_snapshot"
	eventTableName    = "region_event"
)

type snapshotEntry struct {
	Cycle       int
	RegionID    uint64
	StartPage   int
	EndPage     int
	Size        int
	AccessCount int
}

type eventEntry struct {
	Cycle     int
	Time      float64
	Kind      string
	RegionID  uint64
	OtherID   uint64
	StartPage int
	EndPage   int
}

// RecorderReporter stores the partition of every cycle, and every split and
// merge, into a data recorder.
type RecorderReporter struct {
	recorder datarecording.DataRecorder
	cycle    int
	now      sim.VTimeInSec
}

// NewRecorderReporter creates the region tables and returns a reporter that
// fills them.
func NewRecorderReporter(
	recorder datarecording.DataRecorder,
) *RecorderReporter {
	recorder.CreateTable(snapshotTableName, snapshotEntry{})
	recorder.CreateTable(eventTableName, eventEntry{})

	return &RecorderReporter{recorder: recorder}
}

// Func records the split and merge events.
func (r *RecorderReporter) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case damon.HookPosCycleStart:
		info := ctx.Item.(damon.CycleInfo)
		r.cycle = info.Cycle
		r.now = info.Time
	case region.HookPosSplit:
		e := ctx.Item.(region.SplitEvent)
		r.recorder.InsertData(eventTableName, eventEntry{
			Cycle:     r.cycle,
			Time:      float64(r.now),
			Kind:      "split",
			RegionID:  uint64(e.Original),
			OtherID:   uint64(e.New),
			StartPage: e.Start,
			EndPage:   e.End,
		})
	case region.HookPosMerge:
		e := ctx.Item.(region.MergeEvent)
		r.recorder.InsertData(eventTableName, eventEntry{
			Cycle:     r.cycle,
			Time:      float64(r.now),
			Kind:      "merge",
			RegionID:  uint64(e.Survivor),
			OtherID:   uint64(e.Retired),
			StartPage: e.Start,
			EndPage:   e.End,
		})
	}
}

// Report records one row per region.
func (r *RecorderReporter) Report(cycle int, regions []region.Region) error {
	for _, reg := range regions {
		r.recorder.InsertData(snapshotTableName, snapshotEntry{
			Cycle:       cycle,
			RegionID:    uint64(reg.ID),
			StartPage:   reg.Start,
			EndPage:     reg.End,
			Size:        reg.Size(),
			AccessCount: reg.AccessCount,
		})
	}

	return nil
}
