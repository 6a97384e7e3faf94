package region

import (
	"fmt"

	"github.com/sarchlab/damonsim/sim"
)

// Hook positions at which the Adjuster reports partition changes.
var (
	HookPosSplit = &sim.HookPos{Name: "RegionSplit"}
	HookPosMerge = &sim.HookPos{Name: "RegionMerge"}
)

// A SplitEvent records that a region was bisected. The left half keeps the
// original ID.
type SplitEvent struct {
	Original ID
	New      ID
	Start    int
	Mid      int
	End      int
	Count    int
}

func (e SplitEvent) String() string {
	return fmt.Sprintf("Region %d split into Region %d and Region %d",
		e.Original, e.Original, e.New)
}

// A MergeEvent records that a region absorbed its right neighbor. The
// neighbor's ID is retired.
type MergeEvent struct {
	Survivor ID
	Retired  ID
	Start    int
	End      int
}

func (e MergeEvent) String() string {
	return fmt.Sprintf("Region %d and Region %d merged into Region %d",
		e.Survivor, e.Retired, e.Survivor)
}
