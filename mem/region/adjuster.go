package region

import (
	"github.com/sarchlab/damonsim/sim"
)

// AdjustResult summarizes one adjustment pass.
type AdjustResult struct {
	Splits int
	Merges int
}

// An Adjuster splits regions whose access count exceeds the threshold and
// merges regions whose access count does not.
type Adjuster struct {
	sim.HookableBase

	threshold int
}

// NewAdjuster creates an Adjuster with the given access threshold.
func NewAdjuster(threshold int) *Adjuster {
	return &Adjuster{threshold: threshold}
}

// Threshold returns the access threshold.
func (a *Adjuster) Threshold() int {
	return a.threshold
}

// Adjust walks the regions once from left to right. A region with more than
// threshold accessed pages and at least two pages is bisected. Otherwise, a
// region that is not the last one absorbs its right neighbor. The right half
// of a split and a merged-away neighbor are not revisited in the same pass.
//
// Adjust must run right after the Monitor so that the counts are current.
func (a *Adjuster) Adjust(p *Partition) AdjustResult {
	result := AdjustResult{}

	for i := 0; i < p.Len(); i++ {
		r := p.At(i)

		if r.AccessCount > a.threshold && r.Size() > 1 {
			a.split(p, i)
			result.Splits++
			i++

			continue
		}

		if i < p.Len()-1 && r.AccessCount <= a.threshold {
			a.merge(p, i)
			result.Merges++
		}
	}

	return result
}

func (a *Adjuster) split(p *Partition, i int) {
	left := p.At(i)
	mid := (left.Start + left.End) / 2

	right := Region{
		ID:    p.allocateID(),
		Start: mid,
		End:   left.End,
	}

	evt := SplitEvent{
		Original: left.ID,
		New:      right.ID,
		Start:    left.Start,
		Mid:      mid,
		End:      left.End,
		Count:    left.AccessCount,
	}

	left.End = mid
	left.AccessCount = 0
	p.InsertAt(i+1, right)

	a.InvokeHook(sim.HookCtx{
		Domain: a,
		Pos:    HookPosSplit,
		Item:   evt,
	})
}

func (a *Adjuster) merge(p *Partition, i int) {
	neighbor := p.RemoveAt(i + 1)
	survivor := p.At(i)

	survivor.End = neighbor.End
	survivor.AccessCount += neighbor.AccessCount

	a.InvokeHook(sim.HookCtx{
		Domain: a,
		Pos:    HookPosMerge,
		Item: MergeEvent{
			Survivor: survivor.ID,
			Retired:  neighbor.ID,
			Start:    survivor.Start,
			End:      survivor.End,
		},
	})
}
