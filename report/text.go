// Package report renders the region partition and its changes.
package report

import (
	"fmt"
	"io"

	"github.com/sarchlab/damonsim/mem/damon"
	"github.com/sarchlab/damonsim/mem/region"
	"github.com/sarchlab/damonsim/sim"
)

// TextReporter writes a line-oriented console report. As a hook, it prints
// the cycle header and the split and merge lines as they happen. As a
// reporter, it prints one line per region and a blank separator line.
type TextReporter struct {
	w   io.Writer
	err error
}

// NewTextReporter creates a TextReporter that writes to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Func prints the cycle header and the adjustment events.
func (r *TextReporter) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case damon.HookPosCycleStart:
		info := ctx.Item.(damon.CycleInfo)
		r.printf("Monitoring Cycle %d:\n", info.Cycle)
	case region.HookPosSplit, region.HookPosMerge:
		r.printf("%s\n", ctx.Item)
	}
}

// Report prints the partition. It also returns the first error that a
// previous hook write ran into.
func (r *TextReporter) Report(_ int, regions []region.Region) error {
	r.printf("Region Monitoring Results:\n")

	for _, reg := range regions {
		r.printf("Region %d: Start=%d, End=%d, Size=%d, Accessed Pages=%d/%d\n",
			reg.ID, reg.Start, reg.End, reg.Size(), reg.AccessCount, reg.Size())
	}

	r.printf("\n")

	err := r.err
	r.err = nil

	return err
}

func (r *TextReporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}

	_, r.err = fmt.Fprintf(r.w, format, args...)
}
