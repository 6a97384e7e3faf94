// Package region maintains the partition of a page space into contiguous
// regions and adapts it to the observed access pattern.
//
// A Partition always tiles the page space: regions are ordered by start,
// adjacent regions share a boundary, the first region starts at page 0, the
// last region ends at the page count, and no region is empty. The Monitor
// refreshes the access count of every region from the page space, and the
// Adjuster then splits hot regions and merges cold ones in one forward pass.
package region

import "fmt"

// ID identifies a region. IDs are never reused within a partition.
type ID uint64

// A Region is the half-open page interval [Start, End).
type Region struct {
	ID          ID
	Start       int
	End         int
	AccessCount int
}

// Size returns the number of pages in the region.
func (r Region) Size() int {
	return r.End - r.Start
}

// Contains tells if the page falls into the region.
func (r Region) Contains(page int) bool {
	return page >= r.Start && page < r.End
}

func (r Region) String() string {
	return fmt.Sprintf("Region %d [%d, %d)", r.ID, r.Start, r.End)
}
