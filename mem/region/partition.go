package region

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sort"
)

// ErrBrokenPartition is returned when the regions do not tile the page space.
var ErrBrokenPartition = errors.New("regions do not tile the page space")

// A Partition is the ordered sequence of regions that covers a page space.
// It also owns the region ID counter, so IDs are unique per partition.
type Partition struct {
	regions   []Region
	pageCount int
	nextID    ID
}

// NewPartition splits pageCount pages into regions of initialRegionSize
// pages. When the page count is not a multiple of the region size, the last
// region absorbs the remaining pages. A region size no smaller than the page
// count yields a single region. Region IDs start from 0.
func NewPartition(pageCount, initialRegionSize int) *Partition {
	if pageCount <= 0 {
		log.Panicf("page count must be positive, got %d", pageCount)
	}

	if initialRegionSize <= 0 {
		log.Panicf("initial region size must be positive, got %d",
			initialRegionSize)
	}

	numRegions := max(pageCount/initialRegionSize, 1)

	p := &Partition{
		regions:   make([]Region, 0, numRegions),
		pageCount: pageCount,
	}

	for i := 0; i < numRegions; i++ {
		r := Region{
			ID:    p.allocateID(),
			Start: i * initialRegionSize,
			End:   (i + 1) * initialRegionSize,
		}
		if i == numRegions-1 {
			r.End = pageCount
		}

		p.regions = append(p.regions, r)
	}

	return p
}

// NewPartitionFromRegions builds a partition from explicit regions. The
// regions must tile [0, pageCount) and carry distinct IDs. New IDs continue
// after the largest given ID.
func NewPartitionFromRegions(pageCount int, regions []Region) (*Partition, error) {
	p := &Partition{
		regions:   slices.Clone(regions),
		pageCount: pageCount,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[ID]bool, len(regions))
	for _, r := range regions {
		if seen[r.ID] {
			return nil, fmt.Errorf("%w: duplicated region id %d",
				ErrBrokenPartition, r.ID)
		}

		seen[r.ID] = true
		p.nextID = max(p.nextID, r.ID+1)
	}

	return p, nil
}

// Len returns the number of regions.
func (p *Partition) Len() int {
	return len(p.regions)
}

// PageCount returns the number of pages covered.
func (p *Partition) PageCount() int {
	return p.pageCount
}

// NextID returns the ID that the next created region will receive.
func (p *Partition) NextID() ID {
	return p.nextID
}

// At returns the i-th region for in-place updates. The pointer is only valid
// until the next InsertAt or RemoveAt.
func (p *Partition) At(i int) *Region {
	return &p.regions[i]
}

// Regions returns a copy of the regions in order.
func (p *Partition) Regions() []Region {
	return slices.Clone(p.regions)
}

// InsertAt inserts the region at index i, shifting later regions right.
func (p *Partition) InsertAt(i int, r Region) {
	p.regions = slices.Insert(p.regions, i, r)
}

// RemoveAt removes and returns the i-th region, shifting later regions left.
func (p *Partition) RemoveAt(i int) Region {
	r := p.regions[i]
	p.regions = slices.Delete(p.regions, i, i+1)

	return r
}

// Find returns the index of the region that contains the page.
func (p *Partition) Find(page int) (int, bool) {
	if page < 0 || page >= p.pageCount {
		return 0, false
	}

	i := sort.Search(len(p.regions), func(i int) bool {
		return p.regions[i].End > page
	})

	if i == len(p.regions) || !p.regions[i].Contains(page) {
		return 0, false
	}

	return i, true
}

// Validate checks that the regions tile the page space.
func (p *Partition) Validate() error {
	if len(p.regions) == 0 {
		return fmt.Errorf("%w: no region", ErrBrokenPartition)
	}

	expectedStart := 0
	for i, r := range p.regions {
		if r.Start != expectedStart {
			return fmt.Errorf("%w: region %d at index %d starts at %d, want %d",
				ErrBrokenPartition, r.ID, i, r.Start, expectedStart)
		}

		if r.Size() < 1 {
			return fmt.Errorf("%w: region %d at index %d has size %d",
				ErrBrokenPartition, r.ID, i, r.Size())
		}

		if r.AccessCount < 0 || r.AccessCount > r.Size() {
			return fmt.Errorf("%w: region %d has access count %d out of [0, %d]",
				ErrBrokenPartition, r.ID, r.AccessCount, r.Size())
		}

		expectedStart = r.End
	}

	if expectedStart != p.pageCount {
		return fmt.Errorf("%w: last region ends at %d, want %d",
			ErrBrokenPartition, expectedStart, p.pageCount)
	}

	return nil
}

func (p *Partition) allocateID() ID {
	id := p.nextID
	p.nextID++

	return id
}
