package region

import "fmt"

// An AccessCounter can count the accessed pages in a page range. It is
// satisfied by *pagespace.Space.
type AccessCounter interface {
	Size() int
	AccessedCount(start, end int) (int, error)
}

// A Monitor refreshes the access count of every region.
type Monitor struct{}

// NewMonitor creates a Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// ComputeCounts overwrites the access count of every region with the number
// of accessed pages in its range. Counts are always recomputed from the page
// space, never carried over from an earlier cycle.
func (m *Monitor) ComputeCounts(p *Partition, pages AccessCounter) error {
	if pages.Size() != p.PageCount() {
		return fmt.Errorf(
			"partition covers %d pages but the page space has %d pages",
			p.PageCount(), pages.Size())
	}

	for i := 0; i < p.Len(); i++ {
		r := p.At(i)

		count, err := pages.AccessedCount(r.Start, r.End)
		if err != nil {
			return fmt.Errorf("monitoring region %d: %w", r.ID, err)
		}

		r.AccessCount = count
	}

	return nil
}
