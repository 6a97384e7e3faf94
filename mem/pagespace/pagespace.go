// Package pagespace provides the simulated page space. Every page carries a
// recently-accessed flag that an AccessProvider overwrites once per
// monitoring cycle.
package pagespace

import (
	"errors"
	"fmt"
	"log"
)

// ErrOutOfRange is returned when a page index or a page range falls outside
// of the page space.
var ErrOutOfRange = errors.New("page index out of range")

// A Page is the smallest tracked unit of the simulated memory.
type Page struct {
	ID       int
	Accessed bool
}

// A Space is a fixed-size ordered sequence of pages.
type Space struct {
	pages []Page
}

// New creates a page space with n pages, none of them accessed.
func New(n int) *Space {
	if n <= 0 {
		log.Panicf("page space must have at least one page, got %d", n)
	}

	s := &Space{pages: make([]Page, n)}
	for i := range s.pages {
		s.pages[i].ID = i
	}

	return s
}

// Size returns the number of pages.
func (s *Space) Size() int {
	return len(s.pages)
}

// Refresh overwrites the accessed flag of every page, in page order, with the
// signal from the provider.
func (s *Space) Refresh(provider AccessProvider) {
	for i := range s.pages {
		s.pages[i].Accessed = provider.Accessed(i)
	}
}

// IsAccessed tells if the page at the index has been accessed in the current
// cycle.
func (s *Space) IsAccessed(index int) (bool, error) {
	if err := s.indexMustBeInRange(index); err != nil {
		return false, err
	}

	return s.pages[index].Accessed, nil
}

// SetAccessed overwrites the flag of a single page.
func (s *Space) SetAccessed(index int, accessed bool) error {
	if err := s.indexMustBeInRange(index); err != nil {
		return err
	}

	s.pages[index].Accessed = accessed

	return nil
}

// AccessedCount returns the number of accessed pages in [start, end).
func (s *Space) AccessedCount(start, end int) (int, error) {
	if start < 0 || end > len(s.pages) || start > end {
		return 0, fmt.Errorf("%w: range [%d, %d) in a space of %d pages",
			ErrOutOfRange, start, end, len(s.pages))
	}

	count := 0
	for _, p := range s.pages[start:end] {
		if p.Accessed {
			count++
		}
	}

	return count, nil
}

// Snapshot returns a copy of the accessed flags.
func (s *Space) Snapshot() []bool {
	flags := make([]bool, len(s.pages))
	for i, p := range s.pages {
		flags[i] = p.Accessed
	}

	return flags
}

func (s *Space) indexMustBeInRange(index int) error {
	if index < 0 || index >= len(s.pages) {
		return fmt.Errorf("%w: page %d in a space of %d pages",
			ErrOutOfRange, index, len(s.pages))
	}

	return nil
}
