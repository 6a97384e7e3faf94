package pagespace

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// An AccessProvider tells whether a page was accessed in the current cycle.
// A Space calls it once per page per cycle, in ascending page order.
type AccessProvider interface {
	Accessed(page int) bool
}

// ProviderFunc turns a function into an AccessProvider.
type ProviderFunc func(page int) bool

// Accessed calls f.
func (f ProviderFunc) Accessed(page int) bool {
	return f(page)
}

// RandomProvider marks each page as accessed with probability one half.
type RandomProvider struct {
	lock sync.Mutex
	rand *rand.Rand
	seed int64
}

// NewRandomProvider creates a RandomProvider with a fixed seed, so that runs
// can be reproduced.
func NewRandomProvider(seed int64) *RandomProvider {
	return &RandomProvider{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewTimeSeededProvider creates a RandomProvider seeded from the wall clock.
func NewTimeSeededProvider() *RandomProvider {
	return NewRandomProvider(time.Now().UnixNano())
}

// Seed returns the seed the provider started from.
func (p *RandomProvider) Seed() int64 {
	return p.seed
}

// Accessed returns an unbiased random boolean.
func (p *RandomProvider) Accessed(_ int) bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.rand.Intn(2) == 1
}

// PatternProvider replays the same access pattern every cycle. Pages beyond
// the end of the pattern are never accessed.
type PatternProvider struct {
	pattern []bool
}

// NewPatternProvider creates a PatternProvider. The pattern is copied.
func NewPatternProvider(pattern []bool) *PatternProvider {
	return &PatternProvider{pattern: append([]bool(nil), pattern...)}
}

// Accessed returns the flag stored for the page.
func (p *PatternProvider) Accessed(page int) bool {
	if page < 0 || page >= len(p.pattern) {
		return false
	}

	return p.pattern[page]
}

// ParsePattern parses a textual access pattern. '1', 'x' and '#' mark an
// accessed page, '0', '.' and '-' mark an idle page. Spaces and underscores
// are ignored so that long patterns can be grouped.
func ParsePattern(s string) ([]bool, error) {
	pattern := make([]bool, 0, len(s))

	for i, c := range s {
		switch c {
		case '1', 'x', 'X', '#':
			pattern = append(pattern, true)
		case '0', '.', '-':
			pattern = append(pattern, false)
		case ' ', '_':
		default:
			return nil, fmt.Errorf(
				"invalid character %q at position %d in access pattern %q",
				c, i, strings.TrimSpace(s))
		}
	}

	return pattern, nil
}
