package pagespace_test

import (
	"github.com/sarchlab/damonsim/mem/pagespace"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Space", func() {
	var s *pagespace.Space

	BeforeEach(func() {
		s = pagespace.New(8)
	})

	It("should start with no page accessed", func() {
		Expect(s.Size()).To(Equal(8))
		Expect(s.Snapshot()).To(Equal(make([]bool, 8)))
	})

	It("should panic on an empty space", func() {
		Expect(func() { pagespace.New(0) }).To(Panic())
	})

	It("should refresh every page in order", func() {
		var visited []int
		s.Refresh(pagespace.ProviderFunc(func(page int) bool {
			visited = append(visited, page)
			return page%2 == 0
		}))

		Expect(visited).To(Equal([]int{0, 1, 2, 3, 4, 5, 6, 7}))
		Expect(s.Snapshot()).To(Equal([]bool{
			true, false, true, false, true, false, true, false,
		}))
	})

	It("should overwrite old flags on refresh", func() {
		s.Refresh(pagespace.ProviderFunc(func(int) bool { return true }))
		s.Refresh(pagespace.ProviderFunc(func(int) bool { return false }))

		count, err := s.AccessedCount(0, 8)

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(0))
	})

	It("should tell if a page is accessed", func() {
		Expect(s.SetAccessed(3, true)).To(Succeed())

		accessed, err := s.IsAccessed(3)
		Expect(err).NotTo(HaveOccurred())
		Expect(accessed).To(BeTrue())

		accessed, err = s.IsAccessed(4)
		Expect(err).NotTo(HaveOccurred())
		Expect(accessed).To(BeFalse())
	})

	It("should reject out of range pages", func() {
		_, err := s.IsAccessed(8)
		Expect(err).To(MatchError(pagespace.ErrOutOfRange))

		_, err = s.IsAccessed(-1)
		Expect(err).To(MatchError(pagespace.ErrOutOfRange))

		Expect(s.SetAccessed(9, true)).To(MatchError(pagespace.ErrOutOfRange))
	})

	It("should count accessed pages in a range", func() {
		s.Refresh(pagespace.NewPatternProvider([]bool{
			true, true, false, true, false, false, true, true,
		}))

		count, err := s.AccessedCount(1, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))

		count, err = s.AccessedCount(4, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(0))
	})

	It("should reject invalid ranges", func() {
		_, err := s.AccessedCount(-1, 3)
		Expect(err).To(MatchError(pagespace.ErrOutOfRange))

		_, err = s.AccessedCount(2, 9)
		Expect(err).To(MatchError(pagespace.ErrOutOfRange))

		_, err = s.AccessedCount(5, 4)
		Expect(err).To(MatchError(pagespace.ErrOutOfRange))
	})
})
