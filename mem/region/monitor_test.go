package region_test

import (
	"errors"

	"github.com/sarchlab/damonsim/mem/pagespace"
	"github.com/sarchlab/damonsim/mem/region"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Monitor", func() {
	var (
		mockCtrl *gomock.Controller
		monitor  *region.Monitor
		space    *pagespace.Space
		p        *region.Partition
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		monitor = region.NewMonitor()
		space = pagespace.New(20)
		p = region.NewPartition(20, 5)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should count accessed pages per region", func() {
		space.Refresh(pagespace.ProviderFunc(func(page int) bool {
			return page < 3 || page == 12 || page >= 18
		}))

		Expect(monitor.ComputeCounts(p, space)).To(Succeed())

		counts := []int{}
		for _, r := range p.Regions() {
			counts = append(counts, r.AccessCount)
		}
		Expect(counts).To(Equal([]int{3, 0, 1, 2}))
	})

	It("should give identical counts when run twice", func() {
		space.Refresh(pagespace.NewRandomProvider(3))

		Expect(monitor.ComputeCounts(p, space)).To(Succeed())
		first := p.Regions()

		Expect(monitor.ComputeCounts(p, space)).To(Succeed())
		Expect(p.Regions()).To(Equal(first))
	})

	It("should overwrite stale counts", func() {
		p.At(1).AccessCount = 5

		Expect(monitor.ComputeCounts(p, space)).To(Succeed())

		Expect(p.At(1).AccessCount).To(Equal(0))
	})

	It("should match the page space for every region", func() {
		space.Refresh(pagespace.NewRandomProvider(11))

		Expect(monitor.ComputeCounts(p, space)).To(Succeed())

		for _, r := range p.Regions() {
			expected := 0
			for page := r.Start; page < r.End; page++ {
				accessed, err := space.IsAccessed(page)
				Expect(err).NotTo(HaveOccurred())
				if accessed {
					expected++
				}
			}
			Expect(r.AccessCount).To(Equal(expected))
		}
	})

	It("should reject a page space of a different size", func() {
		err := monitor.ComputeCounts(p, pagespace.New(21))

		Expect(err).To(HaveOccurred())
	})

	It("should report out of range errors from the page space", func() {
		pages := NewMockAccessCounter(mockCtrl)
		pages.EXPECT().Size().Return(20)
		pages.EXPECT().AccessedCount(0, 5).Return(1, nil)
		pages.EXPECT().AccessedCount(5, 10).
			Return(0, pagespace.ErrOutOfRange)

		err := monitor.ComputeCounts(p, pages)

		Expect(errors.Is(err, pagespace.ErrOutOfRange)).To(BeTrue())
		Expect(p.At(0).AccessCount).To(Equal(1))
	})
})
