package pagespace_test

import (
	"github.com/sarchlab/damonsim/mem/pagespace"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RandomProvider", func() {
	It("should be reproducible with the same seed", func() {
		a := pagespace.NewRandomProvider(42)
		b := pagespace.NewRandomProvider(42)

		for i := 0; i < 1000; i++ {
			Expect(a.Accessed(i)).To(Equal(b.Accessed(i)))
		}

		Expect(a.Seed()).To(Equal(int64(42)))
	})

	It("should be roughly unbiased", func() {
		p := pagespace.NewRandomProvider(7)

		accessed := 0
		for i := 0; i < 10000; i++ {
			if p.Accessed(i) {
				accessed++
			}
		}

		Expect(accessed).To(BeNumerically("~", 5000, 300))
	})
})

var _ = Describe("PatternProvider", func() {
	It("should replay the pattern and treat the tail as idle", func() {
		pattern := []bool{true, false, true}
		p := pagespace.NewPatternProvider(pattern)
		pattern[0] = false

		Expect(p.Accessed(0)).To(BeTrue())
		Expect(p.Accessed(1)).To(BeFalse())
		Expect(p.Accessed(2)).To(BeTrue())
		Expect(p.Accessed(3)).To(BeFalse())
		Expect(p.Accessed(-1)).To(BeFalse())
	})
})

var _ = Describe("ParsePattern", func() {
	It("should parse accessed and idle marks", func() {
		pattern, err := pagespace.ParsePattern("1x#_0.- ")

		Expect(err).NotTo(HaveOccurred())
		Expect(pattern).To(Equal([]bool{true, true, true, false, false, false}))
	})

	It("should reject unknown characters", func() {
		_, err := pagespace.ParsePattern("10a1")

		Expect(err).To(MatchError(ContainSubstring("position 2")))
	})
})
