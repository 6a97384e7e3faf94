package report

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/damonsim/mem/damon"
	"github.com/sarchlab/damonsim/mem/region"
	"github.com/sarchlab/damonsim/sim"
)

var _ = Describe("RecorderReporter", func() {
	var (
		mockCtrl *gomock.Controller
		recorder *MockDataRecorder
		reporter *RecorderReporter
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		recorder = NewMockDataRecorder(mockCtrl)

		recorder.EXPECT().CreateTable("region_snapshot", snapshotEntry{})
		recorder.EXPECT().CreateTable("region_event", eventEntry{})

		reporter = NewRecorderReporter(recorder)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should record every region", func() {
		recorder.EXPECT().InsertData("region_snapshot", snapshotEntry{
			Cycle: 2, RegionID: 0, StartPage: 0, EndPage: 4, Size: 4,
			AccessCount: 1,
		})
		recorder.EXPECT().InsertData("region_snapshot", snapshotEntry{
			Cycle: 2, RegionID: 7, StartPage: 4, EndPage: 10, Size: 6,
		})

		err := reporter.Report(2, []region.Region{
			{ID: 0, Start: 0, End: 4, AccessCount: 1},
			{ID: 7, Start: 4, End: 10},
		})

		Expect(err).NotTo(HaveOccurred())
	})

	It("should record the events with the cycle they happen in", func() {
		reporter.Func(sim.HookCtx{
			Pos:  damon.HookPosCycleStart,
			Item: damon.CycleInfo{Cycle: 4, Time: 3},
		})

		recorder.EXPECT().InsertData("region_event", eventEntry{
			Cycle: 4, Time: 3, Kind: "split", RegionID: 0, OtherID: 10,
			StartPage: 0, EndPage: 10,
		})
		recorder.EXPECT().InsertData("region_event", eventEntry{
			Cycle: 4, Time: 3, Kind: "merge", RegionID: 1, OtherID: 2,
			StartPage: 10, EndPage: 30,
		})

		reporter.Func(sim.HookCtx{
			Pos: region.HookPosSplit,
			Item: region.SplitEvent{
				Original: 0, New: 10, Start: 0, Mid: 5, End: 10, Count: 7,
			},
		})
		reporter.Func(sim.HookCtx{
			Pos: region.HookPosMerge,
			Item: region.MergeEvent{
				Survivor: 1, Retired: 2, Start: 10, End: 30,
			},
		})
	})
})
