package sim

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SerialEngine", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	mockEvent := func(t VTimeInSec, h Handler, secondary bool) *MockEvent {
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Time().Return(t).AnyTimes()
		evt.EXPECT().Handler().Return(h).AnyTimes()
		evt.EXPECT().IsSecondary().Return(secondary).AnyTimes()

		return evt
	}

	It("should schedule events", func() {
		handler1 := NewMockHandler(mockCtrl)
		handler2 := NewMockHandler(mockCtrl)
		evt1 := mockEvent(4.0, handler1, false)
		evt2 := mockEvent(2.0, handler2, false)
		evt3 := mockEvent(3.0, handler1, false)
		evt4 := mockEvent(5.0, handler1, false)

		handleEvt2 := handler2.EXPECT().Handle(evt2).
			DoAndReturn(func(_ Event) error {
				engine.Schedule(evt3)
				engine.Schedule(evt4)

				return nil
			})
		handleEvt3 := handler1.EXPECT().Handle(evt3).After(handleEvt2)
		handleEvt1 := handler1.EXPECT().Handle(evt1).After(handleEvt3)
		handler1.EXPECT().Handle(evt4).After(handleEvt1)

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		Expect(engine.Run()).To(Succeed())
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(5.0)))
	})

	It("should consider secondary events", func() {
		handler1 := NewMockHandler(mockCtrl)
		handler2 := NewMockHandler(mockCtrl)
		handler3 := NewMockHandler(mockCtrl)
		evt1 := mockEvent(2.0, handler1, true)
		evt2 := mockEvent(2.0, handler2, false)
		evt3 := mockEvent(2.0, handler3, false)

		handleEvt2 := handler2.EXPECT().Handle(evt2)
		handleEvt3 := handler3.EXPECT().Handle(evt3)
		handler1.EXPECT().Handle(evt1).After(handleEvt2).After(handleEvt3)

		engine.Schedule(evt1)
		engine.Schedule(evt2)
		engine.Schedule(evt3)

		Expect(engine.Run()).To(Succeed())
	})

	It("should stop at the first handler error", func() {
		handler := NewMockHandler(mockCtrl)
		evt1 := mockEvent(1.0, handler, false)
		evt2 := mockEvent(2.0, handler, false)

		handler.EXPECT().Handle(evt1).Return(errors.New("boom"))

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		err := engine.Run()

		Expect(err).To(MatchError(ContainSubstring("boom")))
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(1.0)))
	})

	It("should invoke hooks around events", func() {
		handler := NewMockHandler(mockCtrl)
		hook := NewMockHook(mockCtrl)
		evt := mockEvent(1.0, handler, false)
		engine.AcceptHook(hook)

		before := hook.EXPECT().Func(gomock.Any()).Do(func(ctx HookCtx) {
			Expect(ctx.Pos).To(BeIdenticalTo(HookPosBeforeEvent))
			Expect(ctx.Item).To(BeIdenticalTo(evt))
		})
		handle := handler.EXPECT().Handle(evt).After(before)
		hook.EXPECT().Func(gomock.Any()).Do(func(ctx HookCtx) {
			Expect(ctx.Pos).To(BeIdenticalTo(HookPosAfterEvent))
		}).After(handle)

		engine.Schedule(evt)

		Expect(engine.Run()).To(Succeed())
	})

	It("should panic when scheduling into the past", func() {
		handler := NewMockHandler(mockCtrl)
		evt := mockEvent(2.0, handler, false)
		past := mockEvent(1.0, handler, false)

		handler.EXPECT().Handle(evt).DoAndReturn(func(_ Event) error {
			engine.Schedule(past)
			return nil
		})

		engine.Schedule(evt)

		Expect(func() { _ = engine.Run() }).To(Panic())
	})

	It("should pause and continue", func() {
		engine.Pause()
		Expect(engine.IsPaused()).To(BeTrue())

		engine.Pause()
		Expect(engine.IsPaused()).To(BeTrue())

		engine.Continue()
		Expect(engine.IsPaused()).To(BeFalse())
	})

	It("should call simulation end handlers", func() {
		called := VTimeInSec(-1)
		engine.RegisterSimulationEndHandler(endHandlerFunc(func(now VTimeInSec) {
			called = now
		}))

		engine.Finished()

		Expect(called).To(Equal(VTimeInSec(0)))
	})
})

type endHandlerFunc func(now VTimeInSec)

func (f endHandlerFunc) Handle(now VTimeInSec) {
	f(now)
}
