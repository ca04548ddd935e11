package queueing

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RingBuffer", func() {
	var q *RingBuffer

	BeforeEach(func() {
		q = NewRingBuffer("Queue", 3)
	})

	It("should reject capacities that cannot hold any element", func() {
		Expect(func() { NewRingBuffer("Queue", 1) }).To(Panic())
		Expect(func() { NewRingBuffer("Queue", 0) }).To(Panic())
		Expect(func() { NewRingBuffer("Queue", -4) }).To(Panic())
	})

	It("should reject invalid names", func() {
		Expect(func() { NewRingBuffer("bad_name", 3) }).To(Panic())
		Expect(func() { NewRingBuffer("", 3) }).To(Panic())
	})

	It("should reject nil elements", func() {
		Expect(func() { q.Enqueue(nil) }).To(Panic())
	})

	Context("when newly created", func() {
		It("should have the given name and capacity", func() {
			Expect(q.Name()).To(Equal("Queue"))
			Expect(q.Capacity()).To(Equal(3))
		})

		It("should be empty", func() {
			Expect(q.Len()).To(Equal(0))
			Expect(q.OccupancyMask()).To(Equal([]bool{false, false, false}))
		})
	})

	It("should signal empty with nil and stay unchanged", func() {
		for i := 0; i < 3; i++ {
			Expect(q.Dequeue()).To(BeNil())
			Expect(q.Len()).To(Equal(0))
			Expect(q.OccupancyMask()).To(
				Equal([]bool{false, false, false}))
		}
	})

	It("should hold at most capacity-1 elements", func() {
		Expect(q.Enqueue("ab")).To(Succeed())
		Expect(q.Enqueue("cd")).To(Succeed())
		Expect(q.Enqueue("ef")).To(MatchError(ErrOverflow))
	})

	It("should count the overflowing element as written", func() {
		Expect(q.Enqueue("ab")).To(Succeed())
		Expect(q.Enqueue("cd")).To(Succeed())
		Expect(q.Enqueue("ef")).To(MatchError(ErrOverflow))

		Expect(q.Len()).To(Equal(3))
		Expect(q.OccupancyMask()).To(Equal([]bool{true, true, true}))
	})

	It("should dequeue in FIFO order", func() {
		Expect(q.Enqueue("ab")).To(Succeed())
		Expect(q.Enqueue("cd")).To(Succeed())

		Expect(q.Dequeue()).To(Equal("ab"))
		Expect(q.Dequeue()).To(Equal("cd"))
		Expect(q.Dequeue()).To(BeNil())
	})

	It("should survive the capacity-3 round trip", func() {
		Expect(q.Dequeue()).To(BeNil())

		Expect(q.Enqueue("ab")).To(Succeed())
		Expect(q.Len()).To(Equal(1))

		Expect(q.Enqueue("cd")).To(Succeed())
		Expect(q.Len()).To(Equal(2))

		Expect(q.Dequeue()).To(Equal("ab"))
		Expect(q.Len()).To(Equal(1))

		Expect(q.Enqueue("ef")).To(Succeed())

		Expect(q.Dequeue()).To(Equal("cd"))
		Expect(q.Dequeue()).To(Equal("ef"))
		Expect(q.Dequeue()).To(BeNil())
	})

	It("should keep FIFO order and the bound across wrap-around", func() {
		wrapped := NewRingBuffer("Queue", 4)

		// Enough push/pop pairs to take the indices past the capacity
		// more than twice.
		for i := 0; i < 10; i++ {
			e := fmt.Sprintf("elem-%d", i)
			Expect(wrapped.Enqueue(e)).To(Succeed())
			Expect(wrapped.Dequeue()).To(Equal(e))
		}

		Expect(wrapped.Enqueue("x")).To(Succeed())
		Expect(wrapped.Enqueue("y")).To(Succeed())
		Expect(wrapped.Enqueue("z")).To(Succeed())
		Expect(wrapped.Enqueue("w")).To(MatchError(ErrOverflow))

		Expect(wrapped.Dequeue()).To(Equal("x"))
		Expect(wrapped.Dequeue()).To(Equal("y"))
		Expect(wrapped.Dequeue()).To(Equal("z"))
	})

	It("should overflow on the 20th enqueue at capacity 20", func() {
		wide := NewRingBuffer("Queue", 20)

		for i := 0; i < 19; i++ {
			Expect(wide.Enqueue("ab")).To(Succeed())
		}
		Expect(wide.Len()).To(Equal(19))

		Expect(wide.Enqueue("ab")).To(MatchError(ErrOverflow))
	})

	It("should invoke push and pop hooks", func() {
		hook := &recordingHook{}
		q.AcceptHook(hook)

		Expect(q.Enqueue("ab")).To(Succeed())
		Expect(q.Dequeue()).To(Equal("ab"))

		Expect(hook.entries).To(HaveLen(2))
		Expect(hook.entries[0].Pos).To(BeIdenticalTo(HookPosQueuePush))
		Expect(hook.entries[0].Item).To(Equal("ab"))
		Expect(hook.entries[1].Pos).To(BeIdenticalTo(HookPosQueuePop))
		Expect(hook.entries[1].Item).To(Equal("ab"))
	})
})
