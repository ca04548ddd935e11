package queueing

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mm1sim/hooking"
)

// recordingHook keeps every hook invocation for inspection.
type recordingHook struct {
	entries []hooking.HookCtx
}

func (h *recordingHook) Func(ctx hooking.HookCtx) {
	h.entries = append(h.entries, ctx)
}

var _ = Describe("Truncator", func() {
	var q *RingBuffer

	BeforeEach(func() {
		q = NewRingBuffer("Queue", 8)
	})

	fill := func(n int) {
		for i := 0; i < n; i++ {
			Expect(q.Enqueue(fmt.Sprintf("elem-%d", i))).To(Succeed())
		}
	}

	It("should evict down to the limit", func() {
		fill(6)

		evicted := NewTruncator(2).Enforce(q)

		Expect(evicted).To(Equal(4))
		Expect(q.Len()).To(Equal(2))
	})

	It("should evict the oldest elements first", func() {
		fill(5)

		NewTruncator(2).Enforce(q)

		Expect(q.Dequeue()).To(Equal("elem-3"))
		Expect(q.Dequeue()).To(Equal("elem-4"))
		Expect(q.Dequeue()).To(BeNil())
	})

	It("should do nothing when occupancy is at or below the limit", func() {
		fill(2)

		Expect(NewTruncator(2).Enforce(q)).To(Equal(0))
		Expect(q.Len()).To(Equal(2))

		Expect(NewTruncator(5).Enforce(q)).To(Equal(0))
		Expect(q.Len()).To(Equal(2))
	})

	It("should do nothing on an empty queue", func() {
		Expect(NewTruncator(0).Enforce(q)).To(Equal(0))
		Expect(q.Len()).To(Equal(0))
	})

	It("should empty the queue with limit 0", func() {
		fill(4)

		Expect(NewTruncator(0).Enforce(q)).To(Equal(4))
		Expect(q.Len()).To(Equal(0))
		Expect(q.Dequeue()).To(BeNil())
	})

	It("should stop at empty even with a negative limit", func() {
		fill(3)

		Expect(NewTruncator(-1).Enforce(q)).To(Equal(3))
		Expect(q.Len()).To(Equal(0))
	})

	It("should keep the queue usable after truncation", func() {
		fill(6)
		NewTruncator(1).Enforce(q)

		Expect(q.Enqueue("fresh")).To(Succeed())
		Expect(q.Dequeue()).To(Equal("elem-5"))
		Expect(q.Dequeue()).To(Equal("fresh"))
	})

	It("should leave head and tail consistent after evicting all", func() {
		fill(4)
		NewTruncator(0).Enforce(q)

		// A fully truncated queue behaves like a fresh one.
		for i := 0; i < 7; i++ {
			Expect(q.Enqueue(i)).To(Succeed())
		}
		Expect(q.Enqueue(7)).To(MatchError(ErrOverflow))
	})

	It("should work across the wrap-around boundary", func() {
		// Move head and tail close to the end of the array first.
		for i := 0; i < 6; i++ {
			Expect(q.Enqueue(i)).To(Succeed())
			Expect(q.Dequeue()).To(Equal(i))
		}

		fill(7)

		Expect(NewTruncator(3).Enforce(q)).To(Equal(4))
		Expect(q.Len()).To(Equal(3))
		Expect(q.Dequeue()).To(Equal("elem-4"))
	})

	It("should invoke the evict hook per dropped element", func() {
		fill(5)

		hook := &recordingHook{}
		q.AcceptHook(hook)

		NewTruncator(2).Enforce(q)

		Expect(hook.entries).To(HaveLen(3))
		for i, entry := range hook.entries {
			Expect(entry.Pos).To(BeIdenticalTo(HookPosQueueEvict))
			Expect(entry.Item).To(Equal(fmt.Sprintf("elem-%d", i)))
		}
	})

	It("should expose its limit", func() {
		Expect(NewTruncator(2).Limit()).To(Equal(2))
	})
})
