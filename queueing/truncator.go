package queueing

import "github.com/sarchlab/mm1sim/hooking"

// A Truncator is an admission-control policy that keeps the occupancy of a
// RingBuffer at or below a limit by dropping the oldest elements. It models
// involuntary drop under congestion, so the evicted elements are discarded
// rather than handed back.
type Truncator struct {
	limit int
}

// NewTruncator creates a Truncator with the given occupancy limit. A limit at
// or above the queue's usable capacity makes Enforce a no-op, as does a
// negative limit on an empty queue.
func NewTruncator(limit int) *Truncator {
	return &Truncator{limit: limit}
}

// Limit returns the configured occupancy limit.
func (t *Truncator) Limit() int {
	return t.limit
}

// Enforce evicts head elements from q until its occupancy is at or below the
// limit, returning the number of elements dropped. Each eviction removes the
// head element exactly as Dequeue would. The head slot being empty stops the
// loop early, guarding against an inconsistent queue. Enforce never signals
// overflow or underflow.
func (t *Truncator) Enforce(q *RingBuffer) int {
	evicted := 0
	length := q.Len()

	for length > t.limit && q.slots[q.head] != nil {
		e := q.slots[q.head]
		q.removeHead()
		length--
		evicted++

		if q.NumHooks() > 0 {
			q.InvokeHook(hooking.HookCtx{
				Domain: q,
				Pos:    HookPosQueueEvict,
				Item:   e,
			})
		}
	}

	return evicted
}
