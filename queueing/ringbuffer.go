// Package queueing provides the bounded FIFO queue and the admission-control
// policy that the simulation harness drives.
package queueing

import (
	"errors"
	"log"

	"github.com/sarchlab/mm1sim/hooking"
)

// HookPosQueuePush marks when an element is enqueued.
var HookPosQueuePush = &hooking.HookPos{Name: "Queue Push"}

// HookPosQueuePop marks when an element is dequeued.
var HookPosQueuePop = &hooking.HookPos{Name: "Queue Pop"}

// HookPosQueueEvict marks when an element is dropped by a Truncator.
var HookPosQueueEvict = &hooking.HookPos{Name: "Queue Evict"}

// ErrOverflow is reported by Enqueue when the insertion leaves the queue
// without a free slot. It is a normal outcome of a bounded queue under load,
// not a fault.
var ErrOverflow = errors.New("queue overflow")

// A RingBuffer is a fixed-capacity circular FIFO queue.
//
// A slot holding nil is free, so elements must not be nil. One slot is always
// kept free to tell a full queue from an empty one: head == tail with an
// empty head slot means empty, while advancing tail onto an occupied slot
// means overflow. A RingBuffer of capacity C therefore holds at most C-1
// elements.
type RingBuffer struct {
	hooking.HookableBase

	name     string
	capacity int
	slots    []any
	head     int
	tail     int
}

// NewRingBuffer creates an empty RingBuffer. The capacity must be at least 2,
// since one slot is reserved to disambiguate the empty and full states.
func NewRingBuffer(name string, capacity int) *RingBuffer {
	nameMustBeValid(name)

	if capacity < 2 {
		log.Panicf("ring buffer capacity must be at least 2, got %d",
			capacity)
	}

	return &RingBuffer{
		name:     name,
		capacity: capacity,
		slots:    make([]any, capacity),
	}
}

// Name returns the name of the queue.
func (q *RingBuffer) Name() string {
	return q.name
}

// Capacity returns the number of slots, including the reserved one.
func (q *RingBuffer) Capacity() int {
	return q.capacity
}

// Enqueue places e in the tail slot and advances the tail index.
//
// The overflow check happens after the write: if the advanced tail lands on
// an occupied slot, ErrOverflow is returned, but e has been written and
// counts as stored. Callers that treat overflow as fatal should stop driving
// the queue at that point.
func (q *RingBuffer) Enqueue(e any) error {
	if e == nil {
		log.Panic("cannot enqueue nil, nil marks a free slot")
	}

	q.slots[q.tail] = e
	q.tail = (q.tail + 1) % q.capacity

	if q.NumHooks() > 0 {
		q.InvokeHook(hooking.HookCtx{
			Domain: q,
			Pos:    HookPosQueuePush,
			Item:   e,
		})
	}

	if q.slots[q.tail] != nil {
		return ErrOverflow
	}

	return nil
}

// Dequeue removes and returns the head element. It returns nil when the
// queue is empty, which is a normal signal rather than an error, and leaves
// the queue untouched in that case.
func (q *RingBuffer) Dequeue() any {
	e := q.slots[q.head]
	if e == nil {
		return nil
	}

	q.removeHead()

	if q.NumHooks() > 0 {
		q.InvokeHook(hooking.HookCtx{
			Domain: q,
			Pos:    HookPosQueuePop,
			Item:   e,
		})
	}

	return e
}

// removeHead clears the head slot. The head index only advances when it
// differs from the tail index. Removing the last element this way leaves
// head == tail with an empty slot, the same shape as a never-used queue, so
// later enqueues still detect overflow correctly.
func (q *RingBuffer) removeHead() {
	q.slots[q.head] = nil
	if q.head != q.tail {
		q.head = (q.head + 1) % q.capacity
	}
}

// Len returns the number of occupied slots.
func (q *RingBuffer) Len() int {
	count := 0
	for _, s := range q.slots {
		if s != nil {
			count++
		}
	}

	return count
}

// OccupancyMask reports the occupied/free state of every slot in array
// order. It is meant for visualization and never mutates the queue.
func (q *RingBuffer) OccupancyMask() []bool {
	mask := make([]bool, q.capacity)
	for i, s := range q.slots {
		mask[i] = s != nil
	}

	return mask
}
