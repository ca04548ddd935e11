package timing

import (
	"container/heap"
	"sync"
)

// EventQueue is a priority queue of events. The front of the queue is always
// the event to happen next.
type EventQueue struct {
	sync.Mutex
	events eventHeap
}

// NewEventQueue creates and returns a newly created EventQueue
func NewEventQueue() *EventQueue {
	q := new(EventQueue)
	q.events = make(eventHeap, 0)
	heap.Init(&q.events)
	return q
}

// Push adds an event to the event queue
func (q *EventQueue) Push(evt Event) {
	q.Lock()
	defer q.Unlock()
	heap.Push(&q.events, evt)
}

// Pop returns the next earliest event
func (q *EventQueue) Pop() Event {
	q.Lock()
	defer q.Unlock()
	return heap.Pop(&q.events).(Event)
}

// Peek returns the next earliest event without removing it
func (q *EventQueue) Peek() Event {
	q.Lock()
	defer q.Unlock()
	return q.events[0]
}

// Len returns the number of events in the queue
func (q *EventQueue) Len() int {
	q.Lock()
	defer q.Unlock()
	return len(q.events)
}

type eventHeap []Event

func (h eventHeap) Len() int {
	return len(h)
}

// Less returns true if the i-th event happens before the j-th event.
func (h eventHeap) Less(i, j int) bool {
	return h[i].Time() < h[j].Time()
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *eventHeap) Push(x any) {
	event := x.(Event)
	*h = append(*h, event)
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	event := old[n-1]
	*h = old[0 : n-1]
	return event
}
