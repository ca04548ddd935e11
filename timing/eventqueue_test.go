package timing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueuePopsInTimeOrder(t *testing.T) {
	q := NewEventQueue()

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		q.Push(makeLabelEvent("e", VTimeInStep(rng.Uint64()%1000), nil))
	}

	assert.Equal(t, 100, q.Len())

	prev := VTimeInStep(0)
	for q.Len() > 0 {
		evt := q.Pop()
		assert.GreaterOrEqual(t, evt.Time(), prev)
		prev = evt.Time()
	}
}

func TestEventQueuePeekDoesNotRemove(t *testing.T) {
	q := NewEventQueue()

	q.Push(makeLabelEvent("b", 2, nil))
	q.Push(makeLabelEvent("a", 1, nil))

	assert.Equal(t, VTimeInStep(1), q.Peek().Time())
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, VTimeInStep(1), q.Pop().Time())
	assert.Equal(t, VTimeInStep(2), q.Pop().Time())
}
