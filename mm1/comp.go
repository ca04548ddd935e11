package mm1

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/sarchlab/mm1sim/datarecording"
	"github.com/sarchlab/mm1sim/queueing"
	"github.com/sarchlab/mm1sim/timing"
)

// StepEvent advances the simulation by one discrete step.
type StepEvent struct {
	*timing.EventBase
}

// MakeStepEvent creates a StepEvent to happen at the given step.
func MakeStepEvent(t timing.VTimeInStep, handler timing.Handler) StepEvent {
	return StepEvent{EventBase: timing.NewEventBase(t, handler)}
}

// stepSampleTable is the data recorder table that receives one row per step.
const stepSampleTable = "step_samples"

// A StepSample is the per-step record written to the data recorder.
type StepSample struct {
	Step     uint64
	Arrived  bool
	Departed bool
	Dropped  int
	Length   int
	Overflow bool
}

// Stats accumulates the outcome of a run.
type Stats struct {
	Steps      uint64
	Arrivals   uint64
	Departures uint64
	Drops      uint64
	Overflowed bool
}

// Comp simulates a single-server queue. Every StepEvent it consults its
// EventSource for an arrival and a departure, enforces the truncation policy
// on its cadence, and schedules the next step until the step budget runs out
// or an arrival overflows the queue.
type Comp struct {
	name      string
	scheduler timing.EventScheduler
	queue     *queueing.RingBuffer
	truncator *queueing.Truncator
	source    EventSource
	recorder  datarecording.DataRecorder
	visLogger *log.Logger

	payload       string
	numSteps      uint64
	truncateEvery uint64

	stats Stats
}

// Name returns the name of the component.
func (c *Comp) Name() string {
	return c.name
}

// Queue exposes the simulated queue, mainly for monitoring.
func (c *Comp) Queue() *queueing.RingBuffer {
	return c.queue
}

// Stats returns the statistics accumulated so far.
func (c *Comp) Stats() Stats {
	return c.stats
}

// StartAt schedules the first step of the simulation.
func (c *Comp) StartAt(t timing.VTimeInStep) {
	c.scheduler.Schedule(MakeStepEvent(t, c))
}

// Handle processes the events scheduled for the component.
func (c *Comp) Handle(e timing.Event) error {
	switch evt := e.(type) {
	case StepEvent:
		c.step(evt)
	default:
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}

	return nil
}

func (c *Comp) step(evt StepEvent) {
	c.stats.Steps++

	arrived := c.arrive()
	departed := c.depart()
	dropped := c.truncate()

	c.record(arrived, departed, dropped)
	c.render()

	if !c.stats.Overflowed && c.stats.Steps < c.numSteps {
		c.scheduler.Schedule(MakeStepEvent(evt.Time()+1, c))
	}
}

func (c *Comp) arrive() bool {
	if !c.source.Arrival() {
		return false
	}

	c.stats.Arrivals++

	err := c.queue.Enqueue(NewToken(c.payload))
	if errors.Is(err, queueing.ErrOverflow) {
		c.stats.Overflowed = true
	}

	return true
}

func (c *Comp) depart() bool {
	if !c.source.Departure() {
		return false
	}

	if c.queue.Dequeue() == nil {
		return false
	}

	c.stats.Departures++

	return true
}

func (c *Comp) truncate() int {
	if c.truncateEvery == 0 || c.stats.Steps%c.truncateEvery != 0 {
		return 0
	}

	dropped := c.truncator.Enforce(c.queue)
	c.stats.Drops += uint64(dropped)

	return dropped
}

func (c *Comp) record(arrived, departed bool, dropped int) {
	if c.recorder == nil {
		return
	}

	c.recorder.InsertData(stepSampleTable, StepSample{
		Step:     c.stats.Steps,
		Arrived:  arrived,
		Departed: departed,
		Dropped:  dropped,
		Length:   c.queue.Len(),
		Overflow: c.stats.Overflowed,
	})
}

func (c *Comp) render() {
	if c.visLogger == nil {
		return
	}

	c.visLogger.Printf(" %s %d",
		renderOccupancy(c.queue.OccupancyMask()), c.queue.Len())

	if c.stats.Overflowed {
		c.visLogger.Print("OVERFLOW!")
	}
}

// renderOccupancy draws one character per slot, a star for an occupied slot
// and a space for a free one.
func renderOccupancy(mask []bool) string {
	var b strings.Builder
	for _, occupied := range mask {
		if occupied {
			b.WriteByte('*')
		} else {
			b.WriteByte(' ')
		}
	}

	return b.String()
}
