package mm1

import (
	"log"

	"github.com/sarchlab/mm1sim/datarecording"
	"github.com/sarchlab/mm1sim/queueing"
	"github.com/sarchlab/mm1sim/timing"
)

// Builder can build single-server queue simulation components. The defaults
// reproduce the reference scenario: a 20-slot queue, arrivals with
// probability 0.25 and departures with probability 0.30 per step, truncated
// to 2 waiting customers every 10 steps, for 10000 steps.
type Builder struct {
	scheduler     timing.EventScheduler
	capacity      int
	arrivalProb   float64
	departureProb float64
	numSteps      uint64
	truncateEvery uint64
	truncateLimit int
	seed          int64
	payload       string
	source        EventSource
	recorder      datarecording.DataRecorder
	visLogger     *log.Logger
}

// MakeBuilder creates a Builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		capacity:      20,
		arrivalProb:   0.25,
		departureProb: 0.30,
		numSteps:      10000,
		truncateEvery: 10,
		truncateLimit: 2,
		seed:          1234,
		payload:       "ab",
	}
}

// WithScheduler sets the event scheduler, usually the simulation engine.
func (b Builder) WithScheduler(s timing.EventScheduler) Builder {
	b.scheduler = s
	return b
}

// WithCapacity sets the number of slots in the queue.
func (b Builder) WithCapacity(capacity int) Builder {
	b.capacity = capacity
	return b
}

// WithArrivalProb sets the per-step arrival probability.
func (b Builder) WithArrivalProb(p float64) Builder {
	b.arrivalProb = p
	return b
}

// WithDepartureProb sets the per-step departure probability.
func (b Builder) WithDepartureProb(p float64) Builder {
	b.departureProb = p
	return b
}

// WithNumSteps sets the step budget of the run.
func (b Builder) WithNumSteps(n uint64) Builder {
	b.numSteps = n
	return b
}

// WithTruncateEvery sets the truncation cadence in steps. Zero disables
// truncation.
func (b Builder) WithTruncateEvery(n uint64) Builder {
	b.truncateEvery = n
	return b
}

// WithTruncateLimit sets the occupancy limit enforced on each truncation.
func (b Builder) WithTruncateLimit(limit int) Builder {
	b.truncateLimit = limit
	return b
}

// WithSeed sets the seed of the default Bernoulli event source.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	return b
}

// WithPayload sets the payload carried by every arriving token.
func (b Builder) WithPayload(payload string) Builder {
	b.payload = payload
	return b
}

// WithEventSource replaces the default Bernoulli source, for example with a
// scripted sequence of arrivals and departures.
func (b Builder) WithEventSource(s EventSource) Builder {
	b.source = s
	return b
}

// WithDataRecorder makes the component record one StepSample per step.
func (b Builder) WithDataRecorder(r datarecording.DataRecorder) Builder {
	b.recorder = r
	return b
}

// WithVisLogger makes the component draw the queue occupancy after every
// step into the given logger.
func (b Builder) WithVisLogger(l *log.Logger) Builder {
	b.visLogger = l
	return b
}

// Build creates the component.
func (b Builder) Build(name string) *Comp {
	if b.scheduler == nil {
		log.Panic("an mm1 component requires a scheduler")
	}

	source := b.source
	if source == nil {
		source = NewBernoulliSource(b.arrivalProb, b.departureProb, b.seed)
	}

	c := &Comp{
		name:          name,
		scheduler:     b.scheduler,
		queue:         queueing.NewRingBuffer(name+".Queue", b.capacity),
		truncator:     queueing.NewTruncator(b.truncateLimit),
		source:        source,
		recorder:      b.recorder,
		visLogger:     b.visLogger,
		payload:       b.payload,
		numSteps:      b.numSteps,
		truncateEvery: b.truncateEvery,
	}

	if c.recorder != nil {
		c.recorder.CreateTable(stepSampleTable, StepSample{})
	}

	return c
}
