package mm1

import (
	"log"
	"math/rand"
)

// An EventSource decides, once per simulation step, whether an arrival
// happens and whether a departure is requested. Injecting the source keeps
// the simulation replayable: a seeded source replays the same run, and tests
// can script the exact sequence they need.
type EventSource interface {
	Arrival() bool
	Departure() bool
}

// BernoulliSource flips two independent biased coins per step. It is the
// discrete approximation of the Poisson arrival and exponential service
// processes of an M/M/1 queue.
type BernoulliSource struct {
	arrivalProb   float64
	departureProb float64
	rng           *rand.Rand
}

// NewBernoulliSource creates a BernoulliSource with the given per-step
// probabilities and seed. Probabilities must be in [0, 1].
func NewBernoulliSource(
	arrivalProb, departureProb float64,
	seed int64,
) *BernoulliSource {
	probMustBeValid(arrivalProb)
	probMustBeValid(departureProb)

	return &BernoulliSource{
		arrivalProb:   arrivalProb,
		departureProb: departureProb,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

func probMustBeValid(p float64) {
	if p < 0 || p > 1 {
		log.Panicf("probability must be in [0, 1], got %f", p)
	}
}

// Arrival flips the arrival coin.
func (s *BernoulliSource) Arrival() bool {
	return s.rng.Float64() < s.arrivalProb
}

// Departure flips the departure coin.
func (s *BernoulliSource) Departure() bool {
	return s.rng.Float64() < s.departureProb
}
