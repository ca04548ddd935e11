// Package simulation assembles the services a simulation needs: the event
// engine, the data recorder, and the optional monitoring server.
package simulation

import (
	"github.com/sarchlab/mm1sim/datarecording"
	"github.com/sarchlab/mm1sim/monitoring"
	"github.com/sarchlab/mm1sim/queueing"
	"github.com/sarchlab/mm1sim/timing"
)

// A Component is a named part of the simulated system.
type Component interface {
	Name() string
}

// A QueueProvider is a component that owns a queue worth monitoring.
type QueueProvider interface {
	Queue() *queueing.RingBuffer
}

// A Simulation provides the services required to define a simulation.
type Simulation struct {
	engine       timing.Engine
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor

	components    []Component
	compNameIndex map[string]int
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() timing.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation. It is nil when
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// RegisterComponent registers a component with the simulation.
func (s *Simulation) RegisterComponent(c Component) {
	compName := c.Name()
	if _, exists := s.compNameIndex[compName]; exists {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	if s.monitor == nil {
		return
	}

	if provider, ok := c.(QueueProvider); ok {
		s.monitor.RegisterQueue(provider.Queue())
	}
}

// GetComponentByName returns the component with the given name.
func (s *Simulation) GetComponentByName(name string) Component {
	return s.components[s.compNameIndex[name]]
}

// Terminate terminates the simulation.
func (s *Simulation) Terminate() {
	s.dataRecorder.Close()
}
