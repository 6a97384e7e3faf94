// Package simulation assembles the engine, the recorder, the tracer and the
// monitor that a run needs.
package simulation

import (
	"fmt"

	"github.com/sarchlab/damonsim/datarecording"
	"github.com/sarchlab/damonsim/monitoring"
	"github.com/sarchlab/damonsim/sim"
	"github.com/sarchlab/damonsim/tracing"
)

// A Simulation provides the service requires to define a simulation.
type Simulation struct {
	id     string
	engine sim.Engine

	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
	visTracer    *tracing.DBTracer

	components    []sim.Component
	compNameIndex map[string]int
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation, or nil if
// the simulation is not recorded.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation, or nil if the
// simulation is not monitored.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// GetVisTracer returns the tracer used in the simulation, or nil if the
// simulation is not recorded.
func (s *Simulation) GetVisTracer() *tracing.DBTracer {
	return s.visTracer
}

// RegisterComponent registers a component with the simulation. The component
// is shown by the monitor and its tasks are traced into the recorder.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, found := s.compNameIndex[compName]; found {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}

	if s.visTracer != nil {
		if domain, ok := c.(tracing.NamedHookable); ok {
			tracing.CollectTrace(domain, s.visTracer)
		}
	}
}

// Components returns all the registered components, in registration order.
func (s *Simulation) Components() []sim.Component {
	return append([]sim.Component(nil), s.components...)
}

// GetComponentByName returns the component with the given name, or nil if no
// such component is registered.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	i, found := s.compNameIndex[name]
	if !found {
		return nil
	}

	return s.components[i]
}

// Run runs the engine until no event is left and notifies the simulation end
// handlers.
func (s *Simulation) Run() error {
	err := s.engine.Run()
	if err != nil {
		return fmt.Errorf("simulation %s: %w", s.id, err)
	}

	s.engine.Finished()

	return nil
}

// Terminate flushes the tracer and closes the recorder.
func (s *Simulation) Terminate() {
	if s.visTracer != nil {
		s.visTracer.Terminate()
	}

	if s.dataRecorder != nil {
		err := s.dataRecorder.Close()
		if err != nil {
			panic(err)
		}
	}
}
