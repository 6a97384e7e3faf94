package simulation

import (
	"log"

	"github.com/rs/xid"

	"github.com/sarchlab/damonsim/datarecording"
	"github.com/sarchlab/damonsim/monitoring"
	"github.com/sarchlab/damonsim/sim"
	"github.com/sarchlab/damonsim/tracing"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	recordOn       bool
	outputFileName string
}

// MakeBuilder creates a new builder. By default, the simulation is monitored
// and recorded.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
		recordOn:  true,
	}
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithoutRecording sets the simulation to not write a database.
func (b Builder) WithoutRecording() Builder {
	b.recordOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
// The ".sqlite3" suffix is appended.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		log.Panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordOn && b.outputFileName != "" {
		log.Panic("output file cannot be set when recording is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:            xid.New().String(),
		engine:        sim.NewSerialEngine(),
		compNameIndex: make(map[string]int),
	}

	if b.recordOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "damonsim_" + s.id
		}

		s.dataRecorder = datarecording.NewDataRecorder(outputPath)
		s.visTracer = tracing.NewDBTracer(s.engine, s.dataRecorder)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		s.monitor.WithPortNumber(b.monitorPort)
		s.monitor.RegisterEngine(s.engine)
		s.monitor.StartServer()
	}

	return s
}
