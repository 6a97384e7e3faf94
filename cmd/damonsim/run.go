package main

import (
	"fmt"
	"io"
	"log"

	"github.com/sarchlab/damonsim/config"
	"github.com/sarchlab/damonsim/mem/damon"
	"github.com/sarchlab/damonsim/mem/pagespace"
	"github.com/sarchlab/damonsim/report"
	"github.com/sarchlab/damonsim/sim"
	"github.com/sarchlab/damonsim/simulation"
	"github.com/sarchlab/damonsim/tracing"
)

func accessProvider(cfg config.Config) (pagespace.AccessProvider, error) {
	if cfg.Pattern != "" {
		pattern, err := pagespace.ParsePattern(cfg.Pattern)
		if err != nil {
			return nil, err
		}

		return pagespace.NewPatternProvider(pattern), nil
	}

	if cfg.Seed != 0 {
		return pagespace.NewRandomProvider(cfg.Seed), nil
	}

	return pagespace.NewTimeSeededProvider(), nil
}

func buildSimulation(cfg config.Config) *simulation.Simulation {
	b := simulation.MakeBuilder()

	if cfg.Monitor {
		b = b.WithMonitorPort(cfg.MonitorPort)
	} else {
		b = b.WithoutMonitoring()
	}

	if cfg.Record {
		b = b.WithOutputFileName(cfg.OutputFile)
	} else {
		b = b.WithoutRecording()
	}

	return b.Build()
}

func runSimulation(cfg config.Config, stdout, stderr io.Writer) error {
	provider, err := accessProvider(cfg)
	if err != nil {
		return err
	}

	s := buildSimulation(cfg)
	defer s.Terminate()

	text := report.NewTextReporter(stdout)

	builder := damon.MakeBuilder().
		WithEngine(s.GetEngine()).
		WithConfig(cfg).
		WithAccessProvider(provider).
		WithReporter(text)

	var recorder *report.RecorderReporter
	if cfg.Record {
		recorder = report.NewRecorderReporter(s.GetDataRecorder())
		builder = builder.WithReporter(recorder)
	}

	comp := builder.Build("Damon")
	comp.AcceptHook(text)

	if recorder != nil {
		comp.AcceptHook(recorder)
	}

	if cfg.Verbose {
		logger := log.New(stderr, "", 0)
		comp.AcceptHook(report.NewAdjustmentLogger(logger))
		s.GetEngine().AcceptHook(sim.NewEventLogger(logger))
	}

	steps := tracing.NewStepCountTracer(tracing.TasksOfKind("cycle"))
	tracing.CollectTrace(comp, steps)

	s.RegisterComponent(comp)

	if cfg.OpenBrowser {
		err = s.GetMonitor().OpenInBrowser()
		if err != nil {
			fmt.Fprintf(stderr, "Cannot open browser: %v\n", err)
		}
	}

	comp.Start()

	err = s.Run()
	if err != nil {
		return err
	}

	err = comp.Err()
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintf(stderr, "Completed %d cycles: %d splits, %d merges\n",
			steps.NumCompletedTasks(),
			steps.GetStepCount("split"),
			steps.GetStepCount("merge"))
	}

	return nil
}
