package datarecording

import (
	"os"
	"strings"
	"time"
)

const execTableName = "exec_info"

const timeLayout = "2006-01-02 15:04:05.000000000"

// ExecInfo is a property of the recorded execution.
type ExecInfo struct {
	Property string
	Value    string
}

// execRecorder records when and how the program was executed.
type execRecorder struct {
	recorder DataRecorder
	entries  []ExecInfo
}

// Start captures the start time, the command line and the working
// directory.
func (e *execRecorder) Start() {
	e.entries = append(e.entries,
		ExecInfo{"Start Time", time.Now().Format(timeLayout)},
		ExecInfo{"Command", strings.Join(os.Args, " ")},
	)

	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	e.entries = append(e.entries, ExecInfo{"Working Directory", cwd})
}

// End writes the captured entries along with the exit time.
func (e *execRecorder) End() {
	for _, entry := range e.entries {
		e.recorder.InsertData(execTableName, entry)
	}

	e.recorder.InsertData(execTableName,
		ExecInfo{"End Time", time.Now().Format(timeLayout)})

	e.entries = nil

	e.recorder.Flush()
}

func newExecRecorderWithWriter(writer DataRecorder) *execRecorder {
	e := &execRecorder{
		recorder: writer,
	}

	writer.CreateTable(execTableName, ExecInfo{})

	return e
}
