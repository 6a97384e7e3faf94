// Command damonsim simulates adaptive region-based memory access monitoring.
package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
