// The mm1sim command runs a discrete-step simulation of a single-server
// queue and reports the queue occupancy over time.
package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
