// Command joystick renders, replays and interactively drives a virtual
// analog stick.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-drift/joystick/cmd/joystick/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
