// ABOUTME: Entry point for the classroom CLI
// ABOUTME: Terminal client for signing in to the Classroom platform

package main

import (
	"fmt"
	"os"

	"github.com/markwhitaker/classroom-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
