// internal/appshell/shell.go
package appshell

import (
	"io"
	"os"
)

// Main adapts an app Run function to a process entry point. These tools are
// one-shot batch pipelines, so there is no signal handling or cancellation:
// a run either completes or is killed externally.
func Main(run func([]string, io.Writer, io.Writer) int) {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
