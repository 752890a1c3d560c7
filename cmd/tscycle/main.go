// tscycle drives the Qt Linguist translation cycle for a Python source tree
// (typically a QGIS plugin): extract translatable strings, edit them in
// Linguist, and compile the binary catalog.
package main

import (
	"errors"
	"os"

	"github.com/loopcontext/tscycle"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		var runErr *tscycle.RunError
		if errors.As(err, &runErr) && runErr.ExitCode > 0 {
			os.Exit(runErr.ExitCode)
		}
		os.Exit(1)
	}
}
