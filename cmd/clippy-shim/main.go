package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/romnn/clippy-shim/internal/cli"
	"github.com/romnn/clippy-shim/internal/utils"
)

// main is the entry point for the clippy-shim command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer func() {
		_ = loggerInstance.Sync()
	}()

	applicationExecutionError := cli.Execute(loggerInstance)
	if applicationExecutionError == nil {
		return
	}

	var exitError *cli.ExitError
	if errors.As(applicationExecutionError, &exitError) {
		os.Exit(exitError.Code)
	}
	// Cobra already reported the usage problem on stderr.
	os.Exit(utils.UsageExitCode)
}
