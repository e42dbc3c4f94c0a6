// Package invoke locates the cargo executable and runs the composed cargo
// clippy command line as a child process.
package invoke

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const (
	clippySubcommand  = "clippy"
	argumentSeparator = "--"

	// The strict lint baseline is the repository contract. It is appended
	// after every user-supplied clippy argument so the shim stays
	// authoritative over passthrough overrides.
	strictAllLintFlag      = "-Dclippy::all"
	strictPedanticLintFlag = "-Dclippy::pedantic"

	// CargoBinaryEnvironmentVariable overrides the cargo executable, matching
	// cargo's own convention for shims.
	CargoBinaryEnvironmentVariable = "CARGO"
	defaultCargoBinaryName         = "cargo"

	cargoBinaryLookupErrorFormat = "cargo binary not found in PATH: %w"
	runCommandErrorFormat        = "run cargo clippy: %w"
)

// Request describes one cargo clippy invocation.
type Request struct {
	CargoBinary     string
	CargoArguments  []string
	ClippyArguments []string
}

// CommandLine returns the full argument vector passed to the cargo binary:
// the clippy subcommand, the built cargo arguments, the separator, the
// passthrough clippy arguments, and the strict lint baseline last.
func (request Request) CommandLine() []string {
	commandLine := make([]string, 0, len(request.CargoArguments)+len(request.ClippyArguments)+4)
	commandLine = append(commandLine, clippySubcommand)
	commandLine = append(commandLine, request.CargoArguments...)
	commandLine = append(commandLine, argumentSeparator)
	commandLine = append(commandLine, request.ClippyArguments...)
	commandLine = append(commandLine, strictAllLintFlag, strictPedanticLintFlag)
	return commandLine
}

// ResolveCargoBinary selects the cargo executable: the explicit override
// first, then the CARGO environment variable, then a PATH lookup.
func ResolveCargoBinary(configuredBinary string) (string, error) {
	if configuredBinary != "" {
		return configuredBinary, nil
	}
	if environmentBinary := os.Getenv(CargoBinaryEnvironmentVariable); environmentBinary != "" {
		return environmentBinary, nil
	}
	resolvedBinary, lookupError := exec.LookPath(defaultCargoBinaryName)
	if lookupError != nil {
		return "", fmt.Errorf(cargoBinaryLookupErrorFormat, lookupError)
	}
	return resolvedBinary, nil
}

// Runner executes a composed cargo clippy command line and reports the
// child's exit code. A failure to start or wait on the child is an error;
// a failing child is not.
type Runner interface {
	Run(request Request) (int, error)
}

// ProcessRunner spawns cargo clippy as a child process inheriting the
// standard streams and blocks until it terminates.
type ProcessRunner struct{}

// Run implements Runner.
func (ProcessRunner) Run(request Request) (int, error) {
	// #nosec G204
	command := exec.Command(request.CargoBinary, request.CommandLine()...)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	runError := command.Run()
	if runError == nil {
		return 0, nil
	}

	var childExitError *exec.ExitError
	if errors.As(runError, &childExitError) {
		return ExitCodeFromState(childExitError.ProcessState), nil
	}
	return 0, fmt.Errorf(runCommandErrorFormat, runError)
}
