package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/romnn/clippy-shim/internal/config"
	"github.com/romnn/clippy-shim/internal/invoke"
	"github.com/romnn/clippy-shim/internal/utils"
	"github.com/romnn/clippy-shim/internal/workspace"
)

// recordingRunner captures invocation requests instead of spawning cargo.
type recordingRunner struct {
	requests []invoke.Request
	exitCode int
	runError error
}

func (runner *recordingRunner) Run(request invoke.Request) (int, error) {
	runner.requests = append(runner.requests, request)
	return runner.exitCode, runner.runError
}

// isolateEnvironment pins the home directory, the cargo binary, and the
// workspace root so command behavior does not depend on the host machine.
// The returned directory is the pinned workspace root.
func isolateEnvironment(t *testing.T) string {
	t.Helper()
	workspaceDirectory := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(invoke.CargoBinaryEnvironmentVariable, filepath.Join(t.TempDir(), "cargo"))
	t.Setenv(workspace.DirectoryEnvironmentVariable, workspaceDirectory)
	t.Setenv(config.VerboseEnvironmentVariable, "")
	return workspaceDirectory
}

func executeCommand(t *testing.T, commandRunner invoke.Runner, arguments ...string) (string, error) {
	t.Helper()
	rootCommand := createRootCommand(zap.NewNop(), commandRunner)
	var outputBuffer bytes.Buffer
	rootCommand.SetOut(&outputBuffer)
	rootCommand.SetErr(&outputBuffer)
	// Cobra falls back to os.Args when given a nil slice.
	rootCommand.SetArgs(append([]string{}, arguments...))
	executionError := rootCommand.Execute()
	return outputBuffer.String(), executionError
}

func TestFixitInjectsPrefixBeforeDefaults(t *testing.T) {
	isolateEnvironment(t)
	commandRunner := &recordingRunner{}

	_, executionError := executeCommand(t, commandRunner, "fixit")
	require.NoError(t, executionError)
	require.Len(t, commandRunner.requests, 1)

	cargoArguments := commandRunner.requests[0].CargoArguments
	require.GreaterOrEqual(t, len(cargoArguments), 3)
	assert.Equal(t, []string{"--fix", "--allow-dirty", "--allow-staged"}, cargoArguments[:3])
}

func TestLintAtWorkspaceRootInjectsEveryDefault(t *testing.T) {
	workspaceDirectory := isolateEnvironment(t)
	previousDirectory, previousDirectoryError := os.Getwd()
	require.NoError(t, previousDirectoryError)
	require.NoError(t, os.Chdir(workspaceDirectory))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(previousDirectory))
	})
	// Pin the override to the resolved working directory so symlinked
	// temporary directories compare equal.
	currentDirectory, workingDirectoryError := os.Getwd()
	require.NoError(t, workingDirectoryError)
	t.Setenv(workspace.DirectoryEnvironmentVariable, currentDirectory)
	commandRunner := &recordingRunner{}

	_, executionError := executeCommand(t, commandRunner, "lint")
	require.NoError(t, executionError)
	require.Len(t, commandRunner.requests, 1)

	assert.Equal(t,
		[]string{"--workspace", "--all-targets", "--no-deps", "--all-features"},
		commandRunner.requests[0].CargoArguments,
	)
}

func TestLintOutsideWorkspaceRootOmitsWorkspaceDefault(t *testing.T) {
	isolateEnvironment(t)
	commandRunner := &recordingRunner{}

	_, executionError := executeCommand(t, commandRunner, "lint")
	require.NoError(t, executionError)
	require.Len(t, commandRunner.requests, 1)
	assert.NotContains(t, commandRunner.requests[0].CargoArguments, "--workspace")
}

func TestLintForwardsPassthroughAndAppendsStrictSuffixLast(t *testing.T) {
	isolateEnvironment(t)
	commandRunner := &recordingRunner{}

	_, executionError := executeCommand(t, commandRunner, "lint", "-p", "my_crate", "--", "-Aclippy::todo")
	require.NoError(t, executionError)
	require.Len(t, commandRunner.requests, 1)

	request := commandRunner.requests[0]
	assert.Equal(t, []string{"-Aclippy::todo"}, request.ClippyArguments)

	commandLine := request.CommandLine()
	require.GreaterOrEqual(t, len(commandLine), 2)
	assert.Equal(t, []string{"-Dclippy::all", "-Dclippy::pedantic"}, commandLine[len(commandLine)-2:])
}

func TestChildExitCodePropagates(t *testing.T) {
	isolateEnvironment(t)
	commandRunner := &recordingRunner{exitCode: 42}

	_, executionError := executeCommand(t, commandRunner, "lint")
	var exitError *ExitError
	require.ErrorAs(t, executionError, &exitError)
	assert.Equal(t, 42, exitError.Code)
}

func TestSpawnFailureMapsToInvocationFailureExitCode(t *testing.T) {
	isolateEnvironment(t)
	commandRunner := &recordingRunner{runError: errors.New("spawn failed")}

	_, executionError := executeCommand(t, commandRunner, "lint")
	var exitError *ExitError
	require.ErrorAs(t, executionError, &exitError)
	assert.Equal(t, utils.InvocationFailureExitCode, exitError.Code)
}

func TestMissingSubcommandReturnsUsageExitCode(t *testing.T) {
	isolateEnvironment(t)
	commandRunner := &recordingRunner{}

	output, executionError := executeCommand(t, commandRunner)
	var exitError *ExitError
	require.ErrorAs(t, executionError, &exitError)
	assert.Equal(t, utils.UsageExitCode, exitError.Code)
	assert.Contains(t, output, "Usage:")
	assert.Empty(t, commandRunner.requests)
}

func TestUnknownSubcommandPrintsUsageWithoutInvokingAnything(t *testing.T) {
	isolateEnvironment(t)
	commandRunner := &recordingRunner{}

	output, executionError := executeCommand(t, commandRunner, "frobnicate")
	require.Error(t, executionError)

	var exitError *ExitError
	assert.False(t, errors.As(executionError, &exitError))
	assert.Contains(t, output, "unknown command")
	assert.Contains(t, output, "Usage:")
	assert.Empty(t, commandRunner.requests)
}
