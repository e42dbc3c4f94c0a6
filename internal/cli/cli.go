// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/romnn/clippy-shim/internal/config"
	"github.com/romnn/clippy-shim/internal/invoke"
	"github.com/romnn/clippy-shim/internal/shim"
	"github.com/romnn/clippy-shim/internal/utils"
	"github.com/romnn/clippy-shim/internal/workspace"
)

const (
	rootUse              = "clippy-shim"
	rootShortDescription = "run cargo clippy with repository defaults"
	rootLongDescription  = `clippy-shim invokes cargo clippy with the repository's default flags.
Arguments before -- go to cargo clippy; arguments after -- go to clippy itself.
Defaults (--workspace, --all-targets, --no-deps, --all-features) are injected
only when the invocation does not already decide them, and the strict lint
baseline is always appended last.`
	versionFlagName        = "version"
	versionFlagDescription = "display application version"
	versionTemplate        = "clippy-shim version: %s\n"

	lintUse              = "lint [cargo clippy args] [-- clippy args]"
	lintShortDescription = "lint with repository defaults"
	lintLongDescription  = `Run cargo clippy with the repository's default flags injected.`
	lintUsageExample     = `  # Lint the whole workspace from the workspace root
  clippy-shim lint

  # Lint one package, relaxing a lint for this run
  clippy-shim lint -p my_crate -- -Aclippy::todo`
	fixitUse              = "fixit [cargo clippy args] [-- clippy args]"
	fixitShortDescription = "apply clippy fixes with repository defaults"
	fixitLongDescription  = `Run cargo clippy --fix with the repository's default flags injected.
Dirty and staged working trees are allowed so the command composes with
in-progress work.`
	fixitUsageExample = `  # Fix everything clippy can fix in place
  clippy-shim fixit

  # Fix a single package
  clippy-shim fixit -p my_crate`

	missingSubcommandMessage       = "missing subcommand"
	workingDirectoryErrorFormat    = "unable to determine working directory: %v"
	configurationLoadErrorFormat   = "unable to load configuration: %v"
	cargoResolutionErrorFormat     = "unable to locate cargo: %v"
	invocationFailureMessageFormat = "failed to run cargo clippy: %v"
	composedCommandMessage         = "composed cargo clippy invocation"
	cargoBinaryLogField            = "binary"
	commandLineLogField            = "arguments"
)

// Execute runs the clippy-shim application with the process runner.
func Execute(loggerInstance *zap.Logger) error {
	rootCommand := createRootCommand(loggerInstance, invoke.ProcessRunner{})
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command with the provided runner.
func createRootCommand(loggerInstance *zap.Logger, commandRunner invoke.Runner) *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:   rootUse,
		Short: rootShortDescription,
		Long:  rootLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return &ExitError{Code: utils.UsageExitCode, Message: missingSubcommandMessage}
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(
		createLintCommand(loggerInstance, commandRunner),
		createFixitCommand(loggerInstance, commandRunner),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.CompletionOptions.DisableDefaultCmd = true
	return rootCommand
}

// createLintCommand returns the lint subcommand. Flag parsing is disabled so
// every cargo and clippy flag flows through untouched.
func createLintCommand(loggerInstance *zap.Logger, commandRunner invoke.Runner) *cobra.Command {
	return &cobra.Command{
		Use:                lintUse,
		Short:              lintShortDescription,
		Long:               lintLongDescription,
		Example:            lintUsageExample,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runShim(loggerInstance, commandRunner, nil, arguments)
		},
	}
}

// createFixitCommand returns the fixit subcommand, which injects the
// fix-mode prefix before any defaults.
func createFixitCommand(loggerInstance *zap.Logger, commandRunner invoke.Runner) *cobra.Command {
	return &cobra.Command{
		Use:                fixitUse,
		Short:              fixitShortDescription,
		Long:               fixitLongDescription,
		Example:            fixitUsageExample,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runShim(loggerInstance, commandRunner, shim.FixitPrefixArguments(), arguments)
		},
	}
}

// runShim composes the cargo clippy invocation from the raw arguments and
// runs it, translating the outcome into an ExitError for main.
func runShim(loggerInstance *zap.Logger, commandRunner invoke.Runner, prefixArguments []string, rawArguments []string) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		fmt.Fprintf(os.Stderr, workingDirectoryErrorFormat+"\n", workingDirectoryError)
		return &ExitError{Code: utils.InvocationFailureExitCode}
	}

	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: workingDirectory})
	if configurationError != nil {
		fmt.Fprintf(os.Stderr, configurationLoadErrorFormat+"\n", configurationError)
		return &ExitError{Code: utils.InvocationFailureExitCode}
	}
	if applicationConfiguration.VerboseEnabled() {
		loggerInstance = debugLoggerOrFallback(loggerInstance)
	}

	composedInvocation := shim.Compose(shim.Options{
		PrefixArguments: prefixArguments,
		RawArguments:    rawArguments,
		IsWorkspaceRoot: workspace.IsRoot(workingDirectory),
	})

	cargoBinary, cargoResolutionError := invoke.ResolveCargoBinary(applicationConfiguration.Cargo.Binary)
	if cargoResolutionError != nil {
		fmt.Fprintf(os.Stderr, cargoResolutionErrorFormat+"\n", cargoResolutionError)
		return &ExitError{Code: utils.InvocationFailureExitCode}
	}

	invocationRequest := invoke.Request{
		CargoBinary:     cargoBinary,
		CargoArguments:  composedInvocation.CargoArguments,
		ClippyArguments: composedInvocation.ClippyArguments,
	}
	loggerInstance.Debug(composedCommandMessage,
		zap.String(cargoBinaryLogField, cargoBinary),
		zap.Strings(commandLineLogField, invocationRequest.CommandLine()),
	)

	exitStatus, runError := commandRunner.Run(invocationRequest)
	if runError != nil {
		fmt.Fprintf(os.Stderr, invocationFailureMessageFormat+"\n", runError)
		return &ExitError{Code: utils.InvocationFailureExitCode}
	}
	if exitStatus != 0 {
		return &ExitError{Code: exitStatus}
	}
	return nil
}

// debugLoggerOrFallback upgrades the logger to debug level, keeping the
// original logger when construction fails.
func debugLoggerOrFallback(loggerInstance *zap.Logger) *zap.Logger {
	debugLogger, debugLoggerError := utils.NewDebugLogger()
	if debugLoggerError != nil {
		return loggerInstance
	}
	return debugLogger
}
