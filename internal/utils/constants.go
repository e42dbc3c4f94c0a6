package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// LoggerInitializationFailedMessageFormat reports a logger construction failure.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// GitDirectoryName is the repository metadata directory used for version lookup.
const GitDirectoryName = ".git"

// GlobalConfigDirectoryName is the per-user configuration directory under the home directory.
const GlobalConfigDirectoryName = ".clippy-shim"

// ConfigFileName is the configuration file name searched globally and locally.
const ConfigFileName = ".clippy-shim.yaml"

// UsageExitCode is returned for a missing or unrecognized subcommand.
const UsageExitCode = 2

// InvocationFailureExitCode is returned when the clippy child process cannot be started or awaited.
const InvocationFailureExitCode = 1
