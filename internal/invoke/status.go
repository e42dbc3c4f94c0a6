package invoke

import "os"

const (
	minimumExitCode    = 0
	maximumExitCode    = 255
	signalExitCodeBase = 128
	fallbackExitCode   = 1
)

// ClampExitCode converts a raw process exit code to the range a shell can
// observe: negative codes become 0 and codes above 255 become 255.
func ClampExitCode(code int) int {
	if code < minimumExitCode {
		return minimumExitCode
	}
	if code > maximumExitCode {
		return maximumExitCode
	}
	return code
}

// ExitCodeFromState maps a terminated process state to a shell-style exit
// code. Signal-terminated children map to 128+signal on platforms that
// expose the signal; when neither a code nor a signal is available the
// result is 1.
func ExitCodeFromState(state *os.ProcessState) int {
	if state == nil {
		return fallbackExitCode
	}
	if code := state.ExitCode(); code >= 0 {
		return ClampExitCode(code)
	}
	if signalNumber, signaled := terminationSignal(state); signaled {
		return ClampExitCode(signalExitCodeBase + signalNumber)
	}
	return fallbackExitCode
}
