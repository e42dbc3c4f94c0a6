package cli

import "fmt"

// ExitError carries a process exit code through the error chain so main can
// terminate with it. A non-empty message is shown to the user; an empty one
// means the child already reported its own diagnostics.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (exitError *ExitError) Error() string {
	if exitError.Message != "" {
		return exitError.Message
	}
	return fmt.Sprintf("exit status %d", exitError.Code)
}
