//go:build unix

package invoke

import (
	"os"
	"syscall"
)

// terminationSignal reports the signal that terminated the child, if any.
func terminationSignal(state *os.ProcessState) (int, bool) {
	waitStatus, isWaitStatus := state.Sys().(syscall.WaitStatus)
	if !isWaitStatus {
		return 0, false
	}
	return signalFromWaitStatus(waitStatus)
}

func signalFromWaitStatus(waitStatus syscall.WaitStatus) (int, bool) {
	if !waitStatus.Signaled() {
		return 0, false
	}
	return int(waitStatus.Signal()), true
}
