//go:build !unix

package invoke

import "os"

// terminationSignal is unavailable on platforms without wait statuses.
func terminationSignal(_ *os.ProcessState) (int, bool) {
	return 0, false
}
