// Package sys provides thin wrappers around the system calls the terminal
// layer needs.
package sys

import (
	"os"
	"time"
)

// Winsize queries the size of the terminal referenced by the given file.
func Winsize(file *os.File) (row, col int) {
	return winsize(file)
}

// WaitForRead blocks until any of the given files is ready to be read, or
// until the timeout elapses. A negative timeout means no timeout. The first
// return value indicates which files are ready to be read.
func WaitForRead(timeout time.Duration, files ...*os.File) (ready []bool, err error) {
	return waitForRead(timeout, files...)
}
