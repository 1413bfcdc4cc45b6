//go:build unix

package sys

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func winsize(file *os.File) (row, col int) {
	ws, err := unix.IoctlGetWinsize(int(file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1
	}
	return int(ws.Row), int(ws.Col)
}

func waitForRead(timeout time.Duration, files ...*os.File) ([]bool, error) {
	var fdSet unix.FdSet
	maxfd := 0
	for _, file := range files {
		fd := int(file.Fd())
		fdSet.Set(fd)
		if maxfd < fd {
			maxfd = fd
		}
	}
	var tvPtr *unix.Timeval
	if timeout >= 0 {
		tv := unix.NsecToTimeval(int64(timeout))
		tvPtr = &tv
	}
	_, err := unix.Select(maxfd+1, &fdSet, nil, nil, tvPtr)
	if err != nil {
		return nil, err
	}
	ready := make([]bool, len(files))
	for i, file := range files {
		ready[i] = fdSet.IsSet(int(file.Fd()))
	}
	return ready, nil
}
