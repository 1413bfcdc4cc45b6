//go:build unix

package term

import (
	"io"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/goprimer/goprimer/pkg/sys"
)

// Reads single bytes from a file with a timeout, and can be told from
// another goroutine to abandon an outstanding read.
type fileReader interface {
	byteReaderWithTimeout
	// Stop aborts any outstanding read. It returns after the read has
	// actually returned.
	Stop() error
	// Close releases the resources of the fileReader. The underlying file
	// stays open.
	Close()
}

// The stop mechanism is a pipe: reads select(2) on both the file and the
// pipe's read end, and Stop writes a byte into the pipe to wake them up.
type pipeStopReader struct {
	file  *os.File
	stopR *os.File
	stopW *os.File
	// Held for the duration of every read.
	mutex sync.Mutex
}

func newFileReader(file *os.File) (fileReader, error) {
	stopR, stopW, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &pipeStopReader{file: file, stopR: stopR, stopW: stopW}, nil
}

func (r *pipeStopReader) ReadByteWithTimeout(timeout time.Duration) (byte, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for {
		ready, err := sys.WaitForRead(timeout, r.file, r.stopR)
		if err != nil {
			if err == syscall.EINTR {
				continue
			}
			return 0, err
		}
		if ready[1] {
			var b [1]byte
			r.stopR.Read(b[:])
			return 0, ErrStopped
		}
		if !ready[0] {
			return 0, errTimeout
		}
		var b [1]byte
		n, err := r.file.Read(b[:])
		if err != nil {
			return 0, err
		}
		if n != 1 {
			return 0, io.ErrNoProgress
		}
		return b[0], nil
	}
}

func (r *pipeStopReader) Stop() error {
	_, err := r.stopW.Write([]byte{'q'})
	// Cycling the mutex waits for the aborted read to return.
	r.mutex.Lock()
	//lint:ignore SA2001 see above
	r.mutex.Unlock()
	return err
}

func (r *pipeStopReader) Close() {
	r.stopR.Close()
	r.stopW.Close()
}
