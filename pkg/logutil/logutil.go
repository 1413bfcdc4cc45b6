// Package logutil provides a registry of loggers sharing one output.
//
// Loggers start out discarding everything; calling SetOutput or SetOutputFile
// redirects all loggers, created before or after the call, to the new
// destination. The lesson trace stream is built on this.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mutex   sync.Mutex
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix, writing to the current
// output.
func GetLogger(prefix string) *log.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers, including those to be
// created in the future, to the given Writer.
func SetOutput(newOut io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers to the named file,
// opening it in append mode and creating it if needed. It returns a closer
// for the file. An empty name reverts the output to discard and returns a
// no-op closer.
func SetOutputFile(fname string) (io.Closer, error) {
	if fname == "" {
		SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	SetOutput(file)
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
