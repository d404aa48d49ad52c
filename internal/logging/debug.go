package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
)

var (
	mu      sync.Mutex
	logger  = log.New(os.Stderr, "", log.LstdFlags|log.LUTC)
	verbose atomic.Bool
)

// DebugEnabled returns true if debug mode is enabled via TASKS_DEBUG environment variable
// or SetVerbose.
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv("TASKS_DEBUG") != ""
}

// SetVerbose turns debug output on or off regardless of TASKS_DEBUG
func SetVerbose(on bool) {
	verbose.Store(on)
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		output("DEBUG", fmt.Sprintf(format, args...))
	}
}

// Debugln prints a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		output("DEBUG", fmt.Sprint(args...))
	}
}

// Infof logs an informational message.
func Infof(format string, args ...interface{}) {
	output("INFO", fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	output("ERROR", fmt.Sprintf(format, args...))
}

// SetOutput redirects all log output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := logger.Writer()
	logger.SetOutput(w)
	return prev
}

func output(level, msg string) {
	mu.Lock()
	defer mu.Unlock()
	logger.Printf("level=%s %s", level, msg)
}
