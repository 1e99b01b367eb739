package logger

import (
	"io"
	"os"
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	// globalLogger holds the singleton logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Get returns a singleton logger configured with the provided level.
// The first call initializes the logger; subsequent calls ignore the level
// and return the already initialized instance.
func Get(level string) *Logger {
	return GetTo(level, os.Stdout)
}

// GetTo is Get with an explicit destination. The interactive menu logs to
// stderr so its prompts on stdout stay readable.
func GetTo(level string, w io.Writer) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level, w)
	})
	return globalLogger
}
