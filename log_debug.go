//go:build debug

package dissect

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[dissect DEBUG] ", log.LstdFlags)

// logDebugf writes a debug message to the stderr logger.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
