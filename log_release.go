//go:build !debug

package dissect

// logDebugf is a no-op in default builds. Build with -tags debug to enable
// the stderr logger in log_debug.go.
func logDebugf(format string, v ...interface{}) {}
