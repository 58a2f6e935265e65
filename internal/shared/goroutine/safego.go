// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

// SafeGo launches fn in a goroutine; a panic is logged with its stack instead of
// crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go Recover(log, name, fn)
}

// Recover runs fn synchronously and converts a panic into an error log line.
func Recover(log logger.Interface, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
}
