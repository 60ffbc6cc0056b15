// Package preview shows a rendered icon on the Linux framebuffer console.
// On other platforms it compiles to a stub that reports itself unavailable.
package preview

import "time"

// Logger matches the app logger so preview can report device state.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

const defaultHold = 2 * time.Second
