package core

import (
	"path/filepath"
	"runtime"
)

// Caller returns the base file name and line number skip frames up
// the calling goroutine's stack. When the information is unavailable
// it reports "???" and line 0.
func Caller(skip int) (file string, line int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0
	}
	return filepath.Base(file), line
}
