// SPDX-License-Identifier: Unlicense OR MIT

package imgui

import (
	"bufio"
	"fmt"
	"os"
)

type logState struct {
	enabled bool
	file    *os.File
	w       *bufio.Writer
}

// LogToFile starts copying text output to path, or to IO.LogFilename
// when path is empty. Logging stops at LogFinish.
func LogToFile(path string) error {
	ctx := mustCurrent()
	if ctx.log.enabled {
		return nil
	}
	if path == "" {
		path = ctx.io.LogFilename
	}
	if path == "" {
		return fmt.Errorf("imgui: no log file name")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgui: %w", err)
	}
	ctx.log = logState{enabled: true, file: f, w: bufio.NewWriter(f)}
	return nil
}

// IsLogging reports whether text output is being logged.
func IsLogging() bool {
	return mustCurrent().log.enabled
}

// LogText writes text to the log, if logging.
func LogText(text string) {
	ctx := mustCurrent()
	if !ctx.log.enabled {
		return
	}
	ctx.log.w.WriteString(text)
}

// LogFinish flushes and closes the log.
func LogFinish() {
	ctx := mustCurrent()
	if !ctx.log.enabled {
		return
	}
	if err := ctx.log.w.Flush(); err != nil {
		logger.Warningf("flushing log: %v", err)
	}
	if err := ctx.log.file.Close(); err != nil {
		logger.Warningf("closing log: %v", err)
	}
	ctx.log = logState{}
}
