// SPDX-License-Identifier: Unlicense OR MIT

// Package log provides the named, leveled loggers used across the
// module. Every package owns one logger named after it; verbosity is
// set globally and may be overridden per logger name.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

// Level is a logging verbosity, ordered from most to least verbose.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levelNames = [...]string{
	Debug:   "debug",
	Info:    "info",
	Notice:  "notice",
	Warning: "warning",
	Error:   "error",
}

var backendLevels = [...]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

func (l Level) String() string {
	if l < Debug || l > Error {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel returns the level named s, ignoring case. "warn" is
// accepted for Warning.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warn" {
		return Warning, nil
	}
	for l, name := range levelNames {
		if name == s {
			return Level(l), nil
		}
	}
	return 0, fmt.Errorf("log: unknown level %q", s)
}

// Logger is implemented by the loggers returned from New.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Noticef(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

var (
	colorFormat = logging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{level:.4s} %{module:-8s}%{color:reset} %{message}`,
	)
	plainFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{module:-8s} %{message}`,
	)
)

var (
	mu        sync.Mutex
	formatted logging.Backend
	backend   logging.LeveledBackend
	level   = Warning
	// modules holds the per-logger overrides of level.
	modules = map[string]Level{}
)

// New creates a logger named after the calling package.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink sends log records to sink. Records are colored only when
// color is set. Levels survive the change.
func SetSink(sink io.Writer, color bool) {
	mu.Lock()
	defer mu.Unlock()
	format := plainFormat
	if color {
		format = colorFormat
	}
	formatted = logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	install()
}

// SetLevel sets the verbosity of loggers without an override.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	apply()
}

// SetModuleLevel overrides the verbosity of the logger named module.
func SetModuleLevel(module string, l Level) {
	mu.Lock()
	defer mu.Unlock()
	modules[module] = l
	apply()
}

// ResetModuleLevels drops every override set with SetModuleLevel.
func ResetModuleLevels() {
	mu.Lock()
	defer mu.Unlock()
	clear(modules)
	install()
}

// ParseModuleLevels applies overrides written as "name=level" pairs,
// for example "imgui=debug".
func ParseModuleLevels(specs []string) error {
	for _, s := range specs {
		name, lvl, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return fmt.Errorf("log: malformed module level %q", s)
		}
		l, err := ParseLevel(lvl)
		if err != nil {
			return err
		}
		SetModuleLevel(name, l)
	}
	return nil
}

// install replaces the leveled backend, dropping stale overrides.
// Callers hold mu.
func install() {
	backend = logging.AddModuleLevel(formatted)
	logging.SetBackend(backend)
	apply()
}

// apply pushes the levels to the backend. Callers hold mu.
func apply() {
	backend.SetLevel(backendLevels[level], "")
	for m, l := range modules {
		backend.SetLevel(backendLevels[l], m)
	}
}

func init() {
	SetSink(os.Stderr, true)
}
