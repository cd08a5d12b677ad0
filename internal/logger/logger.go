/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced for
// library use and tests.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level filters which messages are written.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelSilent
)

// String returns the flag spelling of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	default:
		return "silent"
	}
}

// ParseLevel returns the level for its flag spelling.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "silent", "quiet", "none":
		return LevelSilent, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

var (
	mu sync.Mutex
	// Default logs to stderr. Set to io.Discard for silent mode.
	output io.Writer = os.Stderr
	level            = LevelInfo
	logger *log.Logger
)

func init() {
	logger = log.New(output, "", 0)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = log.New(output, "", 0)
}

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// GetLevel returns the current minimum level.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

func logf(l Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	logger.Printf(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logf(LevelWarn, "warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}
