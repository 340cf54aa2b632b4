/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"fmt"
	"runtime"

	"github.com/hartogjr/lcte/pkg/singleton"

	"github.com/pkg/errors"
)

var defaultLogger = singleton.New(New, func(l *Logger) {
	l.Close()
}, singleton.WithAutoClose())

// Instance returns the process wide logger, building it on first use. It
// starts without a destination: configure it with Stream, Stderror,
// Syslog or Configure before logging.
func Instance() *Logger {
	return defaultLogger.Instance()
}

// Close tears the process wide logger down. The next Instance call
// returns a fresh, unconfigured logger.
func Close() {
	defaultLogger.Close()
}

func IsConstructed() bool {
	return defaultLogger.IsConstructed()
}

// logAt logs on the process wide logger on behalf of the function skip
// frames above it. Logging before any destination is set is a programming
// error and panics, other failures are dropped.
func logAt(skip int, level Level, format string, args []interface{}) string {
	if level == Debug && !debugEnabled {
		return ""
	}

	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		file = "???"
		line = 0
	}

	out, err := Instance().Log(file, line, level, format, args...)
	if errors.Is(err, ErrNoStream) {
		panic(err)
	}
	return out
}

func Debugf(format string, args ...interface{}) string {
	return logAt(1, Debug, format, args)
}

func Infof(format string, args ...interface{}) string {
	return logAt(1, Info, format, args)
}

func Noticef(format string, args ...interface{}) string {
	return logAt(1, Notice, format, args)
}

func Warningf(format string, args ...interface{}) string {
	return logAt(1, Warning, format, args)
}

func Errorf(format string, args ...interface{}) string {
	return logAt(1, Error, format, args)
}

// Check logs at level when cond does not hold and returns cond, so the
// caller can act on it:
//
//	if !logger.Check(n > 0, logger.Warning, "empty input") {
//		return nil
//	}
func Check(cond bool, level Level, format string, args ...interface{}) bool {
	if !cond {
		logAt(1, level, format, args)
	}
	return cond
}

// Checkf logs at level when cond does not hold and returns an error
// carrying the logged line. It returns nil when cond holds.
func Checkf(cond bool, level Level, format string, args ...interface{}) error {
	if cond {
		return nil
	}

	out := logAt(1, level, format, args)
	if out == "" {
		// Filtered out, the error still needs a text
		out = formatMessage(format, args)
	}
	return errors.New(out)
}

// Fatalf logs at Error level, runs the exit hooks and exits with 1. When
// the line can't be logged the message goes to stderr instead.
func Fatalf(format string, args ...interface{}) {
	_, file, line, _ := runtime.Caller(1)

	out, err := Instance().Log(file, line, Error, format, args...)
	if out == "" || err != nil {
		fmt.Fprintln(errOutput, formatMessage(format, args))
	}

	singleton.RunExitHooks()
	exit(1)
}
