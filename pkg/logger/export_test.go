/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"io"
	"time"
)

type SyslogWriter = syslogWriter

var (
	CountPlaceholders = countPlaceholders
	FormatMessage     = formatMessage
	Truncate          = truncate
)

func SetSyslogDialer(fn func(ident string, facility Facility) (SyslogWriter, error)) func() {
	old := syslogDialer
	syslogDialer = fn
	return func() { syslogDialer = old }
}

func SetExit(fn func(int), w io.Writer) func() {
	oldExit, oldOut := exit, errOutput
	exit, errOutput = fn, w
	return func() { exit, errOutput = oldExit, oldOut }
}

func (l *Logger) SetClock(now func() time.Time, tid func() int) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.now = now
	l.tid = tid
}
