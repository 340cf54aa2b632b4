/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	. "github.com/hartogjr/lcte/pkg/logger"
)

// fakeSyslog records what the logger hands to the system log.
type fakeSyslog struct {
	mux      sync.Mutex
	ident    string
	facility Facility
	lines    map[string][]string
	closed   bool
	closeErr error
}

func (f *fakeSyslog) record(prio, m string) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.lines == nil {
		f.lines = map[string][]string{}
	}
	f.lines[prio] = append(f.lines[prio], m)
	return nil
}

func (f *fakeSyslog) Err(m string) error     { return f.record("err", m) }
func (f *fakeSyslog) Warning(m string) error { return f.record("warning", m) }
func (f *fakeSyslog) Notice(m string) error  { return f.record("notice", m) }
func (f *fakeSyslog) Info(m string) error    { return f.record("info", m) }
func (f *fakeSyslog) Debug(m string) error   { return f.record("debug", m) }

func (f *fakeSyslog) Close() error {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.closed = true
	return f.closeErr
}

func (f *fakeSyslog) Lines(prio string) []string {
	f.mux.Lock()
	defer f.mux.Unlock()
	return append([]string{}, f.lines[prio]...)
}

func (f *fakeSyslog) IsClosed() bool {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.closed
}

// fakeDialer hands out fakeSyslog writers and remembers them.
type fakeDialer struct {
	opened   []*fakeSyslog
	fail     bool
	closeErr error
}

func (d *fakeDialer) Dial(ident string, facility Facility) (SyslogWriter, error) {
	if d.fail {
		return nil, errors.New("connection refused")
	}
	w := &fakeSyslog{ident: ident, facility: facility, closeErr: d.closeErr}
	d.opened = append(d.opened, w)
	return w, nil
}

func (d *fakeDialer) Last() *fakeSyslog {
	if len(d.opened) == 0 {
		return nil
	}
	return d.opened[len(d.opened)-1]
}

var fixedTime = time.Date(2020, time.March, 4, 5, 6, 7, 8000, time.UTC)

func fixedClock() time.Time { return fixedTime }
func fixedTid() int         { return 4242 }

// openDescriptors counts the descriptors of this process that refer to
// path. It needs /proc, so it only works on Linux.
func openDescriptors(path string) int {
	want, err := filepath.EvalSymlinks(path)
	if err != nil {
		want = path
	}

	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		return -1
	}

	n := 0
	for _, e := range entries {
		target, err := os.Readlink(filepath.Join("/proc/self/fd", e.Name()))
		if err == nil && target == want {
			n++
		}
	}
	return n
}
