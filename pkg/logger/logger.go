/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrInvalidStream = errors.New("unable to write log output to a nil stream")
	ErrNoStream      = errors.New("asked to log to stream, but no stream is set")
)

type syslogWriter interface {
	Err(m string) error
	Warning(m string) error
	Notice(m string) error
	Info(m string) error
	Debug(m string) error
	Close() error
}

// syslogDialer opens the system log. Tests replace it.
var syslogDialer = dialSyslog

// Logger writes one formatted line per call to either a stream or the
// system log. Use New for a private handle or Instance for the process
// wide one.
type Logger struct {
	maxLevel   atomic.Uint32
	maxMessage atomic.Int64

	mux sync.Mutex

	// Stream destination, owned by the caller
	stream io.Writer
	// Syslog destination, owned by the logger
	syslog syslogWriter
	// Kept for the lifetime of the open syslog handle
	ident    string
	facility Facility
	// Characters to strip from the beginning of file names
	strip int

	decorator   *decorator
	mirror      *zap.Logger
	mirrorClose func()

	now func() time.Time
	tid func() int
}

func New() *Logger {
	l := &Logger{
		decorator: newDecorator(false, false),
		now:       time.Now,
		tid:       threadID,
	}
	l.maxLevel.Store(uint32(Debug))
	l.maxMessage.Store(DefaultMaxMessageSize)
	return l
}

func (l *Logger) MaxLevel() Level {
	return Level(l.maxLevel.Load())
}

func (l *Logger) SetMaxLevel(level Level) {
	l.maxLevel.Store(uint32(level))
}

// SetMaxMessageSize sets the capacity of a substituted message. Longer
// messages are truncated and marked. Zero or less disables truncation.
func (l *Logger) SetMaxMessageSize(n int) {
	l.maxMessage.Store(int64(n))
}

func (l *Logger) SetColor(enable bool) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.decorator = newDecorator(enable, l.decorator.emoji)
}

func (l *Logger) SetEmoji(enable bool) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.decorator = newDecorator(l.decorator.color, enable)
}

// DestSyslog reports whether the system log is the active destination.
func (l *Logger) DestSyslog() bool {
	l.mux.Lock()
	defer l.mux.Unlock()
	return l.syslog != nil
}

// Ident returns the program identification of the open system log.
func (l *Logger) Ident() string {
	l.mux.Lock()
	defer l.mux.Unlock()
	return l.ident
}

func (l *Logger) Strip() int {
	l.mux.Lock()
	defer l.mux.Unlock()
	return l.strip
}

// Log formats and emits one line and returns it. An empty format, a level
// less urgent than MaxLevel or a non loggable level make it a no-op that
// returns an empty string. Logging to a stream destination that was never
// configured fails with ErrNoStream.
func (l *Logger) Log(file string, line int, level Level, format string, args ...interface{}) (string, error) {
	if format == "" || !level.valid() {
		return "", nil
	}

	max := l.MaxLevel()
	if max == None || level > max {
		return "", nil
	}

	l.mux.Lock()
	defer l.mux.Unlock()

	toSyslog := l.syslog != nil
	if !toSyslog && l.stream == nil {
		return "", ErrNoStream
	}

	msg := formatMessage(format, args)
	if !toSyslog {
		msg = l.decorator.message(msg)
	}
	msg = truncate(msg, int(l.maxMessage.Load()))

	file = stripPath(file, l.strip)
	out := header(l.now(), l.tid(), file, line)
	if toSyslog {
		out += msg
		if err := l.writeSyslog(level, out); err != nil {
			return out, err
		}
	} else {
		out += levelNames[level] + " " + msg
		if _, err := io.WriteString(l.stream, l.decorator.line(out, level)+"\n"); err != nil {
			return out, errors.Wrap(err, "write log line")
		}
	}

	if l.mirror != nil {
		l.log2File(file, line, level, msg)
	}

	return out, nil
}

func (l *Logger) writeSyslog(level Level, m string) error {
	var err error

	switch level {
	case Error:
		err = l.syslog.Err(m)
	case Warning:
		err = l.syslog.Warning(m)
	case Notice:
		err = l.syslog.Notice(m)
	case Info:
		err = l.syslog.Info(m)
	default:
		err = l.syslog.Debug(m)
	}

	if err != nil {
		return errors.Wrap(err, "write to syslog")
	}
	return nil
}

// Stream makes w the destination of all following lines. An open system
// log is closed first; w becomes the destination even when that close
// fails, the failure is returned. w is never closed by the logger.
func (l *Logger) Stream(w io.Writer, strip int) error {
	if w == nil {
		return ErrInvalidStream
	}

	l.mux.Lock()
	defer l.mux.Unlock()

	err := l.closeSyslog()
	l.strip = strip
	l.stream = w

	return err
}

// Stderror writes all following lines to stderr.
func (l *Logger) Stderror(strip int) error {
	return l.Stream(os.Stderr, strip)
}

// Syslog writes all following lines to the system log with the given
// program identification. It returns false without effect when the
// system log is already open.
func (l *Logger) Syslog(ident string, facility Facility, strip int) (bool, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	if l.syslog != nil {
		return false, nil
	}

	w, err := syslogDialer(ident, facility)
	if err != nil {
		return false, errors.Wrap(err, "unable to open syslog")
	}

	l.ident = ident
	l.facility = facility
	l.strip = strip
	l.syslog = w
	l.stream = nil

	return true, nil
}

func (l *Logger) closeSyslog() error {
	if l.syslog == nil {
		return nil
	}

	err := l.syslog.Close()
	l.syslog = nil
	l.ident = ""
	if err != nil {
		return errors.Wrap(err, "close syslog")
	}
	return nil
}

// Close releases the system log and the file mirror and forgets the
// stream. The logger can be configured again afterwards.
func (l *Logger) Close() error {
	l.mux.Lock()
	defer l.mux.Unlock()

	err := l.closeSyslog()
	l.stream = nil
	l.closeMirror()

	return err
}
