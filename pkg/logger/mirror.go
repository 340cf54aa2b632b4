/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// OpenMirror copies every emitted message to the file at path, whatever
// the active destination. Messages less urgent than level are not
// mirrored. An already open mirror is replaced.
func (l *Logger) OpenMirror(path string, jsonFormat bool, level Level) error {
	sink, closeSink, err := zap.Open(path)
	if err != nil {
		return errors.Wrap(err, "error on initialize file logger")
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if jsonFormat {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, sink, level2AtomicLevel(level))
	mirror := zap.New(core, zap.ErrorOutput(zapcore.AddSync(io.Discard)))

	l.mux.Lock()
	defer l.mux.Unlock()

	l.closeMirror()
	l.mirror = mirror
	l.mirrorClose = closeSink

	return nil
}

// closeMirror flushes the mirror and releases its file.
func (l *Logger) closeMirror() {
	if l.mirror != nil {
		// Sync fails on some special files, nothing to do about it here
		_ = l.mirror.Sync()
		l.mirror = nil
	}
	if l.mirrorClose != nil {
		l.mirrorClose()
		l.mirrorClose = nil
	}
}

func level2AtomicLevel(level Level) zap.AtomicLevel {
	switch level {
	case None, Error:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	case Warning:
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case Notice, Info:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	}
}

func (l *Logger) log2File(file string, line int, level Level, msg string) {
	fields := []zap.Field{
		zap.String("file", file),
		zap.Int("line", line),
		zap.Stringer("level_name", level),
	}

	switch level {
	case Error:
		l.mirror.Error(msg, fields...)
	case Warning:
		l.mirror.Warn(msg, fields...)
	case Notice, Info:
		l.mirror.Info(msg, fields...)
	default:
		l.mirror.Debug(msg, fields...)
	}
}
