/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"bytes"
	"sync"
)

// LogWriter is an io.Writer that emits every complete line written to it
// as one log line at a fixed level. Text is logged verbatim, percent signs
// included. Call Flush (or Close) to emit a trailing partial line.
type LogWriter struct {
	mux    sync.Mutex
	logger *Logger
	level  Level
	file   string
	line   int
	buf    bytes.Buffer
}

// NewWriter returns a LogWriter reporting file as source and the number of
// the written line as line number.
func NewWriter(l *Logger, level Level, file string) *LogWriter {
	return &LogWriter{logger: l, level: level, file: file}
}

func (w *LogWriter) Write(p []byte) (int, error) {
	w.mux.Lock()
	defer w.mux.Unlock()

	w.buf.Write(p)
	for {
		idx := bytes.IndexByte(w.buf.Bytes(), '\n')
		if idx < 0 {
			break
		}
		text := string(bytes.TrimSuffix(w.buf.Next(idx+1)[:idx], []byte{'\r'}))
		if err := w.emit(text); err != nil {
			return len(p), err
		}
	}

	return len(p), nil
}

func (w *LogWriter) emit(text string) error {
	w.line++
	if text == "" {
		return nil
	}
	_, err := w.logger.Log(w.file, w.line, w.level, "%s", text)
	return err
}

func (w *LogWriter) Flush() error {
	w.mux.Lock()
	defer w.mux.Unlock()

	if w.buf.Len() == 0 {
		return nil
	}
	text := w.buf.String()
	w.buf.Reset()
	return w.emit(text)
}

func (w *LogWriter) Close() error {
	return w.Flush()
}
