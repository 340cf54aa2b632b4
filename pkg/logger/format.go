/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultMaxMessageSize mirrors the BUFSIZ of most libc implementations.
	DefaultMaxMessageSize = 8192

	truncatedMarker = " (truncated)"
	timeLayout      = "15:04:05.000000"
)

// countPlaceholders returns the number of single percent signs in format,
// ignoring every %% pair.
func countPlaceholders(format string) int {
	return strings.Count(strings.ReplaceAll(format, "%%", ""), "%")
}

// formatMessage substitutes args into format. A format without
// placeholders is used literally (args ignored) with %% collapsed to %.
func formatMessage(format string, args []interface{}) string {
	if countPlaceholders(format) == 0 {
		return strings.ReplaceAll(format, "%%", "%")
	}
	return fmt.Sprintf(format, args...)
}

// truncate cuts msg to at most max bytes on a rune boundary and appends
// the truncation marker. max <= 0 disables truncation.
func truncate(msg string, max int) string {
	if max <= 0 || len(msg) <= max {
		return msg
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut] + truncatedMarker
}

func stripPath(file string, strip int) string {
	if strip <= 0 || strip > len(file) {
		return file
	}
	return file[strip:]
}

// header builds "HH:MM:SS.uuuuuu [tid] file:line ".
func header(now time.Time, tid int, file string, line int) string {
	var b strings.Builder

	b.Grow(len(timeLayout) + len(file) + 24)
	b.WriteString(now.UTC().Format(timeLayout))
	b.WriteString(" [")
	b.WriteString(strconv.Itoa(tid))
	b.WriteString("] ")
	b.WriteString(file)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(line))
	b.WriteByte(' ')

	return b.String()
}
