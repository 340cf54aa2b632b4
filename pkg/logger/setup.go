/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"io"
	"os"

	"github.com/hartogjr/lcte/pkg/specs"

	"github.com/pkg/errors"
)

var (
	errOutput io.Writer = os.Stderr
	exit                = os.Exit
)

// Configure applies the logging section of config: threshold, message
// capacity, presentation, destination and file mirror.
func (l *Logger) Configure(config *specs.LcteConfig) error {
	lc := config.GetLogging()

	level, err := ParseLevel(lc.Level)
	if err != nil {
		return err
	}
	if config.GetGeneral().HasDebug() {
		level = Debug
	}

	l.SetMaxLevel(level)
	l.SetMaxMessageSize(lc.MaxMessageSize)
	l.SetColor(lc.Color)
	l.SetEmoji(lc.EnableEmoji)

	switch lc.Destination {
	case specs.DestinationStderr, "":
		if err := l.Stderror(lc.Strip); err != nil {
			return err
		}
	case specs.DestinationStdout:
		if err := l.Stream(os.Stdout, lc.Strip); err != nil {
			return err
		}
	case specs.DestinationSyslog:
		facility, err := ParseFacility(lc.Facility)
		if err != nil {
			return err
		}
		if _, err := l.Syslog(lc.Ident, facility, lc.Strip); err != nil {
			return err
		}
	default:
		return errors.Errorf("invalid logging destination %s", lc.Destination)
	}

	if lc.EnableLogFile {
		if err := l.OpenMirror(lc.Path, lc.JsonFormat, level); err != nil {
			return err
		}
	}

	return nil
}

// Setup configures the process wide logger.
func Setup(config *specs.LcteConfig) error {
	return Instance().Configure(config)
}
