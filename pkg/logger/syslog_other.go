//go:build windows || plan9

/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"github.com/pkg/errors"
)

func dialSyslog(ident string, facility Facility) (syslogWriter, error) {
	return nil, errors.New("syslog is not available on this platform")
}
