//go:build !windows && !plan9

/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"log/syslog"
)

func dialSyslog(ident string, facility Facility) (syslogWriter, error) {
	return syslog.New(syslog.Priority(facility)|syslog.LOG_INFO, ident)
}
