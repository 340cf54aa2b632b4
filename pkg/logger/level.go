/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Level is a severity level. Values match the syslog priorities, a lower
// value is more urgent.
type Level uint8

const (
	// None is only meaningful as a threshold: it suppresses everything.
	None    Level = 2
	Error   Level = 3
	Warning Level = 4
	Notice  Level = 5
	Info    Level = 6
	Debug   Level = 7
)

var levelNames = map[Level]string{
	Error:   "ERROR",
	Warning: "WARNING",
	Notice:  "NOTICE",
	Info:    "INFO",
	Debug:   "DEBUG",
}

// Levels returns the loggable levels, most urgent first.
func Levels() []Level {
	return []Level{Error, Warning, Notice, Info, Debug}
}

func (l Level) String() string {
	if l == None {
		return "NONE"
	}
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", uint8(l))
}

func (l Level) valid() bool {
	return l >= Error && l <= Debug
}

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None, nil
	case "error", "err":
		return Error, nil
	case "warning", "warn":
		return Warning, nil
	case "notice":
		return Notice, nil
	case "info", "":
		return Info, nil
	case "debug":
		return Debug, nil
	default:
		return Info, errors.Errorf("invalid log level %s", s)
	}
}

// Facility is a syslog facility code as described in syslog(3).
type Facility int

const (
	FacilityKern Facility = iota << 3
	FacilityUser
	FacilityMail
	FacilityDaemon
	FacilityAuth
	FacilitySyslog
	FacilityLpr
	FacilityNews
	FacilityUucp
	FacilityCron
	FacilityAuthpriv
	FacilityFtp
	_
	_
	_
	_
	FacilityLocal0
	FacilityLocal1
	FacilityLocal2
	FacilityLocal3
	FacilityLocal4
	FacilityLocal5
	FacilityLocal6
	FacilityLocal7
)

var facilityNames = map[string]Facility{
	"kern":     FacilityKern,
	"user":     FacilityUser,
	"mail":     FacilityMail,
	"daemon":   FacilityDaemon,
	"auth":     FacilityAuth,
	"syslog":   FacilitySyslog,
	"lpr":      FacilityLpr,
	"news":     FacilityNews,
	"uucp":     FacilityUucp,
	"cron":     FacilityCron,
	"authpriv": FacilityAuthpriv,
	"ftp":      FacilityFtp,
	"local0":   FacilityLocal0,
	"local1":   FacilityLocal1,
	"local2":   FacilityLocal2,
	"local3":   FacilityLocal3,
	"local4":   FacilityLocal4,
	"local5":   FacilityLocal5,
	"local6":   FacilityLocal6,
	"local7":   FacilityLocal7,
}

func ParseFacility(s string) (Facility, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "log_")
	if name == "" {
		return FacilityLocal0, nil
	}
	if f, ok := facilityNames[name]; ok {
		return f, nil
	}
	return FacilityLocal0, errors.Errorf("invalid syslog facility %s", s)
}
