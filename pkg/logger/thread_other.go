//go:build !linux

/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"os"
)

// Without gettid the process id is the best stable identifier.
func threadID() int {
	return os.Getpid()
}
