/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

import (
	"golang.org/x/sys/unix"
)

// threadID returns the id of the OS thread running the caller.
func threadID() int {
	return unix.Gettid()
}
