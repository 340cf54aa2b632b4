/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package main

import (
	"github.com/hartogjr/lcte/cmd"
)

func main() {
	cmd.Execute()
}
