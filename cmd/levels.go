/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/hartogjr/lcte/pkg/logger"

	"github.com/spf13/cobra"
)

func levelsCmdCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "levels",
		Short: "List the log levels and their syslog priority.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			current := logger.Instance().MaxLevel()
			for _, l := range logger.Levels() {
				mark := " "
				if l <= current {
					mark = "*"
				}
				fmt.Printf("%s %-8s %d\n", mark, strings.ToLower(l.String()), uint8(l))
			}
		},
	}

	return cmd
}
