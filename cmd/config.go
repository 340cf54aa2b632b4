/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package cmd

import (
	"fmt"

	"github.com/hartogjr/lcte/pkg/logger"
	specs "github.com/hartogjr/lcte/pkg/specs"

	"github.com/spf13/cobra"
)

func configCmdCommand(config *specs.LcteConfig) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "config",
		Aliases: []string{"c"},
		Short:   "Show the effective configuration.",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			data, err := config.Yaml()
			if err != nil {
				logger.Fatalf("%s", err.Error())
			}

			fmt.Print(string(data))
		},
	}

	return cmd
}
