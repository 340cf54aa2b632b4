/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package cmd

import (
	"io"

	"github.com/hartogjr/lcte/pkg/logger"

	"github.com/spf13/cobra"
)

func pipeCmdCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "pipe [OPTIONS]",
		Short: "Log every line read from stdin.",
		Long: `Reads stdin until EOF and emits each non empty line as one log line.

$> make 2>&1 | lcte pipe --level notice --file make
`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			levelName, _ := cmd.Flags().GetString("level")
			file, _ := cmd.Flags().GetString("file")

			level, err := logger.ParseLevel(levelName)
			if err != nil {
				logger.Fatalf("%s", err.Error())
			}

			w := logger.NewWriter(logger.Instance(), level, file)
			if _, err = io.Copy(w, cmd.InOrStdin()); err == nil {
				err = w.Close()
			}
			if err != nil {
				logger.Fatalf("%s", err.Error())
			}
		},
	}

	flags := cmd.Flags()
	flags.String("level", "info", "Severity: error, warning, notice, info or debug.")
	flags.String("file", "stdin", "Source name reported in the lines.")

	return cmd
}
