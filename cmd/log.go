/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package cmd

import (
	"strconv"
	"strings"

	"github.com/hartogjr/lcte/pkg/logger"
	specs "github.com/hartogjr/lcte/pkg/specs"

	"github.com/spf13/cobra"
)

// formatVerbs returns the verb of every placeholder of format in order,
// skipping %% pairs. A '*' width or precision takes an argument of its own
// and is reported as a '*' verb.
func formatVerbs(format string) []byte {
	verbs := []byte{}
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			continue
		}
		for ; i < len(format); i++ {
			c := format[i]
			if c == '*' {
				verbs = append(verbs, c)
			} else if !strings.ContainsRune("+-# 0123456789.[]", rune(c)) {
				verbs = append(verbs, c)
				break
			}
		}
	}
	return verbs
}

// parseArgs converts shell words to the types the printf verbs of format
// expect. Words that don't parse, or that feed a string verb, stay strings.
func parseArgs(format string, words []string) []interface{} {
	verbs := formatVerbs(format)
	ans := make([]interface{}, 0, len(words))
	for idx, w := range words {
		var verb byte
		if idx < len(verbs) {
			verb = verbs[idx]
		}

		var arg interface{} = w
		switch verb {
		case 'd':
			if i, err := strconv.ParseInt(w, 10, 64); err == nil {
				arg = i
			}
		case '*':
			if i, err := strconv.Atoi(w); err == nil {
				arg = i
			}
		case 'x', 'X', 'o', 'O', 'b', 'c', 'U':
			if i, err := strconv.ParseInt(w, 0, 64); err == nil {
				arg = i
			}
		case 'e', 'E', 'f', 'F', 'g', 'G':
			if f, err := strconv.ParseFloat(w, 64); err == nil {
				arg = f
			}
		}
		ans = append(ans, arg)
	}
	return ans
}

func logCmdCommand(config *specs.LcteConfig) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "log [OPTIONS] FORMAT [ARGS...]",
		Aliases: []string{"l"},
		Short:   "Write a message through the configured logger.",
		Long: `Formats ARGS into the printf style FORMAT and emits one log line to
the configured destination. Arguments of numeric verbs (%d, %x, %f, ...) are
passed as numbers, everything else as strings.

$> lcte log --level warning "disk at %d%%" 91

$> LCTE_LOGGING__DESTINATION=syslog lcte log "backup done"
`,
		Args: cobra.MinimumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("level")
			if _, err := logger.ParseLevel(level); err != nil {
				logger.Fatalf("%s", err.Error())
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			levelName, _ := cmd.Flags().GetString("level")
			file, _ := cmd.Flags().GetString("file")
			line, _ := cmd.Flags().GetInt("line")

			level, _ := logger.ParseLevel(levelName)
			if level == logger.None {
				return
			}

			_, err := logger.Instance().Log(file, line, level, args[0], parseArgs(args[0], args[1:])...)
			if err != nil {
				logger.Fatalf("%s", err.Error())
			}
		},
	}

	flags := cmd.Flags()
	flags.String("level", "info", "Severity: error, warning, notice, info or debug.")
	flags.String("file", config.Viper.GetString("logging.ident"), "Source name reported in the line.")
	flags.Int("line", 0, "Source line reported in the line.")

	return cmd
}
