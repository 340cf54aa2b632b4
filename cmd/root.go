/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hartogjr/lcte/pkg/logger"
	"github.com/hartogjr/lcte/pkg/singleton"
	specs "github.com/hartogjr/lcte/pkg/specs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cliName = `Copyright (c) 2020-2026 Simon de Hartog

lcte - Lightweight C++ Template Engine tooling

Distributed under the terms of the BSD 3-Clause License.
`
)

var (
	BuildTime   string
	BuildCommit string
)

func initConfig(config *specs.LcteConfig) {
	// Set env variable
	config.Viper.SetEnvPrefix(specs.LCTE_ENV_PREFIX)
	config.Viper.BindEnv("config")
	config.Viper.SetDefault("config", "")

	config.Viper.AutomaticEnv()

	// Create EnvKey Replacer for handle complex structure
	replacer := strings.NewReplacer(".", "__", "-", "_")
	config.Viper.SetEnvKeyReplacer(replacer)

	// Set config file name (without extension)
	config.Viper.SetConfigName(specs.LCTE_CONFIGNAME)

	config.Viper.SetTypeByDefaultValue(true)
}

func initCommand(rootCmd *cobra.Command, config *specs.LcteConfig) {
	var pflags = rootCmd.PersistentFlags()

	pflags.StringP("config", "c", "", "lcte configuration file")
	pflags.BoolP("debug", "d", config.Viper.GetBool("general.debug"),
		"Enable debug output.")
	pflags.String("log-destination", config.Viper.GetString("logging.destination"),
		"Logging destination: stderr, stdout or syslog.")

	config.Viper.BindPFlag("config", pflags.Lookup("config"))
	config.Viper.BindPFlag("general.debug", pflags.Lookup("debug"))
	config.Viper.BindPFlag("logging.destination", pflags.Lookup("log-destination"))

	rootCmd.AddCommand(
		logCmdCommand(config),
		pipeCmdCommand(),
		configCmdCommand(config),
		levelsCmdCommand(),
	)
}

func exit(code int) {
	singleton.RunExitHooks()
	os.Exit(code)
}

func Execute() {
	// Create Main Instance Config object
	var config *specs.LcteConfig = specs.NewLcteConfig(nil)

	initConfig(config)

	var rootCmd = &cobra.Command{
		Use:          "lcte",
		Short:        cliName,
		Version:      fmt.Sprintf("%s-g%s %s", specs.LCTE_VERSION, BuildCommit, BuildTime),
		Args:         cobra.OnlyValidArgs,
		SilenceUsage: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				cmd.Help()
				exit(0)
			}
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			var v *viper.Viper = config.Viper

			v.SetConfigType("yml")
			if v.Get("config") == "" {
				config.Viper.AddConfigPath(".")
			} else {
				v.SetConfigFile(v.Get("config").(string))
			}

			// Parse configuration file
			err = config.Unmarshal()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				exit(1)
			}

			// Initialize logger
			if err = logger.Setup(config); err != nil {
				fmt.Fprintln(os.Stderr, "Error on initialize logger: "+err.Error())
				exit(1)
			}
		},
	}

	initCommand(rootCmd, config)

	// Start command execution
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exit(1)
	}

	singleton.RunExitHooks()
}
