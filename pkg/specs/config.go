/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs

import (
	v "github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	LCTE_CONFIGNAME = "lcte"
	LCTE_ENV_PREFIX = "LCTE"
	LCTE_VERSION    = `0.1.0`

	DestinationStderr = "stderr"
	DestinationStdout = "stdout"
	DestinationSyslog = "syslog"
)

type LcteConfig struct {
	Viper *v.Viper `yaml:"-" json:"-"`

	General LcteGeneral `mapstructure:"general" json:"general,omitempty" yaml:"general,omitempty"`
	Logging LcteLogging `mapstructure:"logging" json:"logging,omitempty" yaml:"logging,omitempty"`
}

type LcteGeneral struct {
	Debug bool `mapstructure:"debug,omitempty" json:"debug,omitempty" yaml:"debug,omitempty"`
}

type LcteLogging struct {
	// One of stderr, stdout or syslog
	Destination string `mapstructure:"destination,omitempty" json:"destination,omitempty" yaml:"destination,omitempty"`
	// Log level
	Level string `mapstructure:"level,omitempty" json:"level,omitempty" yaml:"level,omitempty"`

	// Program identification used with syslog
	Ident string `mapstructure:"ident,omitempty" json:"ident,omitempty" yaml:"ident,omitempty"`
	// Syslog facility name, for example local0
	Facility string `mapstructure:"facility,omitempty" json:"facility,omitempty" yaml:"facility,omitempty"`

	// Characters to strip from the beginning of source file names
	Strip int `mapstructure:"strip,omitempty" json:"strip,omitempty" yaml:"strip,omitempty"`
	// Maximum size of a formatted message, 0 disables truncation
	MaxMessageSize int `mapstructure:"max_message_size,omitempty" json:"max_message_size,omitempty" yaml:"max_message_size,omitempty"`

	// Path of the logfile
	Path string `mapstructure:"path,omitempty" json:"path,omitempty" yaml:"path,omitempty"`
	// Enable/Disable logging to file
	EnableLogFile bool `mapstructure:"enable_logfile,omitempty" json:"enable_logfile,omitempty" yaml:"enable_logfile,omitempty"`
	// Enable JSON format logging in file
	JsonFormat bool `mapstructure:"json_format,omitempty" json:"json_format,omitempty" yaml:"json_format,omitempty"`

	// Enable emoji
	EnableEmoji bool `mapstructure:"enable_emoji,omitempty" json:"enable_emoji,omitempty" yaml:"enable_emoji,omitempty"`
	// Enable/Disable color in logging
	Color bool `mapstructure:"color,omitempty" json:"color,omitempty" yaml:"color,omitempty"`
}

func NewLcteConfig(viper *v.Viper) *LcteConfig {
	if viper == nil {
		viper = v.New()
	}

	GenDefault(viper)
	return &LcteConfig{Viper: viper}
}

func (c *LcteConfig) GetGeneral() *LcteGeneral {
	return &c.General
}

func (c *LcteConfig) GetLogging() *LcteLogging {
	return &c.Logging
}

func (c *LcteConfig) Unmarshal() error {
	err := c.Viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return err
		}
		// else: Config file not found; ignore error
	}

	return c.Viper.Unmarshal(&c)
}

func (c *LcteConfig) Yaml() ([]byte, error) {
	return yaml.Marshal(c)
}

func GenDefault(viper *v.Viper) {
	viper.SetDefault("general.debug", false)

	viper.SetDefault("logging.destination", DestinationStderr)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.ident", LCTE_CONFIGNAME)
	viper.SetDefault("logging.facility", "local0")
	viper.SetDefault("logging.strip", 0)
	viper.SetDefault("logging.max_message_size", 8192)
	viper.SetDefault("logging.enable_logfile", false)
	viper.SetDefault("logging.path", "/var/log/lcte.log")
	viper.SetDefault("logging.json_format", false)
	viper.SetDefault("logging.enable_emoji", false)
	viper.SetDefault("logging.color", false)
}

func (g *LcteGeneral) HasDebug() bool {
	return g.Debug
}

func (l *LcteLogging) ToSyslog() bool {
	return l.Destination == DestinationSyslog
}
