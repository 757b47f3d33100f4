package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings shared by all commands. Container format
// constants are not configurable.
type Config struct {
	Workers  int    `mapstructure:"workers"`
	Suffix   string `mapstructure:"suffix"`
	Keys     string `mapstructure:"keys"`
	Key      string `mapstructure:"key"`
	LogLevel string `mapstructure:"log_level"`
}

// config keys and the command line flags that override them
var configFlags = map[string]string{
	"workers":   "workers",
	"suffix":    "suffix",
	"keys":      "keys",
	"key":       "key",
	"log_level": "log-level",
}

// loadConfig reads the optional config file, then OZIP_* environment
// variables, then the flags set on cmd. Later sources win.
func loadConfig(cmd *cobra.Command, name string) (*Config, error) {
	v := viper.New()
	if name != "" {
		v.SetConfigFile(name)
	} else {
		v.SetConfigName("ozip2zip")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ozip2zip")
		v.AddConfigPath("/etc/ozip2zip")
	}

	v.SetDefault("workers", 0)
	v.SetDefault("suffix", ".zip")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("OZIP")
	v.AutomaticEnv()

	for key, flag := range configFlags {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &config, nil
}
