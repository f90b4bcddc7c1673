package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the runtime settings shared by the CLI and the server.
type Config struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	TopCategories  int    `mapstructure:"top_categories"`
	Port           string `mapstructure:"port"`
	CategoriesFile string `mapstructure:"categories_file"`
	OutputPath     string `mapstructure:"output_path"`
}

// flagBindings maps config keys to the CLI flags that may override them.
var flagBindings = map[string]string{
	"top_categories":  "top",
	"currency_symbol": "currency",
	"port":            "port",
	"output_path":     "output",
}

// Build loads configuration from an optional YAML file, BANK_SUMMARY_*
// environment variables and any matching command-line flags, in increasing
// precedence.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("currency_symbol", "₦")
	v.SetDefault("top_categories", 5)
	v.SetDefault("port", "3000")
	v.SetDefault("categories_file", "")
	v.SetDefault("output_path", "")

	v.SetEnvPrefix("BANK_SUMMARY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
