// Package ercconfig loads the ERC CLI/service configuration the way
// platform-lib's pkg/config does: viper, a yaml file under ./configs,
// and ATHENA_ERC_-prefixed environment overrides.
package ercconfig

import (
	"fmt"
	"strings"

	"github.com/athena/erc-engine/pkg/erc"
	"github.com/spf13/viper"
)

// Config holds the ERC service/CLI configuration, including the default
// rule Options that `erc check` starts from unless the snapshot's options
// block or a flag overrides them. The HTTP gateway does not read these
// Options; it uses the request's options block, or erc.DefaultOptions()
// when the request has none.
type Config struct {
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	Environment string `mapstructure:"environment" yaml:"environment"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	HTTPPort    string `mapstructure:"http_port" yaml:"http_port"`

	StrictVoltageChecks bool    `mapstructure:"strict_voltage_checks" yaml:"strict_voltage_checks"`
	MaxVoltageTolerance float64 `mapstructure:"max_voltage_tolerance" yaml:"max_voltage_tolerance"`
	RequirePullUps      bool    `mapstructure:"require_pull_ups" yaml:"require_pull_ups"`
	CheckCurrentBudget  bool    `mapstructure:"check_current_budget" yaml:"check_current_budget"`
	MaxTotalCurrentMA   float64 `mapstructure:"max_total_current_ma" yaml:"max_total_current_ma"`
}

// Load loads configuration for the ERC service/CLI, falling back to
// DefaultOptions-derived values when no file or env var is present.
func Load() (*Config, error) {
	viper.SetConfigName("erc")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("/etc/athena")

	viper.SetEnvPrefix("ATHENA_ERC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading erc config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling erc config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	defaults := erc.DefaultOptions()
	viper.SetDefault("service_name", "erc-engine")
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("http_port", "8089")
	viper.SetDefault("strict_voltage_checks", defaults.StrictVoltageChecks)
	viper.SetDefault("max_voltage_tolerance", defaults.MaxVoltageTolerance)
	viper.SetDefault("require_pull_ups", defaults.RequirePullUps)
	viper.SetDefault("check_current_budget", defaults.CheckCurrentBudget)
	viper.SetDefault("max_total_current_ma", defaults.MaxTotalCurrentMA)
}

// Options converts the loaded configuration into erc.Options.
func (c *Config) Options() erc.Options {
	return erc.Options{
		StrictVoltageChecks: c.StrictVoltageChecks,
		MaxVoltageTolerance: c.MaxVoltageTolerance,
		RequirePullUps:      c.RequirePullUps,
		CheckCurrentBudget:  c.CheckCurrentBudget,
		MaxTotalCurrentMA:   c.MaxTotalCurrentMA,
	}
}
