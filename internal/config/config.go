// Package config resolves runtime settings for the spantree command.
//
// Values come, lowest priority first, from built-in defaults, the
// .spantree.yaml file, SPANTREE_* environment variables and CLI flags bound
// with viper.BindPFlag.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/katalvlaran/spantree/loader"
	"github.com/katalvlaran/spantree/report"
	"github.com/katalvlaran/spantree/tracker"
)

// EnvPrefix maps SPANTREE_METHOD to the "method" key and so on.
const EnvPrefix = "SPANTREE"

// ErrInvalid indicates a setting that Load could not accept.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds all runtime configuration for one invocation.
type Config struct {
	Method      string `mapstructure:"method"`
	Format      string `mapstructure:"format"`
	InputFormat string `mapstructure:"input_format"`
	LogLevel    string `mapstructure:"log_level"`
	Verbose     bool   `mapstructure:"verbose"`
	Verify      bool   `mapstructure:"verify"`
	ShowOrder   bool   `mapstructure:"show_order"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// Init points viper at the config file and the environment. An explicit
// cfgFile must exist; the default .spantree.yaml is optional.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".spantree")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}

	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates it.
func Load() (Config, error) {
	viper.SetDefault("method", tracker.MethodPairScan)
	viper.SetDefault("format", string(report.FormatText))
	viper.SetDefault("input_format", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("verbose", false)
	viper.SetDefault("verify", false)
	viper.SetDefault("show_order", false)
	viper.SetDefault("metrics_file", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	switch c.Method {
	case tracker.MethodPairScan, tracker.MethodUnionFind:
	default:
		return fmt.Errorf("%w: method %q", ErrInvalid, c.Method)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := loader.ParseFormat(c.InputFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}

// Level is the slog level to log at; Verbose forces debug.
func (c Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}

// ReportFormat returns the validated output format.
func (c Config) ReportFormat() report.Format {
	f, _ := report.ParseFormat(c.Format)
	return f
}

// SourceFormat returns the validated input format, or "" to guess from the path.
func (c Config) SourceFormat() loader.Format {
	if c.InputFormat == "" {
		return ""
	}
	f, _ := loader.ParseFormat(c.InputFormat)

	return f
}
