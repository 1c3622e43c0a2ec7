// SPDX-License-Identifier: MIT

// Package config resolves the command-line configuration from defaults, an
// optional config file, ROWREDUCE_* environment variables and flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rowreduce/elimination"
	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/numfmt"
)

// EnvPrefix prefixes every environment variable, e.g. ROWREDUCE_LOG_LEVEL.
const EnvPrefix = "ROWREDUCE"

// Keys understood by Load. Flag names are identical.
const (
	KeyConfig   = "config"
	KeyMode     = "mode"
	KeyOutput   = "output"
	KeyDigits   = "digits"
	KeyLogLevel = "log-level"
	KeyEpsilon  = "epsilon"
)

// Output formats.
const (
	OutputText  = "text"
	OutputLaTeX = "latex"
	OutputYAML  = "yaml"
	OutputJSON  = "json"
)

var (
	// ErrInvalid is wrapped by every validation failure in Load.
	ErrInvalid = errors.New("config: invalid value")
	// ErrRead is wrapped when the config file cannot be read.
	ErrRead = errors.New("config: cannot read config file")
)

// Config is the resolved CLI configuration.
type Config struct {
	Mode     elimination.Mode
	Output   string
	Digits   int
	LogLevel logrus.Level
	Epsilon  float64
	// File is the config file that was read, if any.
	File string
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyMode, "rref")
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyDigits, numfmt.SnapshotDigits)
	v.SetDefault(KeyLogLevel, logrus.WarnLevel.String())
	v.SetDefault(KeyEpsilon, matrix.DefaultEpsilon)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// AddFlags registers the persistent configuration flags on fs and binds them to v.
func AddFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String(KeyConfig, "", "Path to a YAML, JSON or TOML config file")
	fs.StringP(KeyMode, "m", "rref", "Terminal form: ref or rref")
	fs.StringP(KeyOutput, "o", OutputText, "Output format: text, latex, yaml or json")
	fs.Int(KeyDigits, numfmt.SnapshotDigits, "Decimal places shown in matrix snapshots")
	fs.String(KeyLogLevel, logrus.WarnLevel.String(), "Log level: panic, fatal, error, warn, info, debug or trace")
	fs.Float64(KeyEpsilon, matrix.DefaultEpsilon, "Zero threshold for pivots and ranks")

	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("config: bind flags: %w", err)
	}

	return nil
}

// Load reads the optional config file named by KeyConfig and validates every key.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{File: v.GetString(KeyConfig)}
	if cfg.File != "" {
		v.SetConfigFile(cfg.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrRead, cfg.File, err)
		}
	}

	mode, err := elimination.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyMode, err)
	}
	cfg.Mode = mode

	cfg.Output = strings.ToLower(strings.TrimSpace(v.GetString(KeyOutput)))
	switch cfg.Output {
	case OutputText, OutputLaTeX, OutputYAML, OutputJSON:
	case "yml":
		cfg.Output = OutputYAML
	case "tex":
		cfg.Output = OutputLaTeX
	default:
		return nil, fmt.Errorf("%w: %s: %q not recognized", ErrInvalid, KeyOutput, cfg.Output)
	}

	cfg.Digits = v.GetInt(KeyDigits)
	if cfg.Digits < 0 || cfg.Digits > 15 {
		return nil, fmt.Errorf("%w: %s: %d out of range [0, 15]", ErrInvalid, KeyDigits, cfg.Digits)
	}

	cfg.LogLevel, err = logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err)
	}

	cfg.Epsilon = v.GetFloat64(KeyEpsilon)
	if !(cfg.Epsilon > 0) || math.IsInf(cfg.Epsilon, 0) {
		return nil, fmt.Errorf("%w: %s: %g must be positive and finite", ErrInvalid, KeyEpsilon, cfg.Epsilon)
	}

	return cfg, nil
}
