package types

import (
	"errors"
	"strings"
)

// Config holds engine and shell settings loaded from config.yaml.
type Config struct {
	Capacity  int    `json:"capacity" yaml:"capacity" mapstructure:"capacity"`
	Trials    int    `json:"trials" yaml:"trials" mapstructure:"trials"`
	LogLevel  string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`

	// RecordsFile is an optional YAML records file loaded into the stores.
	RecordsFile string `json:"records,omitempty" yaml:"records,omitempty" mapstructure:"records"`
}

// Defaults for Config fields.
const (
	DefaultCapacity  = 10
	DefaultTrials    = 100
	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatConsole
)

// Supported log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config validation errors.
var (
	ErrInvalidTrials    = errors.New("trials must be positive")
	ErrLogFormatUnknown = errors.New("unknown log format")
)

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() Config {
	return Config{
		Capacity:  DefaultCapacity,
		Trials:    DefaultTrials,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Validate checks that the Config is well-formed and returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if c.Trials <= 0 {
		return ErrInvalidTrials
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatConsole, LogFormatJSON:
	default:
		return ErrLogFormatUnknown
	}
	return nil
}
