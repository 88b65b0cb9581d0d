package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "BACKPACK"

	cfgKeyCapacity  = "capacity"
	cfgKeyTrials    = "trials"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
	cfgKeyRecords   = "records"
)

// envKeys are the config keys that BACKPACK_<KEY> variables override.
var envKeys = []string{cfgKeyCapacity, cfgKeyTrials, cfgKeyLogLevel, cfgKeyLogFormat}

// loadConfig reads config.yaml from configDir using Viper, layered over
// the defaults and under BACKPACK_<KEY> environment overrides for envKeys.
// It creates the config directory and a default config.yaml on first run.
func loadConfig(configDir string) (types.Config, error) {
	if err := writeConfigIfMissing(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	def := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyCapacity, def.Capacity)
	v.SetDefault(cfgKeyTrials, def.Trials)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFormat, def.LogFormat)
	v.SetDefault(cfgKeyRecords, "")
	v.SetEnvPrefix(envPrefix)
	// records is resolved by paths.ResolveRecordsFile, where the config
	// file outranks BACKPACK_RECORDS, so it is left out of env binding.
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return types.Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// writeConfigIfMissing creates configDir and a config.yaml holding the
// default values. An existing file is left alone.
func writeConfigIfMissing(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# backpack configuration\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}
