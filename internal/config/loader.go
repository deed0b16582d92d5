package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".covview"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for covview settings.
const envPrefix = "COVVIEW"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// A missing config file is not an error; defaults are used.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) && configPath == "" {
			return nil, fmt.Errorf("read config: %w", readErr)
		}

		if configPath != "" {
			// An explicit path that cannot be read is only fatal when the
			// file exists but is unreadable or invalid.
			_, statErr := os.Stat(configPath)
			if statErr == nil {
				return nil, fmt.Errorf("read config: %w", readErr)
			}
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("fasta_path", DefaultFastaPath)
	viperCfg.SetDefault("coverage_dir", DefaultCoverageDir)
	viperCfg.SetDefault("output_path", DefaultOutputPath)
	viperCfg.SetDefault("title", DefaultTitle)
	viperCfg.SetDefault("dataset_name", DefaultDatasetName)

	viperCfg.SetDefault("screen.min_score", DefaultScreenMinScore)
	viperCfg.SetDefault("screen.min_length", DefaultScreenMinLength)
}
