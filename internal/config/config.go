// Package config loads covview settings from file, environment, and
// defaults. Field tags use mapstructure for viper unmarshalling.
package config

import (
	"errors"
	"fmt"
)

// Config is the top-level configuration for covview.
type Config struct {
	FastaPath   string       `mapstructure:"fasta_path"   yaml:"fasta_path"`
	CoverageDir string       `mapstructure:"coverage_dir" yaml:"coverage_dir"`
	OutputPath  string       `mapstructure:"output_path"  yaml:"output_path"`
	Title       string       `mapstructure:"title"        yaml:"title"`
	DatasetName string       `mapstructure:"dataset_name" yaml:"dataset_name"`
	Screen      ScreenConfig `mapstructure:"screen"       yaml:"screen"`
}

// ScreenConfig holds chimera screening knobs.
type ScreenConfig struct {
	MinScore  float64 `mapstructure:"min_score"  yaml:"min_score"`
	MinLength int     `mapstructure:"min_length" yaml:"min_length"`
}

// Sentinel errors for configuration validation.
var (
	// ErrEmptyFastaPath indicates fasta_path is blank.
	ErrEmptyFastaPath = errors.New("fasta_path must not be empty")
	// ErrEmptyCoverageDir indicates coverage_dir is blank.
	ErrEmptyCoverageDir = errors.New("coverage_dir must not be empty")
	// ErrEmptyOutputPath indicates output_path is blank.
	ErrEmptyOutputPath = errors.New("output_path must not be empty")
	// ErrInvalidMinScore indicates screen.min_score is outside [0, 1].
	ErrInvalidMinScore = errors.New("screen.min_score must be in [0, 1]")
	// ErrInvalidMinLength indicates screen.min_length is negative.
	ErrInvalidMinLength = errors.New("screen.min_length must not be negative")
)

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.FastaPath == "" {
		return ErrEmptyFastaPath
	}

	if c.CoverageDir == "" {
		return ErrEmptyCoverageDir
	}

	if c.OutputPath == "" {
		return ErrEmptyOutputPath
	}

	if c.Screen.MinScore < 0 || c.Screen.MinScore > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidMinScore, c.Screen.MinScore)
	}

	if c.Screen.MinLength < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMinLength, c.Screen.MinLength)
	}

	return nil
}
