package lib

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Config holds the defaults a user can pin in a TOML file passed with
// --config. Flags given on the command line always win.
type Config struct {
	Formats    []string `toml:"formats"`
	Recursive  *bool    `toml:"recursive"`
	IgnoreFile string   `toml:"ignore_file"`
	LogLevel   string   `toml:"log_level"`
	LogFormat  string   `toml:"log_format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	recursive := true
	return Config{
		Formats:    SupportedFormats(),
		Recursive:  &recursive,
		IgnoreFile: DefaultIgnoreFilename,
		LogLevel:   "warn",
		LogFormat:  LogFormatAuto,
	}
}

// LoadConfig reads a TOML config file and layers it over DefaultConfig.
// An empty path returns the defaults. Unknown keys are rejected.
func LoadConfig(fsys afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Config{}, fmt.Errorf("%w: opening %s: %w", ErrIO, path, err)
	}
	defer file.Close()

	var fileCfg Config
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fileCfg); err != nil {
		return Config{}, fmt.Errorf("%w: config %s: %w", ErrParse, path, err)
	}

	if len(fileCfg.Formats) > 0 {
		cfg.Formats = fileCfg.Formats
	}
	if fileCfg.Recursive != nil {
		cfg.Recursive = fileCfg.Recursive
	}
	if fileCfg.IgnoreFile != "" {
		cfg.IgnoreFile = fileCfg.IgnoreFile
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogFormat != "" {
		cfg.LogFormat = fileCfg.LogFormat
	}
	return cfg, nil
}

// ScanOptions converts the config into scanner options.
func (c Config) ScanOptions() ScanOptions {
	opts := DefaultScanOptions()
	if len(c.Formats) > 0 {
		opts.Formats = c.Formats
	}
	if c.Recursive != nil {
		opts.Recursive = *c.Recursive
	}
	if c.IgnoreFile != "" {
		opts.IgnoreFile = c.IgnoreFile
	}
	return opts
}
