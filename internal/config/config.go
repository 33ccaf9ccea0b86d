// Package config loads the settings of the ftl tool from a TOML or YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Format is the format of a configuration file
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota
	// FormatYAML represents YAML format
	FormatYAML
	// FormatAuto detects the format from the file extension
	FormatAuto
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// FileNames are the names Find looks for, in order
var FileNames = []string{".ftl.toml", ".ftl.yaml", ".ftl.yml"}

// Config holds the settings of the ftl tool.
// Command line flags take precedence over these values.
type Config struct {
	// WithSpans includes spans in printed syntax trees
	WithSpans bool `toml:"with_spans" yaml:"with_spans"`
	// WithJunk keeps junk entries when formatting
	WithJunk bool `toml:"with_junk" yaml:"with_junk"`
	// Color enables styled diagnostics
	Color bool `toml:"color" yaml:"color"`
	// Jobs limits the number of files processed at the same time
	Jobs int `toml:"jobs" yaml:"jobs"`
	// Include holds the doublestar globs used when a directory is given instead of files
	Include []string `toml:"include" yaml:"include"`
}

// Default returns the settings used when there is no configuration file
func Default() *Config {
	return &Config{
		WithJunk: true,
		Jobs:     runtime.NumCPU(),
		Include:  []string{"**/*.ftl"},
	}
}

// Find returns the path of the first configuration file present in dir or an empty string if there is none
func Find(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads a configuration file on top of the default settings
func Load(path string, format Format) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if format == FormatAuto {
		format = detectFormat(path)
	}

	config, err := Parse(content, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse decodes configuration content on top of the default settings.
// Unknown keys are rejected.
func Parse(content []byte, format Format) (*Config, error) {
	config := Default()

	switch format {
	case FormatTOML, FormatAuto:
		meta, err := toml.Decode(string(content), config)
		if err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the settings for values the tool cannot work with
func (config *Config) Validate() error {
	if config.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", config.Jobs)
	}
	for _, pattern := range config.Include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid include pattern %q", pattern)
		}
	}
	return nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
