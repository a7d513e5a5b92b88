// Package config loads CLI settings from .conflict.yml, CONFLICT_* environment
// variables and command flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/simonhull/firebird-suite/conflict/input"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".conflict.yml"

// Config holds the settings shared by all commands.
type Config struct {
	Dest           string   `mapstructure:"dest" yaml:"dest,omitempty"`
	UI             string   `mapstructure:"ui" yaml:"ui"`
	DryRun         bool     `mapstructure:"dry_run" yaml:"dry_run"`
	Pager          bool     `mapstructure:"pager" yaml:"pager"`
	PagerThreshold int      `mapstructure:"pager_threshold" yaml:"pager_threshold"`
	Streams        bool     `mapstructure:"streams" yaml:"streams"`
	IncludeHidden  bool     `mapstructure:"include_hidden" yaml:"include_hidden"`
	Ignore         []string `mapstructure:"ignore" yaml:"ignore,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		UI:             input.KindExpand,
		PagerThreshold: 40,
	}
}

// flagKeys maps command flag names to config keys.
var flagKeys = map[string]string{
	"dest":            "dest",
	"ui":              "ui",
	"dry-run":         "dry_run",
	"pager":           "pager",
	"pager-threshold": "pager_threshold",
	"streams":         "streams",
	"include-hidden":  "include_hidden",
	"ignore":          "ignore",
}

// LoadOptions says where to look for settings.
type LoadOptions struct {
	Fs    afero.Fs       // Default: OS filesystem
	Dir   string         // Directory searched for .conflict.yml (default ".")
	File  string         // Explicit config file; must exist when set
	Flags *pflag.FlagSet // Flags overriding file and environment (optional)
}

// Load reads the config. A missing .conflict.yml is not an error.
func Load(opts LoadOptions) (*Config, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}

	v := viper.New()
	v.SetFs(opts.Fs)

	def := Default()
	v.SetDefault("dest", def.Dest)
	v.SetDefault("ui", def.UI)
	v.SetDefault("dry_run", def.DryRun)
	v.SetDefault("pager", def.Pager)
	v.SetDefault("pager_threshold", def.PagerThreshold)
	v.SetDefault("streams", def.Streams)
	v.SetDefault("include_hidden", def.IncludeHidden)
	v.SetDefault("ignore", def.Ignore)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(opts.Dir)
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("CONFLICT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if !slices.Contains(input.Kinds, c.UI) {
		return fmt.Errorf("invalid ui %q (use: %s)", c.UI, strings.Join(input.Kinds, ", "))
	}
	if c.PagerThreshold < 0 {
		return fmt.Errorf("pager_threshold must not be negative, got %d", c.PagerThreshold)
	}
	return nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes the config to path.
func Save(fsys afero.Fs, path string, c *Config) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
