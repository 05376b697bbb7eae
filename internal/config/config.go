// Package config loads the lfenv JSON configuration: an ordered list of
// datapoints mapping listing patterns to icons, colors, and decorations.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the lfenv configuration file
type Configuration struct {
	Data []Datapoint `koanf:"data" validate:"dive"`
	// Output is the file the export statements are written to. Nil means stdout.
	Output *string `koanf:"output"`
}

// Datapoint maps a group of patterns to display attributes.
// Optional attributes are nil when absent from the config.
type Datapoint struct {
	Patterns []string `koanf:"patterns" validate:"required,min=1,dive,required"`
	Icon     *string  `koanf:"icon"`

	// Primary scheme, used for LS_COLORS
	BG         *string `koanf:"bg"`
	FG         *string `koanf:"fg"`
	Decoration *string `koanf:"decoration" validate:"omitempty,decoration"`

	// Alternate scheme, used for LF_COLORS
	LFBG         *string `koanf:"lf_bg"`
	LFFG         *string `koanf:"lf_fg"`
	LFDecoration *string `koanf:"lf_decoration" validate:"omitempty,decoration"`
}

// Load reads, parses, and validates the configuration at path.
// An empty path loads DefaultConfigPath. Every failure is a *ValidationError.
func Load(path string) (*Configuration, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if err := ValidateJSONSyntax(path); err != nil {
		return nil, err
	}

	k := koanf.New(KeyDelimiter)
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return nil, &ValidationError{
			FilePath: path,
			Message:  fmt.Sprintf("failed to load config: %v", err),
		}
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, &ValidationError{
			FilePath: path,
			Message:  fmt.Sprintf("failed to unmarshal config: %v", err),
		}
	}

	if err := ValidateConfigValues(&cfg, path); err != nil {
		return nil, err
	}

	if cfg.Output != nil {
		expanded := expandHomePath(*cfg.Output)
		cfg.Output = &expanded
	}

	return &cfg, nil
}

// OutputPath returns the configured output path and whether one is set.
// A present but empty path is still a file destination, not stdout.
func (c *Configuration) OutputPath() (string, bool) {
	if c.Output == nil {
		return "", false
	}
	return *c.Output, true
}

// ResolveDecoration returns the primary and alternate decoration names.
// The alternate falls back to the primary when lf_decoration is absent.
func (d *Datapoint) ResolveDecoration() (primary, alternate *string) {
	primary = d.Decoration
	alternate = primary
	if d.LFDecoration != nil {
		alternate = d.LFDecoration
	}
	return primary, alternate
}

// HasIcon reports whether the datapoint carries a non-empty icon.
func (d *Datapoint) HasIcon() bool {
	return d.Icon != nil && *d.Icon != ""
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

// isNotExist reports whether err means the config file does not exist.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
