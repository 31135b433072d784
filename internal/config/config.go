// Package config loads clipreview settings from defaults, a YAML file,
// CLIPREVIEW_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix for environment overrides. A double underscore
// separates nested keys: CLIPREVIEW_UI__LIST_WIDTH sets ui.list_width.
const EnvPrefix = "CLIPREVIEW_"

// Tab names accepted by ui.initial_tab.
const (
	TabResults      = "results"
	TabParticipants = "participants"
	TabThemes       = "themes"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the application configuration.
type Config struct {
	Data   string       `koanf:"data"` // dataset YAML path, empty = built-in sample data
	Log    LogConfig    `koanf:"log"`
	UI     UIConfig     `koanf:"ui"`
	Update UpdateConfig `koanf:"update"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

// UIConfig holds layout settings for the review screen.
type UIConfig struct {
	ListWidth  int    `koanf:"list_width"`
	InitialTab string `koanf:"initial_tab"`
}

// UpdateConfig controls the background release check.
type UpdateConfig struct {
	Check bool `koanf:"check"`
}

func defaults() map[string]any {
	return map[string]any{
		"data":           "",
		"log.level":      "info",
		"log.file":       "",
		"ui.list_width":  40,
		"ui.initial_tab": TabResults,
		"update.check":   true,
	}
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"data":       "data",
	"log-level":  "log.level",
	"log-file":   "log.file",
	"list-width": "ui.list_width",
	"tab":        "ui.initial_tab",
}

// Dir returns the per-user configuration directory.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "clipreview")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "clipreview")
}

// findConfigFile picks the config file to read.
// Priority: explicit path > ./clipreview.yaml > <Dir>/config.yaml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("clipreview.yaml"); err == nil {
		return "clipreview.yaml"
	}
	if dir := Dir(); dir != "" {
		p := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load builds the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// An explicit path that does not exist is an error; a missing default file is not.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	cfgFile := findConfigFile(path)
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = cfgFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that the rest of the program relies on.
func (c *Config) Validate() error {
	var errs []error

	switch c.UI.InitialTab {
	case TabResults, TabParticipants, TabThemes:
	default:
		errs = append(errs, fmt.Errorf("ui.initial_tab %q: want one of %s, %s, %s",
			c.UI.InitialTab, TabResults, TabParticipants, TabThemes))
	}

	if c.UI.ListWidth <= 0 {
		errs = append(errs, fmt.Errorf("ui.list_width must be positive, got %d", c.UI.ListWidth))
	}

	if c.Log.Level == "" {
		errs = append(errs, errors.New("log.level must not be empty"))
	} else if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q: %w", c.Log.Level, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// RegisterFlags adds the flags understood by Load to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("data", "", "dataset YAML file (default: built-in sample data)")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-file", "", "write JSON logs to this file")
	fs.Int("list-width", 40, "width of the left list panel")
	fs.String("tab", TabResults, "initial list tab: results, participants, themes")
}
