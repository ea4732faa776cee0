package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// LogLevel wraps slog.Level so it can be parsed from YAML names like "info".
type LogLevel slog.Level

// UnmarshalYAML decodes a level name (debug, info, warn, error).
func (l *LogLevel) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("app: invalid log_level %q: %w", s, err)
	}
	*l = LogLevel(lv)
	return nil
}

// Level returns the slog representation.
func (l LogLevel) Level() slog.Level {
	return slog.Level(l)
}

// Duration wraps time.Duration so values like "300ms" parse from YAML.
type Duration time.Duration

// UnmarshalYAML decodes a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the time.Duration representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Site   SiteConfig        `yaml:"site"`
	Notes  NotesConfig       `yaml:"notes"`
	Checks ChecksConfig      `yaml:"checks"`
	Watch  WatchConfig       `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Site.Validate(); err != nil {
		return err
	}
	if err := c.Notes.Validate(); err != nil {
		return err
	}
	if err := c.Checks.Validate(); err != nil {
		return err
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel LogLevel `yaml:"log_level"`
}

// SiteConfig locates the site root and the page the accessibility lint runs
// against.
type SiteConfig struct {
	Root string `yaml:"root"`
	Page string `yaml:"page"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Page, validation.Required),
	)
}

// NotesConfig locates the notes collection within the site root.
type NotesConfig struct {
	Dir   string `yaml:"dir"`
	Index string `yaml:"index"`
}

// Validate validates the notes configuration.
func (c *NotesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.Index, validation.Required),
	)
}

// ChecksConfig enables or disables the individual checkers.
type ChecksConfig struct {
	Notes         bool `yaml:"notes"`
	Accessibility bool `yaml:"accessibility"`
}

// Validate validates the checks configuration.
func (c *ChecksConfig) Validate() error {
	if !c.Notes && !c.Accessibility {
		return fmt.Errorf("checks: at least one check must be enabled")
	}
	return nil
}

// WatchConfig controls the optional re-check-on-change loop.
type WatchConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Debounce Duration `yaml:"debounce"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	if c.Enabled && c.Debounce <= 0 {
		return fmt.Errorf("watch: debounce must be positive when watch is enabled")
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: LogLevel(slog.LevelInfo),
		},
		Site: SiteConfig{
			Root: "./site",
			Page: "index.html",
		},
		Notes: NotesConfig{
			Dir:   "notes",
			Index: "index.html",
		},
		Checks: ChecksConfig{
			Notes:         true,
			Accessibility: true,
		},
		Watch: WatchConfig{
			Enabled:  false,
			Debounce: Duration(300 * time.Millisecond),
		},
	}
}
