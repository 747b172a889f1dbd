package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultOutputFile is the output filename when no override is configured.
const DefaultOutputFile = "CMakeLists.txt"

// Config represents the translator configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Output OutputConfig      `yaml:"output"`
	Groups GroupsConfig      `yaml:"groups"`
	Watch  WatchConfig       `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// OutputConfig holds the generated script's filename.
type OutputConfig struct {
	Filename string `yaml:"filename"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Filename, validation.Required),
	)
}

// GroupsConfig controls full group name construction.
//
// IncludeRoot keeps the root group's name as the first segment of every
// nested group's full name, matching the descriptor's own grouping. Dropping
// it shortens source-group names in the generated IDE projects.
type GroupsConfig struct {
	IncludeRoot bool `yaml:"include_root"`
}

// WatchConfig holds watch-mode configuration.
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DebounceMS, validation.Required, validation.Min(1), validation.Max(60000)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Output: OutputConfig{
			Filename: DefaultOutputFile,
		},
		Groups: GroupsConfig{
			IncludeRoot: true,
		},
		Watch: WatchConfig{
			DebounceMS: 200,
		},
	}
}
