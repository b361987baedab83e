package internal

import (
	"errors"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/recipebook/internal/codec"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Store   StoreConfig       `yaml:"store"`
	Console ConsoleConfig     `yaml:"console"`
	Edit    EditConfig        `yaml:"edit"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Store.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	// LogFile receives JSON logs; empty means stderr.
	LogFile string `yaml:"log_file"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In(slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError)),
	)
}

// StoreConfig locates the recipe backing file.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the store configuration.
func (c *StoreConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required, validation.By(supportedBackingFile)),
	)
}

func supportedBackingFile(value interface{}) error {
	path, _ := value.(string)
	if _, err := codec.FormatFor(path); err != nil {
		return errors.New("must end in .yaml, .yml or .json")
	}
	return nil
}

// ConsoleConfig holds terminal presentation settings.
type ConsoleConfig struct {
	ClearScreen bool `yaml:"clear_screen"`
	Color       bool `yaml:"color"`
}

// EditConfig holds edit session behaviour.
type EditConfig struct {
	// DiscardOnAbandon rolls back in-memory changes when an edit session is
	// left without saving.
	DiscardOnAbandon bool `yaml:"discard_on_abandon"`
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Store: StoreConfig{
			Path: "./recipes.yaml",
		},
		Console: ConsoleConfig{
			ClearScreen: true,
			Color:       true,
		},
	}
}
