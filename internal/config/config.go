package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/civicres/internal/model"
)

const (
	OnMalformedAbort = "abort"
	OnMalformedSkip  = "skip"

	FormatJSON    = "json"
	FormatParquet = "parquet"
)

// Config holds all runtime configuration for a civicclean run.
type Config struct {
	InputPath     string
	ResultPath    string
	ConfigPath    string
	DryRun        bool
	LogFormat     string   `validate:"oneof=text json"`
	LogLevel      string   `validate:"oneof=debug info warn error"`
	OnMalformed   string   `validate:"oneof=abort skip"`
	Format        string   `validate:"oneof=json parquet"`
	ResourceTypes []string // subset of model.AllResourceTypes to emit
}

// FileConfig is the on-disk YAML structure. Empty fields leave Config untouched.
type FileConfig struct {
	LogFormat     string   `yaml:"log_format"`
	LogLevel      string   `yaml:"log_level"`
	OnMalformed   string   `yaml:"on_malformed"`
	Format        string   `yaml:"format"`
	ResourceTypes []string `yaml:"resource_types"`
}

// Default returns a Config with every optional setting at its default.
func Default() Config {
	return Config{
		LogFormat:   "text",
		LogLevel:    "info",
		OnMalformed: OnMalformedAbort,
		Format:      FormatJSON,
	}
}

// ReadFile parses a YAML config file.
func ReadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &fc, nil
}

// Merge copies non-empty file values into c. explicit reports whether a flag
// was set on the command line; those values win over the file.
func (c *Config) Merge(fc *FileConfig, explicit func(flag string) bool) {
	if explicit == nil {
		explicit = func(string) bool { return false }
	}
	set := func(dst *string, flag, v string) {
		if v != "" && !explicit(flag) {
			*dst = v
		}
	}
	set(&c.LogFormat, "log-format", fc.LogFormat)
	set(&c.LogLevel, "log-level", fc.LogLevel)
	set(&c.OnMalformed, "on-malformed", fc.OnMalformed)
	set(&c.Format, "format", fc.Format)
	if len(fc.ResourceTypes) > 0 {
		c.ResourceTypes = fc.ResourceTypes
	}
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	fc, err := ReadFile(path)
	if err != nil {
		return err
	}
	c.Merge(fc, nil)
	return c.validateResourceTypes()
}

// validateResourceTypes checks that every entry in ResourceTypes is a known type.
// If ResourceTypes is empty, it defaults to all AllResourceTypes names.
func (c *Config) validateResourceTypes() error {
	if len(c.ResourceTypes) == 0 {
		c.ResourceTypes = model.ResourceTypeNames()
		return nil
	}
	for _, name := range c.ResourceTypes {
		if _, ok := model.ResourceTypeByName(name); !ok {
			return fmt.Errorf("unknown resource type %q in config", name)
		}
	}
	return nil
}

// Emits reports whether resources of the given type are written.
func (c *Config) Emits(resourceType string) bool {
	if len(c.ResourceTypes) == 0 {
		return true
	}
	for _, name := range c.ResourceTypes {
		if name == resourceType {
			return true
		}
	}
	return false
}

var validate = validator.New()

// Validate checks the input file and option values.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.InputPath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return translate(err)
	}
	return c.validateResourceTypes()
}

// ValidateWithResult checks Validate plus the output path.
func (c *Config) ValidateWithResult() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ResultPath == "" {
		return fmt.Errorf("--result is required")
	}
	return nil
}

func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s %q must be one of [%s]", fe.Field(), fe.Value(), fe.Param()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
