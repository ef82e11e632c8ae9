// Package config provides configuration management for the content pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// GenericCategory is the schema key used as the fallback for unknown categories.
const GenericCategory = "generic"

// Configuration validation errors.
var (
	ErrNoLanguages            = errors.New("generation.languages must list at least one language")
	ErrNoDefaultLanguage      = errors.New("generation.default_language is required")
	ErrUnsupportedDefault     = errors.New("generation.default_language is not in generation.languages")
	ErrNoTones                = errors.New("generation.tones must define at least one tone")
	ErrNoContentTypes         = errors.New("generation.content_types must list at least one content type")
	ErrUnknownContentType     = errors.New("generation.content_types contains unknown content type")
	ErrInvalidMaxConcurrent   = errors.New("generation.max_concurrent must be at least 1")
	ErrNoCategories           = errors.New("at least one category schema is required")
	ErrMissingGenericCategory = errors.New("categories must define a 'generic' fallback schema")
	ErrAttributeMissingKey    = errors.New("category attribute is missing a canonical key")
	ErrDuplicateAttributeKey  = errors.New("category defines the same canonical key twice")
	ErrMissingModel           = errors.New("openai.model is required")
	ErrInvalidMaxTokens       = errors.New("openai.max_tokens must be at least 1")
	ErrInvalidTemperature     = errors.New("openai.temperature must be between 0.0 and 2.0")
	ErrMissingOutputPath      = errors.New("output.base_path is required")
	ErrInvalidOutputFormat    = errors.New("output.format must be 'json' or 'jsonl'")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat       = errors.New("logging.format must be 'text' or 'json'")
	ErrMissingAPIKey          = errors.New("OPENAI_API_KEY environment variable is not set")
)

// Config represents the complete pipeline configuration.
type Config struct {
	OpenAI     OpenAIConfig              `yaml:"openai"`
	Generation GenerationConfig          `yaml:"generation"`
	Categories map[string]CategorySchema `yaml:"categories"`
	Output     OutputConfig              `yaml:"output"`
	Logging    LoggingConfig             `yaml:"logging"`
}

// OpenAIConfig contains model call settings.
type OpenAIConfig struct {
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// GenerationConfig contains the enumerated generation options.
type GenerationConfig struct {
	Languages       []string          `yaml:"languages"`
	DefaultLanguage string            `yaml:"default_language"`
	Tones           map[string]string `yaml:"tones"`
	ContentTypes    []string          `yaml:"content_types"`
	MaxConcurrent   int               `yaml:"max_concurrent"`
}

// CategorySchema describes one product category: its canonical attributes
// with alias tables and brief-extraction patterns, plus prompt hints.
type CategorySchema struct {
	Audience   string          `yaml:"audience"`
	Attributes []AttributeSpec `yaml:"attributes"`
}

// AttributeSpec defines a single canonical attribute for a category.
type AttributeSpec struct {
	Key      string   `yaml:"key"`
	Aliases  []string `yaml:"aliases"`
	Patterns []string `yaml:"patterns"`
}

// OutputConfig defines export behavior.
type OutputConfig struct {
	BasePath    string `yaml:"base_path"`
	Format      string `yaml:"format"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration. A failure here is fatal at startup;
// no per-request fallback exists for a malformed schema registry.
func (c *Config) Validate() error {
	if c.OpenAI.Model == "" {
		return ErrMissingModel
	}

	if c.OpenAI.MaxTokens < 1 {
		return ErrInvalidMaxTokens
	}

	if c.OpenAI.Temperature < 0.0 || c.OpenAI.Temperature > 2.0 {
		return ErrInvalidTemperature
	}

	if len(c.Generation.Languages) == 0 {
		return ErrNoLanguages
	}

	if c.Generation.DefaultLanguage == "" {
		return ErrNoDefaultLanguage
	}

	if !c.IsSupportedLanguage(c.Generation.DefaultLanguage) {
		return ErrUnsupportedDefault
	}

	if len(c.Generation.Tones) == 0 {
		return ErrNoTones
	}

	if len(c.Generation.ContentTypes) == 0 {
		return ErrNoContentTypes
	}

	for _, ct := range c.Generation.ContentTypes {
		if !knownContentTypes[ct] {
			return fmt.Errorf("%w: %s", ErrUnknownContentType, ct)
		}
	}

	if c.Generation.MaxConcurrent < 1 {
		return ErrInvalidMaxConcurrent
	}

	if len(c.Categories) == 0 {
		return ErrNoCategories
	}

	if _, ok := c.Categories[GenericCategory]; !ok {
		return ErrMissingGenericCategory
	}

	for name, schema := range c.Categories {
		if err := schema.validate(name); err != nil {
			return err
		}
	}

	if c.Output.BasePath == "" {
		return ErrMissingOutputPath
	}

	if c.Output.Format != "json" && c.Output.Format != "jsonl" {
		return ErrInvalidOutputFormat
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

var knownContentTypes = map[string]bool{
	"description":    true,
	"specifications": true,
	"key_features":   true,
	"box_contents":   true,
}

func (s CategorySchema) validate(category string) error {
	seen := make(map[string]bool)

	for i, attr := range s.Attributes {
		if attr.Key == "" {
			return fmt.Errorf("%w: categories.%s.attributes[%d]", ErrAttributeMissingKey, category, i)
		}

		if seen[attr.Key] {
			return fmt.Errorf("%w: categories.%s key %q", ErrDuplicateAttributeKey, category, attr.Key)
		}

		seen[attr.Key] = true

		for _, pattern := range attr.Patterns {
			if _, err := regexp.Compile(pattern); err != nil {
				return fmt.Errorf("categories.%s.%s has invalid pattern: %w", category, attr.Key, err)
			}
		}
	}

	return nil
}

// SchemaFor returns the schema for a category, falling back to the generic
// schema when the category is unknown. The lookup is case-insensitive.
func (c *Config) SchemaFor(category string) CategorySchema {
	if schema, ok := c.Categories[strings.ToLower(strings.TrimSpace(category))]; ok {
		return schema
	}

	return c.Categories[GenericCategory]
}

// IsSupportedLanguage reports whether the language is in the supported set.
func (c *Config) IsSupportedLanguage(language string) bool {
	for _, l := range c.Generation.Languages {
		if strings.EqualFold(l, language) {
			return true
		}
	}

	return false
}

// IsSupportedTone reports whether the tone is in the supported set.
func (c *Config) IsSupportedTone(tone string) bool {
	_, ok := c.Generation.Tones[strings.ToLower(tone)]

	return ok
}

// ToneDescription returns the descriptive phrase for a tone, or the raw tone
// string when no description is configured.
func (c *Config) ToneDescription(tone string) string {
	if desc, ok := c.Generation.Tones[strings.ToLower(tone)]; ok {
		return desc
	}

	return tone
}

// RequestedContentTypes returns the configured content types in order.
func (c *Config) RequestedContentTypes() []string {
	return c.Generation.ContentTypes
}

// APIKey reads the OpenAI API key from the environment.
// Load a .env file first (godotenv) if one is used.
func APIKey() (string, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return "", ErrMissingAPIKey
	}

	return key, nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Model: %s, Languages: %d, Categories: %d, Output: %s}",
		c.OpenAI.Model,
		len(c.Generation.Languages),
		len(c.Categories),
		c.Output.BasePath,
	)
}
