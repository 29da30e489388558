package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2tex/internal/fileutil"
	"github.com/alnah/go-md2tex/internal/pipeline"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength    = 200  // Title page heading
	MaxSubtitleLength = 200  // Title page subtitle
	MaxTaglineLength  = 200  // Title page tagline
	MaxHeaderLength   = 100  // Running header text
	MaxDateLength     = 50   // "auto:DD MMMM YYYY" or a literal date
	MaxLanguageLength = 30   // babel option, e.g. "swedish", "ngerman"
	MaxNameLength     = 64   // Template name
	MaxPathLength     = 4096 // Directory and file paths
	MaxCaptionLength  = 200  // Table caption
	MaxLabelLength    = 100  // Table label
)

// searchDir is the directory under the user config dir searched by name.
const searchDir = "go-md2tex"

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Template TemplateConfig `yaml:"template"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// DocumentConfig defines the title page and preamble values.
type DocumentConfig struct {
	Title    string `yaml:"title"`    // "auto" = first H1 of the document
	Subtitle string `yaml:"subtitle"` // Empty = "ChatGPT Deep Research"
	Tagline  string `yaml:"tagline"`  // Empty = "Underlag framtagen av AI"
	Header   string `yaml:"header"`   // Running header; empty = subtitle
	Date     string `yaml:"date"`     // Empty = \today; "auto", "auto:FORMAT" or literal
	Language string `yaml:"language"` // babel language; empty = "swedish"
}

// TemplateConfig defines which document template wraps the body.
type TemplateConfig struct {
	Name      string `yaml:"name"`      // Template name or path (empty = "report")
	AssetPath string `yaml:"assetPath"` // Directory with templates/{name}.tex (empty = embedded only)
}

// PipelineConfig defines conversion stage options.
type PipelineConfig struct {
	Variant   string       `yaml:"variant"`   // "extended" (default) or "basic"
	MathPatch *bool        `yaml:"mathPatch"` // nil = enabled
	Tables    TablesConfig `yaml:"tables"`
}

// TablesConfig defines table conversion options.
type TablesConfig struct {
	Caption  string `yaml:"caption"`
	Label    string `yaml:"label"`
	Numbered bool   `yaml:"numbered"`
}

// PipelineOptions converts the pipeline section into pipeline options.
func (c *Config) PipelineOptions() pipeline.Options {
	opts := pipeline.DefaultOptions()
	if c.Pipeline.Variant != "" {
		opts.Variant = pipeline.Variant(strings.ToLower(c.Pipeline.Variant))
	}
	if c.Pipeline.MathPatch != nil {
		opts.MathPatch = *c.Pipeline.MathPatch
	}
	opts.Table = pipeline.TableOptions{
		Caption:  c.Pipeline.Tables.Caption,
		Label:    c.Pipeline.Tables.Label,
		Numbered: c.Pipeline.Tables.Numbered,
	}
	return opts
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.subtitle", c.Document.Subtitle, MaxSubtitleLength},
		{"document.tagline", c.Document.Tagline, MaxTaglineLength},
		{"document.header", c.Document.Header, MaxHeaderLength},
		{"document.date", c.Document.Date, MaxDateLength},
		{"document.language", c.Document.Language, MaxLanguageLength},
		{"template.name", c.Template.Name, MaxPathLength},
		{"template.assetPath", c.Template.AssetPath, MaxPathLength},
		{"pipeline.tables.caption", c.Pipeline.Tables.Caption, MaxCaptionLength},
		{"pipeline.tables.label", c.Pipeline.Tables.Label, MaxLabelLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Document.Language != "" && !isBabelOption(c.Document.Language) {
		return fmt.Errorf("%w: document.language %q (letters only)", ErrInvalidValue, c.Document.Language)
	}

	if err := c.PipelineOptions().Validate(); err != nil {
		return fmt.Errorf("%w: pipeline.variant: %v", ErrInvalidValue, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// isBabelOption reports whether s is a plain ASCII letter sequence.
// Anything else could break out of \usepackage[...]{babel}.
func isBabelOption(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// DefaultConfig returns a configuration where every field uses its default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2tex/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, searchDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
