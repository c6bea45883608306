package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
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
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxThemeNameLength   = 100
	MaxStyleNameLength   = 50 // chroma style names are short
	MaxTitleLength       = 200
	MaxAuthorLength      = 100
	MaxDescriptionLength = 500
)

// Tab width bounds for code blocks.
const (
	MinTabWidth = 1
	MaxTabWidth = 16
)

// AppName names the per-user config directory.
const AppName = "go-md2docx"

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Theme    ThemeConfig    `yaml:"theme"`
	Code     CodeConfig     `yaml:"code"`
	Document DocumentConfig `yaml:"document"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultFile string `yaml:"defaultFile"` // Used when no source argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultFile string `yaml:"defaultFile"` // Used when neither argument nor --output is given
}

// ThemeConfig selects the document theme.
type ThemeConfig struct {
	Name     string `yaml:"name"`     // Theme name or path to a YAML file (empty = default)
	BasePath string `yaml:"basePath"` // Directory searched before embedded themes
}

// CodeConfig defines code block rendering.
type CodeConfig struct {
	Highlight bool   `yaml:"highlight"`
	Style     string `yaml:"style"`    // chroma style name (empty = github)
	TabWidth  int    `yaml:"tabWidth"` // 0 = default
}

// DocumentConfig holds core properties written into the document.
type DocumentConfig struct {
	Title       string `yaml:"title"` // Empty = first H1, then file name
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
}

// Validate checks field lengths and ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultFile", c.Input.DefaultFile, MaxPathLength},
		{"output.defaultFile", c.Output.DefaultFile, MaxPathLength},
		{"theme.name", c.Theme.Name, MaxPathLength},
		{"theme.basePath", c.Theme.BasePath, MaxPathLength},
		{"code.style", c.Code.Style, MaxStyleNameLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.description", c.Document.Description, MaxDescriptionLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Theme.Name != "" && !fileutil.IsFilePath(c.Theme.Name) {
		if err := validateFieldLength("theme.name", c.Theme.Name, MaxThemeNameLength); err != nil {
			return err
		}
	}

	if c.Output.DefaultFile != "" && !fileutil.HasExtension(c.Output.DefaultFile, ".docx") {
		return fmt.Errorf("%w: output.defaultFile must end in .docx, got %q", ErrInvalidValue, c.Output.DefaultFile)
	}

	if c.Code.TabWidth != 0 && (c.Code.TabWidth < MinTabWidth || c.Code.TabWidth > MaxTabWidth) {
		return fmt.Errorf("%w: code.tabWidth must be between %d and %d, got %d",
			ErrInvalidValue, MinTabWidth, MaxTabWidth, c.Code.TabWidth)
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

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultFile: "input.md"},
		Output: OutputConfig{DefaultFile: "output.docx"},
		Theme:  ThemeConfig{Name: "default"},
		Code:   CodeConfig{Highlight: false, Style: "github", TabWidth: 4},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	err := yamlutil.ReadFileStrict(configPath, cfg)
	switch {
	case err == nil, errors.Is(err, yamlutil.ErrNilData):
		// An empty file keeps every default.
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	default:
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// the current directory, then <user config dir>/go-md2docx/, each with
// .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
