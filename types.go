package md2docx

import (
	"github.com/alnah/go-md2docx/internal/textutil"
)

// Input is one conversion request.
type Input struct {
	Markdown string // Source text; may be empty

	// Core properties. An empty Title falls back to the first level-1
	// heading, then to SourceName without its extension.
	Title       string
	Author      string
	Description string

	// SourceName is the source file name, used only for the title fallback.
	SourceName string
}

// ConvertResult holds the serialized document and conversion statistics.
type ConvertResult struct {
	DOCX   []byte // .docx package bytes
	Title  string // Title written to the core properties
	Blocks int    // Blocks rendered, blank lines included
	Lines  int    // Source lines consumed
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds options that are resolved in NewConverter.
type converterConfig struct {
	theme          *Theme
	themeName      string // name or path, resolved through the asset loader
	assetPath      string
	highlight      bool
	highlightStyle string
	tabWidth       int
}

// Tab width bounds.
const (
	MinTabWidth = 1
	MaxTabWidth = 16
)

// WithTheme sets the theme directly. It takes precedence over WithThemeName.
func WithTheme(t *Theme) Option {
	return func(c *Converter) {
		c.cfg.theme = t
	}
}

// WithThemeName selects a theme by built-in name, custom name (see
// WithAssetPath) or path to a YAML file.
func WithThemeName(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.themeName = nameOrPath
	}
}

// WithAssetPath sets a directory whose themes/ subdirectory is searched
// before the built-in themes.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithHighlighting enables syntax coloring of fenced code blocks using the
// named chroma style. An empty style selects the default one.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// WithTabWidth sets the tab stop used to expand tabs in code blocks.
func WithTabWidth(n int) Option {
	return func(c *Converter) {
		c.cfg.tabWidth = n
	}
}

func defaultConverterConfig() converterConfig {
	return converterConfig{tabWidth: textutil.DefaultTabWidth}
}
