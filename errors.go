package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	// Conversion errors.
	ErrSourceRead  = errors.New("failed to read source")
	ErrOutputWrite = errors.New("failed to write output")
	ErrRender      = errors.New("failed to render document")

	// Source encoding error, wrapped by ErrSourceRead.
	ErrInvalidEncoding = errors.New("source is not valid UTF-8")

	// Theme errors.
	ErrInvalidTheme  = errors.New("invalid theme")
	ErrThemeNotFound = errors.New("theme not found")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Option errors.
	ErrInvalidTabWidth = errors.New("invalid tab width")
)
