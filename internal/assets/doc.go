// Package assets provides document themes for DOCX generation.
// Themes can be loaded from embedded files or custom filesystem paths.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in themes)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver tries the custom FilesystemLoader first and falls back to
// EmbeddedLoader when the theme is not found there, so a directory may
// override a single built-in theme and leave the rest untouched.
//
// # Directory Structure
//
//	{basePath}/
//	└── themes/
//	    └── {name}.yaml          # or {name}.yml
//
// # Security
//
// Theme names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
