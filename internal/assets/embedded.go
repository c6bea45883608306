package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed themes/*.yaml
var themes embed.FS

// EmbeddedLoader loads themes from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTheme loads a theme from embedded assets by name.
func (e *EmbeddedLoader) LoadTheme(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	for _, ext := range themeExtensions {
		content, err := themes.ReadFile("themes/" + name + ext)
		if err == nil {
			return content, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
}

// ListThemes returns the names of the embedded themes.
func (e *EmbeddedLoader) ListThemes() ([]string, error) {
	entries, err := fs.ReadDir(themes, "themes")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return themeNames(entries), nil
}

// themeNames extracts sorted, de-duplicated theme names from directory entries.
func themeNames(entries []fs.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if !slices.Contains(themeExtensions, ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
