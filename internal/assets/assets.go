package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTheme loads a built-in theme by name using the embedded loader.
// Returns ErrThemeNotFound if the theme does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTheme(name string) ([]byte, error) {
	return defaultLoader.LoadTheme(name)
}

// ListThemes returns the names of the built-in themes.
func ListThemes() ([]string, error) {
	return defaultLoader.ListThemes()
}
