package assets

// AssetLoader defines the contract for loading theme definitions.
type AssetLoader interface {
	// LoadTheme returns the raw YAML of a theme by name (without extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTheme(name string) ([]byte, error)

	// ListThemes returns the names of the available themes, sorted.
	ListThemes() ([]string, error)
}

// DefaultThemeName is the name of the built-in theme.
const DefaultThemeName = "default"

// themeExtensions are tried in order when looking a theme up by name.
var themeExtensions = []string{".yaml", ".yml"}
