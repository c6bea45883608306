// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// ForSourceNotFound returns hints for a missing Markdown source.
// wasDefault reports whether the path came from the built-in default
// rather than the command line.
func ForSourceNotFound(path string, wasDefault bool) string {
	var hints []string

	if wasDefault {
		hints = append(hints, "pass the Markdown file as the first argument")
	}

	// Suggest a sibling with a Markdown extension when the user dropped it.
	if !fileutil.HasExtension(path, ".md", ".markdown") {
		for _, ext := range []string{".md", ".markdown"} {
			if fileutil.FileExists(path + ext) {
				hints = append(hints, "did you mean "+path+ext+"?")
				break
			}
		}
	}

	return formatHints(hints)
}

// ForInvalidEncoding returns a hint for sources that are not UTF-8.
func ForInvalidEncoding() string {
	return format("save the file as UTF-8 (UTF-16 with a byte order mark is also accepted)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	sep := string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, sep+"go-md2docx"+sep) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForOutputLocked returns a hint for permission errors on an existing document.
func ForOutputLocked(path string) string {
	return format("close " + filepath.Base(path) + " if it is open in a word processor")
}

// ForThemeNotFound returns hints listing the themes that do exist.
func ForThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
