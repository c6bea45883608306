// Package textutil measures and normalizes text by display width.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the tab stop used for code blocks when none is configured.
const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces up to the next tab stop.
// Columns are counted in display cells, so wide runes advance by two.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, ru := range text {
		switch ru {
		case '\t':
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		case '\n':
			builder.WriteRune(ru)
			column = 0
			continue
		}
		builder.WriteRune(ru)
		width := runewidth.RuneWidth(ru)
		if width < 1 {
			width = 1
		}
		column += width
	}
	return builder.String()
}

// DisplayWidth reports the printable width of text accounting for wide runes
// and grapheme clusters.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}
