package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// ErrHighlight indicates code tokenization failed.
var ErrHighlight = errors.New("code highlighting failed")

// CodeToken is a run of code sharing one highlight style.
// Color is a "#rrggbb" hex string, or "" to keep the theme's code color.
type CodeToken struct {
	Text   string
	Color  string
	Bold   bool
	Italic bool
}

// CodeHighlighter splits code into styled tokens.
type CodeHighlighter interface {
	Highlight(lang, code string) ([]CodeToken, error)
}

// ChromaHighlighter tokenizes code with chroma lexers and colors tokens
// with a chroma style.
type ChromaHighlighter struct {
	style *chroma.Style
}

// NewChromaHighlighter creates a ChromaHighlighter for the named style.
// Unknown names fall back to DefaultHighlightStyle.
func NewChromaHighlighter(styleName string) *ChromaHighlighter {
	return &ChromaHighlighter{style: resolveStyle(styleName)}
}

// resolveStyle looks up a chroma style by name. styles.Get answers unknown
// names with styles.Fallback, which is replaced here by DefaultHighlightStyle.
func resolveStyle(name string) *chroma.Style {
	if name == "" {
		return styles.Get(DefaultHighlightStyle)
	}
	style := styles.Get(name)
	if style == styles.Fallback && name != styles.Fallback.Name {
		return styles.Get(DefaultHighlightStyle)
	}
	return style
}

// Highlight tokenizes code. The lexer is chosen by language tag, then by
// content analysis, then plain text.
func (h *ChromaHighlighter) Highlight(lang, code string) ([]CodeToken, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var tokens []CodeToken
	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		entry := h.style.Get(tok.Type)
		ct := CodeToken{
			Text:   tok.Value,
			Bold:   entry.Bold == chroma.Yes,
			Italic: entry.Italic == chroma.Yes,
		}
		if entry.Colour.IsSet() {
			ct.Color = entry.Colour.String()
		}
		tokens = append(tokens, ct)
	}

	return trimAddedNewline(tokens, code), nil
}

// trimAddedNewline removes the final newline some lexers append to input
// that did not end with one.
func trimAddedNewline(tokens []CodeToken, code string) []CodeToken {
	if len(tokens) == 0 || strings.HasSuffix(code, "\n") {
		return tokens
	}
	last := &tokens[len(tokens)-1]
	last.Text = strings.TrimSuffix(last.Text, "\n")
	if last.Text == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
