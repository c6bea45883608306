package pipeline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TitleExtractor finds the document title in Markdown source.
type TitleExtractor interface {
	ExtractTitle(content string) string
}

// GoldmarkTitleExtractor reads the first level-1 heading from the goldmark AST.
// Unlike the line translator it follows CommonMark, so "#tag" is not a
// heading and setext headings ("Title\n=====") are.
type GoldmarkTitleExtractor struct {
	md goldmark.Markdown
}

// NewGoldmarkTitleExtractor creates a GoldmarkTitleExtractor.
func NewGoldmarkTitleExtractor() *GoldmarkTitleExtractor {
	return &GoldmarkTitleExtractor{md: goldmark.New()}
}

// ExtractTitle returns the plain text of the first level-1 heading,
// or "" when there is none.
func (e *GoldmarkTitleExtractor) ExtractTitle(content string) string {
	src := []byte(content)
	doc := e.md.Parser().Parse(text.NewReader(src))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level != 1 {
			return ast.WalkSkipChildren, nil
		}
		title = nodeText(h, src)
		return ast.WalkStop, nil
	})
	return strings.TrimSpace(title)
}

// nodeText concatenates the text segments below n, dropping emphasis markers.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
