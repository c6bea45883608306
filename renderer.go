package md2docx

import (
	"context"
	"strings"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/pipeline"
	"github.com/alnah/go-md2docx/internal/textutil"
)

// renderer writes translated blocks into a document builder.
// All visual settings come from theme.
type renderer struct {
	theme       *Theme
	builder     docx.Builder
	highlighter pipeline.CodeHighlighter // nil = plain code blocks
	tabWidth    int
}

// render appends blocks in order, checking ctx between blocks.
func (r *renderer) render(ctx context.Context, blocks []pipeline.Block) error {
	for i := range blocks {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.renderBlock(&blocks[i])
	}
	return nil
}

func (r *renderer) renderBlock(b *pipeline.Block) {
	switch b.Kind {
	case pipeline.BlockBlank:
		r.builder.AddParagraph()
	case pipeline.BlockHeading:
		r.heading(b.Level, b.Text)
	case pipeline.BlockRule:
		r.rule()
	case pipeline.BlockListItem:
		r.listItem(b.Ordered, b.Text)
	case pipeline.BlockCheckbox:
		r.checkbox(b.Checked, b.Text)
	case pipeline.BlockTable:
		r.table(b.Rows)
	case pipeline.BlockCode:
		r.code(b.Lang, b.Lines)
	case pipeline.BlockParagraph:
		r.inline(r.builder.AddParagraph(), b.Text)
	}
}

// heading renders levels 1-3 with heading styles and deeper levels as a
// styled body paragraph. Heading text is not inline formatted.
func (r *renderer) heading(level int, text string) {
	var (
		p     docx.Paragraph
		style TextStyle
	)
	switch level {
	case 1:
		p, style = r.builder.AddHeading(1), r.theme.Heading1
	case 2:
		p, style = r.builder.AddHeading(2), r.theme.Heading2
	case 3:
		p, style = r.builder.AddHeading(3), r.theme.Heading3
	default:
		p, style = r.builder.AddParagraph(), r.theme.Heading4
	}
	p.AddRun(text, runStyle(style))
}

func (r *renderer) rule() {
	rule := r.theme.Rule
	r.builder.AddParagraph().AddRun(strings.Repeat(rule.Char, rule.Width), docx.RunStyle{Color: rule.Color})
}

func (r *renderer) listItem(ordered bool, text string) {
	p := r.builder.AddParagraph()
	if ordered {
		p.SetList(docx.ListNumber)
	} else {
		p.SetList(docx.ListBullet)
	}
	r.inline(p, text)
}

// checkbox renders the glyph and the item text as one plain run.
func (r *renderer) checkbox(checked bool, text string) {
	glyph := r.theme.Checkbox.Unchecked
	if checked {
		glyph = r.theme.Checkbox.Checked
	}
	p := r.builder.AddParagraph()
	p.SetIndent(r.theme.Checkbox.Indent, 0)
	p.AddRun(glyph+" "+text, docx.RunStyle{})
}

// table renders rows with the first one as header. Cells are plain text.
func (r *renderer) table(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	cols := len(rows[0])
	t := r.builder.AddTable(len(rows), cols, docx.TableStyle{
		Name:       r.theme.Table.Style,
		BorderHex:  r.theme.Table.BorderColor,
		HeaderFill: r.theme.Table.HeaderFill,
		Widths:     textutil.ColumnWeights(rows, cols),
	})

	header := docx.RunStyle{Bold: r.theme.Table.HeaderBold}
	for i, row := range rows {
		style := docx.RunStyle{}
		if i == 0 {
			style = header
		}
		for j, cell := range row {
			if cell != "" {
				t.Cell(i, j).AddRun(cell, style)
			}
		}
	}
}

// code renders a fenced block as one indented paragraph with line breaks.
// With a highlighter each token becomes its own run; tokenizer errors fall
// back to a single plain run.
func (r *renderer) code(lang string, lines []string) {
	cs := r.theme.Code
	p := r.builder.AddParagraph()
	p.SetIndent(cs.IndentLeft, cs.IndentRight)
	p.SetSpacing(cs.SpaceBefore, cs.SpaceAfter)

	expanded := make([]string, len(lines))
	for i, line := range lines {
		expanded[i] = textutil.ExpandTabs(line, r.tabWidth)
	}
	text := strings.Join(expanded, "\n")
	base := docx.RunStyle{Font: cs.Font, Size: cs.Size, Color: cs.Color}

	if r.highlighter != nil {
		if tokens, err := r.highlighter.Highlight(lang, text); err == nil {
			for _, tok := range tokens {
				style := base
				if tok.Color != "" {
					style.Color = tok.Color
				}
				style.Bold = tok.Bold
				style.Italic = tok.Italic
				p.AddRun(tok.Text, style)
			}
			return
		}
	}
	p.AddRun(text, base)
}

// inline appends text as bold, italic, code and plain runs.
func (r *renderer) inline(p docx.Paragraph, text string) {
	for _, span := range pipeline.ParseInline(text) {
		var style docx.RunStyle
		switch span.Kind {
		case pipeline.SpanBold:
			style.Bold = true
		case pipeline.SpanItalic:
			style.Italic = true
		case pipeline.SpanCode:
			style = runStyle(r.theme.InlineCode)
		}
		p.AddRun(span.Text, style)
	}
}

func runStyle(s TextStyle) docx.RunStyle {
	return docx.RunStyle{
		Bold:   s.Bold,
		Italic: s.Italic,
		Font:   s.Font,
		Size:   s.Size,
		Color:  s.Color,
	}
}
