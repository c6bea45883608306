package md2docx

import (
	"io"

	"github.com/alnah/go-md2docx/internal/docx"
)

// Recording fakes for docx.Builder. Each appended block is kept in order so
// tests can assert on the exact document structure.

type recordedRun struct {
	Text  string
	Style docx.RunStyle
}

type recordedParagraph struct {
	Heading     int // 0 = body paragraph
	Runs        []recordedRun
	IndentLeft  float64
	IndentRight float64
	SpaceBefore float64
	SpaceAfter  float64
	List        docx.ListKind
}

func (p *recordedParagraph) AddRun(text string, style docx.RunStyle) {
	p.Runs = append(p.Runs, recordedRun{Text: text, Style: style})
}

func (p *recordedParagraph) SetIndent(left, right float64) {
	p.IndentLeft, p.IndentRight = left, right
}

func (p *recordedParagraph) SetSpacing(before, after float64) {
	p.SpaceBefore, p.SpaceAfter = before, after
}

func (p *recordedParagraph) SetList(kind docx.ListKind) { p.List = kind }

// text concatenates the run texts.
func (p *recordedParagraph) text() string {
	var s string
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}

type recordedTable struct {
	Style docx.TableStyle
	Cells [][]*recordedParagraph
}

func (t *recordedTable) Rows() int { return len(t.Cells) }

func (t *recordedTable) Cols() int {
	if len(t.Cells) == 0 {
		return 0
	}
	return len(t.Cells[0])
}

func (t *recordedTable) Cell(row, col int) docx.Paragraph {
	return t.Cells[row][col]
}

type recordingBuilder struct {
	Font    string
	Size    float64
	Meta    docx.Metadata
	Blocks  []any // *recordedParagraph or *recordedTable
	SaveErr error
	Saved   bool
}

func (b *recordingBuilder) SetDefaultFont(family string, size float64) {
	b.Font, b.Size = family, size
}

func (b *recordingBuilder) SetMetadata(meta docx.Metadata) { b.Meta = meta }

func (b *recordingBuilder) AddHeading(level int) docx.Paragraph {
	p := &recordedParagraph{Heading: level}
	b.Blocks = append(b.Blocks, p)
	return p
}

func (b *recordingBuilder) AddParagraph() docx.Paragraph {
	p := &recordedParagraph{}
	b.Blocks = append(b.Blocks, p)
	return p
}

func (b *recordingBuilder) AddTable(rows, cols int, style docx.TableStyle) docx.Table {
	t := &recordedTable{Style: style, Cells: make([][]*recordedParagraph, rows)}
	for i := range t.Cells {
		t.Cells[i] = make([]*recordedParagraph, cols)
		for j := range t.Cells[i] {
			t.Cells[i][j] = &recordedParagraph{}
		}
	}
	b.Blocks = append(b.Blocks, t)
	return t
}

func (b *recordingBuilder) Save(w io.Writer) error {
	if b.SaveErr != nil {
		return b.SaveErr
	}
	b.Saved = true
	_, err := io.WriteString(w, "recorded")
	return err
}

// paragraphs returns the recorded blocks that are paragraphs.
func (b *recordingBuilder) paragraphs() []*recordedParagraph {
	var ps []*recordedParagraph
	for _, blk := range b.Blocks {
		if p, ok := blk.(*recordedParagraph); ok {
			ps = append(ps, p)
		}
	}
	return ps
}
