package docx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"
)

// Heading style IDs available in a new gooxml document.
const (
	minHeadingLevel = 1
	maxHeadingLevel = 4
)

// List indentation in inches.
const (
	listIndent  = 0.5
	listHanging = 0.25
)

// Document is a Builder backed by gooxml.
// It is not safe for concurrent use.
type Document struct {
	doc *document.Document

	bullets *document.NumberingDefinition
	numbers *document.NumberingDefinition

	// seq counts appended blocks; lastNumbered is the seq of the latest
	// numbered paragraph, so a numbered run restarts after any other block.
	seq          int
	lastNumbered int
}

// Compile-time interface checks.
var (
	_ Builder   = (*Document)(nil)
	_ Paragraph = (*paragraph)(nil)
	_ Table     = (*table)(nil)
)

// NewDocument creates an empty document with gooxml's default styles.
func NewDocument() *Document {
	return &Document{doc: document.New(), lastNumbered: -1}
}

// SetDefaultFont sets the font of the Normal style, which every other
// paragraph style inherits.
func (d *Document) SetDefaultFont(family string, size float64) {
	normal, ok := d.findStyle("Normal")
	if !ok {
		normal = d.doc.Styles.AddStyle("Normal", wml.ST_StyleTypeParagraph, true)
		normal.SetName("Normal")
	}
	rp := normal.RunProperties()
	if family != "" {
		rp.SetFontFamily(family)
	}
	if size > 0 {
		rp.SetSize(points(size))
	}
}

// SetMetadata writes title, author and description to the core properties.
func (d *Document) SetMetadata(meta Metadata) {
	if meta.Title != "" {
		d.doc.CoreProperties.SetTitle(meta.Title)
	}
	if meta.Author != "" {
		d.doc.CoreProperties.SetAuthor(meta.Author)
	}
	if meta.Description != "" {
		d.doc.CoreProperties.SetDescription(meta.Description)
	}
}

// AddHeading appends a paragraph using the HeadingN style. Levels outside
// the built-in range are clamped.
func (d *Document) AddHeading(level int) Paragraph {
	level = max(minHeadingLevel, min(level, maxHeadingLevel))
	p := d.newParagraph(d.doc.AddParagraph())
	p.p.SetStyle(fmt.Sprintf("Heading%d", level))
	return p
}

// AddParagraph appends an empty body paragraph.
func (d *Document) AddParagraph() Paragraph {
	return d.newParagraph(d.doc.AddParagraph())
}

// AddTable appends a rows x cols table spanning the page width, with grid
// borders and the header row shaded when style.HeaderFill is set.
func (d *Document) AddTable(rows, cols int, style TableStyle) Table {
	d.seq++
	t := &table{rows: rows, cols: cols, cells: make([]*paragraph, 0, rows*cols)}
	if rows <= 0 || cols <= 0 {
		t.rows, t.cols = 0, 0
		return t
	}

	tbl := d.doc.AddTable()
	tp := tbl.Properties()
	tp.SetWidthPercent(100)
	if style.Name != "" {
		tp.SetStyle(style.Name)
	}
	border := color.Auto
	if c, ok := parseHex(style.BorderHex); ok {
		border = c
	}
	tp.Borders().SetAll(wml.ST_BorderSingle, border, measurement.Zero)

	fill, shaded := parseHex(style.HeaderFill)
	for r := 0; r < rows; r++ {
		row := tbl.AddRow()
		for c := 0; c < cols; c++ {
			cell := row.AddCell()
			if c < len(style.Widths) && style.Widths[c] > 0 {
				cell.Properties().SetWidthPercent(style.Widths[c])
			}
			if r == 0 && shaded {
				cell.Properties().SetShading(wml.ST_ShdClear, color.Auto, fill)
			}
			t.cells = append(t.cells, &paragraph{d: d, p: cell.AddParagraph(), seq: d.seq})
		}
	}
	return t
}

// Save serializes the document as a .docx package.
func (d *Document) Save(w io.Writer) error {
	if err := d.doc.Save(w); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}

func (d *Document) newParagraph(p document.Paragraph) *paragraph {
	d.seq++
	return &paragraph{d: d, p: p, seq: d.seq}
}

func (d *Document) findStyle(id string) (document.Style, bool) {
	for _, s := range d.doc.Styles.Styles() {
		if s.StyleID() == id {
			return s, true
		}
	}
	return document.Style{}, false
}

// numbering returns the definition for kind. Bullets share one definition;
// numbered paragraphs get a fresh one unless they directly follow another
// numbered paragraph, so each run of items counts from 1.
func (d *Document) numbering(kind ListKind, seq int) document.NumberingDefinition {
	if kind == ListBullet {
		if d.bullets == nil {
			nd := d.newListDefinition(wml.ST_NumberFormatBullet, "•")
			d.bullets = &nd
		}
		return *d.bullets
	}

	if d.numbers == nil || d.lastNumbered != seq-1 {
		nd := d.newListDefinition(wml.ST_NumberFormatDecimal, "%1.")
		d.numbers = &nd
	}
	d.lastNumbered = seq
	return *d.numbers
}

func (d *Document) newListDefinition(format wml.ST_NumberFormat, text string) document.NumberingDefinition {
	nd := d.doc.Numbering.AddDefinition()
	lvl := nd.AddLevel()
	lvl.SetFormat(format)
	lvl.SetText(text)
	lvl.SetAlignment(wml.ST_JcLeft)
	lvl.Properties().SetLeftIndent(listIndent * measurement.Inch)
	lvl.Properties().SetHangingIndent(listHanging * measurement.Inch)
	return nd
}

// paragraph adapts a gooxml paragraph to the Paragraph interface.
type paragraph struct {
	d   *Document
	p   document.Paragraph
	seq int
}

func (p *paragraph) AddRun(text string, style RunStyle) {
	r := p.p.AddRun()
	applyRunStyle(r.Properties(), style)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			r.AddBreak()
		}
		if line != "" {
			r.AddText(line)
		}
	}
}

func (p *paragraph) SetIndent(left, right float64) {
	pp := p.p.Properties()
	if left > 0 {
		pp.SetStartIndent(measurement.Distance(left) * measurement.Inch)
	}
	if right > 0 {
		pp.SetEndIndent(measurement.Distance(right) * measurement.Inch)
	}
}

func (p *paragraph) SetSpacing(before, after float64) {
	p.p.Properties().SetSpacing(points(before), points(after))
}

func (p *paragraph) SetList(kind ListKind) {
	if kind == ListNone {
		return
	}
	p.p.SetNumberingDefinition(p.d.numbering(kind, p.seq))
	p.p.SetNumberingLevel(0)
}

// table holds the cell paragraphs in row-major order.
type table struct {
	rows, cols int
	cells      []*paragraph
}

func (t *table) Rows() int { return t.rows }
func (t *table) Cols() int { return t.cols }

func (t *table) Cell(row, col int) Paragraph {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return discard{}
	}
	return t.cells[row*t.cols+col]
}

func applyRunStyle(rp document.RunProperties, s RunStyle) {
	if s.Bold {
		rp.SetBold(true)
	}
	if s.Italic {
		rp.SetItalic(true)
	}
	if s.Font != "" {
		rp.SetFontFamily(s.Font)
	}
	if s.Size > 0 {
		rp.SetSize(points(s.Size))
	}
	if c, ok := parseHex(s.Color); ok {
		rp.SetColor(c)
	}
}

func points(pt float64) measurement.Distance {
	return measurement.Distance(pt) * measurement.Point
}

// parseHex parses "#rrggbb". It reports false for "" and malformed input.
func parseHex(s string) (color.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.Auto, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.Auto, false
	}
	return color.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}
