// Package docx is the document-model side of the converter: it exposes the small
// set of structural and styling operations the renderer needs (headings,
// paragraphs, styled runs, tables, metadata) and serializes the result as a
// WordprocessingML (.docx) package.
package docx

import (
	"errors"
	"io"
)

// ErrSave indicates the document could not be serialized.
var ErrSave = errors.New("failed to serialize document")

// ListKind selects list numbering for a paragraph.
type ListKind int

// List kinds.
const (
	ListNone ListKind = iota
	ListBullet
	ListNumber
)

// RunStyle describes the character formatting of one run.
// Zero values keep the document defaults.
type RunStyle struct {
	Bold   bool
	Italic bool
	Font   string  // font family
	Size   float64 // points
	Color  string  // "#rrggbb"
}

// TableStyle describes table-wide formatting.
type TableStyle struct {
	Name       string    // named table style
	BorderHex  string    // grid border color, "" = automatic
	HeaderFill string    // header row shading, "" = none
	Widths     []float64 // column widths in percent of the table width
}

// Metadata is written to the package core properties.
type Metadata struct {
	Title       string
	Author      string
	Description string
}

// Builder creates a document block by block.
// Blocks are appended in call order.
type Builder interface {
	SetDefaultFont(family string, size float64)
	SetMetadata(meta Metadata)
	AddHeading(level int) Paragraph
	AddParagraph() Paragraph
	AddTable(rows, cols int, style TableStyle) Table
	Save(w io.Writer) error
}

// Paragraph is a mutable paragraph in the document.
type Paragraph interface {
	// AddRun appends text with the given style. Newlines become line breaks.
	AddRun(text string, style RunStyle)
	// SetIndent sets the left and right indentation in inches.
	SetIndent(left, right float64)
	// SetSpacing sets the space before and after the paragraph in points.
	SetSpacing(before, after float64)
	// SetList attaches the paragraph to bullet or numbered list numbering.
	SetList(kind ListKind)
}

// Table gives access to the paragraph of each cell.
type Table interface {
	Rows() int
	Cols() int
	// Cell returns the paragraph of the cell at row, col. Addresses outside
	// the table return a paragraph that discards everything written to it.
	Cell(row, col int) Paragraph
}

// discard is the Paragraph returned for out-of-range cells.
type discard struct{}

func (discard) AddRun(string, RunStyle)     {}
func (discard) SetIndent(float64, float64)  {}
func (discard) SetSpacing(float64, float64) {}
func (discard) SetList(ListKind)            {}
