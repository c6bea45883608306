package md2docx

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// renderMarkdown translates md and renders it with the default theme.
func renderMarkdown(t *testing.T, md string, hl pipeline.CodeHighlighter) *recordingBuilder {
	t.Helper()

	b := &recordingBuilder{}
	r := &renderer{theme: DefaultTheme(), builder: b, highlighter: hl, tabWidth: 4}
	blocks := pipeline.Translate(pipeline.SplitLines(md))
	if err := r.render(context.Background(), blocks); err != nil {
		t.Fatalf("render() error = %v", err)
	}
	return b
}

// singleParagraph fails unless exactly one paragraph was recorded.
func singleParagraph(t *testing.T, b *recordingBuilder) *recordedParagraph {
	t.Helper()

	if len(b.Blocks) != 1 {
		t.Fatalf("recorded %d blocks, want 1", len(b.Blocks))
	}
	p, ok := b.Blocks[0].(*recordedParagraph)
	if !ok {
		t.Fatalf("block is %T, want paragraph", b.Blocks[0])
	}
	return p
}

// ---------------------------------------------------------------------------
// TestRenderer_Headings - Heading levels and styles
// ---------------------------------------------------------------------------

func TestRenderer_Headings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		md          string
		wantHeading int
		wantRun     recordedRun
	}{
		{
			name:        "level 1",
			md:          "# A",
			wantHeading: 1,
			wantRun:     recordedRun{Text: "A", Style: docx.RunStyle{Size: 24, Color: "#003366"}},
		},
		{
			name:        "level 2",
			md:          "## B",
			wantHeading: 2,
			wantRun:     recordedRun{Text: "B", Style: docx.RunStyle{Size: 18, Color: "#0066CC"}},
		},
		{
			name:        "level 3 is bold",
			md:          "### C",
			wantHeading: 3,
			wantRun:     recordedRun{Text: "C", Style: docx.RunStyle{Size: 14, Bold: true}},
		},
		{
			name:        "level 4 is a bold paragraph",
			md:          "#### D",
			wantHeading: 0,
			wantRun:     recordedRun{Text: "D", Style: docx.RunStyle{Bold: true}},
		},
		{
			name:        "deep levels stay paragraphs",
			md:          "######## Deep",
			wantHeading: 0,
			wantRun:     recordedRun{Text: "Deep", Style: docx.RunStyle{Bold: true}},
		},
		{
			name:        "heading text is not inline formatted",
			md:          "# **x**",
			wantHeading: 1,
			wantRun:     recordedRun{Text: "**x**", Style: docx.RunStyle{Size: 24, Color: "#003366"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := singleParagraph(t, renderMarkdown(t, tt.md, nil))
			if p.Heading != tt.wantHeading {
				t.Errorf("Heading = %d, want %d", p.Heading, tt.wantHeading)
			}
			if diff := cmp.Diff([]recordedRun{tt.wantRun}, p.Runs); diff != "" {
				t.Errorf("runs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderer_Inline - Paragraph and list item spans
// ---------------------------------------------------------------------------

func TestRenderer_Inline(t *testing.T) {
	t.Parallel()

	code := docx.RunStyle{Font: "Consolas", Size: 10, Color: "#C7254E"}

	tests := []struct {
		name     string
		md       string
		wantList docx.ListKind
		wantRuns []recordedRun
	}{
		{
			name: "mixed spans",
			md:   "a **b** _c_ `d`",
			wantRuns: []recordedRun{
				{Text: "a "},
				{Text: "b", Style: docx.RunStyle{Bold: true}},
				{Text: " "},
				{Text: "c", Style: docx.RunStyle{Italic: true}},
				{Text: " "},
				{Text: "d", Style: code},
			},
		},
		{
			name:     "unbalanced bold stays literal",
			md:       "**bold",
			wantRuns: []recordedRun{{Text: "**bold"}},
		},
		{
			name:     "bullet item",
			md:       "- **item**",
			wantList: docx.ListBullet,
			wantRuns: []recordedRun{{Text: "item", Style: docx.RunStyle{Bold: true}}},
		},
		{
			name:     "numbered item",
			md:       "3. third",
			wantList: docx.ListNumber,
			wantRuns: []recordedRun{{Text: "third"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := singleParagraph(t, renderMarkdown(t, tt.md, nil))
			if p.List != tt.wantList {
				t.Errorf("List = %v, want %v", p.List, tt.wantList)
			}
			if diff := cmp.Diff(tt.wantRuns, p.Runs); diff != "" {
				t.Errorf("runs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderer_Checkbox - Task list items
// ---------------------------------------------------------------------------

func TestRenderer_Checkbox(t *testing.T) {
	t.Parallel()

	tests := []struct {
		md   string
		want string
	}{
		{"- [x] done", "☑ done"},
		{"- [X] done", "☑ done"},
		{"- [ ] todo", "☐ todo"},
		{"- [ ] **not bold**", "☐ **not bold**"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.md, func(t *testing.T) {
			t.Parallel()

			p := singleParagraph(t, renderMarkdown(t, tt.md, nil))
			if p.List != docx.ListNone {
				t.Errorf("checkbox should not be a list item, got %v", p.List)
			}
			if p.IndentLeft != 0.25 {
				t.Errorf("IndentLeft = %v, want 0.25", p.IndentLeft)
			}
			if diff := cmp.Diff([]recordedRun{{Text: tt.want}}, p.Runs); diff != "" {
				t.Errorf("runs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderer_Table - Header and body cells
// ---------------------------------------------------------------------------

func TestRenderer_Table(t *testing.T) {
	t.Parallel()

	b := renderMarkdown(t, "| A | B |\n|---|---|\n| 1 | 2 |", nil)
	if len(b.Blocks) != 1 {
		t.Fatalf("recorded %d blocks, want 1", len(b.Blocks))
	}
	tbl, ok := b.Blocks[0].(*recordedTable)
	if !ok {
		t.Fatalf("block is %T, want table", b.Blocks[0])
	}
	if tbl.Rows() != 2 || tbl.Cols() != 2 {
		t.Fatalf("table is %dx%d, want 2x2", tbl.Rows(), tbl.Cols())
	}

	want := [][]recordedRun{
		{{Text: "A", Style: docx.RunStyle{Bold: true}}},
		{{Text: "B", Style: docx.RunStyle{Bold: true}}},
		{{Text: "1"}},
		{{Text: "2"}},
	}
	var got [][]recordedRun
	for _, row := range tbl.Cells {
		for _, cell := range row {
			got = append(got, cell.Runs)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}

	if tbl.Style.Name != "LightGrid-Accent1" {
		t.Errorf("Style.Name = %q, want LightGrid-Accent1", tbl.Style.Name)
	}
	if len(tbl.Style.Widths) != 2 {
		t.Errorf("Widths = %v, want 2 entries", tbl.Style.Widths)
	}
}

func TestRenderer_TableRagged(t *testing.T) {
	t.Parallel()

	b := renderMarkdown(t, "| A | B | C |\n| 1 |\n| 1 | 2 | 3 | 4 |", nil)
	tbl := b.Blocks[0].(*recordedTable)
	if tbl.Rows() != 3 || tbl.Cols() != 3 {
		t.Fatalf("table is %dx%d, want 3x3", tbl.Rows(), tbl.Cols())
	}
	if got := tbl.Cells[1][2].text(); got != "" {
		t.Errorf("padded cell = %q, want empty", got)
	}
	if got := tbl.Cells[2][2].text(); got != "3" {
		t.Errorf("last kept cell = %q, want 3", got)
	}
}

// ---------------------------------------------------------------------------
// TestRenderer_Code - Fenced code blocks
// ---------------------------------------------------------------------------

func TestRenderer_Code(t *testing.T) {
	t.Parallel()

	b := renderMarkdown(t, "```python\nprint(1)\n\tx = 2\n```", nil)
	p := singleParagraph(t, b)

	want := []recordedRun{{
		Text:  "print(1)\n    x = 2",
		Style: docx.RunStyle{Font: "Consolas", Size: 9, Color: "#000000"},
	}}
	if diff := cmp.Diff(want, p.Runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
	if p.IndentLeft != 0.5 || p.IndentRight != 0.5 {
		t.Errorf("indent = %v/%v, want 0.5/0.5", p.IndentLeft, p.IndentRight)
	}
	if p.SpaceBefore != 6 || p.SpaceAfter != 6 {
		t.Errorf("spacing = %v/%v, want 6/6", p.SpaceBefore, p.SpaceAfter)
	}
	if strings.Contains(p.text(), "```") {
		t.Error("fence leaked into code text")
	}
}

type fakeHighlighter struct {
	tokens  []pipeline.CodeToken
	err     error
	gotLang string
}

func (f *fakeHighlighter) Highlight(lang, code string) ([]pipeline.CodeToken, error) {
	f.gotLang = lang
	return f.tokens, f.err
}

func TestRenderer_CodeHighlighted(t *testing.T) {
	t.Parallel()

	hl := &fakeHighlighter{tokens: []pipeline.CodeToken{
		{Text: "print", Color: "#0000FF", Bold: true},
		{Text: "(1)"},
	}}
	p := singleParagraph(t, renderMarkdown(t, "```python\nprint(1)\n```", hl))

	want := []recordedRun{
		{Text: "print", Style: docx.RunStyle{Font: "Consolas", Size: 9, Color: "#0000FF", Bold: true}},
		{Text: "(1)", Style: docx.RunStyle{Font: "Consolas", Size: 9, Color: "#000000"}},
	}
	if diff := cmp.Diff(want, p.Runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
	if hl.gotLang != "python" {
		t.Errorf("highlighter lang = %q, want python", hl.gotLang)
	}
}

func TestRenderer_CodeHighlightError(t *testing.T) {
	t.Parallel()

	hl := &fakeHighlighter{err: errors.New("lexer failed")}
	p := singleParagraph(t, renderMarkdown(t, "```\nx\n```", hl))
	if len(p.Runs) != 1 || p.Runs[0].Text != "x" {
		t.Errorf("runs = %+v, want single plain run", p.Runs)
	}
}

// ---------------------------------------------------------------------------
// TestRenderer_Document - Whole documents
// ---------------------------------------------------------------------------

func TestRenderer_Document(t *testing.T) {
	t.Parallel()

	md := strings.Join([]string{
		"# Title",
		"",
		"Intro with **bold**.",
		"---",
		"- one",
		"- [ ] task",
		"| h |",
		"| v |",
	}, "\n")

	b := renderMarkdown(t, md, nil)
	if len(b.Blocks) != 7 {
		t.Fatalf("recorded %d blocks, want 7", len(b.Blocks))
	}

	ps := b.paragraphs()
	if got := ps[1].text(); got != "" {
		t.Errorf("blank line paragraph = %q, want empty", got)
	}
	rule := ps[3]
	if got := rule.text(); got != strings.Repeat("_", 80) {
		t.Errorf("rule = %q, want 80 underscores", got)
	}
	if rule.Runs[0].Style.Color != "#C0C0C0" {
		t.Errorf("rule color = %q, want #C0C0C0", rule.Runs[0].Style.Color)
	}
	if _, ok := b.Blocks[6].(*recordedTable); !ok {
		t.Errorf("last block is %T, want table", b.Blocks[6])
	}
}

func TestRenderer_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &recordingBuilder{}
	r := &renderer{theme: DefaultTheme(), builder: b, tabWidth: 4}
	err := r.render(ctx, []pipeline.Block{{Kind: pipeline.BlockBlank}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("render() error = %v, want context.Canceled", err)
	}
	if len(b.Blocks) != 0 {
		t.Errorf("recorded %d blocks after cancel, want 0", len(b.Blocks))
	}
}
