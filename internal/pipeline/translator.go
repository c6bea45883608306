package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

// codeFence opens and closes code blocks.
const codeFence = "```"

// Precompiled line patterns.
var (
	unorderedMarker = regexp.MustCompile(`^[*+-]\s+`)
	orderedMarker   = regexp.MustCompile(`^\d+\.\s+`)
	checkboxItem    = regexp.MustCompile(`^-\s+\[([ xX])\]\s+`)
)

// horizontalRules lists the exact trimmed lines rendered as a rule.
var horizontalRules = map[string]bool{
	"---": true,
	"***": true,
	"___": true,
}

// machine is the translator state between two transitions.
// In code mode, content accumulates until the closing fence.
type machine struct {
	inCode  bool
	lang    string
	start   int
	content []string
}

// Translator turns source lines into blocks, one transition at a time.
// It never backtracks: tables are recognized with a single line of lookahead
// and consumed within one transition.
type Translator struct {
	lines []string
	pos   int
	m     machine
	done  bool
}

// NewTranslator creates a Translator over lines. The slice is not modified.
func NewTranslator(lines []string) *Translator {
	return &Translator{lines: lines}
}

// Next performs one transition. It returns false once every line has been
// consumed and any open code block has been flushed.
func (t *Translator) Next() (Step, bool) {
	if t.done {
		return Step{}, false
	}
	if t.pos >= len(t.lines) {
		t.done = true
		if b := flushCode(t.m, len(t.lines)); b != nil {
			t.m = machine{}
			return Step{Block: b}, true
		}
		return Step{}, false
	}

	var s Step
	t.m, s = step(t.m, t.lines, t.pos)
	t.pos += s.Consumed
	return s, true
}

// Translate classifies all lines and returns the emitted blocks in order.
func Translate(lines []string) []Block {
	t := NewTranslator(lines)
	blocks := make([]Block, 0, len(lines))
	for {
		s, ok := t.Next()
		if !ok {
			return blocks
		}
		if s.Block != nil {
			blocks = append(blocks, *s.Block)
		}
	}
}

// step is the transition function. It consumes at least one line starting
// at i and never reads state outside its arguments.
func step(m machine, lines []string, i int) (machine, Step) {
	line := strings.TrimRightFunc(lines[i], unicode.IsSpace)
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, codeFence) {
		if !m.inCode {
			return machine{
				inCode: true,
				lang:   strings.TrimSpace(trimmed[len(codeFence):]),
				start:  i,
			}, Step{Consumed: 1}
		}
		return machine{}, Step{Block: flushCode(m, i+1), Consumed: 1}
	}

	if m.inCode {
		m.content = append(m.content, line)
		return m, Step{Consumed: 1}
	}

	b := &Block{Start: i, End: i + 1}
	switch {
	case trimmed == "":
		b.Kind = BlockBlank

	case strings.HasPrefix(line, "#"):
		rest := strings.TrimLeft(line, "#")
		b.Kind = BlockHeading
		b.Level = len(line) - len(rest)
		b.Text = strings.TrimSpace(rest)

	case horizontalRules[trimmed]:
		b.Kind = BlockRule

	case checkboxItem.MatchString(line):
		loc := checkboxItem.FindStringSubmatchIndex(line)
		b.Kind = BlockCheckbox
		b.Checked = line[loc[2]:loc[3]] != " "
		b.Text = strings.TrimSpace(line[loc[1]:])

	case unorderedMarker.MatchString(line):
		b.Kind = BlockListItem
		b.Text = stripMarker(unorderedMarker, line)

	case orderedMarker.MatchString(line):
		b.Kind = BlockListItem
		b.Ordered = true
		b.Text = stripMarker(orderedMarker, line)

	case startsTable(lines, i):
		rows, consumed := consumeTable(lines, i)
		if len(rows) > 0 {
			b.Kind = BlockTable
			b.Rows = rows
			b.End = i + consumed
			return m, Step{Block: b, Consumed: consumed}
		}
		// Rows without outer pipes yield no cells; keep the line as text.
		b.Kind = BlockParagraph
		b.Text = trimmed

	default:
		b.Kind = BlockParagraph
		b.Text = trimmed
	}

	return m, Step{Block: b, Consumed: 1}
}

// flushCode closes an open code block ending before line end.
// It returns nil when no content was accumulated.
func flushCode(m machine, end int) *Block {
	if !m.inCode || len(m.content) == 0 {
		return nil
	}
	return &Block{
		Kind:  BlockCode,
		Lang:  m.lang,
		Lines: m.content,
		Start: m.start,
		End:   end,
	}
}

// stripMarker removes the list marker matched by re and trims the remainder.
func stripMarker(re *regexp.Regexp, line string) string {
	loc := re.FindStringIndex(line)
	return strings.TrimSpace(line[loc[1]:])
}
