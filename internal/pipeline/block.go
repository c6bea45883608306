package pipeline

// BlockKind classifies a translated block.
type BlockKind int

// Block kinds produced by the translator.
const (
	BlockBlank BlockKind = iota
	BlockHeading
	BlockRule
	BlockListItem
	BlockCheckbox
	BlockTable
	BlockCode
	BlockParagraph
)

var blockKindNames = [...]string{
	BlockBlank:     "blank",
	BlockHeading:   "heading",
	BlockRule:      "rule",
	BlockListItem:  "list-item",
	BlockCheckbox:  "checkbox",
	BlockTable:     "table",
	BlockCode:      "code",
	BlockParagraph: "paragraph",
}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return "unknown"
	}
	return blockKindNames[k]
}

// Block is one classified unit of output.
// Only the fields relevant to Kind are set.
type Block struct {
	Kind    BlockKind
	Level   int        // heading level, uncapped
	Ordered bool       // numbered list item
	Checked bool       // checkbox state
	Text    string     // heading, list item, checkbox and paragraph text
	Lang    string     // code block language tag, informational
	Lines   []string   // code block content
	Rows    [][]string // table cells; row 0 is the header, all rows share its width

	// Start and End delimit the source lines [Start, End) the block came from.
	Start int
	End   int
}

// Columns returns the column count of a table block.
func (b Block) Columns() int {
	if len(b.Rows) == 0 {
		return 0
	}
	return len(b.Rows[0])
}

// Step is the outcome of one translator transition.
// Block is nil when the consumed line only changed state (an opening fence,
// a line inside a code block, or the closing fence of an empty block).
type Step struct {
	Block    *Block
	Consumed int
}
