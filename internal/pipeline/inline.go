package pipeline

import "regexp"

// SpanKind is the style of an inline span.
type SpanKind int

// Inline span kinds.
const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
)

func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	default:
		return "unknown"
	}
}

// Span is a run of text sharing one inline style. Delimiters are stripped.
type Span struct {
	Kind SpanKind
	Text string
}

// inlineMarkup matches one delimited span. Alternatives are tried left to
// right at each position and every quantifier is lazy, so the shortest
// closing delimiter wins and spans never nest.
var inlineMarkup = regexp.MustCompile("\\*\\*.*?\\*\\*|`.*?`|_.*?_")

// ParseInline splits text into styled spans in a single left-to-right pass.
// Text outside a complete delimiter pair, including a lone "**", stays plain.
// Empty spans are omitted.
func ParseInline(text string) []Span {
	var spans []Span
	last := 0
	for _, loc := range inlineMarkup.FindAllStringIndex(text, -1) {
		spans = appendSpan(spans, SpanPlain, text[last:loc[0]])
		kind, inner := classify(text[loc[0]:loc[1]])
		spans = appendSpan(spans, kind, inner)
		last = loc[1]
	}
	return appendSpan(spans, SpanPlain, text[last:])
}

// classify maps a matched span to its kind and inner text.
func classify(match string) (SpanKind, string) {
	switch match[0] {
	case '*':
		return SpanBold, match[2 : len(match)-2]
	case '`':
		return SpanCode, match[1 : len(match)-1]
	default:
		return SpanItalic, match[1 : len(match)-1]
	}
}

func appendSpan(spans []Span, kind SpanKind, text string) []Span {
	if text == "" {
		return spans
	}
	return append(spans, Span{Kind: kind, Text: text})
}

// PlainText concatenates the text of spans, dropping their styles.
func PlainText(spans []Span) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}
