package pipeline

import (
	"regexp"
	"strings"
)

// tableDelimiter separates table cells.
const tableDelimiter = "|"

// separatorRow matches the header separator line, e.g. "| --- | :-: |".
var separatorRow = regexp.MustCompile(`^\|[\s\-|:]+\|$`)

// startsTable reports whether line i and the line after it both contain
// the cell delimiter.
func startsTable(lines []string, i int) bool {
	return i+1 < len(lines) &&
		strings.Contains(lines[i], tableDelimiter) &&
		strings.Contains(lines[i+1], tableDelimiter)
}

// consumeTable gathers the run of delimiter lines starting at i and returns
// the normalized rows and the number of lines consumed.
//
// The separator line is only recognized at index 1 of the run. Every row is
// fitted to the header width: short rows are padded with empty cells and
// extra cells are dropped. When the header yields no cells the rows are nil
// and the caller decides how to render the line.
func consumeTable(lines []string, i int) (rows [][]string, consumed int) {
	j := i
	for j < len(lines) && strings.Contains(lines[j], tableDelimiter) {
		j++
	}
	consumed = j - i

	raw := lines[i:j]
	if len(raw) > 1 && separatorRow.MatchString(strings.TrimSpace(raw[1])) {
		raw = append([]string{raw[0]}, raw[2:]...)
	}

	header := splitRow(raw[0])
	if len(header) == 0 {
		return nil, consumed
	}

	rows = make([][]string, 0, len(raw))
	rows = append(rows, header)
	for _, r := range raw[1:] {
		rows = append(rows, fitRow(splitRow(r), len(header)))
	}
	return rows, consumed
}

// splitRow splits a table line on the delimiter, drops the outer segments
// left by leading and trailing pipes, and trims every cell.
func splitRow(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), tableDelimiter)
	if len(parts) <= 2 {
		return nil
	}
	cells := parts[1 : len(parts)-1]
	for k, c := range cells {
		cells[k] = strings.TrimSpace(c)
	}
	return cells
}

// fitRow pads or truncates cells to width.
func fitRow(cells []string, width int) []string {
	if len(cells) > width {
		return cells[:width]
	}
	for len(cells) < width {
		cells = append(cells, "")
	}
	return cells
}
