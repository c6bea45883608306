package textutil

// Bounds applied to a single column share, in display cells.
const (
	minColumnCells = 3
	maxColumnCells = 40
)

// ColumnWeights returns the relative width of each of cols columns as
// percentages summing to 100. A column's weight is the widest cell in it,
// clamped so that very short or very long cells do not dominate.
func ColumnWeights(rows [][]string, cols int) []float64 {
	if cols <= 0 {
		return nil
	}

	cells := make([]int, cols)
	for i := range cells {
		cells[i] = minColumnCells
	}
	for _, row := range rows {
		for c := 0; c < cols && c < len(row); c++ {
			w := min(DisplayWidth(row[c]), maxColumnCells)
			cells[c] = max(cells[c], w)
		}
	}

	total := 0
	for _, w := range cells {
		total += w
	}
	weights := make([]float64, cols)
	for i, w := range cells {
		weights[i] = float64(w) * 100 / float64(total)
	}
	return weights
}
