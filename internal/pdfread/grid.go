package pdfread

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// cellGap is the horizontal whitespace, in PDF points, that separates
// two table cells. Word spacing inside running text stays well below
// it; column gutters in register tables stay well above.
const cellGap = 18.0

// gridFromRows reconstructs a cell grid from positioned words. Lines of
// running prose collapse into single-cell rows and are dropped; a page
// only counts as tabular when at least two lines split into multiple
// cells. Rows are padded on the right so the grid is rectangular.
func gridFromRows(rows pdf.Rows) [][]string {
	var grid [][]string
	maxCols := 0
	multi := 0

	for _, row := range rows {
		cells := splitCells(row.Content)
		if len(cells) == 0 {
			continue
		}
		if len(cells) > maxCols {
			maxCols = len(cells)
		}
		if len(cells) >= 2 {
			multi++
		}
		grid = append(grid, cells)
	}

	if maxCols < 2 || multi < 2 {
		return nil
	}

	var table [][]string
	for _, cells := range grid {
		if len(cells) < 2 {
			continue
		}
		for len(cells) < maxCols {
			cells = append(cells, "")
		}
		table = append(table, cells)
	}
	return table
}

// splitCells groups one line's words into cells on large x gaps.
func splitCells(words []pdf.Text) []string {
	var cells []string
	var cur strings.Builder
	var lastEnd float64

	for i, w := range words {
		if i > 0 {
			if w.X-lastEnd >= cellGap {
				cells = append(cells, strings.TrimSpace(cur.String()))
				cur.Reset()
			} else {
				cur.WriteByte(' ')
			}
		}
		cur.WriteString(w.S)
		end := w.X + w.W
		if end > lastEnd {
			lastEnd = end
		}
	}

	if cur.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cur.String()))
	}
	return cells
}
