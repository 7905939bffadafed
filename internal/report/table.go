// Package report renders a computed dial layout as text tables.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// column is a table header. Numeric columns are right aligned.
type column struct {
	title   string
	numeric bool
}

// formatTable lays rows out under cols with a dashed rule below the header.
// Widths are measured in terminal cells so the degree sign lines up.
func formatTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}

	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = runewidth.StringWidth(col.title)
	}
	for _, row := range rows {
		for i := range cols {
			if w := runewidth.StringWidth(cellAt(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	titles := make([]string, len(cols))
	rules := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = col.title
		rules[i] = strings.Repeat("-", widths[i])
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, joinCells(cols, widths, titles), strings.Join(rules, " "))
	for _, row := range rows {
		lines = append(lines, joinCells(cols, widths, row))
	}
	return lines
}

func joinCells(cols []column, widths []int, row []string) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		cell := cellAt(row, i)
		if col.numeric {
			cells[i] = runewidth.FillLeft(cell, widths[i])
		} else {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
	}
	return strings.Join(cells, " ")
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func degreesCell(rad float64) string {
	return fmt.Sprintf("%.2f°", rad*180/math.Pi)
}

func numberCell(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
