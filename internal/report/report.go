package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/tuidial/internal/model"
)

var (
	dotColumns = []column{
		{title: "#", numeric: true},
		{title: "Angle", numeric: true},
		{title: "Size"},
		{title: "X", numeric: true},
		{title: "Y", numeric: true},
	}
	arcColumns = []column{
		{title: "#", numeric: true},
		{title: "Start", numeric: true},
		{title: "End", numeric: true},
	}
)

// WriteLayout prints the dots, arcs and dash pattern of l.
func WriteLayout(w io.Writer, l model.Layout) error {
	if l.Empty() {
		_, err := fmt.Fprintln(w, "empty layout")
		return err
	}

	dotRows := make([][]string, 0, len(l.Dots))
	for i, d := range l.Dots {
		size := "small"
		if d.Big {
			size = "big"
		}
		dotRows = append(dotRows, []string{
			strconv.Itoa(i),
			degreesCell(d.Angle),
			size,
			numberCell(d.Position.X),
			numberCell(d.Position.Y),
		})
	}
	arcRows := make([][]string, 0, len(l.Arcs))
	for i, a := range l.Arcs {
		arcRows = append(arcRows, []string{
			strconv.Itoa(i),
			degreesCell(a.StartAngle),
			degreesCell(a.EndAngle),
		})
	}

	var sections []string
	sections = append(sections, "Dots")
	sections = append(sections, formatTable(dotColumns, dotRows)...)
	sections = append(sections, "", "Arcs")
	sections = append(sections, formatTable(arcColumns, arcRows)...)
	sections = append(sections, "", "Dash pattern")
	sections = append(sections, fmt.Sprintf("phase %s", numberCell(l.Dash.Phase())))
	segments := make([]string, 0, len(l.Dash.Segments()))
	for _, v := range l.Dash.Segments() {
		segments = append(segments, numberCell(v))
	}
	sections = append(sections, strings.Join(segments, " "))
	sections = append(sections, fmt.Sprintf("total %s", numberCell(l.Dash.Total())))

	for _, line := range sections {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write layout: %w", err)
		}
	}
	return nil
}
