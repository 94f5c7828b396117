// Package render formats month grids as fixed-width text calendars.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/username/reformcal/internal/engine"
	"github.com/username/reformcal/pkg/textfmt"
)

const (
	cellWidth = 2
	// calendarWidth is seven two-character cells plus six separators.
	calendarWidth = cellWidth*engine.DaysPerWeek + engine.DaysPerWeek - 1
)

// WeekdayAbbrevs are the Monday-first column headers.
var WeekdayAbbrevs = [engine.DaysPerWeek]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Month writes the text calendar for one month: a centered
// "<MonthName> <Year>" header, the weekday row, and six grid rows with
// blank cells for zeroes. Trailing spaces are trimmed from each line.
func Month(w io.Writer, grid engine.Grid, month time.Month, year int) error {
	lines := Lines(grid, month, year)
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// Lines returns the calendar as its eight output lines.
func Lines(grid engine.Grid, month time.Month, year int) []string {
	lines := make([]string, 0, 2+engine.GridRows)

	header := fmt.Sprintf("%s %d", month, year)
	lines = append(lines, strings.TrimRight(textfmt.Center(header, calendarWidth), " "))
	lines = append(lines, strings.Join(WeekdayAbbrevs[:], " "))

	for _, row := range grid {
		cells := make([]string, engine.DaysPerWeek)
		for i, day := range row {
			cells[i] = textfmt.Cell(day)
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return lines
}
