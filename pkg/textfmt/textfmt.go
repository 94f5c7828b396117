// Package textfmt provides fixed-width text helpers for calendar output.
package textfmt

import (
	"fmt"
	"strings"
)

// Center pads s with spaces to the given width, splitting the padding
// evenly and giving the extra space to the right side. Returns s
// unchanged if it is already at least width long.
func Center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Cell renders a day number right-justified in a two-character cell.
// Zero renders as a blank cell.
func Cell(day int) string {
	if day == 0 {
		return "  "
	}
	return fmt.Sprintf("%2d", day)
}
