// Package engine computes month layouts for the hybrid Julian/Gregorian
// calendar: Julian leap rules up to a configurable reformation year,
// Gregorian rules after it, with the reformation step (the days removed
// from the calendar) applied once at the cutover.
//
// All functions are pure and total over their documented preconditions
// (month in January..December, year >= 1). Validation is the caller's
// responsibility; the CLI and HTTP layers enforce it.
package engine

import "time"

const (
	// DaysPerWeek is the number of grid columns.
	DaysPerWeek = 7
	// GridRows is the number of grid rows. Six rows are enough for any
	// month: the worst case is a 31-day month starting on Sunday.
	GridRows = 6

	// daysPerCommonYear is the day count of a non-leap year.
	daysPerCommonYear = 365

	// epochWeekday is the Monday-indexed weekday of the epoch,
	// year 1 January 1, which falls on a Saturday.
	epochWeekday = 5
)

// monthLengths holds common-year month lengths, January first.
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Grid is a month laid out as rows of weekdays, Monday in column 0.
// A zero cell is empty; a nonzero cell holds the day-of-month number.
type Grid [GridRows][DaysPerWeek]int

// DayCount returns the number of nonzero cells.
func (g Grid) DayCount() int {
	n := 0
	for _, row := range g {
		for _, day := range row {
			if day != 0 {
				n++
			}
		}
	}
	return n
}

// Days returns the nonzero cell values in row-major order.
func (g Grid) Days() []int {
	days := make([]int, 0, g.DayCount())
	for _, row := range g {
		for _, day := range row {
			if day != 0 {
				days = append(days, day)
			}
		}
	}
	return days
}

// Rows returns the grid as a slice-of-slices, for JSON encoding.
func (g Grid) Rows() [][]int {
	rows := make([][]int, GridRows)
	for i, row := range g {
		rows[i] = make([]int, DaysPerWeek)
		copy(rows[i], row[:])
	}
	return rows
}

// Calendar computes month layouts under a fixed reformation. It is
// immutable after construction and safe for concurrent use.
type Calendar struct {
	ref Reformation

	// leapCorrection converts a retroactive Gregorian leap-day count
	// into the historical Julian-then-Gregorian count. Derived in New
	// from the reformation year; 12 for the 1582 reformation.
	leapCorrection int
}

// New returns a Calendar for the given reformation parameters.
func New(ref Reformation) *Calendar {
	return &Calendar{
		ref: ref,
		// Julian leap years in [1, ref.Year] number ref.Year/4, the
		// Gregorian rule admits ref.Year/4 - ref.Year/100 + ref.Year/400
		// of them, so the retroactive count is short by the difference.
		leapCorrection: ref.Year/100 - ref.Year/400,
	}
}

// Default returns the Calendar for the historical 1582 reformation.
func Default() *Calendar {
	return New(Gregorian1582)
}

// Reformation returns the reformation parameters in effect.
func (c *Calendar) Reformation() Reformation {
	return c.ref
}

// IsLeapYear reports whether year is a leap year: every fourth year up
// to and including the reformation year (Julian rule), the standard
// century-corrected rule after it.
func (c *Calendar) IsLeapYear(year int) bool {
	if year <= c.ref.Year {
		return year%4 == 0
	}
	return gregorianLeap(year)
}

// PriorLeapDays returns the number of leap years in [1, year).
func (c *Calendar) PriorLeapDays(year int) int {
	if year <= c.ref.Year {
		return (year - 1) / 4
	}
	return gregorianLeapDaysBefore(year) + c.leapCorrection
}

// MonthLength returns the standard length of a month, before any
// reformation shortening.
func MonthLength(month time.Month, leap bool) int {
	if month == time.February && leap {
		return monthLengths[time.February-1] + 1
	}
	return monthLengths[month-1]
}

// DaysInMonth returns the number of days in the given month. The
// reformation month is shortened by the step; its length is the day
// count of the fixed layout.
func (c *Calendar) DaysInMonth(month time.Month, year int) int {
	if year == c.ref.Year && month == c.ref.Month {
		return c.ref.MonthLayout.DayCount()
	}
	return MonthLength(month, c.IsLeapYear(year))
}

// DaysSinceEpoch returns the number of days elapsed between the epoch
// (year 1 January 1) and the first day of the given month.
func (c *Calendar) DaysSinceEpoch(month time.Month, year int) int {
	days := (year - 1) * daysPerCommonYear
	days += c.PriorLeapDays(year)
	for m := time.January; m < month; m++ {
		days += monthLengths[m-1]
	}
	// The in-year leap addend uses the plain Gregorian test regardless
	// of era, matching PriorLeapDays' retroactive count plus correction.
	if gregorianLeap(year) && month > time.February {
		days++
	}
	// The reformation step is gone for good from every later month.
	if year > c.ref.Year || (year == c.ref.Year && month > c.ref.Month) {
		days -= c.ref.Step
	}
	return days
}

// MonthGrid returns the 6x7 layout of the given month. The reformation
// month returns the fixed layout; every other month is computed from the
// epoch-anchored weekday of its first day.
func (c *Calendar) MonthGrid(month time.Month, year int) Grid {
	if year == c.ref.Year && month == c.ref.Month {
		return c.ref.MonthLayout
	}

	startWeekday := (c.DaysSinceEpoch(month, year) + epochWeekday) % DaysPerWeek

	var grid Grid
	row, col := 0, startWeekday
	for day := 1; day <= c.DaysInMonth(month, year); day++ {
		grid[row][col] = day
		if col == DaysPerWeek-1 {
			row++
		}
		col = (col + 1) % DaysPerWeek
	}
	return grid
}

// gregorianLeap applies the standard Gregorian leap rule to any year.
func gregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// gregorianLeapDaysBefore counts years in [1, year) that the Gregorian
// rule, applied retroactively, marks as leap.
func gregorianLeapDaysBefore(year int) int {
	y := year - 1
	return y/4 - y/100 + y/400
}
