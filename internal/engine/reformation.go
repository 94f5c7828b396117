package engine

import "time"

// Reformation describes a Julian-to-Gregorian cutover: the last Julian
// year, the month the step was taken in, the number of days removed,
// the first removed day-of-month, and the fixed layout of the shortened
// month. Values are immutable; build alternates with NewReformation.
type Reformation struct {
	Year         int
	Month        time.Month
	Step         int
	FirstSkipped int
	MonthLayout  Grid
}

// Gregorian1582 is the historical reformation: October 1582, with the
// ten days 5-14 removed by papal decree. The layout is the fixed
// constant the grid builder returns for that month; it is never
// recomputed.
var Gregorian1582 = Reformation{
	Year:         1582,
	Month:        time.October,
	Step:         10,
	FirstSkipped: 5,
	MonthLayout: Grid{
		{1, 2, 3, 4, 15, 16, 17},
		{18, 19, 20, 21, 22, 23, 24},
		{25, 26, 27, 28, 29, 30, 31},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
	},
}

// NewReformation builds a Reformation for hypothetical cutover
// parameters, deriving the shortened month's layout once here so that
// MonthGrid can keep returning a fixed value. step days starting at
// firstSkipped are omitted from the month.
//
// Preconditions: year >= 1, step >= 1, and the skipped range must lie
// strictly inside the month (firstSkipped > 1, firstSkipped+step-1 <
// month length).
func NewReformation(year int, month time.Month, step, firstSkipped int) Reformation {
	ref := Reformation{
		Year:         year,
		Month:        month,
		Step:         step,
		FirstSkipped: firstSkipped,
	}

	// The cutover month itself sits before the step subtraction and
	// before the layout is ever consulted, so a Calendar built from the
	// still-layoutless value computes its start weekday correctly.
	cal := New(ref)
	startWeekday := (cal.DaysSinceEpoch(month, year) + epochWeekday) % DaysPerWeek

	length := MonthLength(month, cal.IsLeapYear(year))

	row, col := 0, startWeekday
	for day := 1; day <= length; day++ {
		if day < firstSkipped || day >= firstSkipped+step {
			ref.MonthLayout[row][col] = day
			if col == DaysPerWeek-1 {
				row++
			}
			col = (col + 1) % DaysPerWeek
		}
	}
	return ref
}
