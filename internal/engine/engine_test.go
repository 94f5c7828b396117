package engine

import (
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		name string
		year int
		want bool
	}{
		{"Year 4 Julian leap", 4, true},
		{"Year 100 Julian leap despite century", 100, true},
		{"Year 1500 Julian leap despite century", 1500, true},
		{"Year 1582 not divisible by 4", 1582, false},
		{"Year 1580 Julian leap", 1580, true},
		{"Year 1600 Gregorian leap", 1600, true},
		{"Year 1700 Gregorian century non-leap", 1700, false},
		{"Year 1900 Gregorian century non-leap", 1900, false},
		{"Year 2000 Gregorian 400-year leap", 2000, true},
		{"Year 2023 common", 2023, false},
		{"Year 2024 Gregorian leap", 2024, true},
	}

	cal := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.IsLeapYear(tt.year); got != tt.want {
				t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
			}
		})
	}
}

func TestIsLeapYearJulianEra(t *testing.T) {
	cal := Default()
	for year := 1; year <= 1582; year++ {
		if got, want := cal.IsLeapYear(year), year%4 == 0; got != want {
			t.Fatalf("IsLeapYear(%d) = %v, want %v (Julian rule)", year, got, want)
		}
	}
}

// PriorLeapDays must be the exact integral of IsLeapYear over [1, year).
func TestPriorLeapDaysConsistency(t *testing.T) {
	cal := Default()
	for year := 1; year <= 4000; year++ {
		diff := cal.PriorLeapDays(year+1) - cal.PriorLeapDays(year)
		want := 0
		if cal.IsLeapYear(year) {
			want = 1
		}
		if diff != want {
			t.Fatalf("PriorLeapDays(%d)-PriorLeapDays(%d) = %d, want %d",
				year+1, year, diff, want)
		}
	}
}

func TestLeapCorrectionDerivation(t *testing.T) {
	// The 1582 reformation leaves the retroactive Gregorian count short
	// by exactly 12 leap days.
	if got := Default().leapCorrection; got != 12 {
		t.Errorf("leapCorrection = %d, want 12", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		year  int
		want  int
	}{
		{"Reformation month shortened", time.October, 1582, 21},
		{"February Gregorian leap", time.February, 2000, 29},
		{"February Gregorian century non-leap", time.February, 1900, 28},
		{"February Julian century leap", time.February, 1500, 29},
		{"February common", time.February, 2023, 28},
		{"January", time.January, 2024, 31},
		{"April", time.April, 2024, 30},
		{"October other year unaffected", time.October, 1583, 31},
	}

	cal := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.DaysInMonth(tt.month, tt.year); got != tt.want {
				t.Errorf("DaysInMonth(%v, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestDaysSinceEpoch(t *testing.T) {
	cal := Default()

	if got := cal.DaysSinceEpoch(time.January, 1); got != 0 {
		t.Errorf("DaysSinceEpoch(January, 1) = %d, want 0", got)
	}

	// The step disappears exactly at the cutover, never before.
	before := cal.DaysSinceEpoch(time.October, 1582)
	after := cal.DaysSinceEpoch(time.November, 1582)
	if after-before != 21 {
		t.Errorf("November-October 1582 span = %d days, want 21", after-before)
	}
}

func TestMonthGridStartWeekday(t *testing.T) {
	// Known weekdays of the first of the month, Monday-indexed, all
	// consistent with the Saturday anchor of year 1 January 1.
	tests := []struct {
		name    string
		month   time.Month
		year    int
		wantCol int
	}{
		{"January 1 year 1 is Saturday", time.January, 1, 5},
		{"January 2024 starts Monday", time.January, 2024, 0},
		{"February 1900 starts Thursday", time.February, 1900, 3},
		{"December 2024 starts Sunday", time.December, 2024, 6},
		{"November 1582 starts Monday", time.November, 1582, 0},
	}

	cal := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := cal.MonthGrid(tt.month, tt.year)
			for col := 0; col < DaysPerWeek; col++ {
				if grid[0][col] == 1 {
					if col != tt.wantCol {
						t.Errorf("MonthGrid(%v, %d) day 1 in column %d, want %d",
							tt.month, tt.year, col, tt.wantCol)
					}
					return
				}
			}
			t.Errorf("MonthGrid(%v, %d) has no day 1", tt.month, tt.year)
		})
	}
}

func TestMonthGridReformationMonth(t *testing.T) {
	grid := Default().MonthGrid(time.October, 1582)

	if grid != Gregorian1582.MonthLayout {
		t.Fatalf("MonthGrid(October, 1582) = %v, want fixed layout", grid)
	}

	want := []int{1, 2, 3, 4, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31}
	got := grid.Days()
	if len(got) != len(want) {
		t.Fatalf("October 1582 has %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("October 1582 days = %v, want %v", got, want)
		}
	}
}

// Every non-reformation month must hold exactly 1..DaysInMonth once, in
// row-major order, wrapping rows every seven cells.
func TestMonthGridContiguity(t *testing.T) {
	cal := Default()
	years := []int{1, 100, 1500, 1582, 1583, 1752, 1900, 2000, 2024}

	for _, year := range years {
		for month := time.January; month <= time.December; month++ {
			if year == 1582 && month == time.October {
				continue
			}
			grid := cal.MonthGrid(month, year)
			days := grid.Days()
			if len(days) != cal.DaysInMonth(month, year) {
				t.Fatalf("MonthGrid(%v, %d) holds %d days, want %d",
					month, year, len(days), cal.DaysInMonth(month, year))
			}
			for i, day := range days {
				if day != i+1 {
					t.Fatalf("MonthGrid(%v, %d) days = %v, want 1..%d in order",
						month, year, days, len(days))
				}
			}
		}
	}
}

func TestMonthGridSixthRow(t *testing.T) {
	// 31 days starting on Sunday is the worst case and must fit the
	// fixed six rows exactly.
	grid := Default().MonthGrid(time.December, 2024)

	if grid[0][6] != 1 {
		t.Fatalf("December 2024 day 1 not in Sunday column: %v", grid[0])
	}
	if grid[5][0] != 30 || grid[5][1] != 31 {
		t.Errorf("December 2024 sixth row = %v, want 30 31 leading", grid[5])
	}
}

func TestMonthGridIdempotent(t *testing.T) {
	cal := Default()
	first := cal.MonthGrid(time.February, 1900)
	for i := 0; i < 3; i++ {
		if got := cal.MonthGrid(time.February, 1900); got != first {
			t.Fatalf("MonthGrid(February, 1900) changed between calls")
		}
	}
}

func TestGridDayCount(t *testing.T) {
	if got := Gregorian1582.MonthLayout.DayCount(); got != 21 {
		t.Errorf("Gregorian1582 layout DayCount = %d, want 21", got)
	}
	var empty Grid
	if got := empty.DayCount(); got != 0 {
		t.Errorf("empty grid DayCount = %d, want 0", got)
	}
}
