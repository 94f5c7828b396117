// Package cli validates command-line arguments for the calendar engine.
// The engine itself does not re-check its preconditions; this layer is
// where month and year ranges are enforced.
package cli

import (
	"errors"
	"strconv"
	"time"
)

// ErrUsage marks any argument failure. The command maps it to the
// usage line on stderr and a non-zero exit, with no partial output.
var ErrUsage = errors.New("invalid arguments")

// ParseMonthYear parses the two positional arguments. Month must be an
// integer in [1, 12] and year an integer >= 1.
func ParseMonthYear(args []string) (time.Month, int, error) {
	if len(args) != 2 {
		return 0, 0, ErrUsage
	}

	month, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, ErrUsage
	}
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, ErrUsage
	}

	if month < 1 || month > 12 || year < 1 {
		return 0, 0, ErrUsage
	}
	return time.Month(month), year, nil
}
