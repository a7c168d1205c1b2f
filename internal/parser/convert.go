package parser

import (
	"fmt"

	"github.com/manav03panchal/humanspan/internal/errors"
)

// Fixed calendar approximations.
const (
	hoursPerDay  = 24
	daysPerWeek  = 7
	daysPerMonth = 30
	daysPerYear  = 365
)

// ToDays converts number of unit into an equivalent count of days.
// Months count as 30 days and years as 365.
func ToDays(number float64, unit Unit) (float64, error) {
	switch unit {
	case Hour:
		return number / hoursPerDay, nil
	case Day:
		return number, nil
	case Week:
		return number * daysPerWeek, nil
	case Month:
		return number * daysPerMonth, nil
	case Year:
		return number * daysPerYear, nil
	default:
		return 0, fmt.Errorf("%w: %s", errors.ErrUnknownUnit, unit)
	}
}

// DaysPer returns the day multiplier used for unit, or 0 for an invalid unit.
func DaysPer(unit Unit) float64 {
	d, err := ToDays(1, unit)
	if err != nil {
		return 0
	}
	return d
}
