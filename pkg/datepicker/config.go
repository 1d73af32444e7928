package datepicker

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultPlaceholder is shown in the trigger when no date is selected.
	DefaultPlaceholder = "Select a date..."

	// MinSupportedYear and MaxSupportedYear bound the years a picker can
	// show; values are written as four digit ISO dates.
	MinSupportedYear = 1
	MaxSupportedYear = 9999
	// MaxYearSpan is the most years a year grid lists.
	MaxYearSpan = 1000

	yearsBack    = 100
	yearsForward = 20
)

// Config describes one date picker widget as declared by the host page.
type Config struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	// Value is the pre-selected date in YYYY-MM-DD form.
	Value   string `json:"value,omitempty"`
	MinYear int    `json:"min_year,omitempty"`
	MaxYear int    `json:"max_year,omitempty"`
	ErrMsg  string `json:"err_msg,omitempty"`
}

// ResolvedPlaceholder returns the placeholder or the default one.
func (c Config) ResolvedPlaceholder() string {
	if p := strings.TrimSpace(c.Placeholder); p != "" {
		return p
	}
	return DefaultPlaceholder
}

// ResolveMinYear defaults a zero minimum to a century before now.
func ResolveMinYear(minYear int, now time.Time) int {
	if minYear == 0 {
		return now.Year() - yearsBack
	}
	return minYear
}

// ResolveMaxYear defaults a zero maximum to twenty years after now.
func ResolveMaxYear(maxYear int, now time.Time) int {
	if maxYear == 0 {
		return now.Year() + yearsForward
	}
	return maxYear
}

// ValidateYears checks the declared year range. Zero bounds take their
// defaults and are resolved against now before the span is checked.
func (c Config) ValidateYears(now time.Time) error {
	for _, bound := range []struct {
		key   string
		value int
	}{{"min_year", c.MinYear}, {"max_year", c.MaxYear}} {
		if bound.value != 0 && (bound.value < MinSupportedYear || bound.value > MaxSupportedYear) {
			return fmt.Errorf("datepicker: %s %d is outside %d..%d", bound.key, bound.value, MinSupportedYear, MaxSupportedYear)
		}
	}
	minYear, maxYear := ResolveMinYear(c.MinYear, now), ResolveMaxYear(c.MaxYear, now)
	if minYear > maxYear {
		return fmt.Errorf("datepicker: min_year %d is after max_year %d", minYear, maxYear)
	}
	if maxYear-minYear+1 > MaxYearSpan {
		return fmt.Errorf("datepicker: year range %d..%d spans more than %d years", minYear, maxYear, MaxYearSpan)
	}
	return nil
}

// clampYears keeps a resolved range within the supported years and the
// maximum span. An inverted range is left inverted.
func clampYears(minYear, maxYear int) (int, int) {
	minYear = min(max(minYear, MinSupportedYear), MaxSupportedYear)
	maxYear = min(max(maxYear, MinSupportedYear), MaxSupportedYear)
	if maxYear-minYear >= MaxYearSpan {
		maxYear = minYear + MaxYearSpan - 1
	}
	return minYear, maxYear
}
