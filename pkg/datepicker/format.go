package datepicker

import (
	"fmt"
	"strings"
	"time"
)

// ISOLayout is the layout of the hidden field value.
const ISOLayout = "2006-01-02"

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthShortNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var weekdayNames = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// MonthName returns the full English name of a zero-based month, or an empty
// string when month is out of range.
func MonthName(month int) string {
	if month < 0 || month > 11 {
		return ""
	}
	return monthNames[month]
}

// MonthShortName returns the three letter abbreviation of a zero-based month.
func MonthShortName(month int) string {
	if month < 0 || month > 11 {
		return ""
	}
	return monthShortNames[month]
}

// Weekdays returns the two letter weekday headers starting on Sunday.
func Weekdays() []string {
	out := make([]string, len(weekdayNames))
	copy(out, weekdayNames[:])
	return out
}

// FormatISO formats a selection as YYYY-MM-DD. month is zero-based.
func FormatISO(year, month, day int) string {
	return fmt.Sprintf("%d-%02d-%02d", year, month+1, day)
}

// FormatDisplay formats a selection as "Mon D, YYYY". month is zero-based.
func FormatDisplay(year, month, day int) string {
	return fmt.Sprintf("%s %d, %d", MonthShortName(month), day, year)
}

// DisplayFromISO converts a stored ISO value into its display form. Values
// that do not parse are returned unchanged.
func DisplayFromISO(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}
	t, err := time.Parse(ISOLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}

// ParseISO splits a stored YYYY-MM-DD value into nullable parts. The month
// is returned zero-based. Each part is read like a lenient integer parse:
// leading digits are used, and a part without any yields a null field.
func ParseISO(value string) (year, month, day NullInt) {
	value = strings.TrimSpace(value)
	if value == "" {
		return NullInt{}, NullInt{}, NullInt{}
	}
	parts := strings.Split(value, "-")
	year = leadingInt(partAt(parts, 0))
	month = leadingInt(partAt(parts, 1))
	if month.Valid {
		month.Value--
	}
	day = leadingInt(partAt(parts, 2))
	return year, month, day
}

func partAt(parts []string, idx int) string {
	if idx < len(parts) {
		return parts[idx]
	}
	return ""
}

func leadingInt(raw string) NullInt {
	raw = strings.TrimSpace(raw)
	value := 0
	digits := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			break
		}
		value = value*10 + int(r-'0')
		digits++
		if digits > 9 {
			return NullInt{}
		}
	}
	if digits == 0 {
		return NullInt{}
	}
	return Int(value)
}
