package datepicker

import (
	"strconv"
	"time"
)

// GridCells is the fixed number of cells in the day grid: six full weeks.
const GridCells = 42

// CellKind identifies what a grid cell represents.
type CellKind int

const (
	CellYear CellKind = iota
	CellMonth
	CellDay
	// CellPrev and CellNext are filler cells for the adjacent months.
	CellPrev
	CellNext
)

// MarshalText encodes the kind by name.
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k CellKind) String() string {
	switch k {
	case CellYear:
		return "year"
	case CellMonth:
		return "month"
	case CellDay:
		return "day"
	case CellPrev:
		return "prev"
	case CellNext:
		return "next"
	default:
		return "unknown"
	}
}

// Cell is one entry of a calendar grid. Value holds the year, the zero-based
// month or the day number depending on Kind.
type Cell struct {
	Kind     CellKind `json:"kind"`
	Value    int      `json:"value"`
	Label    string   `json:"label"`
	Selected bool     `json:"selected,omitempty"`
	Today    bool     `json:"today,omitempty"`
}

// Interactive reports whether clicking the cell changes the selection.
func (c Cell) Interactive() bool {
	return c.Kind != CellPrev && c.Kind != CellNext
}

// DaysIn returns the number of days of a zero-based month.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// firstWeekday returns the weekday index (0 = Sunday) of day 1.
func firstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// YearCells lists one cell per year in [MinYear, MaxYear]. The range is
// clamped to the supported years and at most MaxYearSpan cells are listed.
func YearCells(s State, now time.Time) []Cell {
	if s.MaxYear < s.MinYear {
		return nil
	}
	minYear, maxYear := clampYears(s.MinYear, s.MaxYear)
	if maxYear < minYear {
		return nil
	}
	cells := make([]Cell, 0, maxYear-minYear+1)
	for y := minYear; y <= maxYear; y++ {
		cells = append(cells, Cell{
			Kind:     CellYear,
			Value:    y,
			Label:    strconv.Itoa(y),
			Selected: s.SelYear.Is(y),
			Today:    y == now.Year(),
		})
	}
	return cells
}

// MonthCells lists the twelve months of the view year. Selected and today
// markers are independent of each other.
func MonthCells(s State, now time.Time) []Cell {
	cells := make([]Cell, 0, 12)
	for m := 0; m < 12; m++ {
		cells = append(cells, Cell{
			Kind:     CellMonth,
			Value:    m,
			Label:    MonthShortName(m),
			Selected: s.SelYear.Is(s.ViewYear) && s.SelMonth.Is(m),
			Today:    s.ViewYear == now.Year() && m == int(now.Month())-1,
		})
	}
	return cells
}

// DayCells lays out the view month on a 42 cell grid: trailing days of the
// previous month, the days of the month, then leading days of the next one.
func DayCells(s State, now time.Time) []Cell {
	cells := make([]Cell, 0, GridCells)

	offset := firstWeekday(s.ViewYear, s.ViewMonth)
	days := DaysIn(s.ViewYear, s.ViewMonth)
	prevDays := DaysIn(s.ViewYear, s.ViewMonth-1)

	for p := offset - 1; p >= 0; p-- {
		d := prevDays - p
		cells = append(cells, Cell{Kind: CellPrev, Value: d, Label: strconv.Itoa(d)})
	}

	selectedMonth := s.SelYear.Is(s.ViewYear) && s.SelMonth.Is(s.ViewMonth)
	todayMonth := now.Year() == s.ViewYear && int(now.Month())-1 == s.ViewMonth
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{
			Kind:     CellDay,
			Value:    d,
			Label:    strconv.Itoa(d),
			Selected: selectedMonth && s.SelDay.Is(d),
			Today:    todayMonth && now.Day() == d,
		})
	}

	for n := 1; len(cells) < GridCells; n++ {
		cells = append(cells, Cell{Kind: CellNext, Value: n, Label: strconv.Itoa(n)})
	}
	return cells
}
