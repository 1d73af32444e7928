package datepicker

import (
	"strconv"
	"time"
)

// TitleSelectYear is the heading of the year step.
const TitleSelectYear = "Select Year"

// View is the render model of a picker: everything a front end needs to draw
// the current step.
type View struct {
	Step        Step   `json:"step"`
	Title       string `json:"title"`
	BackVisible bool   `json:"back_visible"`
	// Weekdays is only populated on the day step.
	Weekdays []string `json:"weekdays,omitempty"`
	Cells    []Cell   `json:"cells"`
	// ScrollTo is the index of the cell that should be centred in view, or
	// -1 when no scrolling applies.
	ScrollTo int `json:"scroll_to"`
}

// BuildView renders a state into a View. It is a pure function of its
// inputs.
func BuildView(s State, now time.Time) View {
	switch s.Step {
	case StepMonth:
		return View{
			Step:        StepMonth,
			Title:       strconv.Itoa(s.ViewYear),
			BackVisible: true,
			Cells:       MonthCells(s, now),
			ScrollTo:    -1,
		}
	case StepDay:
		return View{
			Step:        StepDay,
			Title:       MonthName(s.ViewMonth) + " " + strconv.Itoa(s.ViewYear),
			BackVisible: true,
			Weekdays:    Weekdays(),
			Cells:       DayCells(s, now),
			ScrollTo:    -1,
		}
	default:
		cells := YearCells(s, now)
		return View{
			Step:        StepYear,
			Title:       TitleSelectYear,
			BackVisible: false,
			Cells:       cells,
			ScrollTo:    scrollTarget(cells),
		}
	}
}

func scrollTarget(cells []Cell) int {
	for i, c := range cells {
		if c.Selected {
			return i
		}
	}
	for i, c := range cells {
		if c.Today {
			return i
		}
	}
	return -1
}
