package vanilla

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/overlay"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla/components"
)

// Markup class names of the date picker grid.
const (
	ClassCell         = "ac-datepicker-cell"
	ClassCellSelected = "ac-datepicker-cell-selected"
	ClassCellToday    = "ac-datepicker-cell-today"
	ClassCellOther    = "ac-datepicker-cell-other"
	ClassYearGrid     = "ac-datepicker-year-grid"
	ClassMonthGrid    = "ac-datepicker-month-grid"
	ClassDayGrid      = "ac-datepicker-day-grid"
)

type pickerPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Label        string `json:"label"`
	Placeholder  string `json:"placeholder"`
	Value        string `json:"value"`
	Display      string `json:"display"`
	ErrMsg       string `json:"err_msg"`
	MinYear      string `json:"min_year"`
	MaxYear      string `json:"max_year"`
	Expanded     string `json:"expanded"`
	OverlayStyle string `json:"overlay_style"`
	AriaLabel    string `json:"aria_label"`
	Endpoint     string `json:"endpoint"`
	Title        string `json:"title"`
	BackStyle    string `json:"back_style"`
	Step         string `json:"step"`
	Body         string `json:"body"`
}

type bodyPayload struct {
	GridClass string        `json:"grid_class"`
	Weekdays  []string      `json:"weekdays"`
	Cells     []cellPayload `json:"cells"`
}

type cellPayload struct {
	Class  string `json:"class"`
	Attr   string `json:"attr"`
	Value  string `json:"value"`
	Label  string `json:"label"`
	Scroll bool   `json:"scroll"`
}

// DatePicker renders a closed picker for a widget declaration, deriving its
// initial state from cfg.
func (r *Renderer) DatePicker(cfg datepicker.Config) render.Component {
	return render.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		picker := datepicker.New(cfg, datepicker.WithClock(r.clock))
		return r.DatePickerSnapshot(picker.Snapshot()).Render(ctx, w)
	})
}

// DatePickerSnapshot renders the full picker widget for a snapshot: trigger,
// hidden value, overlay and the current step.
func (r *Renderer) DatePickerSnapshot(snap datepicker.Snapshot) render.Component {
	return r.component(components.NameDatePicker, func(ctx context.Context) (any, error) {
		body, err := r.renderComponent(components.NameDatePickerBody, buildBodyPayload(snap.View))
		if err != nil {
			return nil, err
		}
		return r.buildPickerPayload(ctx, snap, body), nil
	})
}

// DatePickerBody renders only the grid of the current step. The browser
// runtime swaps it into data-ac-datepicker-body.
func (r *Renderer) DatePickerBody(view datepicker.View) render.Component {
	return r.component(components.NameDatePickerBody, func(context.Context) (any, error) {
		return buildBodyPayload(view), nil
	})
}

// RenderPicker implements render.Renderer with the full widget markup.
func (r *Renderer) RenderPicker(ctx context.Context, snap datepicker.Snapshot) ([]byte, error) {
	out, err := render.String(ctx, r.DatePickerSnapshot(snap))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render picker: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) buildPickerPayload(ctx context.Context, snap datepicker.Snapshot, body string) pickerPayload {
	cfg := snap.Config

	ariaLabel := "Date picker"
	if cfg.Label != "" {
		ariaLabel = cfg.Label + " date picker"
	}
	var ov overlay.Overlay
	expanded := "false"
	if snap.Open {
		ov.Show()
		expanded = "true"
	}
	backStyle := ""
	if !snap.View.BackVisible {
		backStyle = "visibility: hidden"
	}
	endpoint := render.PickerEndpoint(ctx)
	if endpoint == "" {
		endpoint = r.pickerEndpoint(cfg.ID)
	}

	return pickerPayload{
		ID:           cfg.ID,
		Name:         cfg.Name,
		Label:        cfg.Label,
		Placeholder:  cfg.ResolvedPlaceholder(),
		Value:        snap.Value,
		Display:      snap.Display,
		ErrMsg:       cfg.ErrMsg,
		MinYear:      strconv.Itoa(snap.State.MinYear),
		MaxYear:      strconv.Itoa(snap.State.MaxYear),
		Expanded:     expanded,
		OverlayStyle: ov.Style(),
		AriaLabel:    ariaLabel,
		Endpoint:     endpoint,
		Title:        snap.View.Title,
		BackStyle:    backStyle,
		Step:         snap.View.Step.String(),
		Body:         body,
	}
}

func buildBodyPayload(view datepicker.View) bodyPayload {
	payload := bodyPayload{
		Weekdays: view.Weekdays,
		Cells:    make([]cellPayload, 0, len(view.Cells)),
	}
	switch view.Step {
	case datepicker.StepMonth:
		payload.GridClass = ClassMonthGrid
	case datepicker.StepDay:
		payload.GridClass = ClassDayGrid
	default:
		payload.GridClass = ClassYearGrid
	}

	for i, cell := range view.Cells {
		payload.Cells = append(payload.Cells, cellPayload{
			Class:  cellClass(cell),
			Attr:   cellAttr(cell),
			Value:  cellValue(cell),
			Label:  cell.Label,
			Scroll: i == view.ScrollTo,
		})
	}
	return payload
}

func cellClass(cell datepicker.Cell) string {
	class := ClassCell
	if !cell.Interactive() {
		class += " " + ClassCellOther
	}
	if cell.Selected {
		class += " " + ClassCellSelected
	}
	if cell.Today {
		class += " " + ClassCellToday
	}
	return class
}

func cellAttr(cell datepicker.Cell) string {
	switch cell.Kind {
	case datepicker.CellYear:
		return "data-ac-datepicker-year"
	case datepicker.CellMonth:
		return "data-ac-datepicker-month"
	case datepicker.CellDay:
		return "data-ac-datepicker-day"
	default:
		return "data-ac-datepicker-day-other"
	}
}

func cellValue(cell datepicker.Cell) string {
	switch cell.Kind {
	case datepicker.CellPrev, datepicker.CellNext:
		return cell.Kind.String() + "-" + strconv.Itoa(cell.Value)
	default:
		return strconv.Itoa(cell.Value)
	}
}
