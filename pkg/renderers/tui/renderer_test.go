package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/testsupport"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	selects      []SelectConfig
	inputPos     int
	selectPos    int
	confirmPos   int
	selectErr    error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		if s.selectErr != nil {
			return -1, s.selectErr
		}
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func pickerConfig() datepicker.Config {
	return datepicker.Config{
		ID:      "dob",
		Name:    "date_of_birth",
		Label:   "Date of Birth",
		MinYear: 2020,
		MaxYear: 2030,
	}
}

func newTestRenderer(driver PromptDriver, opts ...Option) *Renderer {
	return New(append([]Option{WithPromptDriver(driver), WithClock(testsupport.Clock())}, opts...)...)
}

func TestPick_YearMonthDayConfirm(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{6, 1, 6}, // 2024, January, 5
		confirm:   []bool{true},
	}
	result, err := newTestRenderer(driver).Pick(context.Background(), pickerConfig())
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if result.Value != "2024-01-05" {
		t.Fatalf("expected 2024-01-05, got %q", result.Value)
	}
	if result.Display != "Jan 5, 2024" {
		t.Fatalf("unexpected display %q", result.Display)
	}
	if result.Name != "date_of_birth" || result.ID != "dob" {
		t.Fatalf("unexpected identity %+v", result)
	}

	if len(driver.selects) != 3 {
		t.Fatalf("expected 3 selects, got %d", len(driver.selects))
	}
	years := driver.selects[0]
	if len(years.Options) != 2+11 {
		t.Fatalf("expected 11 years plus shortcuts, got %d", len(years.Options))
	}
	if years.Options[years.DefaultIndex] != "2025" {
		t.Fatalf("year default should point at the current year, got %q", years.Options[years.DefaultIndex])
	}
	if !strings.HasPrefix(years.Message, "Date of Birth: ") {
		t.Fatalf("expected label in message, got %q", years.Message)
	}
	if got := driver.selects[2].Message; got != "Date of Birth: January 2024" {
		t.Fatalf("unexpected day title %q", got)
	}
	if len(driver.selects[2].Options) != 2+31 {
		t.Fatalf("day select should list only January days, got %d", len(driver.selects[2].Options))
	}
	if len(driver.infoMessages) != 1 || driver.infoMessages[0] != "Selected Jan 5, 2024" {
		t.Fatalf("unexpected info messages %v", driver.infoMessages)
	}
}

func TestPick_BackReturnsToYears(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{6, 0, 7, 3, 15}, // 2024, back, 2025, March, 14
		confirm:   []bool{true},
	}
	result, err := newTestRenderer(driver).Pick(context.Background(), pickerConfig())
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if result.Value != "2025-03-14" {
		t.Fatalf("expected 2025-03-14, got %q", result.Value)
	}
	month := driver.selects[3]
	if month.Options[month.DefaultIndex] != "March" {
		t.Fatalf("month default should be the current month, got %q", month.Options[month.DefaultIndex])
	}
}

func TestPick_TodayThenDecline(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0, 2}, // today, then day 1
		confirm:   []bool{false, true},
	}
	result, err := newTestRenderer(driver).Pick(context.Background(), pickerConfig())
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if result.Value != "2025-03-01" {
		t.Fatalf("expected 2025-03-01, got %q", result.Value)
	}
	day := driver.selects[1]
	if day.Options[day.DefaultIndex] != "14" {
		t.Fatalf("day default should be the selected day, got %q", day.Options[day.DefaultIndex])
	}
}

func TestPick_TypedDate(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{1},
		inputs:    []string{" 2021-07-04 "},
	}
	result, err := newTestRenderer(driver).Pick(context.Background(), pickerConfig())
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if result.Value != "2021-07-04" {
		t.Fatalf("expected 2021-07-04, got %q", result.Value)
	}
}

func TestPick_TypedDateOutOfRange(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{1},
		inputs:    []string{"2040-01-01"},
		selectErr: ErrAborted,
	}
	_, err := newTestRenderer(driver, WithTheme(Theme{InfoPrefix: "! "})).Pick(context.Background(), pickerConfig())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if len(driver.infoMessages) != 1 || !strings.HasPrefix(driver.infoMessages[0], "! ") {
		t.Fatalf("expected a prefixed validation message, got %v", driver.infoMessages)
	}
	if !strings.Contains(driver.infoMessages[0], "between 2020 and 2030") {
		t.Fatalf("unexpected message %q", driver.infoMessages[0])
	}
}

func TestPick_Aborted(t *testing.T) {
	driver := &stubDriver{selectErr: ErrAborted}
	_, err := newTestRenderer(driver).Pick(context.Background(), pickerConfig())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestPick_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestRenderer(&stubDriver{}).Pick(ctx, pickerConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestValidateTyped(t *testing.T) {
	cases := map[string]bool{
		"2024-01-05": true,
		"2024-02-30": false,
		"01/05/2024": false,
		"2019-12-31": false,
		"":           false,
	}
	for input, ok := range cases {
		err := validateTyped(input, 2020, 2030)
		if ok && err != nil {
			t.Errorf("%q: unexpected error %v", input, err)
		}
		if !ok && !errors.Is(err, ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate, got %v", input, err)
		}
	}
}

func TestRenderPicker_Formats(t *testing.T) {
	cfg := pickerConfig()
	cfg.Value = "2024-01-05"

	tests := []struct {
		format      OutputFormat
		contentType string
		check       func(t *testing.T, out []byte)
	}{
		{
			format:      OutputFormatJSON,
			contentType: "application/json",
			check: func(t *testing.T, out []byte) {
				var result Result
				if err := json.Unmarshal(out, &result); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if result.Value != "2024-01-10" {
					t.Fatalf("unexpected value %q", result.Value)
				}
			},
		},
		{
			format:      OutputFormatFormURLEncoded,
			contentType: "application/x-www-form-urlencoded",
			check: func(t *testing.T, out []byte) {
				if string(out) != "date_of_birth=2024-01-10" {
					t.Fatalf("unexpected form output %q", out)
				}
			},
		},
		{
			format:      OutputFormatPrettyText,
			contentType: "text/plain",
			check: func(t *testing.T, out []byte) {
				if string(out) != "date_of_birth: Jan 10, 2024 (2024-01-10)\n" {
					t.Fatalf("unexpected pretty output %q", out)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			driver := &stubDriver{selectIdx: []int{11}, confirm: []bool{true}}
			r := newTestRenderer(driver, WithOutputFormat(tt.format))
			if r.ContentType() != tt.contentType {
				t.Fatalf("content type: want %s, got %s", tt.contentType, r.ContentType())
			}

			snap := datepicker.New(cfg, datepicker.WithClock(testsupport.Clock())).Snapshot()
			out, err := r.RenderPicker(context.Background(), snap)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			// A preselected value opens straight on the day step.
			day := driver.selects[0]
			if day.Options[day.DefaultIndex] != "5" {
				t.Fatalf("expected day 5 preselected, got %q", day.Options[day.DefaultIndex])
			}
			tt.check(t, out)
		})
	}
}
