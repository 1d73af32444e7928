// Package datepicker implements the year → month → day date picker used by
// the uikit widgets.
//
// A Picker owns the interaction state of one widget instance. Front ends
// (the HTML component, the HTTP handler, the terminal renderers) drive it
// with typed events and render the View it derives from its state. Invalid
// input never produces an error: transitions that cannot apply are silent
// no-ops, and a malformed stored value leaves the affected selection fields
// null.
package datepicker
