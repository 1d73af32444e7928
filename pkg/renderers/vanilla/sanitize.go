package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy

	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

// sanitizeIcon keeps inline SVG icons and emoji while stripping scripts,
// event handlers and foreign markup.
func sanitizeIcon(markup string) string {
	markup = strings.TrimSpace(markup)
	if markup == "" {
		return ""
	}
	iconPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon", "ellipse", "title", "span", "i")
		p.AllowAttrs("class", "aria-hidden", "role").Globally()
		p.AllowAttrs("xmlns", "viewBox", "viewbox", "width", "height", "fill", "stroke", "stroke-width",
			"stroke-linecap", "stroke-linejoin", "focusable").OnElements("svg")
		p.AllowAttrs("d", "fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin", "transform").OnElements("path", "g")
		p.AllowAttrs("cx", "cy", "r", "rx", "ry", "fill", "stroke").OnElements("circle", "ellipse")
		p.AllowAttrs("x", "y", "width", "height", "rx", "ry", "fill", "stroke").OnElements("rect")
		p.AllowAttrs("x1", "y1", "x2", "y2", "points", "stroke", "fill").OnElements("line", "polyline", "polygon")
		iconPolicy = p
	})
	return iconPolicy.Sanitize(markup)
}

// sanitizeMessage keeps inline emphasis in toast messages and drops
// everything else.
func sanitizeMessage(message string) string {
	messagePolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("b", "strong", "i", "em", "code", "br")
		messagePolicy = p
	})
	return messagePolicy.Sanitize(message)
}
