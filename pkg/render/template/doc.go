// Package template defines the template engine seam the uikit renderers
// depend on. Concrete engines live in sub-packages so callers can swap the
// markup backend without touching component code.
package template
