package uikit

import (
	"io/fs"

	"github.com/goliatone/go-uikit/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// StylesheetFS exposes the component stylesheet (uikit.css).
func StylesheetFS() fs.FS {
	return vanilla.AssetsFS()
}
