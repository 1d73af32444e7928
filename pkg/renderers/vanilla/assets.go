package vanilla

import (
	"context"
	"sort"
	"strings"

	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla/components"
)

type scriptPayload struct {
	Src    string `json:"src"`
	Defer  bool   `json:"defer"`
	Async  bool   `json:"async"`
	Module bool   `json:"module"`
}

type assetsPayload struct {
	Stylesheets []string        `json:"stylesheets"`
	Scripts     []scriptPayload `json:"scripts"`
	CSSVars     string          `json:"css_vars"`
	Theme       string          `json:"theme"`
}

// Assets renders the link, style and script tags the named components need.
// With no names it covers every registered component. Theme CSS variables
// are emitted as a :root rule.
func (r *Renderer) Assets(names ...string) render.Component {
	return r.component(components.NameAssets, func(context.Context) (any, error) {
		if len(names) == 0 {
			names = r.registry.Names()
		}
		styles, scripts := r.registry.Assets(names)

		payload := assetsPayload{}
		for _, href := range styles {
			payload.Stylesheets = append(payload.Stylesheets, r.assetURL(href))
		}
		for _, s := range scripts {
			payload.Scripts = append(payload.Scripts, scriptPayload{
				Src:    r.assetURL(s.Src),
				Defer:  s.Defer,
				Async:  s.Async,
				Module: s.Module,
			})
		}
		if r.theme != nil {
			payload.Theme = r.theme.Theme
			payload.CSSVars = cssVarsRule(r.theme.CSSVars)
		}
		return payload, nil
	})
}

// cssVarsRule renders custom properties sorted by name. Keys missing the
// leading "--" get it added.
func cssVarsRule(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		name := strings.TrimSpace(key)
		value := strings.TrimSpace(vars[key])
		if name == "" || value == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name + ": " + value + ";")
	}
	return b.String()
}
