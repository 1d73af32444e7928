package vanilla_test

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/contact"
	"github.com/goliatone/go-uikit/pkg/modal"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla"
	"github.com/goliatone/go-uikit/pkg/testsupport"
	"github.com/goliatone/go-uikit/pkg/toast"
)

func TestModal(t *testing.T) {
	r := newRenderer(t)
	m := modal.New("confirm", "Confirm Action")

	html := renderHTML(t, r.Modal(m, render.Raw("<p>Are you sure?</p>")))
	for _, want := range []string{
		`id="confirm"`,
		"ac-modal-overlay",
		`class="ac-modal"`,
		"Confirm Action",
		"data-modal-close",
		"<p>Are you sure?</p>",
		`role="dialog"`,
		`style="display: none"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	if strings.Contains(html, "ac-modal-footer") {
		t.Error("footer should be omitted")
	}

	m.Open()
	if html := renderHTML(t, r.Modal(m, nil)); !strings.Contains(html, `style="display: flex"`) {
		t.Error("open modal should render visible")
	}
}

func TestModalWithFooter(t *testing.T) {
	r := newRenderer(t)
	html := renderHTML(t, r.ModalWithFooter(modal.New("dlg", "Dialog"),
		render.Raw("<p>Body content</p>"),
		render.Raw(`<button class="btn">OK</button>`)))

	if !strings.Contains(html, "ac-modal-footer") {
		t.Error("expected ac-modal-footer class")
	}
	if !strings.Contains(html, `class="btn"`) {
		t.Error("expected footer button")
	}
	if !strings.Contains(html, "Body content") {
		t.Error("expected body content")
	}
}

func TestToast(t *testing.T) {
	r := newRenderer(t)
	for _, level := range []toast.Level{toast.Success, toast.Error, toast.Warning, toast.Info} {
		t.Run(string(level), func(t *testing.T) {
			html := renderHTML(t, r.Toast(toast.Toast{ID: "t1", Message: "Something happened", Level: level}))
			for _, want := range []string{
				"ac-toast ac-toast-" + string(level),
				"Something happened",
				`role="alert"`,
				"data-toast-close",
				"ac-toast-message",
				"ac-toast-close",
			} {
				if !strings.Contains(html, want) {
					t.Errorf("expected %q in output", want)
				}
			}
			if strings.Contains(html, "ac-toast-exit") {
				t.Error("visible toast should not carry the exit class")
			}
		})
	}
}

func TestToast_SanitizesAndDefaultsLevel(t *testing.T) {
	html := renderHTML(t, newRenderer(t).Toast(toast.Toast{
		ID:      "t2",
		Message: `<strong>Saved</strong><script>alert(1)</script>`,
		Exiting: true,
	}))
	if strings.Contains(html, "<script>") {
		t.Fatalf("script must be stripped: %s", html)
	}
	if !strings.Contains(html, "<strong>Saved</strong>") {
		t.Fatalf("inline emphasis should survive: %s", html)
	}
	if !strings.Contains(html, "ac-toast-info") || !strings.Contains(html, "ac-toast-exit") {
		t.Fatalf("expected info level and exit class: %s", html)
	}
}

func TestToastContainer(t *testing.T) {
	r := newRenderer(t)

	empty := renderHTML(t, r.ToastContainer(nil))
	if !strings.Contains(empty, "ac-toast-container") {
		t.Error("expected ac-toast-container class")
	}

	html := renderHTML(t, r.ToastContainer([]toast.Toast{
		{ID: "a", Message: "one", Level: toast.Success},
		{ID: "b", Message: "two", Level: toast.Error},
	}))
	doc := testsupport.MustParseHTML(t, html)
	if got := doc.Find(".ac-toast-container .ac-toast").Length(); got != 2 {
		t.Fatalf("expected 2 toasts, got %d", got)
	}
}

func TestFeatureCard(t *testing.T) {
	r := newRenderer(t)
	html := renderHTML(t, r.FeatureCard("Fast", "Blazing fast performance", render.Raw("⚡")))

	for _, want := range []string{"ac-feature-card", "Fast", "Blazing fast performance", "ac-feature-card-icon", "⚡"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestFeatureCard_SanitizesIcon(t *testing.T) {
	icon := `<svg viewBox="0 0 24 24" onload="alert(1)"><path d="M0 0h24v24H0z"/></svg><script>alert(2)</script>`
	html := renderHTML(t, newRenderer(t).FeatureCard("Safe", "Icons are sanitized", render.Raw(icon)))

	if strings.Contains(html, "onload") || strings.Contains(html, "<script>") {
		t.Fatalf("icon not sanitized: %s", html)
	}
	if !strings.Contains(html, "<path") {
		t.Fatalf("svg path should survive: %s", html)
	}
}

func TestPricingCard(t *testing.T) {
	r := newRenderer(t)
	html := renderHTML(t, r.PricingCard(vanilla.PricingTier{
		Name:        "Pro",
		Price:       "29",
		Currency:    "$",
		Period:      "/month",
		Features:    []string{"Unlimited projects", "Priority support", "Custom domains"},
		CTAText:     "Get Started",
		CTALink:     "/signup?plan=pro",
		Highlighted: true,
		Badge:       "Popular",
	}))

	for _, want := range []string{
		"ac-pricing-card", "ac-pricing-card-highlighted", "Popular", "Pro", "29", "/month",
		"Unlimited projects", "Get Started", `href="/signup?plan=pro"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	plain := renderHTML(t, r.PricingCard(vanilla.PricingTier{Name: "Free", Price: "0", CTAText: "Start Free", CTALink: "/signup"}))
	if strings.Contains(plain, "ac-pricing-card-highlighted") {
		t.Error("should not have highlighted class")
	}
	if strings.Contains(plain, "ac-pricing-badge") {
		t.Error("should not have badge")
	}
}

func TestTestimonialCard(t *testing.T) {
	r := newRenderer(t)
	html := renderHTML(t, r.TestimonialCard(
		"This product changed my workflow completely.",
		"Jane Doe",
		"CTO at TechCo",
		"https://example.com/avatar.jpg",
	))
	for _, want := range []string{
		"ac-testimonial-card", "This product changed my workflow completely.", "Jane Doe", "CTO at TechCo", "ac-testimonial-avatar",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	noAvatar := renderHTML(t, r.TestimonialCard("Great tool!", "John", "Developer", ""))
	if strings.Contains(noAvatar, "ac-testimonial-avatar") {
		t.Error("should not render avatar when URL is empty")
	}
}

func TestTextInput(t *testing.T) {
	r := newRenderer(t)
	html := renderHTML(t, r.TextInput("email", "email", "Email", "email", "you@example.com", "", ""))

	for _, want := range []string{`id="email"`, `name="email"`, `type="email"`, "ac-label", "ac-input"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	if strings.Contains(html, "ac-input-error") || strings.Contains(html, "ac-error-text") {
		t.Error("should not render error chrome when no error")
	}

	withErr := renderHTML(t, r.TextInput("name", "name", "Name", "", "", "", "Name is required"))
	for _, want := range []string{"ac-input-error", "ac-error-text", "Name is required", `type="text"`} {
		if !strings.Contains(withErr, want) {
			t.Errorf("expected %q in error output", want)
		}
	}
}

func TestTextArea(t *testing.T) {
	r := newRenderer(t)
	html := renderHTML(t, r.TextArea("msg", "message", "Message", "Type here...", "", 5, ""))
	for _, want := range []string{"<textarea", "ac-textarea", `rows="5"`} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	defaulted := renderHTML(t, r.TextArea("msg", "message", "Message", "", "", 0, ""))
	if !strings.Contains(defaulted, `rows="5"`) {
		t.Error("zero rows should default to 5")
	}
}

func TestSelect(t *testing.T) {
	html := renderHTML(t, newRenderer(t).Select("sel", "selection", "Pick one", []vanilla.SelectOption{
		{Value: "", Label: "Choose..."},
		{Value: "a", Label: "Option A"},
		{Value: "b", Label: "Option B", Selected: true},
	}, ""))

	doc := testsupport.MustParseHTML(t, html)
	if doc.Find("select.ac-select option").Length() != 3 {
		t.Fatalf("expected 3 options: %s", html)
	}
	if got := doc.Find("option[selected]").AttrOr("value", ""); got != "b" {
		t.Fatalf("expected option b selected, got %q", got)
	}
}

func TestContactForm(t *testing.T) {
	r := newRenderer(t)
	html := renderHTML(t, r.ContactForm("/contact", contact.DefaultFields(), contact.FormData{}, render.CSRFToken("_csrf", "tok")))

	for _, want := range []string{
		`action="/contact"`, `method="POST"`, "ac-contact-form",
		`name="name"`, `name="email"`, `name="subject"`, `name="message"`,
		"ac-contact-submit", `name="_csrf" value="tok"`, `rows="5"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestContactForm_WithData(t *testing.T) {
	html := renderHTML(t, newRenderer(t).ContactForm("/send", contact.DefaultFields(), contact.FormData{
		Values: map[string]string{
			"name":    "Alice",
			"email":   "alice@example.com",
			"subject": "Hello",
			"message": "Hi there",
		},
		Errors: map[string]string{"email": "Invalid email"},
	}))

	for _, want := range []string{"Alice", "alice@example.com", "Invalid email", "ac-input-error", "Hi there"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	doc := testsupport.MustParseHTML(t, html)
	if doc.Find(".ac-input-error").Length() != 1 {
		t.Fatalf("only the email input should carry the error class")
	}
}

func TestContactForm_CustomFields(t *testing.T) {
	html := renderHTML(t, newRenderer(t).ContactForm("/custom", []contact.Field{
		{Name: "full_name", Label: "Full Name", Type: "text", Placeholder: "Jane Doe"},
		{Name: "body", Label: "Body", Type: "textarea", Placeholder: "Write here...", Rows: 10},
	}, contact.FormData{}))

	if !strings.Contains(html, `name="full_name"`) || !strings.Contains(html, `name="body"`) {
		t.Error("expected custom fields")
	}
	if strings.Contains(html, `name="email"`) || strings.Contains(html, `name="subject"`) {
		t.Error("default fields should not be present")
	}
	if !strings.Contains(html, `rows="10"`) {
		t.Error("expected custom rows")
	}
}

func TestAssets(t *testing.T) {
	r := newRenderer(t)

	all := renderHTML(t, r.Assets())
	if !strings.Contains(all, `href="/assets/uikit/uikit.css"`) || !strings.Contains(all, `src="/assets/uikit/uikit.js"`) {
		t.Fatalf("expected default asset urls: %s", all)
	}
	if strings.Count(all, "<link") != 1 || strings.Count(all, "<script") != 1 {
		t.Fatalf("assets must be deduplicated: %s", all)
	}

	static := renderHTML(t, r.Assets("feature-card"))
	if strings.Contains(static, "<script") {
		t.Fatalf("static components should not pull the runtime: %s", static)
	}
}

func TestAssets_Theme(t *testing.T) {
	r := newRenderer(t, vanilla.WithTheme(testThemeConfig()))

	html := renderHTML(t, r.Assets())
	for _, want := range []string{
		`href="/themes/acme/uikit.css"`,
		`src="/themes/acme/uikit.js"`,
		`data-uikit-theme="acme"`,
		"--brand: #123456;",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output: %s", want, html)
		}
	}
}

func TestThemePartialOverride(t *testing.T) {
	cfg := testThemeConfig()
	cfg.Partials = map[string]string{"uikit.feature-card": "templates/components/testimonial_card.tmpl"}
	r := newRenderer(t, vanilla.WithTheme(cfg))

	html := renderHTML(t, r.FeatureCard("Fast", "desc", nil))
	if !strings.Contains(html, "ac-testimonial-card") {
		t.Fatalf("expected the theme partial to replace the template: %s", html)
	}
}

func testThemeConfig() *theme.RendererConfig {
	return &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		CSSVars: map[string]string{
			"--brand": "#123456",
		},
		AssetURL: func(key string) string {
			if key == "" {
				return ""
			}
			return "/themes/acme/" + key
		},
	}
}
