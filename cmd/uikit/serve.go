package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	uikit "github.com/goliatone/go-uikit"
	pickercomponent "github.com/goliatone/go-uikit/components/datepicker"
	"github.com/goliatone/go-uikit/pkg/contact"
	picker "github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/modal"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-uikit/pkg/toast"
)

//go:embed templates/*.tmpl
var pageTemplates embed.FS

const (
	csrfField      = "_csrf"
	demoModalID    = "demo-modal"
	messageMaxLen  = 5000
	shutdownGrace  = 5 * time.Second
	pageTemplate   = "templates/page"
	contactSubpath = "/contact"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a demo page of every component",
		Long: `Serve a demo page rendering the date pickers, a modal, toasts, cards
and the contact form. Date picker events are handled server side by the
datepicker HTTP component; Prometheus metrics are exposed on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().String("base-path", "", "path prefix of the demo page")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	srv, err := newDemoServer(a, reg)
	if err != nil {
		return err
	}
	defer srv.notifier.Close()

	httpServer := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           srv.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.logger.Info("listening", "addr", a.cfg.Server.Addr, "page", srv.pagePath(), "pickers", srv.pickerMount)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("uikit: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("shutdown", "err", err)
	}
	return nil
}

// demoServer wires the components into one page.
type demoServer struct {
	app         *app
	logger      *log.Logger
	renderer    *vanilla.Renderer
	page        *gotemplate.Engine
	pickers     *pickercomponent.Component
	pickerMount string
	notifier    *toast.Notifier
	fields      []contact.Field
	csrf        string
	base        string
	mux         *http.ServeMux
}

func newDemoServer(a *app, reg *prometheus.Registry) (*demoServer, error) {
	renderer, err := a.renderer()
	if err != nil {
		return nil, err
	}
	page, err := gotemplate.New(gotemplate.WithFS(pageTemplates), gotemplate.WithSetName("uikit-demo"))
	if err != nil {
		return nil, fmt.Errorf("uikit: load page template: %w", err)
	}

	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		return nil, err
	}
	if err := registry.Register(render.NewJSONRenderer()); err != nil {
		return nil, err
	}

	s := &demoServer{
		app:      a,
		logger:   a.logger.WithPrefix("serve"),
		renderer: renderer,
		page:     page,
		notifier: toast.New(
			toast.WithVisibleFor(a.cfg.Toast.VisibleFor),
			toast.WithExitAfter(a.cfg.Toast.ExitAfter),
		),
		fields: contact.DefaultFields(),
		csrf:   uuid.NewString(),
		base:   strings.TrimRight(a.cfg.Server.BasePath, "/"),
		mux:    http.NewServeMux(),
	}
	s.pickers = pickercomponent.New(
		pickercomponent.WithRoutePath(a.cfg.Picker.RoutePath),
		pickercomponent.WithMaxInstances(a.cfg.Picker.MaxInstances),
		pickercomponent.WithClock(a.clock),
		pickercomponent.WithRenderers(registry, renderer.Name()),
		pickercomponent.WithLogger(a.logger.WithPrefix("datepicker")),
		pickercomponent.WithMetrics(pickercomponent.NewMetrics(reg)),
	)

	mount, err := s.pickers.RegisterRoutes(s.mux, s.base)
	if err != nil {
		return nil, fmt.Errorf("uikit: register datepicker routes: %w", err)
	}
	s.pickerMount = mount

	s.mux.HandleFunc("GET "+s.base+"/{$}", s.showPage)
	s.mux.HandleFunc("POST "+s.base+contactSubpath, s.submitContact)
	if assetBase := strings.TrimRight(a.cfg.Server.AssetBase, "/"); strings.HasPrefix(assetBase, "/") {
		s.mux.Handle(assetBase+"/", http.StripPrefix(assetBase, assetsHandler()))
	}
	s.mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return s, nil
}

func (s *demoServer) pagePath() string {
	return s.base + "/"
}

func (s *demoServer) showPage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, http.StatusOK, contact.FormData{})
}

func (s *demoServer) submitContact(w http.ResponseWriter, r *http.Request) {
	if r.FormValue(csrfField) != s.csrf {
		http.Error(w, "invalid form token", http.StatusForbidden)
		return
	}

	data := contact.ParseForm(r, s.fields)
	if !contact.Validate(s.fields, &data, messageMaxLen) {
		s.logger.Debug("contact form rejected", "errors", len(data.Errors))
		s.notifier.Show("Please correct the highlighted fields.", toast.Error)
		s.writePage(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	s.logger.Info("contact form submitted", "email", data.Value("email"), "subject", data.Value("subject"))
	s.notifier.Show("Thanks "+data.Value("name")+", your message was sent.", toast.Success)
	http.Redirect(w, r, s.pagePath(), http.StatusSeeOther)
}

func (s *demoServer) writePage(w http.ResponseWriter, r *http.Request, status int, data contact.FormData) {
	body, err := s.renderPage(r.Context(), data)
	if err != nil {
		s.logger.Error("render page", "err", err)
		http.Error(w, "render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (s *demoServer) renderPage(ctx context.Context, data contact.FormData) (string, error) {
	r := s.renderer

	var pickers []string
	for _, cfg := range demoPickers(s.app.clock.Now()) {
		inst := s.pickers.Create(s.app.pickerConfig(cfg))
		markup, err := render.String(s.pickers.Context(ctx, inst), r.DatePickerSnapshot(inst.Snapshot()))
		if err != nil {
			return "", err
		}
		pickers = append(pickers, markup)
	}

	var cards []string
	for _, card := range demoCards(r) {
		markup, err := render.String(ctx, card)
		if err != nil {
			return "", err
		}
		cards = append(cards, markup)
	}

	parts := map[string]render.Component{
		"assets": r.Assets(),
		"modal": r.ModalWithFooter(
			modal.New(demoModalID, "About this demo"),
			render.Raw("<p>Every component on this page is rendered on the server.</p>"),
			render.Raw(`<button type="button" class="ac-button" data-modal-close>Close</button>`),
		),
		"contact": r.ContactForm(s.base+contactSubpath, s.fields, data, render.CSRFToken(csrfField, s.csrf)),
		"toasts":  r.ToastContainer(s.notifier.Active()),
	}
	values := map[string]any{
		"title":    "UI kit",
		"modal_id": demoModalID,
		"pickers":  pickers,
		"cards":    cards,
	}
	for name, c := range parts {
		markup, err := render.String(ctx, c)
		if err != nil {
			return "", fmt.Errorf("render %s: %w", name, err)
		}
		values[name] = markup
	}
	return s.page.RenderTemplate(pageTemplate, values)
}

func demoPickers(now time.Time) []picker.Config {
	return []picker.Config{
		{ID: "dob", Name: "date_of_birth", Label: "Date of Birth"},
		{ID: "start", Name: "start_date", Label: "Start date", Value: now.Format("2006-01-02")},
	}
}

func demoCards(r *vanilla.Renderer) []render.Component {
	return []render.Component{
		r.FeatureCard("Server rendered", "Markup comes from Go templates, no build step.", render.Raw("⚡")),
		r.PricingCard(vanilla.PricingTier{
			Name:        "Pro",
			Price:       "29",
			Currency:    "$",
			Period:      "/month",
			Description: "For growing teams",
			Features:    []string{"Unlimited pickers", "Themes", "Priority support"},
			CTAText:     "Get started",
			CTALink:     "/signup?plan=pro",
			Highlighted: true,
			Badge:       "Popular",
		}),
		r.TestimonialCard("The date picker just works.", "Ada Lovelace", "Engineer", ""),
	}
}

// assetsHandler serves the runtime script and the stylesheet from one
// prefix.
func assetsHandler() http.Handler {
	styles := http.FileServerFS(vanilla.AssetsFS())
	script := http.FileServerFS(uikit.RuntimeAssetsFS())
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path.Base(r.URL.Path) == components.RuntimeScript {
			script.ServeHTTP(w, r)
			return
		}
		styles.ServeHTTP(w, r)
	})
}
