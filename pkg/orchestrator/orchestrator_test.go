package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-landing/pkg/content"
	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/palette"
	"github.com/goliatone/go-landing/pkg/render"
	"github.com/goliatone/go-landing/pkg/testsupport"
)

func TestOrchestrator_DefaultsRenderEmbeddedSite(t *testing.T) {
	orch := New(WithClock(testsupport.FixedClock))

	out, err := orch.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	doc := testsupport.MustParseHTML(t, out)
	if n := doc.Find(".mq").Length(); n != 2 {
		t.Fatalf("expected 2 marquee bands, got %d", n)
	}
	if got := doc.Find("footer.foot").Text(); got != "© 2031 AI Policy News & Advocacy." {
		t.Fatalf("unexpected footer %q", got)
	}

	for _, name := range []string{"vanilla", "nodes", "terminal"} {
		if !orch.Registry().Has(name) {
			t.Fatalf("default registry missing %q", name)
		}
	}
}

func TestOrchestrator_RequiresContext(t *testing.T) {
	var ctx context.Context
	if _, err := New().Generate(ctx, Request{}); err == nil {
		t.Fatalf("expected error for nil context")
	}
}

func TestOrchestrator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOrchestrator_SitePreferredOverSource(t *testing.T) {
	renderer := &captureRenderer{}
	loader := &recordingLoader{}

	site := content.Default()
	site.Title = "Injected"

	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
		WithLoader(loader),
	)
	if _, err := orch.Generate(context.Background(), Request{Site: &site, Source: "ignored.yaml"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.model.Title != "Injected" {
		t.Fatalf("expected injected site, got %q", renderer.model.Title)
	}
	if len(loader.sources) != 0 {
		t.Fatalf("loader should not run when a site is supplied")
	}
}

func TestOrchestrator_SourceUsesLoader(t *testing.T) {
	renderer := &captureRenderer{}
	loader := &recordingLoader{site: content.Default()}
	loader.site.Title = "From loader"

	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
		WithLoader(loader),
	)
	if _, err := orch.Generate(context.Background(), Request{Source: "site.yaml"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(loader.sources) != 1 || loader.sources[0] != "site.yaml" {
		t.Fatalf("unexpected loader calls %v", loader.sources)
	}
	if renderer.model.Title != "From loader" {
		t.Fatalf("unexpected title %q", renderer.model.Title)
	}
}

func TestOrchestrator_LoaderErrorIsWrapped(t *testing.T) {
	sentinel := errors.New("boom")
	orch := New(WithLoader(LoaderFunc(func(context.Context, string) (content.Site, error) {
		return content.Site{}, sentinel
	})))

	_, err := orch.Generate(context.Background(), Request{Source: "missing.yaml"})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped loader error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "orchestrator: load content") {
		t.Fatalf("unexpected error message %q", err)
	}
}

func TestOrchestrator_UnknownRenderer(t *testing.T) {
	_, err := New().Generate(context.Background(), Request{Renderer: "pdf"})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestOrchestrator_FallsBackToFirstRenderer(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithDefaultRenderer("missing"),
	)
	if _, err := orch.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !renderer.called {
		t.Fatalf("expected fallback renderer to run")
	}
}

func TestOrchestrator_SiteVariantOverridesTokens(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(WithRegistry(render.NewRegistry(renderer)))

	if _, err := orch.Generate(context.Background(), Request{Variant: "midnight"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	cfg := renderer.model.Theme
	if cfg.Name != "ainewsbox" || cfg.Variant != "midnight" {
		t.Fatalf("unexpected theme %s/%s", cfg.Name, cfg.Variant)
	}
	if cfg.CSSVars["--blue-top"] != "#05070f" {
		t.Fatalf("variant token not applied: %v", cfg.CSSVars)
	}
	if cfg.CSSVars["--neon"] != "#B7FF2C" {
		t.Fatalf("base token lost: %v", cfg.CSSVars)
	}
	if cfg.StylesheetURL != "/assets/landing.css" {
		t.Fatalf("unexpected stylesheet url %q", cfg.StylesheetURL)
	}
}

func TestOrchestrator_UsesThemeSelector(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"neon": "#123456"},
	}
	registry, err := palette.Registry(manifest)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	selector := &stubThemeSelector{inner: theme.Selector{Registry: registry}}
	renderer := &captureRenderer{}

	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithThemeSelector(selector),
	)
	if _, err := orch.Generate(context.Background(), Request{Theme: "acme", Variant: "dark"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(selector.calls) != 1 || selector.calls[0] != [2]string{"acme", "dark"} {
		t.Fatalf("unexpected selector calls %v", selector.calls)
	}
	if renderer.model.Theme.CSSVars["--neon"] != "#123456" {
		t.Fatalf("selector tokens not used")
	}
}

func TestOrchestrator_UnknownThemeIsAnError(t *testing.T) {
	_, err := New().Generate(context.Background(), Request{Theme: "nope"})
	if !errors.Is(err, palette.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}

func TestOrchestrator_WithThemeProviderUsesDefaults(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"neon": "#123456"},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files:  map[string]string{palette.StylesheetKey: "acme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"neon": "#654321"}},
		},
	}
	provider := theme.NewRegistry()
	if err := provider.Register(manifest); err != nil {
		t.Fatalf("register manifest: %v", err)
	}

	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithThemeProvider(provider, "acme", "dark"),
	)
	if _, err := orch.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.model.Theme
	if cfg.Name != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected theme %s/%s", cfg.Name, cfg.Variant)
	}
	if cfg.CSSVars["--neon"] != "#654321" {
		t.Fatalf("variant tokens not applied: %v", cfg.CSSVars)
	}
	if cfg.StylesheetURL != "/assets/themes/acme/acme.css" {
		t.Fatalf("unexpected stylesheet url %q", cfg.StylesheetURL)
	}
}

func TestOrchestrator_LogsDuplicateKeys(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	site := content.Default()
	site.Articles = append(site.Articles, site.Articles[0])

	orch := New(WithLogger(zap.New(core)), WithRegistry(render.NewRegistry(&captureRenderer{})))
	if _, err := orch.Generate(context.Background(), Request{Site: &site}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if logs.FilterMessage("duplicate article titles").Len() != 1 {
		t.Fatalf("expected a duplicate warning, got %v", logs.All())
	}
}

type captureRenderer struct {
	called bool
	model  page.Model
}

func (c *captureRenderer) Name() string        { return "capture" }
func (c *captureRenderer) ContentType() string { return "text/plain" }

func (c *captureRenderer) Render(_ context.Context, model page.Model) ([]byte, error) {
	c.called = true
	c.model = model
	return []byte("ok"), nil
}

type recordingLoader struct {
	site    content.Site
	sources []string
}

func (r *recordingLoader) Load(_ context.Context, source string) (content.Site, error) {
	r.sources = append(r.sources, source)
	return r.site, nil
}

type stubThemeSelector struct {
	inner theme.ThemeSelector
	calls [][2]string
}

func (s *stubThemeSelector) Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, [2]string{name, variant})
	return s.inner.Select(name, variant, opts...)
}
