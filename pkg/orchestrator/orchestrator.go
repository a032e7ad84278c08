package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-landing/pkg/cards"
	"github.com/goliatone/go-landing/pkg/content"
	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/palette"
	"github.com/goliatone/go-landing/pkg/render"
	"github.com/goliatone/go-landing/pkg/renderers/nodes"
	"github.com/goliatone/go-landing/pkg/renderers/terminal"
	"github.com/goliatone/go-landing/pkg/renderers/vanilla"
)

const defaultRendererName = vanilla.Name

// Loader resolves a content source into a site.
type Loader interface {
	Load(ctx context.Context, source string) (content.Site, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, source string) (content.Site, error)

func (f LoaderFunc) Load(ctx context.Context, source string) (content.Site, error) {
	return f(ctx, source)
}

type fileLoader struct{}

func (fileLoader) Load(ctx context.Context, source string) (content.Site, error) {
	if err := ctx.Err(); err != nil {
		return content.Site{}, err
	}
	return content.LoadFile(source)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves themes through selector instead of the palette
// carried by each site.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeProvider builds a go-theme selector over provider. Empty request
// values select defaultTheme and defaultVariant, and an unknown theme name
// falls back to defaultTheme.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		if provider == nil {
			return
		}
		o.themeSelector = theme.Selector{
			Registry:       provider,
			DefaultTheme:   defaultTheme,
			DefaultVariant: defaultVariant,
		}
	}
}

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLoader injects a custom content loader.
func WithLoader(loader Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithLogger sets the logger used for non-fatal content warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the pipeline from site content to rendered
// output. Defaults are the vanilla renderer and the embedded content.
type Orchestrator struct {
	loader          Loader
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	now             func() time.Time
	logger          *zap.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		now:             time.Now,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one page render.
type Request struct {
	// Site bypasses the loader when the caller already holds content.
	Site *content.Site

	// Source is a YAML content path handed to the loader. When both Site and
	// Source are empty the embedded defaults are rendered.
	Source string

	// Renderer names the renderer to use. Empty selects the default.
	Renderer string

	// Theme and Variant select palette tokens. Empty values select the
	// selector defaults.
	Theme   string
	Variant string
}

// Generate resolves content, selects a theme, builds the page model and
// renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	site, err := o.resolveSite(ctx, req)
	if err != nil {
		return nil, err
	}
	o.warnDuplicates(site)

	themeConfig, err := o.resolveTheme(site, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	model := page.Build(site, page.WithClock(o.now), page.WithTheme(themeConfig))
	output, err := renderer.Render(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.logger.Debug("page rendered",
		zap.String("renderer", renderer.Name()),
		zap.String("theme", model.Theme.Name),
		zap.String("variant", model.Theme.Variant),
		zap.Int("bytes", len(output)),
	)
	return output, nil
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) resolveSite(ctx context.Context, req Request) (content.Site, error) {
	if req.Site != nil {
		return *req.Site, nil
	}
	if req.Source == "" {
		return content.Default(), nil
	}
	site, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return content.Site{}, fmt.Errorf("orchestrator: load content: %w", err)
	}
	return site, nil
}

func (o *Orchestrator) resolveTheme(site content.Site, req Request) (*theme.RendererConfig, error) {
	selector := o.themeSelector
	if selector == nil {
		siteSelector, err := palette.SiteSelector(site.Palette)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: site palette: %w", err)
		}
		selector = siteSelector
	}
	cfg, err := palette.Resolve(selector, req.Theme, req.Variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return cfg, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) warnDuplicates(site content.Site) {
	if dupes := cards.DuplicateKeys(cards.Articles(site.Articles)); len(dupes) > 0 {
		o.logger.Warn("duplicate article titles", zap.Strings("keys", dupes))
	}
	if dupes := cards.DuplicateKeys(cards.Testimonials(site.Testimonials)); len(dupes) > 0 {
		o.logger.Warn("duplicate testimonial names", zap.Strings("keys", dupes))
	}
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = fileLoader{}
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = err
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

// DefaultRegistry registers the built-in renderers: vanilla, nodes and
// terminal.
func DefaultRegistry() (*render.Registry, error) {
	vanillaRenderer, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
	}
	return render.NewRegistry(vanillaRenderer, nodes.New(), terminal.New()), nil
}
