// Package landing renders marketing landing pages from YAML content. It
// re-exports the orchestrator entry points for callers that want one import.
package landing

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-landing/pkg/content"
	"github.com/goliatone/go-landing/pkg/orchestrator"
	"github.com/goliatone/go-landing/pkg/render"
)

// Site aliases content.Site so callers can build pages from the root package.
type Site = content.Site

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders site with the named renderer. It is the simplest entry
// point for callers that just want HTML output; an empty renderer name
// selects the template renderer.
func GenerateHTML(ctx context.Context, site Site, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Site:     &site,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromFile loads a YAML content file and renders it. Fields the
// file omits keep their embedded defaults.
func GenerateHTMLFromFile(ctx context.Context, path, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   path,
		Renderer: rendererName,
	})
}

// DefaultRegistry returns a registry holding every built-in renderer.
func DefaultRegistry() (*render.Registry, error) {
	return orchestrator.DefaultRegistry()
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider resolves themes from a go-theme provider with the given
// defaults instead of the palette carried by each site.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}
