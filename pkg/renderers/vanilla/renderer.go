package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/render"
	rendertemplate "github.com/goliatone/go-landing/pkg/render/template"
	gotemplate "github.com/goliatone/go-landing/pkg/render/template/gotemplate"
)

// Name is the registry name of the template renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inlineStyles     bool
	stylesheetURL    string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/page.tmpl and the partials it includes.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithInlineStyles embeds the stylesheet in a <style> element instead of
// linking it. Useful for single-file output.
func WithInlineStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// WithStylesheet overrides the stylesheet URL resolved from the theme.
func WithStylesheet(url string) Option {
	return func(cfg *config) {
		cfg.stylesheetURL = url
	}
}

type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	inlineStyles  bool
	stylesheetURL string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the template renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:     renderer,
		inlineStyles:  cfg.inlineStyles,
		stylesheetURL: cfg.stylesheetURL,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, model page.Model) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	data := map[string]any{
		"page": model,
	}
	if r.inlineStyles {
		data["stylesheet"] = Stylesheet()
	} else {
		data["stylesheet_url"] = r.stylesheetFor(model)
	}

	result, err := r.templates.RenderTemplate(PageTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) stylesheetFor(model page.Model) string {
	if r.stylesheetURL != "" {
		return r.stylesheetURL
	}
	return model.Theme.StylesheetURL
}
