package page

import (
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-landing/pkg/cards"
	"github.com/goliatone/go-landing/pkg/content"
	"github.com/goliatone/go-landing/pkg/marquee"
	"github.com/goliatone/go-landing/pkg/palette"
)

// Option configures Build.
type Option func(*config)

type config struct {
	now   func() time.Time
	theme *theme.RendererConfig
}

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithTheme supplies resolved palette tokens. Without it the palette in the
// site is used as-is, with no variant applied.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// Build composes a fresh page model from static site configuration. The
// site is read, never mutated.
func Build(site content.Site, options ...Option) Model {
	cfg := config{now: time.Now}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.theme == nil {
		manifest := palette.Manifest(site.Palette)
		cfg.theme = palette.RendererConfig(&theme.Selection{
			Theme:    manifest.Name,
			Manifest: manifest,
		})
	}

	text := site.Marquee.Text()

	return Model{
		Title: site.Title,
		Brand: Brand{
			Name:     site.Brand.Name,
			Accent:   site.Brand.Accent,
			IconHTML: content.SanitizeIcon(site.Brand.Icon),
		},
		Nav:   navLinks(site.Nav),
		Media: Media(site.Media),
		Hero: Hero{
			Title:    site.Hero.Title,
			Subtitle: site.Hero.Subtitle,
			Actions:  actions(site.Hero.Actions),
		},
		Bands: []Band{
			NewBand(text, false),
			NewBand(text, true),
		},
		Articles: CardSection{
			Title:  site.ArticlesSection.Title,
			Blocks: cards.Articles(site.Articles),
		},
		Testimonials: CardSection{
			Title:  site.TestimonialsSection.Title,
			Blocks: cards.Testimonials(site.Testimonials),
		},
		CTA: CTA{
			Title:  site.CTA.Title,
			Body:   site.CTA.Body,
			Action: action(site.CTA.Action),
		},
		Footer: Footer{
			Year:  cfg.now().Year(),
			Owner: site.Footer.Owner,
		},
		Theme: themeView(cfg.theme),
	}
}

// NewBand flattens a marquee band for renderers.
func NewBand(text string, reverse bool) Band {
	band := marquee.NewBand(text, reverse)
	return Band{
		Stream:      band.Stream,
		Reverse:     band.Reverse,
		Direction:   band.Direction(),
		ScrollClass: band.ScrollClass(),
		Chunks:      band.Chunks(),
	}
}

func navLinks(links []content.Link) []NavLink {
	out := make([]NavLink, 0, len(links))
	for _, link := range links {
		out = append(out, NavLink{Label: link.Label, Href: link.Target(), Pill: link.Pill})
	}
	return out
}

func actions(buttons []content.Button) []Action {
	out := make([]Action, 0, len(buttons))
	for _, button := range buttons {
		out = append(out, action(button))
	}
	return out
}

func action(b content.Button) Action {
	return Action{Label: b.Label, Href: b.Target(), Class: b.Variant.Class()}
}

func themeView(cfg *theme.RendererConfig) Theme {
	if cfg == nil {
		return Theme{}
	}
	view := Theme{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		CSSVars: cfg.CSSVars,
		Style:   palette.CSSVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		view.StylesheetURL = cfg.AssetURL(palette.StylesheetKey)
	}
	return view
}
