package page

import (
	"github.com/goliatone/go-landing/pkg/cards"
	"github.com/goliatone/go-landing/pkg/marquee"
)

// Model is the renderer-facing view of a landing page. Every field is
// precomputed so template engines only substitute values.
type Model struct {
	Title        string      `json:"title"`
	Brand        Brand       `json:"brand"`
	Nav          []NavLink   `json:"nav"`
	Media        Media       `json:"media"`
	Hero         Hero        `json:"hero"`
	Bands        []Band      `json:"bands"`
	Articles     CardSection `json:"articles"`
	Testimonials CardSection `json:"testimonials"`
	CTA          CTA         `json:"cta"`
	Footer       Footer      `json:"footer"`
	Theme        Theme       `json:"theme"`
}

type Brand struct {
	Name   string `json:"name"`
	Accent string `json:"accent"`
	// IconHTML is sanitised SVG markup, safe to emit unescaped.
	IconHTML string `json:"icon_html,omitempty"`
}

type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Pill  bool   `json:"pill"`
}

type Media struct {
	ImageURL string `json:"image_url"`
	Alt      string `json:"alt"`
	Label    string `json:"label"`
}

type Action struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Class string `json:"class"`
}

type Hero struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Actions  []Action `json:"actions"`
}

// Band is a marquee band flattened for templates. Chunks always holds two
// identical copies of Stream, the second marked decorative.
type Band struct {
	Stream      string          `json:"stream"`
	Reverse     bool            `json:"reverse"`
	Direction   string          `json:"direction"`
	ScrollClass string          `json:"scroll_class"`
	Chunks      []marquee.Chunk `json:"chunks"`
}

type CardSection struct {
	Title  string        `json:"title"`
	Blocks []cards.Block `json:"blocks"`
}

type CTA struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Action Action `json:"action"`
}

type Footer struct {
	Year  int    `json:"year"`
	Owner string `json:"owner"`
}

type Theme struct {
	Name          string            `json:"name,omitempty"`
	Variant       string            `json:"variant,omitempty"`
	CSSVars       map[string]string `json:"css_vars,omitempty"`
	Style         string            `json:"style,omitempty"`
	StylesheetURL string            `json:"stylesheet_url,omitempty"`
}
