// Package nodes renders the landing page as a gomponents node tree. It emits
// the same markup contract as the template renderer without a template
// engine, which keeps it usable from handlers that compose nodes directly.
package nodes

import (
	"bytes"
	"context"
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/goliatone/go-landing/pkg/cards"
	"github.com/goliatone/go-landing/pkg/marquee"
	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/render"
)

// RendererName is the registry name of the node renderer.
const RendererName = "nodes"

type Renderer struct {
	stylesheetURL string
}

var _ render.Renderer = (*Renderer)(nil)

// RendererOption configures New. The html package claims the name Option.
type RendererOption func(*Renderer)

// WithStylesheet overrides the stylesheet URL resolved from the theme.
func WithStylesheet(url string) RendererOption {
	return func(r *Renderer) {
		r.stylesheetURL = url
	}
}

func New(options ...RendererOption) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return RendererName
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, model page.Model) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.Document(model).Render(&buf); err != nil {
		return nil, fmt.Errorf("nodes renderer: render document: %w", err)
	}
	return buf.Bytes(), nil
}

// Document returns the full HTML document node.
func (r *Renderer) Document(model page.Model) g.Node {
	stylesheet := r.stylesheetURL
	if stylesheet == "" {
		stylesheet = model.Theme.StylesheetURL
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(model.Title)),
				g.If(stylesheet != "", Link(Rel("stylesheet"), Href(stylesheet))),
				g.If(model.Theme.Style != "", StyleEl(
					g.Attr("data-theme", model.Theme.Name),
					g.If(model.Theme.Variant != "", g.Attr("data-variant", model.Theme.Variant)),
					g.Raw(model.Theme.Style),
				)),
			),
			Body(
				Div(Class("page"),
					Div(Class("bg"), Aria("hidden", "true")),
					navBar(model),
					media(model.Media),
					hero(model.Hero),
					g.Map(model.Bands, MarqueeBand),
					cardSection("section light", model.Articles, ArticleCard),
					cardSection("section dark", model.Testimonials, TestimonialCard),
					ctaBand(model.CTA),
					Footer(Class("foot"), g.Textf("© %d %s.", model.Footer.Year, model.Footer.Owner)),
				),
			),
		),
	)
}

// MarqueeBand renders one band: two adjacent chunks, the second hidden from
// assistive technology.
func MarqueeBand(band page.Band) g.Node {
	return Div(Class("mq"), Data("direction", band.Direction),
		Div(Class(band.ScrollClass),
			g.Map(band.Chunks, func(chunk marquee.Chunk) g.Node {
				return Span(Class("chunk"),
					g.If(chunk.Decorative, Aria("hidden", "true")),
					g.Text(chunk.Text),
				)
			}),
		),
	)
}

// ArticleCard renders one article block.
func ArticleCard(block cards.Block) g.Node {
	return Article(Class("card flexCol"), Data("key", block.Key),
		Div(Class("eyebrow"), g.Text(block.Eyebrow)),
		H3(Class("cardTitle"), g.Text(block.Title)),
		P(Class("excerpt"), g.Text(block.Body)),
		Div(Class("spacer")),
		Div(Class("meta"), g.Text(block.Meta)),
	)
}

// TestimonialCard renders one testimonial block.
func TestimonialCard(block cards.Block) g.Node {
	return Figure(Class("tcard flexCol"), Data("key", block.Key),
		BlockQuote(Class("grow"), g.Text("“"+block.Body+"”")),
		FigCaption(g.Text("— "+block.Meta)),
	)
}

func navBar(model page.Model) g.Node {
	mark := Span(Class("dot"))
	if model.Brand.IconHTML != "" {
		mark = Span(Class("icon"), g.Raw(model.Brand.IconHTML))
	}
	return Nav(Class("nav"),
		Div(Class("brand"),
			mark,
			g.Text(" "+model.Brand.Name),
			Span(Class("accent"), g.Text(model.Brand.Accent)),
		),
		Div(Class("links"),
			g.Map(model.Nav, func(link page.NavLink) g.Node {
				return A(Href(link.Href), g.If(link.Pill, Class("pill")), g.Text(link.Label))
			}),
		),
	)
}

func media(m page.Media) g.Node {
	return Section(Class("mediaWrap"), Aria("label", m.Label),
		Div(Class("media"),
			Img(Src(m.ImageURL), Alt(m.Alt)),
			Div(Class("fade")),
		),
	)
}

func hero(h page.Hero) g.Node {
	return Header(Class("hero"),
		Div(Class("heroRow"),
			H1(Class("heroTitle"), g.Text(h.Title)),
			P(Class("heroSub"), g.Text(h.Subtitle)),
			Div(Class("ctaRow"), g.Map(h.Actions, button)),
		),
	)
}

func cardSection(class string, section page.CardSection, card func(cards.Block) g.Node) g.Node {
	return Section(Class(class),
		H2(Class("sectionTitle"), g.Text(section.Title)),
		Div(Class("flexRow wrap gap"), g.Map(section.Blocks, card)),
	)
}

func ctaBand(cta page.CTA) g.Node {
	return Section(Class("ctaBand"),
		Div(Class("bandInner flexRow gap wrap"),
			Div(Class("grow"),
				H3(Class("bandTitle"), g.Text(cta.Title)),
				P(g.Text(cta.Body)),
			),
			button(cta.Action),
		),
	)
}

func button(action page.Action) g.Node {
	return A(Href(action.Href), Class(action.Class), Span(g.Text(action.Label)))
}
