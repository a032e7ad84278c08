// Package terminal prints a landing page for a terminal. It is used by the
// preview command to check content without a browser.
package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-landing/pkg/cards"
	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/render"
)

// RendererName is the registry name of the terminal renderer.
const RendererName = "terminal"

type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return RendererName
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, model page.Model) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blocks := []string{
		brandLine(model),
		heroStyle.Render(model.Hero.Title),
		subtleStyle.Render(model.Hero.Subtitle),
		actionsLine(model.Hero.Actions),
	}
	for _, band := range model.Bands {
		blocks = append(blocks, bandLine(band))
	}
	blocks = append(blocks,
		cardList(model.Articles),
		cardList(model.Testimonials),
		sectionStyle.Render(model.CTA.Title),
		model.CTA.Body,
		actionsLine([]page.Action{model.CTA.Action}),
		subtleStyle.Render(fmt.Sprintf("© %d %s.", model.Footer.Year, model.Footer.Owner)),
	)

	return []byte(strings.Join(blocks, "\n") + "\n"), nil
}

func brandLine(model page.Model) string {
	labels := make([]string, 0, len(model.Nav))
	for _, link := range model.Nav {
		labels = append(labels, link.Label)
	}
	return brandStyle.Render(model.Brand.Name) + accentStyle.Render(model.Brand.Accent) +
		"  " + subtleStyle.Render(strings.Join(labels, " · "))
}

func actionsLine(actions []page.Action) string {
	rendered := make([]string, 0, len(actions))
	for _, action := range actions {
		style := outlineStyle
		if action.Class == "limebtn" {
			style = buttonStyle
		}
		rendered = append(rendered, style.Render(action.Label))
	}
	return strings.Join(rendered, "  ")
}

// bandLine prints both chunks so the output mirrors the HTML track.
func bandLine(band page.Band) string {
	parts := make([]string, 0, len(band.Chunks))
	for _, chunk := range band.Chunks {
		if chunk.Decorative {
			parts = append(parts, decorativeStyle.Render(chunk.Text))
			continue
		}
		parts = append(parts, chunkStyle.Render(chunk.Text))
	}
	marker := "»"
	if band.Reverse {
		marker = "«"
	}
	return marker + " " + strings.Join(parts, " ")
}

func cardList(section page.CardSection) string {
	rendered := []string{sectionStyle.Render(section.Title)}
	for _, block := range section.Blocks {
		rendered = append(rendered, card(block))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func card(block cards.Block) string {
	lines := make([]string, 0, 4)
	if block.Eyebrow != "" {
		lines = append(lines, eyebrowStyle.Render(block.Eyebrow))
	}
	if block.Title != "" {
		lines = append(lines, titleStyle.Render(block.Title))
	}
	body := block.Body
	if block.Kind == cards.KindTestimonial {
		body = "“" + body + "”"
	}
	lines = append(lines, body)
	meta := block.Meta
	if block.Kind == cards.KindTestimonial {
		meta = "— " + meta
	}
	lines = append(lines, subtleStyle.Render(meta))
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
