package content

import "strings"

// Article is one news or analysis item. Title doubles as its display key.
type Article struct {
	Title   string `yaml:"title" json:"title"`
	Summary string `yaml:"summary" json:"summary"`
	Date    string `yaml:"date" json:"date"`
}

// Testimonial is one attributed quotation. Name doubles as its display key.
type Testimonial struct {
	Quote string `yaml:"quote" json:"quote"`
	Name  string `yaml:"name" json:"name"`
}

// ButtonVariant selects the call-to-action styling.
type ButtonVariant string

const (
	ButtonLime    ButtonVariant = "lime"
	ButtonOutline ButtonVariant = "outline"
)

// Class maps the variant to its CSS class. Unknown variants render as outline.
func (v ButtonVariant) Class() string {
	if v == ButtonLime {
		return "limebtn"
	}
	return "outlinebtn"
}

type Button struct {
	Label   string        `yaml:"label" json:"label"`
	Href    string        `yaml:"href" json:"href"`
	Variant ButtonVariant `yaml:"variant" json:"variant"`
}

// Target returns Href, defaulting to "#".
func (b Button) Target() string {
	return hrefOrHash(b.Href)
}

type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
	Pill  bool   `yaml:"pill" json:"pill"`
}

// Target returns Href, defaulting to "#".
func (l Link) Target() string {
	return hrefOrHash(l.Href)
}

// Brand is the wordmark in the navigation bar. Icon holds optional inline SVG
// markup and is sanitised before rendering.
type Brand struct {
	Name   string `yaml:"name" json:"name"`
	Accent string `yaml:"accent" json:"accent"`
	Icon   string `yaml:"icon" json:"icon"`
}

type Hero struct {
	Title    string   `yaml:"title" json:"title"`
	Subtitle string   `yaml:"subtitle" json:"subtitle"`
	Actions  []Button `yaml:"actions" json:"actions"`
}

type Media struct {
	ImageURL string `yaml:"image_url" json:"image_url"`
	Alt      string `yaml:"alt" json:"alt"`
	Label    string `yaml:"label" json:"label"`
}

// Marquee describes the words scrolling across both bands.
type Marquee struct {
	Words     []string `yaml:"words" json:"words"`
	Separator string   `yaml:"separator" json:"separator"`
}

// DefaultSeparator joins marquee words when no separator is configured.
const DefaultSeparator = "   "

// Text joins the words with the configured separator.
func (m Marquee) Text() string {
	sep := m.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	return strings.Join(m.Words, sep)
}

type Section struct {
	Title string `yaml:"title" json:"title"`
}

type CTABand struct {
	Title  string `yaml:"title" json:"title"`
	Body   string `yaml:"body" json:"body"`
	Action Button `yaml:"action" json:"action"`
}

// Footer renders as "© {year} {owner}.".
type Footer struct {
	Owner string `yaml:"owner" json:"owner"`
}

// Palette holds named colour tokens plus optional variant overrides.
type Palette struct {
	Name     string                       `yaml:"name" json:"name"`
	Tokens   map[string]string            `yaml:"tokens" json:"tokens"`
	Variants map[string]map[string]string `yaml:"variants" json:"variants"`
}

// Site is the full static configuration consumed by the page builder.
type Site struct {
	Title               string        `yaml:"title" json:"title"`
	Brand               Brand         `yaml:"brand" json:"brand"`
	Nav                 []Link        `yaml:"nav" json:"nav"`
	Media               Media         `yaml:"media" json:"media"`
	Hero                Hero          `yaml:"hero" json:"hero"`
	Marquee             Marquee       `yaml:"marquee" json:"marquee"`
	ArticlesSection     Section       `yaml:"articles_section" json:"articles_section"`
	Articles            []Article     `yaml:"articles" json:"articles"`
	TestimonialsSection Section       `yaml:"testimonials_section" json:"testimonials_section"`
	Testimonials        []Testimonial `yaml:"testimonials" json:"testimonials"`
	CTA                 CTABand       `yaml:"cta" json:"cta"`
	Footer              Footer        `yaml:"footer" json:"footer"`
	Palette             Palette       `yaml:"palette" json:"palette"`
}

func hrefOrHash(href string) string {
	if strings.TrimSpace(href) == "" {
		return "#"
	}
	return href
}
