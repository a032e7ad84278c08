// Package validation lints landing content before it is rendered. Palette
// errors also stop rendering; every other issue is only reported.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-landing/pkg/cards"
	"github.com/goliatone/go-landing/pkg/content"
	"github.com/goliatone/go-landing/pkg/marquee"
	"github.com/goliatone/go-landing/pkg/palette"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue represents a lint finding with optional location metadata. Path is a
// JSON pointer into the content document; Field is its dotted form.
type Issue struct {
	Path     string   `json:"path,omitempty"`
	Field    string   `json:"field,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Result captures lint outcomes. Valid is false when any issue is an error.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// ValidateYAML parses raw as a content document and lints the result.
func ValidateYAML(raw []byte) Result {
	site, err := content.Parse(raw)
	if err != nil {
		return Result{Issues: []Issue{issueFromError(err)}}
	}
	return ValidateSite(site)
}

// ValidateSite lints a decoded site.
func ValidateSite(site content.Site) Result {
	var v validator

	v.required("/title", site.Title, "page title is empty")
	v.required("/hero/title", site.Hero.Title, "hero title is empty")
	if err := marquee.Validate(site.Marquee.Text()); err != nil {
		v.add("/marquee/words", SeverityError, err.Error())
	}

	for i, link := range site.Nav {
		v.required(pointer("nav", i, "label"), link.Label, "nav link label is empty")
	}
	for i, button := range site.Hero.Actions {
		v.button(pointer("hero/actions", i, ""), button)
	}
	v.button("/cta/action", site.CTA.Action)

	for i, article := range site.Articles {
		v.required(pointer("articles", i, "title"), article.Title, "article title is empty")
	}
	for _, key := range cards.DuplicateKeys(cards.Articles(site.Articles)) {
		v.add("/articles", SeverityWarning, fmt.Sprintf("duplicate article title %q", key))
	}
	for i, testimonial := range site.Testimonials {
		v.required(pointer("testimonials", i, "name"), testimonial.Name, "testimonial name is empty")
		v.required(pointer("testimonials", i, "quote"), testimonial.Quote, "testimonial quote is empty")
	}
	for _, key := range cards.DuplicateKeys(cards.Testimonials(site.Testimonials)) {
		v.add("/testimonials", SeverityWarning, fmt.Sprintf("duplicate testimonial name %q", key))
	}

	if strings.TrimSpace(site.Brand.Icon) != "" && content.SanitizeIcon(site.Brand.Icon) == "" {
		v.add("/brand/icon", SeverityWarning, "icon markup was removed by the sanitiser")
	}

	var invalid theme.ValidationError
	if err := palette.Manifest(site.Palette).Validate(); errors.As(err, &invalid) {
		for _, problem := range invalid.Issues {
			v.add("/palette", SeverityError, problem)
		}
	}

	return v.result()
}

type validator struct {
	issues []Issue
}

func (v *validator) add(path string, severity Severity, message string) {
	v.issues = append(v.issues, Issue{
		Path:     path,
		Field:    fieldPathFromPointer(path),
		Severity: severity,
		Message:  message,
	})
}

func (v *validator) required(path, value, message string) {
	if strings.TrimSpace(value) == "" {
		v.add(path, SeverityError, message)
	}
}

func (v *validator) button(path string, b content.Button) {
	v.required(path+"/label", b.Label, "button label is empty")
	switch b.Variant {
	case content.ButtonLime, content.ButtonOutline, "":
	default:
		v.add(path+"/variant", SeverityWarning, fmt.Sprintf("unknown button variant %q renders as outline", b.Variant))
	}
}

func (v *validator) result() Result {
	res := Result{Valid: true, Issues: v.issues}
	for _, issue := range v.issues {
		if issue.Severity == SeverityError {
			res.Valid = false
			break
		}
	}
	return res
}

func pointer(collection string, index int, field string) string {
	p := "/" + collection + "/" + strconv.Itoa(index)
	if field != "" {
		p += "/" + field
	}
	return p
}

func issueFromError(err error) Issue {
	if err == nil {
		return Issue{Severity: SeverityError, Message: "unknown error"}
	}
	msg := strings.TrimSpace(err.Error())
	if errors.Is(err, content.ErrInvalidYAML) {
		msg = strings.TrimPrefix(msg, content.ErrInvalidYAML.Error()+": ")
		msg = strings.TrimPrefix(msg, "yaml: ")
	}
	return Issue{Severity: SeverityError, Message: msg}
}

// fieldPathFromPointer turns "/articles/0/title" into "articles[0].title".
func fieldPathFromPointer(pointer string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(pointer), "/")
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	for _, segment := range strings.Split(trimmed, "/") {
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		switch {
		case segment == "":
			continue
		case isNumeric(segment):
			b.WriteString("[" + segment + "]")
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(segment)
		}
	}
	return b.String()
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
