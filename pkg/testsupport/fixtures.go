package testsupport

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-landing/pkg/content"
	"github.com/goliatone/go-landing/pkg/page"
)

// FixedYear is the footer year produced by FixedClock.
const FixedYear = 2031

// FixedClock returns a constant time so the footer year is stable.
func FixedClock() time.Time {
	return time.Date(FixedYear, time.January, 2, 15, 4, 5, 0, time.UTC)
}

// DefaultModel builds the embedded default site with FixedClock.
func DefaultModel() page.Model {
	return page.Build(content.Default(), page.WithClock(FixedClock))
}

// ModelFor builds a page model for site with FixedClock.
func ModelFor(site content.Site) page.Model {
	return page.Build(site, page.WithClock(FixedClock))
}

// MustParseHTML parses rendered output into a goquery document.
func MustParseHTML(t *testing.T, html []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
