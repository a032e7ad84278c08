// Package cards maps ordered content records onto ordered display blocks. It
// never filters, sorts or reformats: each record becomes exactly one block
// whose slots hold the record's fields verbatim.
package cards

import "github.com/goliatone/go-landing/pkg/content"

// Kind identifies the record shape a block was built from.
type Kind string

const (
	KindArticle     Kind = "article"
	KindTestimonial Kind = "testimonial"
)

// ArticleEyebrow labels every article card.
const ArticleEyebrow = "Update"

// Block is one rendered unit. Key comes from the record field expected to be
// unique within a list (Article.Title, Testimonial.Name).
type Block struct {
	Key     string `json:"key"`
	Kind    Kind   `json:"kind"`
	Eyebrow string `json:"eyebrow,omitempty"`
	Title   string `json:"title,omitempty"`
	Body    string `json:"body"`
	Meta    string `json:"meta"`
}

// Map applies fn to each record in order. The result is never nil.
func Map[T any](records []T, fn func(T) Block) []Block {
	out := make([]Block, 0, len(records))
	for _, record := range records {
		out = append(out, fn(record))
	}
	return out
}

// Articles builds one article block per record.
func Articles(articles []content.Article) []Block {
	return Map(articles, ArticleBlock)
}

// Testimonials builds one testimonial block per record.
func Testimonials(testimonials []content.Testimonial) []Block {
	return Map(testimonials, TestimonialBlock)
}

func ArticleBlock(a content.Article) Block {
	return Block{
		Key:     a.Title,
		Kind:    KindArticle,
		Eyebrow: ArticleEyebrow,
		Title:   a.Title,
		Body:    a.Summary,
		Meta:    a.Date,
	}
}

func TestimonialBlock(t content.Testimonial) Block {
	return Block{
		Key:  t.Name,
		Kind: KindTestimonial,
		Body: t.Quote,
		Meta: t.Name,
	}
}

// Keys returns block keys in order.
func Keys(blocks []Block) []string {
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, block.Key)
	}
	return out
}

// DuplicateKeys lists keys that appear more than once, in first-repeat order.
// Duplicates do not stop rendering; callers may log them.
func DuplicateKeys(blocks []Block) []string {
	seen := make(map[string]int, len(blocks))
	var dupes []string
	for _, block := range blocks {
		seen[block.Key]++
		if seen[block.Key] == 2 {
			dupes = append(dupes, block.Key)
		}
	}
	return dupes
}
