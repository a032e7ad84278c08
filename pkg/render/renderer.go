package render

import (
	"context"

	"github.com/goliatone/go-landing/pkg/page"
)

// Renderer converts a page model into a byte representation (HTML, ANSI
// text, etc.). Implementations must be safe to call repeatedly with fresh
// models and must not retain them.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, model page.Model) ([]byte, error)
}
