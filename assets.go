package landing

import (
	"io/fs"

	"github.com/goliatone/go-landing/pkg/content"
	vanilla "github.com/goliatone/go-landing/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the page stylesheet so Go applications can serve it
// without a build step.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(landing.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}

// DefaultContent returns the embedded YAML used when no content file is given.
func DefaultContent() []byte {
	return content.DefaultYAML()
}
