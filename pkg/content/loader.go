package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/site.yaml
var defaultSite []byte

// ErrInvalidYAML wraps decode failures for content documents.
var ErrInvalidYAML = errors.New("content: invalid yaml")

// DefaultYAML returns the embedded default content document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultSite))
	copy(out, defaultSite)
	return out
}

// Default decodes the embedded content document. The embedded file is part
// of the build, so a decode failure is a programming error.
func Default() Site {
	site, err := decode(defaultSite)
	if err != nil {
		panic(err)
	}
	return site
}

// Parse decodes a content document and overlays it on the embedded defaults.
// Mappings merge key by key and sequences replace the default list, so a
// document that only lists articles keeps the default hero, bands and footer.
func Parse(data []byte) (Site, error) {
	site := Default()
	if len(strings.TrimSpace(string(data))) == 0 {
		return site, nil
	}
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return site, nil
}

// LoadFile reads and parses a content document from disk. An empty path
// returns the defaults.
func LoadFile(path string) (Site, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("content: read %q: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return Site{}, fmt.Errorf("content: parse %q: %w", path, err)
	}
	return site, nil
}

func decode(data []byte) (Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return site, nil
}
