package palette

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-landing/pkg/content"
)

const (
	// DefaultThemeName is used when a palette has no name.
	DefaultThemeName = "ainewsbox"
	manifestVersion  = "1.0.0"

	// StylesheetKey is the asset key renderers use for the page stylesheet.
	StylesheetKey = "landing.stylesheet"
	// AssetPrefix is where the HTTP server mounts embedded assets.
	AssetPrefix = "/assets"
)

// ErrThemeNotFound is returned when no registered manifest matches a name.
var ErrThemeNotFound = errors.New("palette: theme not found")

// Manifest converts a content palette into a go-theme manifest. The page
// stylesheet is registered as an asset so renderers can resolve its URL.
func Manifest(p content.Palette) *theme.Manifest {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = DefaultThemeName
	}

	manifest := &theme.Manifest{
		Name:    name,
		Version: manifestVersion,
		Tokens:  maps.Clone(p.Tokens),
		Assets: theme.Assets{
			Prefix: AssetPrefix,
			Files: map[string]string{
				StylesheetKey: "landing.css",
			},
		},
	}
	if len(p.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(p.Variants))
		for variant, tokens := range p.Variants {
			manifest.Variants[variant] = theme.Variant{Tokens: maps.Clone(tokens)}
		}
	}
	return manifest
}

// Registry stores manifests in a go-theme memory registry.
func Registry(manifests ...*theme.Manifest) (*theme.MemoryRegistry, error) {
	registry := theme.NewRegistry()
	for _, manifest := range manifests {
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("palette: register theme: %w", err)
		}
	}
	return registry, nil
}

// SiteSelector registers the site palette and selects it when a request
// names no theme. Any other name must be registered; it does not fall back to
// the site palette.
func SiteSelector(p content.Palette) (theme.ThemeSelector, error) {
	manifest := Manifest(p)
	registry, err := Registry(manifest)
	if err != nil {
		return nil, err
	}
	return siteSelector{
		Selector: theme.Selector{Registry: registry},
		name:     manifest.Name,
	}, nil
}

type siteSelector struct {
	theme.Selector
	name string
}

func (s siteSelector) Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error) {
	if strings.TrimSpace(name) == "" {
		name = s.name
	}
	return s.Selector.Select(name, variant, opts...)
}

// RendererConfig flattens a selection through go-theme. Theme reports the
// manifest that resolved, and a variant the manifest does not declare is
// cleared so only base tokens apply.
func RendererConfig(sel *theme.Selection) *theme.RendererConfig {
	if sel == nil || sel.Manifest == nil {
		return nil
	}
	resolved := *sel
	resolved.Theme = sel.Manifest.Name
	if _, ok := sel.Manifest.Variants[sel.Variant]; !ok {
		resolved.Variant = ""
	}
	cfg := resolved.RendererTheme(nil)
	return &cfg
}

// CSSVarsStyle renders vars as a :root block sorted by property name.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// Resolve selects and flattens in one step. Registry misses are reported as
// ErrThemeNotFound.
func Resolve(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, nil
	}
	sel, err := selector.Select(name, variant)
	if err != nil {
		if errors.Is(err, theme.ErrThemeNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrThemeNotFound, err)
		}
		return nil, err
	}
	return RendererConfig(sel), nil
}
