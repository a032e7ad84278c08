package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-landing/pkg/page"
	"github.com/goliatone/go-landing/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, page.Model) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry(namedRenderer("vanilla"), namedRenderer("nodes"))

	if diff := cmp.Diff([]string{"nodes", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	renderer, err := registry.Get("nodes")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "nodes" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
	if !registry.Has("vanilla") || registry.Has("terminal") {
		t.Fatalf("unexpected Has results")
	}
}

func TestRegistry_Errors(t *testing.T) {
	registry := render.NewRegistry(namedRenderer("vanilla"))

	if err := registry.Register(namedRenderer("vanilla")); !errors.Is(err, render.ErrDuplicateRenderer) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if _, err := registry.Get("missing"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	render.NewRegistry(namedRenderer("a"), namedRenderer("a"))
}
