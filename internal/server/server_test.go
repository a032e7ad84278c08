package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/goliatone/go-landing/pkg/content"
	"github.com/goliatone/go-landing/pkg/testsupport"
)

func newTestServer(options ...Option) *Server {
	gin.SetMode(gin.TestMode)
	return New(content.Default(), options...)
}

func get(h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", target, nil)
	for key, values := range header {
		req.Header[key] = values
	}
	h.ServeHTTP(w, req)
	return w
}

func TestPage_RendersHTML(t *testing.T) {
	w := get(newTestServer().Handler(), "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	doc := testsupport.MustParseHTML(t, w.Body.Bytes())
	assert.Equal(t, 2, doc.Find(".mq").Length())
	assert.Equal(t, "AINewsBox", doc.Find("title").Text())
}

func TestPage_RendererQuery(t *testing.T) {
	h := newTestServer().Handler()

	w := get(h, "/?renderer=terminal", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))

	w = get(h, "/?renderer=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPage_VariantQuery(t *testing.T) {
	w := get(newTestServer().Handler(), "/?variant=midnight", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	doc := testsupport.MustParseHTML(t, w.Body.Bytes())
	variant, _ := doc.Find("style[data-theme]").Attr("data-variant")
	assert.Equal(t, "midnight", variant)
}

func TestHealth(t *testing.T) {
	w := get(newTestServer().Handler(), "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, "ok", body["status"])
}

func TestStylesheet(t *testing.T) {
	w := get(newTestServer().Handler(), "/assets/landing.css", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, strings.HasPrefix(w.Header().Get("Content-Type"), "text/css"))
	assert.Equal(t, true, strings.Contains(w.Body.String(), "@keyframes mq-left"))
}

func TestSetSite_SwapsContent(t *testing.T) {
	srv := newTestServer()
	site := content.Default()
	site.Title = "Swapped"
	srv.SetSite(site)

	doc := testsupport.MustParseHTML(t, get(srv.Handler(), "/", nil).Body.Bytes())
	assert.Equal(t, "Swapped", doc.Find("title").Text())
}

func TestReload(t *testing.T) {
	srv := newTestServer()
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("title: Reloaded\n"), 0o600); err != nil {
		t.Fatalf("write content: %v", err)
	}
	assert.Equal(t, nil, srv.Reload(good))
	assert.Equal(t, "Reloaded", srv.Site().Title)

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("title: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write content: %v", err)
	}
	assert.NotEqual(t, nil, srv.Reload(bad))
	assert.Equal(t, "Reloaded", srv.Site().Title)
}

func TestCORS(t *testing.T) {
	h := newTestServer(WithAllowedOrigins("https://a.example")).Handler()

	w := get(h, "/healthz", http.Header{"Origin": {"https://a.example"}})
	assert.Equal(t, "https://a.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(newTestServer().Handler(), "/healthz", http.Header{"Origin": {"https://a.example"}})
	assert.Equal(t, "", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newTestServer()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, "127.0.0.1:0")
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.Equal(t, nil, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}
