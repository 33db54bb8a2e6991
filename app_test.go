package siteconf

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestApp(t *testing.T, s Settings, cfg ServerConfig) *App {
	t.Helper()
	a := New(s, cfg)
	t.Cleanup(func() { a.Close() })
	return a
}

func doRequest(a *App, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestSettingsEndpointJSON(t *testing.T) {
	a := newTestApp(t, Default(), ServerConfig{})
	rec := doRequest(a, "/api/settings")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}
	got, err := Unmarshal(rec.Body.Bytes(), FormatJSON)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got != Default() {
		t.Errorf("body = %+v, want defaults", got)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=3600" {
		t.Errorf("Cache-Control = %q", cc)
	}
}

func TestSettingsEndpointFormats(t *testing.T) {
	a := newTestApp(t, Default(), ServerConfig{})

	for _, f := range []Format{FormatYAML, FormatTOML} {
		rec := doRequest(a, "/api/settings?format="+string(f))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", f, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != f.ContentType() {
			t.Errorf("%s: Content-Type = %q", f, ct)
		}
		got, err := Unmarshal(rec.Body.Bytes(), f)
		if err != nil {
			t.Fatalf("%s: decode body: %v", f, err)
		}
		if got != Default() {
			t.Errorf("%s: body mismatch", f)
		}
	}

	rec := doRequest(a, "/api/settings?format=xml")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("format=xml status = %d, want 400", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["error"] == "" {
		t.Errorf("expected JSON error body, got %q", rec.Body.String())
	}
}

func TestEditLinkEndpoint(t *testing.T) {
	a := newTestApp(t, Default(), ServerConfig{})

	rec := doRequest(a, "/api/settings/edit-link?path=src/data/blog/hello.md")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var link EditLink
	if err := json.Unmarshal(rec.Body.Bytes(), &link); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasSuffix(link.URL, "/edit/main/src/data/blog/hello.md") || link.Text != "Edit page" {
		t.Errorf("link = %+v", link)
	}

	if rec := doRequest(a, "/api/settings/edit-link"); rec.Code != http.StatusBadRequest {
		t.Errorf("missing path status = %d, want 400", rec.Code)
	}

	s := Default()
	s.EditPost.Enabled = false
	disabled := newTestApp(t, s, ServerConfig{})
	if rec := doRequest(disabled, "/api/settings/edit-link?path=a.md"); rec.Code != http.StatusNotFound {
		t.Errorf("disabled status = %d, want 404", rec.Code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	a := newTestApp(t, Default(), ServerConfig{})
	if rec := doRequest(a, "/api/settings/validate"); rec.Code != http.StatusOK {
		t.Errorf("valid settings status = %d, want 200", rec.Code)
	}

	s := Default()
	s.Dir = "up"
	bad := newTestApp(t, s, ServerConfig{})
	rec := doRequest(bad, "/api/settings/validate")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid settings status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"field":"dir"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRobotsAndHealth(t *testing.T) {
	a := newTestApp(t, Default(), ServerConfig{})

	rec := doRequest(a, "/robots.txt")
	if rec.Code != http.StatusOK {
		t.Fatalf("robots status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sitemap: https://graceliying82.github.io/sitemap-index.xml") {
		t.Errorf("robots.txt = %q", rec.Body.String())
	}

	rec = doRequest(a, "/healthz")
	if rec.Code != http.StatusOK || rec.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Header().Get("Cache-Control"))
	}
}

func TestHeadEndpoint(t *testing.T) {
	a := newTestApp(t, Default(), ServerConfig{})
	rec := doRequest(a, "/head")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<title>Grace Li</title>`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRateLimitOnAPI(t *testing.T) {
	a := newTestApp(t, Default(), ServerConfig{RateLimit: 1})

	if rec := doRequest(a, "/api/settings"); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}
	if rec := doRequest(a, "/api/settings"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}
	// Non-API routes are not limited.
	if rec := doRequest(a, "/robots.txt"); rec.Code != http.StatusOK {
		t.Errorf("robots status = %d, want 200", rec.Code)
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	a := newTestApp(t, Default(), ServerConfig{})
	rec := doRequest(a, "/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAppCopiesSettings(t *testing.T) {
	s := Default()
	a := newTestApp(t, s, ServerConfig{})
	s.Title = "mutated"
	if a.Settings.Title != "Grace Li" {
		t.Errorf("App saw caller mutation: %q", a.Settings.Title)
	}
}

func TestErrorResponsesAreNotCached(t *testing.T) {
	s := Default()
	s.EditPost.Enabled = false
	a := newTestApp(t, s, ServerConfig{RateLimit: 2})

	tests := []struct {
		target string
		code   int
	}{
		{"/api/settings/edit-link?path=a.md", http.StatusNotFound},
		{"/api/settings", http.StatusOK},
		{"/api/settings", http.StatusTooManyRequests},
		{"/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := doRequest(a, tt.target)
		if rec.Code != tt.code {
			t.Fatalf("%s: status = %d, want %d", tt.target, rec.Code, tt.code)
		}
		cc := rec.Header().Get("Cache-Control")
		if tt.code == http.StatusOK {
			if cc != "public, max-age=3600" {
				t.Errorf("%s: Cache-Control = %q, want public", tt.target, cc)
			}
			continue
		}
		if cc != "no-store" {
			t.Errorf("%s -> %d: Cache-Control = %q, want no-store", tt.target, tt.code, cc)
		}
	}
}
