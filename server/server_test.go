package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	uxsettings "github.com/goliatone/go-ux-settings"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()

	srv, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = srv.Close() })
	return srv
}

func do(t *testing.T, h http.Handler, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServerHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestServerSettingsETag(t *testing.T) {
	srv := newTestServer(t, WithInput(uxsettings.Input{
		Formats: uxsettings.FormatsInput{Dates: &uxsettings.DateInput{Locales: "fr"}},
	}))

	rec := do(t, srv, http.MethodGet, "/v1/settings", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var doc struct {
		Formats struct {
			Dates struct {
				Locales      string `json:"locales"`
				WeekStartsOn int    `json:"weekStartsOn"`
			} `json:"dates"`
		} `json:"formats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Formats.Dates.Locales != "fr" || doc.Formats.Dates.WeekStartsOn != 1 {
		t.Fatalf("dates = %+v", doc.Formats.Dates)
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag")
	}

	again := do(t, srv, http.MethodGet, "/v1/settings", "", http.Header{"If-None-Match": {etag}})
	if again.Code != http.StatusNotModified {
		t.Fatalf("conditional status = %d", again.Code)
	}
}

func TestServerResolve(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/v1/resolve", `{"formats":{"dates":{"locales":"de","custom":"dd.MM."}}}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	var doc struct {
		Formats struct {
			Dates struct {
				Locales string `json:"locales"`
				Variant string `json:"variant"`
			} `json:"dates"`
		} `json:"formats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Formats.Dates.Locales != "de" || doc.Formats.Dates.Variant != "custom" {
		t.Fatalf("dates = %+v", doc.Formats.Dates)
	}

	if root := srv.Settings(); root.Formats.Dates.Locales != "en" {
		t.Fatalf("resolve leaked into the root scope: %s", root.Formats.Dates.Locales)
	}

	bad := do(t, srv, http.MethodPost, "/v1/resolve", `{"colors":{}}`, nil)
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("unknown field status = %d", bad.Code)
	}
}

func TestServerOrdinalAndNumber(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		target string
		code   int
		want   string
	}{
		{target: "/v1/ordinal/22", code: http.StatusOK, want: "22nd"},
		{target: "/v1/ordinal/13?locale=en-GB", code: http.StatusOK, want: "13th"},
		{target: "/v1/number/1234.5", code: http.StatusOK, want: "1,234.50"},
		{target: "/v1/number/0.25?style=percentRound", code: http.StatusOK, want: "25%"},
	}

	for _, tt := range tests {
		rec := do(t, srv, http.MethodGet, tt.target, "", nil)
		if rec.Code != tt.code || rec.Body.String() != tt.want {
			t.Fatalf("%s = %d %q, want %d %q", tt.target, rec.Code, rec.Body.String(), tt.code, tt.want)
		}
	}

	if rec := do(t, srv, http.MethodGet, "/v1/ordinal/first", "", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric ordinal status = %d", rec.Code)
	}
}

func TestServerTheme(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPut, "/v1/theme", `{"theme":"dark"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("set theme status = %d body = %s", rec.Code, rec.Body.String())
	}

	var state uxsettings.ThemeState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Theme != "dark" || !state.Dark {
		t.Fatalf("state = %+v", state)
	}
	if got := srv.Settings().CurrentTheme.Theme(); got != "dark" {
		t.Fatalf("store theme = %q", got)
	}

	if rec := do(t, srv, http.MethodPut, "/v1/theme", `{"theme":"neon"}`, nil); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown theme status = %d", rec.Code)
	}
	if rec := do(t, srv, http.MethodPut, "/v1/theme", `{}`, nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("empty body status = %d", rec.Code)
	}
	if rec := do(t, srv, http.MethodGet, "/v1/theme", "", nil); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"theme":"dark"`) {
		t.Fatalf("theme state = %d %s", rec.Code, rec.Body.String())
	}
}

func TestServerThemeFeed(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/theme/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var state uxsettings.ThemeState
	if err := conn.ReadJSON(&state); err != nil {
		t.Fatalf("initial state: %v", err)
	}
	if state.Theme != "" || state.Dark {
		t.Fatalf("initial state = %+v", state)
	}

	resp, err := http.DefaultClient.Do(mustRequest(t, http.MethodPut, ts.URL+"/v1/theme/system", `{"dark":true}`))
	if err != nil {
		t.Fatalf("PUT system: %v", err)
	}
	resp.Body.Close()

	if err := conn.ReadJSON(&state); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !state.SystemDark || !state.Dark {
		t.Fatalf("update = %+v", state)
	}

	_ = srv.Close()
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected the feed to close")
	}
}

func TestServerMetrics(t *testing.T) {
	srv := newTestServer(t)

	do(t, srv, http.MethodPost, "/v1/resolve", `{}`, nil)
	do(t, srv, http.MethodGet, "/missing", "", nil)

	rec := do(t, srv, http.MethodGet, "/metrics", "", nil)
	body := rec.Body.String()

	for _, want := range []string{
		"uxsettings_resolutions_total 1",
		`uxsettings_http_requests_total{code="2xx",route="/v1/resolve"} 1`,
		`uxsettings_http_requests_total{code="4xx",route="unmatched"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics missing %q:\n%s", want, body)
		}
	}
}

func TestWithTracerNameRejectsEmpty(t *testing.T) {
	if _, err := New(WithTracerName("")); err == nil {
		t.Fatal("expected error for empty tracer name")
	}
}

func mustRequest(t *testing.T, method, url, body string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	return req
}
