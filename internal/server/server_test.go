package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ringlayout/internal/config"
	"github.com/matzehuels/ringlayout/pkg/cache"
	"github.com/matzehuels/ringlayout/pkg/errors"
	"github.com/matzehuels/ringlayout/pkg/pipeline"
	"github.com/matzehuels/ringlayout/pkg/render"
	"github.com/matzehuels/ringlayout/pkg/scene"
)

const sceneJSON = `{"name":"team","radius":100,"sections":[{"count":3},{"items":[{"label":"web"},{"label":"ios"}]}]}`

const sceneTOML = `
radius = 100.0
[[sections]]
count = 4
`

func newTestServer(t *testing.T, cfg config.Server) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s := New(pipeline.NewRunner(fc, nil, logger), logger, cfg)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, contentType, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, contentType, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) errorBody {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, config.Server{})
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Version == "" {
		t.Errorf("body = %+v", body)
	}
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	ts := newTestServer(t, config.Server{})
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
}

func TestLayout(t *testing.T) {
	ts := newTestServer(t, config.Server{})

	tests := []struct {
		name        string
		contentType string
		body        string
		query       string
		wantItems   int
	}{
		{"json", "application/json", sceneJSON, "", 5},
		{"default content type", "", sceneJSON, "", 5},
		{"toml", "application/toml", sceneTOML, "", 4},
		{"overrides", "application/json", sceneJSON, "?clustering=1&cx=10&cy=20", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+"/v1/layout"+tt.query, tt.contentType, tt.body)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d: %+v", resp.StatusCode, decodeError(t, resp))
			}
			if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			var out struct {
				Center struct{ X, Y float64 }
				Items  []struct {
					Degrees float64 `json:"degrees"`
					Label   string  `json:"label"`
				} `json:"items"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				t.Fatal(err)
			}
			if len(out.Items) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(out.Items), tt.wantItems)
			}
			if tt.name == "overrides" {
				if out.Center.X != 10 || out.Center.Y != 20 {
					t.Errorf("center = %+v, want (10, 20)", out.Center)
				}
				if out.Items[0].Degrees != out.Items[2].Degrees {
					t.Error("clustering=1 should collapse a section onto one angle")
				}
			}
		})
	}
}

func TestLayoutCacheHeader(t *testing.T) {
	ts := newTestServer(t, config.Server{})
	first := post(t, ts.URL+"/v1/layout", "application/json", sceneJSON)
	second := post(t, ts.URL+"/v1/layout", "application/json", sceneJSON)
	if first.Header.Get("X-Cache") != "miss" || second.Header.Get("X-Cache") != "hit" {
		t.Errorf("X-Cache = %q then %q, want miss then hit",
			first.Header.Get("X-Cache"), second.Header.Get("X-Cache"))
	}
}

func TestRender(t *testing.T) {
	ts := newTestServer(t, config.Server{})

	resp := post(t, ts.URL+"/v1/render?guide=true", "application/json", sceneJSON)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `class="guide"`) || !strings.Contains(string(body), ">web<") {
		t.Errorf("unexpected svg: %.200s", body)
	}

	resp = post(t, ts.URL+"/v1/render?format=dot&labels=false", "application/json", sceneJSON)
	body, _ = io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(string(body), "graph G {") {
		t.Errorf("dot render: status %d body %.60s", resp.StatusCode, body)
	}
	if strings.Contains(string(body), "web") {
		t.Error("labels=false should drop labels")
	}
}

func TestRenderPNGWithoutConverter(t *testing.T) {
	if render.ConverterAvailable() {
		t.Skip("rsvg-convert installed")
	}
	ts := newTestServer(t, config.Server{})
	resp := post(t, ts.URL+"/v1/render?format=png", "application/json", sceneJSON)
	if resp.StatusCode != http.StatusNotImplemented {
		t.Errorf("status = %d, want 501", resp.StatusCode)
	}
}

func TestErrors(t *testing.T) {
	ts := newTestServer(t, config.Server{MaxBodyBytes: 256})

	tests := []struct {
		name        string
		path        string
		contentType string
		body        string
		wantStatus  int
		wantCode    errors.Code
	}{
		{"empty body", "/v1/layout", "application/json", "", 400, errors.ErrCodeInvalidInput},
		{"bad json", "/v1/layout", "application/json", "{", 400, errors.ErrCodeInvalidScene},
		{"unknown field", "/v1/layout", "application/json", `{"sections":[],"colour":1}`, 400, errors.ErrCodeInvalidScene},
		{"negative count", "/v1/layout", "application/json", `{"sections":[{"count":-1}]}`, 400, errors.ErrCodeInvalidScene},
		{"too many items", "/v1/layout", "application/json", fmt.Sprintf(`{"sections":[{"count":%d}]}`, scene.MaxItems+1), 400, errors.ErrCodeInvalidScene},
		{"too many items render", "/v1/render", "application/json", fmt.Sprintf(`{"sections":[{"count":%d}]}`, scene.MaxItems+1), 400, errors.ErrCodeInvalidScene},
		{"content type", "/v1/layout", "text/html", sceneJSON, 400, errors.ErrCodeInvalidFormat},
		{"bad format", "/v1/render?format=gif", "application/json", sceneJSON, 400, errors.ErrCodeInvalidFormat},
		{"bad viz", "/v1/render?viz=tower", "application/json", sceneJSON, 400, errors.ErrCodeInvalidVizType},
		{"bad query", "/v1/layout?radius=big", "application/json", sceneJSON, 400, errors.ErrCodeInvalidInput},
		{"lonely cx", "/v1/layout?cx=1", "application/json", sceneJSON, 400, errors.ErrCodeInvalidInput},
		{"too large", "/v1/layout", "application/json", fmt.Sprintf(`{"name":%q}`, strings.Repeat("x", 300)), 413, errors.ErrCodeInvalidInput},
		{"no route", "/v2/layout", "application/json", sceneJSON, 404, errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+tt.path, tt.contentType, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			body := decodeError(t, resp)
			if body.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s (%s)", body.Error.Code, tt.wantCode, body.Error.Message)
			}
			if body.RequestID == "" {
				t.Error("error body missing request id")
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeInvalidScene, "x"), 400},
		{errors.New(errors.ErrCodeFileNotFound, "x"), 404},
		{errors.New(errors.ErrCodeUnavailable, "x"), 503},
		{errors.New(errors.ErrCodeUnsupported, "x"), 501},
		{fmt.Errorf("wrapped: %w", render.ErrNoConverter), 501},
		{fmt.Errorf("plain"), 500},
	}
	for _, tt := range tests {
		if got := StatusCode(tt.err); got != tt.want {
			t.Errorf("StatusCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
