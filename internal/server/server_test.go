package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/radialmap/pkg/buildinfo"
	"github.com/matzehuels/radialmap/pkg/cache"
	"github.com/matzehuels/radialmap/pkg/graph"
	"github.com/matzehuels/radialmap/pkg/observability"
	"github.com/matzehuels/radialmap/pkg/pipeline"
	"github.com/matzehuels/radialmap/pkg/storage"
)

const testDoc = `<map>
<node ID="r" TEXT="Root">
  <node ID="a" TEXT="Alpha"/>
  <node ID="b" TEXT="Beta">
    <node ID="b1" TEXT="Beta one"/>
  </node>
</node>
</map>`

func newTestServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	if cfg.Runner == nil {
		c, err := cache.NewLRUCache(0)
		require.NoError(t, err)
		cfg.Runner = pipeline.NewRunner(c, nil, log.New(io.Discard))
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	ts := httptest.NewServer(New(cfg).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decodeError(t *testing.T, data []byte) errorBody {
	t.Helper()
	var e errorBody
	require.NoError(t, json.Unmarshal(data, &e), string(data))
	return e
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, Config{})
	resp, body := do(t, http.MethodGet, ts.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","version":"`+buildinfo.Version+`"}`, string(body))
}

func TestLayout(t *testing.T) {
	ts := newTestServer(t, Config{})
	resp, body := do(t, http.MethodPost, ts.URL+"/v1/layout?radius_step=50&curved=false", testDoc)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	l, err := graph.UnmarshalLayout(body)
	require.NoError(t, err)
	assert.Equal(t, graph.VizTypeRadial, l.VizType)
	assert.Len(t, l.Nodes, 4)
	assert.Len(t, l.Links, 3)
	assert.Equal(t, 50.0, l.RadiusStep)
	assert.False(t, l.Curved)
}

func TestLayoutJSONDocument(t *testing.T) {
	ts := newTestServer(t, Config{})
	doc := `{"id":"r","text":"Root","children":[{"id":"a"},{"id":"b"}]}`
	resp, body := do(t, http.MethodPost, ts.URL+"/v1/layout", doc)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	l, err := graph.UnmarshalLayout(body)
	require.NoError(t, err)
	assert.Len(t, l.Nodes, 3)
}

func TestRender(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, body := do(t, http.MethodPost, ts.URL+"/v1/render?output=svg&style=handdrawn", testDoc)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(body)), "<svg"))
	assert.Equal(t, 3, strings.Count(string(body), `class="link"`))

	resp, body = do(t, http.MethodPost, ts.URL+"/v1/render?output=png", testDoc)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "\x89PNG", string(body[:4]))
}

func TestErrors(t *testing.T) {
	ts := newTestServer(t, Config{})
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"empty body", http.MethodPost, "/v1/layout", "", http.StatusBadRequest, "INVALID_INPUT"},
		{"bad document", http.MethodPost, "/v1/layout", "<map><node", http.StatusBadRequest, "INVALID_DOCUMENT"},
		{"bad output", http.MethodPost, "/v1/render?output=gif", testDoc, http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad style", http.MethodPost, "/v1/render?style=crayon", testDoc, http.StatusBadRequest, "INVALID_STYLE"},
		{"bad number", http.MethodPost, "/v1/layout?radius_step=wide", testDoc, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad step", http.MethodPost, "/v1/layout?radius_step=-2", testDoc, http.StatusBadRequest, "INVALID_CONFIG"},
		{"huge samples", http.MethodPost, "/v1/layout?curved=true&samples=9223372036854775807", testDoc, http.StatusBadRequest, "INVALID_CONFIG"},
		{"samples over limit", http.MethodPost, "/v1/render?samples=1025", testDoc, http.StatusBadRequest, "INVALID_CONFIG"},
		{"huge raster", http.MethodPost, "/v1/render?output=png&width=200000&height=200000", testDoc, http.StatusBadRequest, "INVALID_CONFIG"},
		{"raster area", http.MethodPost, "/v1/render?output=png&width=8000&height=8000", testDoc, http.StatusBadRequest, "INVALID_CONFIG"},
		{"negative tangent", http.MethodPost, "/v1/layout?tangent=-1", testDoc, http.StatusBadRequest, "INVALID_CONFIG"},
		{"bad id", http.MethodGet, "/v1/maps/not-a-uuid", "", http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown id", http.MethodGet, "/v1/maps/9b2f0c4e-4a5d-4c7e-8f1a-2d3b4c5d6e7f", "", http.StatusNotFound, "NOT_FOUND"},
		{"delete unknown", http.MethodDelete, "/v1/maps/9b2f0c4e-4a5d-4c7e-8f1a-2d3b4c5d6e7f", "", http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, tt.method, ts.URL+tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode, string(body))
			assert.Equal(t, tt.code, string(decodeError(t, body).Code))
		})
	}
}

func TestStoredMapRasterLimit(t *testing.T) {
	ts := newTestServer(t, Config{})
	resp, body := do(t, http.MethodPost, ts.URL+"/v1/maps", testDoc)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created storage.Summary
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body = do(t, http.MethodGet, ts.URL+"/v1/maps/"+created.ID+"/render?output=png&width=200000&height=200000", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_CONFIG", string(decodeError(t, body).Code))
}

func TestLayoutZeroTangent(t *testing.T) {
	ts := newTestServer(t, Config{})
	resp, body := do(t, http.MethodPost, ts.URL+"/v1/layout?tangent=0", testDoc)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var l struct {
		TangentStrength *float64 `json:"tangent_strength"`
	}
	require.NoError(t, json.Unmarshal(body, &l))
	require.NotNil(t, l.TangentStrength)
	assert.Zero(t, *l.TangentStrength)
}

func TestBodyLimit(t *testing.T) {
	ts := newTestServer(t, Config{MaxBodySize: 16})
	resp, body := do(t, http.MethodPost, ts.URL+"/v1/layout", testDoc)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", string(decodeError(t, body).Code))
}

func TestMapsRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	ts := newTestServer(t, Config{Store: store})

	resp, body := do(t, http.MethodPost, ts.URL+"/v1/maps?name=ideas", testDoc)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created storage.Summary
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "ideas", created.Name)
	assert.Equal(t, 4, created.NodeCount)
	assert.Equal(t, "/v1/maps/"+created.ID, resp.Header.Get("Location"))

	resp, body = do(t, http.MethodGet, ts.URL+"/v1/maps/"+created.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	l, err := graph.UnmarshalLayout(body)
	require.NoError(t, err)
	assert.Len(t, l.Nodes, 4)

	resp, body = do(t, http.MethodGet, ts.URL+"/v1/maps/"+created.ID+"/render?output=svg&leaves_only=true", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, 2, strings.Count(string(body), `class="label"`))

	resp, body = do(t, http.MethodGet, ts.URL+"/v1/maps", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []storage.Summary
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	resp, _ = do(t, http.MethodDelete, ts.URL+"/v1/maps/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, ts.URL+"/v1/maps/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	hooks, err := observability.NewPrometheusHooks(reg)
	require.NoError(t, err)
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	ts := newTestServer(t, Config{Gatherer: reg})
	resp, _ := do(t, http.MethodGet, ts.URL+"/healthz", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := do(t, http.MethodGet, ts.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `radialmap_http_requests_total{code="200",method="GET",route="/healthz"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	ts := newTestServer(t, Config{})
	resp, _ := do(t, http.MethodGet, ts.URL+"/metrics", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
