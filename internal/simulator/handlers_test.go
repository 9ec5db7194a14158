package simulator

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	go_json "github.com/goccy/go-json"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := Config{
		AdminUsername: "admin",
		AdminPassword: "admin1234",
		TargetFPS:     20,
	}

	store, err := OpenStore(context.Background(), filepath.Join(t.TempDir(), "paneld.db"))
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := NewServer(cfg, store, NewEngine(store, cfg.TargetFPS), NewFeeds(), logger)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func request(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := go_json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding body: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	if err := go_json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return out
}

func login(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	resp := request(t, http.MethodPost, ts.URL+"/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "admin1234",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	body := decode[tokenResponse](t, resp)
	if body.AccessToken == "" || body.TokenType != "bearer" {
		t.Fatalf("login response = %+v", body)
	}
	return body.AccessToken
}

func detail(t *testing.T, resp *http.Response) string {
	t.Helper()
	return decode[struct {
		Detail string `json:"detail"`
	}](t, resp).Detail
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	ts := testServer(t)

	resp := request(t, http.MethodPost, ts.URL+"/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if d := detail(t, resp); !strings.Contains(d, "Incorrect") {
		t.Errorf("detail = %q", d)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()
	ts := testServer(t)

	for _, route := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/modules"},
		{http.MethodGet, "/api/debug/status"},
		{http.MethodGet, "/api/debug/preview"},
		{http.MethodPost, "/api/display/brightness"},
	} {
		resp := request(t, route.method, ts.URL+route.path, "", nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want 401", route.method, route.path, resp.StatusCode)
		}
		if d := detail(t, resp); d != "Not authenticated" {
			t.Errorf("%s %s detail = %q", route.method, route.path, d)
		}
	}
}

func TestBogusTokenRejected(t *testing.T) {
	t.Parallel()
	ts := testServer(t)

	resp := request(t, http.MethodGet, ts.URL+"/api/modules", "not-a-real-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestListAndUpdateModules(t *testing.T) {
	t.Parallel()
	ts := testServer(t)
	token := login(t, ts)

	resp := request(t, http.MethodGet, ts.URL+"/api/modules", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	modules := decode[[]Module](t, resp)
	if len(modules) != 4 {
		t.Fatalf("got %d modules, want 4", len(modules))
	}

	target := modules[0]
	resp = request(t, http.MethodPut, ts.URL+"/api/modules/"+itoa(target.ID), token, ModuleUpdate{
		Enabled:         false,
		DurationSeconds: 60,
		SortOrder:       target.SortOrder,
		Settings:        target.Settings,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}
	updated := decode[Module](t, resp)
	if updated.Enabled || updated.DurationSeconds != 60 {
		t.Errorf("update response = %+v", updated)
	}
}

func TestUpdateModuleValidation(t *testing.T) {
	t.Parallel()
	ts := testServer(t)
	token := login(t, ts)

	// unknown id
	resp := request(t, http.MethodPut, ts.URL+"/api/modules/9999", token, ModuleUpdate{DurationSeconds: 10})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", resp.StatusCode)
	}

	// duration out of range
	resp = request(t, http.MethodPut, ts.URL+"/api/modules/1", token, ModuleUpdate{DurationSeconds: 0})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("duration 0 status = %d, want 422", resp.StatusCode)
	}
	resp = request(t, http.MethodPut, ts.URL+"/api/modules/1", token, ModuleUpdate{DurationSeconds: 301})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("duration 301 status = %d, want 422", resp.StatusCode)
	}
}

func TestDisplayEndpointValidation(t *testing.T) {
	t.Parallel()
	ts := testServer(t)
	token := login(t, ts)

	resp := request(t, http.MethodPost, ts.URL+"/api/display/text", token, map[string]any{"text": "  "})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("blank text status = %d, want 422", resp.StatusCode)
	}

	resp = request(t, http.MethodPost, ts.URL+"/api/display/brightness", token, map[string]any{"brightness": 300})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("brightness 300 status = %d, want 422", resp.StatusCode)
	}

	resp = request(t, http.MethodPost, ts.URL+"/api/display/draw", token, map[string]any{"pixels": [][]int{{1}}})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("ragged draw status = %d, want 422", resp.StatusCode)
	}

	pixels := make([][]int, GridHeight)
	for i := range pixels {
		pixels[i] = make([]int, GridWidth)
	}
	pixels[0][0] = 1
	resp = request(t, http.MethodPost, ts.URL+"/api/display/draw", token, map[string]any{"pixels": pixels})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("valid draw status = %d, want 200", resp.StatusCode)
	}
}

func TestPatternLifecycle(t *testing.T) {
	t.Parallel()
	ts := testServer(t)
	token := login(t, ts)

	resp := request(t, http.MethodPost, ts.URL+"/api/debug/pattern", token, map[string]any{"pattern": "disco"})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("unknown pattern status = %d, want 422", resp.StatusCode)
	}

	resp = request(t, http.MethodPost, ts.URL+"/api/debug/pattern", token, map[string]any{"pattern": "stripes"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("start pattern status = %d", resp.StatusCode)
	}

	resp = request(t, http.MethodDelete, ts.URL+"/api/debug/pattern", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("stop pattern status = %d", resp.StatusCode)
	}
}

func TestStatusAndPreviewShape(t *testing.T) {
	t.Parallel()
	ts := testServer(t)
	token := login(t, ts)

	resp := request(t, http.MethodGet, ts.URL+"/api/debug/status", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status status = %d", resp.StatusCode)
	}
	status := decode[statusResponse](t, resp)
	if status.Display.TargetFPS != 20 {
		t.Errorf("target fps = %d, want 20", status.Display.TargetFPS)
	}
	if status.Data.BTCEur == nil {
		t.Error("data feeds missing btc value")
	}

	resp = request(t, http.MethodGet, ts.URL+"/api/debug/preview", token, nil)
	preview := decode[Preview](t, resp)
	if preview.Width != GridWidth || preview.Height != GridHeight || len(preview.Frame) != GridHeight {
		t.Errorf("preview shape = %dx%d with %d rows", preview.Width, preview.Height, len(preview.Frame))
	}
}

func TestCoordinateMappingEndpoint(t *testing.T) {
	t.Parallel()
	ts := testServer(t)
	token := login(t, ts)

	resp := request(t, http.MethodGet, ts.URL+"/api/debug/mapping/coordinate?x=9&y=3", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("mapping status = %d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	if body["ok"] != true {
		t.Errorf("ok = %v", body["ok"])
	}

	resp = request(t, http.MethodGet, ts.URL+"/api/debug/mapping/coordinate?x=99&y=0", token, nil)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("out of bounds status = %d, want 422", resp.StatusCode)
	}

	resp = request(t, http.MethodGet, ts.URL+"/api/debug/mapping/coordinate", token, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing params status = %d, want 400", resp.StatusCode)
	}
}

func TestDHTEndpoints(t *testing.T) {
	t.Parallel()
	ts := testServer(t)
	token := login(t, ts)

	for _, route := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/debug/dht"},
		{http.MethodPost, "/api/debug/dht/read-once"},
		{http.MethodGet, "/api/debug/gpio/level"},
	} {
		resp := request(t, route.method, ts.URL+route.path, token, nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s %s status = %d", route.method, route.path, resp.StatusCode)
			continue
		}
		body := decode[map[string]any](t, resp)
		if body["ok"] != true {
			t.Errorf("%s %s ok = %v", route.method, route.path, body["ok"])
		}
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
