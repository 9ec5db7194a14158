package panel

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/oauth2"

	"github.com/pixeldock/pixelctl/internal/session"
)

type staticTokenSource struct {
	token string
}

func (s staticTokenSource) Token() (*oauth2.Token, error) {
	if s.token == "" {
		return nil, session.ErrNoToken
	}
	return &oauth2.Token{AccessToken: s.token, TokenType: "Bearer"}, nil
}

func TestDoAttachesBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL, staticTokenSource{token: "secret"})
	if _, err := client.Modules.List(t.Context()); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret")
	}
}

func TestDoOmitsHeaderWithoutToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"access_token":"fresh","token_type":"bearer"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, staticTokenSource{})
	token, err := client.Auth.Login(t.Context(), "admin", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
	if token != "fresh" {
		t.Errorf("Login() = %q, want %q", token, "fresh")
	}
}

func TestDoParsesDetailOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "detail field",
			status:      http.StatusUnprocessableEntity,
			body:        `{"detail":"duration_seconds must be >= 1"}`,
			wantMessage: "duration_seconds must be >= 1",
		},
		{
			name:        "non-json body",
			status:      http.StatusBadGateway,
			body:        "upstream exploded",
			wantMessage: "upstream exploded",
		},
		{
			name:        "empty detail falls back to status",
			status:      http.StatusInternalServerError,
			body:        `{}`,
			wantMessage: "500 Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := New(srv.URL, staticTokenSource{token: "t"})
			_, err := client.Modules.List(t.Context())
			if err == nil {
				t.Fatal("List() error = nil, want APIError")
			}

			apiErr, ok := err.(*APIError)
			if !ok {
				t.Fatalf("List() error type = %T, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, staticTokenSource{token: "stale"})
	_, err := client.Debug.Status(t.Context())

	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized(%v) = false, want true", err)
	}
}

func TestModuleUpdateRoundTrip(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/api/modules/3" {
			t.Errorf("path = %s, want /api/modules/3", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 3, "key": "clock", "name": "Clock", "enabled": false,
			"duration_seconds": 12, "sort_order": 1,
			"settings": {"timezone": "Europe/Vienna"}
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, staticTokenSource{token: "t"})
	got, err := client.Modules.Update(t.Context(), 3, ModuleUpdate{
		Enabled:         false,
		DurationSeconds: 12,
		SortOrder:       1,
		Settings:        map[string]any{"timezone": "Europe/Vienna"},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	want := &Module{
		ID:              3,
		Key:             "clock",
		Name:            "Clock",
		Enabled:         false,
		DurationSeconds: 12,
		SortOrder:       1,
		Settings:        map[string]any{"timezone": "Europe/Vienna"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Update() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptySuccessBodyTolerated(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(srv.URL, staticTokenSource{token: "t"})
	if err := client.Debug.StopPattern(t.Context()); err != nil {
		t.Errorf("StopPattern() error = %v, want nil", err)
	}
}

func TestPreviewDecoding(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"width": 4, "height": 1, "lit_pixels": 2,
			"frame": [[1, 0, 1, 0]],
			"colors": [[[255, 0, 0], null, null, null]]
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, staticTokenSource{token: "t"})
	preview, err := client.Debug.Preview(t.Context())
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	if preview.LitPixels != 2 {
		t.Errorf("LitPixels = %d, want 2", preview.LitPixels)
	}
	if got := preview.Colors[0][0]; got == nil || *got != (RGB{255, 0, 0}) {
		t.Errorf("Colors[0][0] = %v, want [255 0 0]", got)
	}
	if preview.Colors[0][1] != nil {
		t.Errorf("Colors[0][1] = %v, want nil", preview.Colors[0][1])
	}
}
