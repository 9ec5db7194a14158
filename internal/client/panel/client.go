package panel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/pixeldock/pixelctl/internal/session"
	"github.com/pixeldock/pixelctl/internal/xhttp"
)

// Client is the single chokepoint for every panel API call. It attaches the
// bearer credential when one is held, decodes JSON bodies, and classifies
// failures into *APIError values the UI can act on.
type Client struct {
	Auth    AuthService
	Modules ModuleService
	Display DisplayService
	Debug   DebugService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(baseURL string, tokenSource oauth2.TokenSource, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL:     baseURL,
		tokenSource: tokenSource,
		logger:      slog.Default(),
		timeout:     10 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &panelTransport{
		base:        xhttp.NewTransport(),
		tokenSource: cfg.tokenSource,
	}

	c := &Client{
		baseURL:    cfg.baseURL,
		httpClient: &http.Client{Transport: transport, Timeout: cfg.timeout},
		logger:     cfg.logger,
	}

	c.Auth = &authService{client: c}
	c.Modules = &moduleService{client: c}
	c.Display = &displayService{client: c}
	c.Debug = &debugService{client: c}

	return c
}

type clientConfig struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	logger      *slog.Logger
	timeout     time.Duration
}

type Option func(*clientConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := go_json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set(xhttp.ContentType, "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		// empty body on success is fine, e.g. for DELETE
		if len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		if err := go_json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// panelTransport injects the held bearer token. The header is omitted when no
// token is stored so login itself can go through the same client.
type panelTransport struct {
	base        http.RoundTripper
	tokenSource oauth2.TokenSource
}

var _ http.RoundTripper = (*panelTransport)(nil)

func (t *panelTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokenSource != nil {
		token, err := t.tokenSource.Token()
		switch {
		case err == nil:
			req.Header.Set(xhttp.Authorization, "Bearer "+token.AccessToken)
		case errors.Is(err, session.ErrNoToken):
			// unauthenticated: the server decides with a 401
		default:
			return nil, fmt.Errorf("getting token: %w", err)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
