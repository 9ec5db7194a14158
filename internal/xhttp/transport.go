package xhttp

import (
	"fmt"
	"net/http"

	"github.com/pixeldock/pixelctl/internal/version"
)

type pixelctlTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*pixelctlTransport)(nil)

func (t *pixelctlTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "pixelctl/"+version.Get())
	req.Header.Set(version.Header, version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard pixelctl headers.
func NewTransport() http.RoundTripper {
	return &pixelctlTransport{base: http.DefaultTransport}
}
