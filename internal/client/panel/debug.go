package panel

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type DebugService interface {
	Status(ctx context.Context) (*Status, error)
	Preview(ctx context.Context) (*Preview, error)
	StartPattern(ctx context.Context, pattern string, seconds, intervalMS int) error
	StopPattern(ctx context.Context) error
	MapCoordinate(ctx context.Context, x, y int) (*CoordinateMapping, error)
	DHT(ctx context.Context) (map[string]any, error)
	DHTReadOnce(ctx context.Context) (map[string]any, error)
	GPIOLevel(ctx context.Context) (map[string]any, error)
}

type debugService struct {
	client *Client
}

var _ DebugService = (*debugService)(nil)

func (s *debugService) Status(ctx context.Context) (*Status, error) {
	var status Status
	if err := s.client.do(ctx, http.MethodGet, "/api/debug/status", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *debugService) Preview(ctx context.Context) (*Preview, error) {
	var preview Preview
	if err := s.client.do(ctx, http.MethodGet, "/api/debug/preview", nil, nil, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

func (s *debugService) StartPattern(ctx context.Context, pattern string, seconds, intervalMS int) error {
	return s.client.do(ctx, http.MethodPost, "/api/debug/pattern", nil, PatternRequest{
		Pattern:    pattern,
		Seconds:    seconds,
		IntervalMS: intervalMS,
	}, nil)
}

func (s *debugService) StopPattern(ctx context.Context) error {
	return s.client.do(ctx, http.MethodDelete, "/api/debug/pattern", nil, nil, nil)
}

func (s *debugService) MapCoordinate(ctx context.Context, x, y int) (*CoordinateMapping, error) {
	query := url.Values{}
	query.Set("x", strconv.Itoa(x))
	query.Set("y", strconv.Itoa(y))

	var mapping CoordinateMapping
	if err := s.client.do(ctx, http.MethodGet, "/api/debug/mapping/coordinate", query, nil, &mapping); err != nil {
		return nil, err
	}
	return &mapping, nil
}

func (s *debugService) DHT(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.client.do(ctx, http.MethodGet, "/api/debug/dht", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *debugService) DHTReadOnce(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.client.do(ctx, http.MethodPost, "/api/debug/dht/read-once", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *debugService) GPIOLevel(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.client.do(ctx, http.MethodGet, "/api/debug/gpio/level", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
