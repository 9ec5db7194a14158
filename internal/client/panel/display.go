package panel

import (
	"context"
	"net/http"
)

type DisplayService interface {
	ShowText(ctx context.Context, text string, seconds int) error
	SetBrightness(ctx context.Context, brightness int) error
	Draw(ctx context.Context, pixels [][]int, seconds int) error
}

type displayService struct {
	client *Client
}

var _ DisplayService = (*displayService)(nil)

func (s *displayService) ShowText(ctx context.Context, text string, seconds int) error {
	return s.client.do(ctx, http.MethodPost, "/api/display/text", nil, TextRequest{
		Text:    text,
		Seconds: seconds,
	}, nil)
}

func (s *displayService) SetBrightness(ctx context.Context, brightness int) error {
	return s.client.do(ctx, http.MethodPost, "/api/display/brightness", nil, BrightnessRequest{
		Brightness: brightness,
	}, nil)
}

func (s *displayService) Draw(ctx context.Context, pixels [][]int, seconds int) error {
	return s.client.do(ctx, http.MethodPost, "/api/display/draw", nil, DrawRequest{
		Pixels:  pixels,
		Seconds: seconds,
	}, nil)
}
