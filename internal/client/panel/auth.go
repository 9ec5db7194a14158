package panel

import (
	"context"
	"net/http"
)

type AuthService interface {
	// Login exchanges credentials for a bearer token. The token is NOT stored
	// by the client; the caller owns persistence.
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	client *Client
}

var _ AuthService = (*authService)(nil)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	var resp TokenResponse
	err := s.client.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}
