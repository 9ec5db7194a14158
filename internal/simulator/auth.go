package simulator

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pixeldock/pixelctl/internal/xerrors"
	"github.com/pixeldock/pixelctl/internal/xhttp"
)

// TokenStore holds issued bearer tokens in memory. A restart invalidates all
// sessions, same as the appliance.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]time.Time)}
}

func (t *TokenStore) Issue() string {
	token := uuid.NewString()
	t.mu.Lock()
	t.tokens[token] = time.Now()
	t.mu.Unlock()
	return token
}

func (t *TokenStore) Valid(token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.tokens[token]
	return ok
}

// RequireAuth rejects requests without a known bearer token, using the same
// payload the appliance emits.
func RequireAuth(tokens *TokenStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := xhttp.BearerToken(r)
			if token == "" || !tokens.Valid(token) {
				xerrors.WriteError(r.Context(), w, xerrors.Unauthorized(xerrors.WithMessage("Not authenticated")))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
