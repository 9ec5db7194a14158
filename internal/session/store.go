package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/oauth2"
)

// ErrNoToken is returned when no credential is stored - the operator must log in.
var ErrNoToken = errors.New("no token found - please log in first")

const schema = `
CREATE TABLE IF NOT EXISTS session (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	access_token TEXT NOT NULL,
	saved_at TIMESTAMP NOT NULL
);`

// Store holds the bearer credential for the panel API.
// It is the terminal analog of the browser's localStorage token slot:
// at most one token, persisted across restarts, cleared on logout or 401.
type Store struct {
	db *sql.DB

	mu    sync.Mutex
	token string
}

var _ oauth2.TokenSource = (*Store)(nil)

func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize session schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Token implements oauth2.TokenSource. The panel API issues opaque bearer
// tokens with no refresh flow; validity is determined solely by the server.
func (s *Store) Token() (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := s.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: t, TokenType: "Bearer"}, nil
}

func (s *Store) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		return s.token, nil
	}

	var token string
	err := s.db.QueryRowContext(ctx, `SELECT access_token FROM session WHERE id = 1`).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}

	s.token = token
	return token, nil
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, access_token, saved_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET access_token = excluded.access_token, saved_at = excluded.saved_at`,
		token, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	s.token = token
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}

	s.token = ""
	return nil
}

func (s *Store) HasToken(ctx context.Context) (bool, error) {
	_, err := s.AccessToken(ctx)
	if err != nil {
		if errors.Is(err, ErrNoToken) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
