package simulator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pixeldock/pixelctl/internal/registry"
)

var ErrModuleNotFound = errors.New("module not found")

// Module is a rotation entry as the appliance stores and serves it.
type Module struct {
	ID              int64          `json:"id"`
	Key             string         `json:"key"`
	Name            string         `json:"name"`
	Enabled         bool           `json:"enabled"`
	DurationSeconds int            `json:"duration_seconds"`
	SortOrder       int            `json:"sort_order"`
	Settings        map[string]any `json:"settings"`
}

type ModuleUpdate struct {
	Enabled         bool           `json:"enabled"`
	DurationSeconds int            `json:"duration_seconds"`
	SortOrder       int            `json:"sort_order"`
	Settings        map[string]any `json:"settings"`
}

type Store struct {
	db *sql.DB
}

func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening module db: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS modules (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			key TEXT NOT NULL,
			name TEXT NOT NULL,
			enabled INTEGER NOT NULL,
			duration_seconds INTEGER NOT NULL,
			sort_order INTEGER NOT NULL,
			settings TEXT NOT NULL
		)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating modules table: %w", err)
	}

	s := &Store{db: db}
	if err := s.seed(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

// seed installs the factory rotation on first boot.
func (s *Store) seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM modules`).Scan(&count); err != nil {
		return fmt.Errorf("counting modules: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []Module{
		{Key: registry.KeyClock, Name: "Clock", Enabled: true, DurationSeconds: 10, SortOrder: 1},
		{Key: registry.KeyBTC, Name: "Bitcoin", Enabled: true, DurationSeconds: 8, SortOrder: 2},
		{Key: registry.KeyWeather, Name: "Weather", Enabled: true, DurationSeconds: 8, SortOrder: 3},
		{Key: registry.KeyTextbox, Name: "Textbox", Enabled: false, DurationSeconds: 6, SortOrder: 4},
	}

	for _, m := range defaults {
		settings, err := go_json.Marshal(registry.Lookup(m.Key).Defaults())
		if err != nil {
			return fmt.Errorf("encoding default settings: %w", err)
		}
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO modules (key, name, enabled, duration_seconds, sort_order, settings)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			m.Key, m.Name, m.Enabled, m.DurationSeconds, m.SortOrder, string(settings))
		if err != nil {
			return fmt.Errorf("seeding module %s: %w", m.Key, err)
		}
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]Module, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, key, name, enabled, duration_seconds, sort_order, settings
		 FROM modules ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var modules []Module
	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (*Module, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, key, name, enabled, duration_seconds, sort_order, settings
		 FROM modules WHERE id = ?`, id)

	m, err := scanModule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrModuleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Update replaces the writable fields of a module and returns the stored
// result. Validation happens at the handler; the store only persists.
func (s *Store) Update(ctx context.Context, id int64, update ModuleUpdate) (*Module, error) {
	settings, err := go_json.Marshal(update.Settings)
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE modules SET enabled = ?, duration_seconds = ?, sort_order = ?, settings = ?
		 WHERE id = ?`,
		update.Enabled, update.DurationSeconds, update.SortOrder, string(settings), id)
	if err != nil {
		return nil, fmt.Errorf("updating module %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating module %d: %w", id, err)
	}
	if affected == 0 {
		return nil, ErrModuleNotFound
	}

	return s.Get(ctx, id)
}

// Active picks the module currently owned by the rotation: enabled modules
// in sort order, each holding the display for its duration, cycling on wall
// time so every observer agrees on the active slot.
func (s *Store) Active(ctx context.Context, now time.Time) (*Module, error) {
	modules, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, m := range modules {
		if m.Enabled && m.DurationSeconds > 0 {
			total += m.DurationSeconds
		}
	}
	if total == 0 {
		return nil, nil
	}

	pos := int(now.Unix()) % total
	for _, m := range modules {
		if !m.Enabled || m.DurationSeconds <= 0 {
			continue
		}
		if pos < m.DurationSeconds {
			module := m
			return &module, nil
		}
		pos -= m.DurationSeconds
	}
	return nil, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanModule(row rowScanner) (Module, error) {
	var (
		m           Module
		rawSettings string
	)
	if err := row.Scan(&m.ID, &m.Key, &m.Name, &m.Enabled, &m.DurationSeconds, &m.SortOrder, &rawSettings); err != nil {
		return Module{}, err
	}
	if err := go_json.Unmarshal([]byte(rawSettings), &m.Settings); err != nil {
		return Module{}, fmt.Errorf("decoding settings for module %d: %w", m.ID, err)
	}
	return m, nil
}
