// Package visits records privacy-conscious page views per portfolio section.
// Client IPs are never stored; only a salted, truncated hash.
package visits

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// Visit is one recorded page view.
type Visit struct {
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Section   string    `json:"section"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// SectionCount is the number of views of one section.
type SectionCount struct {
	Section string `json:"section"`
	Views   int64  `json:"views"`
}

// Stats summarises recorded views.
type Stats struct {
	TotalViews     int64          `json:"total_views"`
	UniqueVisitors int64          `json:"unique_visitors"`
	ViewsToday     int64          `json:"views_today"`
	BySection      []SectionCount `json:"by_section"`
}

// Store persists visits in SQLite.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

var schema = []string{`
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	section TEXT NOT NULL,
	path TEXT,
	timestamp INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS visits_timestamp ON visits (timestamp)`,
}

// Open opens (or creates) the database at path and ensures the schema.
// ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open visits database: %w", err)
	}
	// One connection keeps ":memory:" a single database and serialises writers.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create visits schema: %w", err)
		}
	}

	salt, err := newSalt()
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Println("[INFO] Visit tracking enabled with hashed IP addresses")
	return &Store{db: db, salt: salt, now: time.Now}, nil
}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate hashing salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// HashIP hashes an address with the store's salt. The same IP always maps
// to the same value for the lifetime of the process.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores a visit. A zero Timestamp is replaced with the current time.
func (s *Store) Record(ctx context.Context, v Visit) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = s.now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (hashed_ip, user_agent, section, path, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Section, v.Path, v.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

// Stats computes totals and per-section counts, busiest section first.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{BySection: []SectionCount{}}

	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*), COUNT(DISTINCT hashed_ip) FROM visits").
		Scan(&stats.TotalViews, &stats.UniqueVisitors)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM visits WHERE timestamp >= ?", startOfDay.Unix()).
		Scan(&stats.ViewsToday)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's visits: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT section, COUNT(*) AS views
		FROM visits
		GROUP BY section
		ORDER BY views DESC, section ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to group visits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sc SectionCount
		if err := rows.Scan(&sc.Section, &sc.Views); err != nil {
			return nil, fmt.Errorf("failed to scan section count: %w", err)
		}
		stats.BySection = append(stats.BySection, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read section counts: %w", err)
	}

	return stats, nil
}

// Cleanup deletes visits older than retention and returns how many were removed.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention)
	result, err := s.db.ExecContext(ctx, "DELETE FROM visits WHERE timestamp < ?", cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to clean up visits: %w", err)
	}
	n, _ := result.RowsAffected()
	if n > 0 {
		log.Printf("[INFO] Privacy cleanup: removed %d visit records older than %s", n, retention)
	}
	return n, nil
}
