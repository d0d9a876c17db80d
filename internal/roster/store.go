// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roster persists extracted names in a local SQLite database so
// they can be looked up and exported later.
package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/name-extractor/internal/names"
	"github.com/pdiddy/name-extractor/pkg/types"
)

const (
	dbFile            = "roster.db"
	defaultDir        = "roster"
	defaultMaxResults = 20
)

// Entry is a stored name with its raw input.
type Entry struct {
	ID    string `json:"id" yaml:"id"`
	Input string `json:"input" yaml:"input"`

	types.NameExtractionResult `yaml:",inline"`

	AddedAt time.Time `json:"added_at" yaml:"added_at"`
}

// Store manages the roster SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	extractor  *names.Extractor
	log        *logrus.Logger
}

// NewStore opens or creates the roster database at cfg.Dir/roster.db and
// creates the schema if it does not exist. A nil logger discards output.
func NewStore(cfg types.RosterConfig, ex *names.Extractor, log *logrus.Logger) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating roster directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if ex == nil {
		ex = names.New(types.ExtractorConfig{})
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	s := &Store{
		db:         db,
		dir:        dir,
		maxResults: maxResults,
		extractor:  ex,
		log:        log,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the database and exports.
func (s *Store) Dir() string { return s.dir }

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS people (
			id TEXT PRIMARY KEY,
			input TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL DEFAULT '',
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL,
			added_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_people_last_name ON people(last_name)`,
		`CREATE INDEX IF NOT EXISTS idx_people_title ON people(title)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Add extracts raw and stores the result. Re-adding the same input
// refreshes the stored parts and keeps the original id. Names that fail
// extraction are not stored; the extraction error is returned unwrapped
// so callers can match it with errors.Is.
func (s *Store) Add(ctx context.Context, raw string) (Entry, bool, error) {
	res, err := s.extractor.Extract(raw)
	if err != nil {
		return Entry{}, false, err
	}

	entry := Entry{
		ID:                   uuid.NewString(),
		Input:                normalizeInput(raw),
		NameExtractionResult: res,
		AddedAt:              time.Now().UTC(),
	}

	// The upsert keeps the stored id on conflict, so a returned id that
	// differs from the fresh one means the input was already present.
	var storedID string
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO people (id, input, title, first_name, last_name, added_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(input) DO UPDATE SET
			title=excluded.title, first_name=excluded.first_name,
			last_name=excluded.last_name, added_at=excluded.added_at
		 RETURNING id`,
		entry.ID, entry.Input, res.Title, res.FirstName, res.LastName,
		entry.AddedAt.Format(time.RFC3339Nano),
	).Scan(&storedID)
	if err != nil {
		return Entry{}, false, fmt.Errorf("storing %q: %w", entry.Input, err)
	}
	updated := storedID != entry.ID
	entry.ID = storedID

	s.log.WithFields(logrus.Fields{
		"id":      entry.ID,
		"input":   entry.Input,
		"updated": updated,
	}).Debug("roster entry stored")
	return entry, updated, nil
}

// IngestSummary holds counts from a roster ingest run.
type IngestSummary struct {
	Added   int
	Updated int
	Failed  int
}

// Total returns the number of names processed.
func (s IngestSummary) Total() int {
	return s.Added + s.Updated + s.Failed
}

// Ingest adds each name, writing one status line per name to w. Invalid
// names are counted as failed and do not abort the run; any other error
// stops the run and is returned with the counts so far.
func (s *Store) Ingest(ctx context.Context, raws []string, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	for _, raw := range raws {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		entry, updated, err := s.Add(ctx, raw)
		if err != nil {
			if !isValidationError(err) {
				return summary, err
			}
			fmt.Fprintf(w, "failed  %s: %v\n", raw, err)
			s.log.WithError(err).WithField("input", raw).Warn("roster ingest failed")
			summary.Failed++
			continue
		}
		if updated {
			fmt.Fprintf(w, "updated %s\n", entry.Input)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "added   %s\n", entry.Input)
			summary.Added++
		}
	}

	fmt.Fprintf(w, "\nadded: %d, updated: %d, failed: %d\n",
		summary.Added, summary.Updated, summary.Failed)
	s.log.WithFields(logrus.Fields{
		"added":   summary.Added,
		"updated": summary.Updated,
		"failed":  summary.Failed,
	}).Info("roster ingest finished")

	return summary, nil
}

func isValidationError(err error) bool {
	return errors.Is(err, names.ErrEmptyName) ||
		errors.Is(err, names.ErrTooManyWords) ||
		errors.Is(err, names.ErrMisplacedTitle)
}

// normalizeInput collapses whitespace runs so equivalent inputs share a row.
func normalizeInput(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
