// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roster

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// LookupOptions holds filters for roster queries. Filters combine with AND.
type LookupOptions struct {
	LastName  string
	FirstName string
	Title     string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether no filter is set.
func (o LookupOptions) IsEmpty() bool {
	return o.LastName == "" && o.FirstName == "" && o.Title == ""
}

// Lookup returns entries matching opts, ordered by last name, first name,
// and input. An empty opts lists the whole roster up to the limit.
func (s *Store) Lookup(ctx context.Context, opts LookupOptions) ([]Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT id, input, title, first_name, last_name, added_at
		FROM people
		WHERE 1=1`)

	if opts.LastName != "" {
		qb.WriteString(` AND last_name = ?`)
		args = append(args, opts.LastName)
	}
	if opts.FirstName != "" {
		qb.WriteString(` AND first_name = ?`)
		args = append(args, opts.FirstName)
	}
	if opts.Title != "" {
		qb.WriteString(` AND title = ?`)
		args = append(args, opts.Title)
	}

	qb.WriteString(` ORDER BY last_name, first_name, input LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying roster: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			addedAt string
		)
		if err := rows.Scan(&e.ID, &e.Input, &e.Title, &e.FirstName, &e.LastName, &addedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, addedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing added_at for %s: %w", e.ID, err)
		}
		e.AddedAt = t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
