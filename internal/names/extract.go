// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package names splits free-form personal names into title, first name,
// and last name.
//
// A name is at most three whitespace-separated words. A recognized title
// may only appear as the first word. The last word is always the last
// name; in a three-word name without a title the middle word is dropped.
package names

import (
	"errors"
	"sort"
	"strings"

	"github.com/pdiddy/name-extractor/pkg/types"
)

const maxWords = 3

var (
	// ErrEmptyName is returned when the input has no words.
	ErrEmptyName = errors.New("Name should contain at least one word")

	// ErrTooManyWords is returned when the input has more than three words.
	// It takes precedence over ErrMisplacedTitle.
	ErrTooManyWords = errors.New("Name should not have more than three words in it")

	// ErrMisplacedTitle is returned when a title appears after the first word.
	ErrMisplacedTitle = errors.New("Title should not appear in the middle of the name")
)

// TitleSet maps each recognized title to true.
type TitleSet map[string]bool

// DefaultTitles returns a fresh copy of the built-in title set.
func DefaultTitles() TitleSet {
	return TitleSet{
		"Mr":   true,
		"Mrs":  true,
		"Ms":   true,
		"Dr":   true,
		"Prof": true,
	}
}

// NewTitleSet builds a TitleSet from a list, skipping blank entries.
func NewTitleSet(titles []string) TitleSet {
	set := make(TitleSet, len(titles))
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t != "" {
			set[t] = true
		}
	}
	return set
}

// Sorted returns the titles in lexical order.
func (s TitleSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t, ok := range s {
		if ok {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// Extractor extracts names against a fixed title set. It is immutable
// after construction and safe for concurrent use.
type Extractor struct {
	titles   TitleSet
	foldCase bool
}

// New builds an Extractor from cfg. An empty cfg.Titles selects DefaultTitles.
func New(cfg types.ExtractorConfig) *Extractor {
	titles := NewTitleSet(cfg.Titles)
	if len(titles) == 0 {
		titles = DefaultTitles()
	}
	return &Extractor{titles: titles, foldCase: cfg.CaseInsensitive}
}

// Titles returns a copy of the recognized title set.
func (e *Extractor) Titles() TitleSet {
	out := make(TitleSet, len(e.titles))
	for t, ok := range e.titles {
		out[t] = ok
	}
	return out
}

var defaultExtractor = New(types.ExtractorConfig{})

// Extract parses name with the default title set.
func Extract(name string) (types.NameExtractionResult, error) {
	return defaultExtractor.Extract(name)
}

// Extract parses name into its title, first name, and last name.
// On error the returned result is zero.
func (e *Extractor) Extract(name string) (types.NameExtractionResult, error) {
	words := strings.Fields(name)

	switch {
	case len(words) == 0:
		return types.NameExtractionResult{}, ErrEmptyName
	case len(words) > maxWords:
		return types.NameExtractionResult{}, ErrTooManyWords
	}

	for _, w := range words[1:] {
		if e.IsTitle(w) {
			return types.NameExtractionResult{}, ErrMisplacedTitle
		}
	}

	var res types.NameExtractionResult
	rest := words
	if len(words) > 1 && e.IsTitle(words[0]) {
		res.Title = words[0]
		rest = words[1:]
	}

	res.LastName = rest[len(rest)-1]
	if len(rest) > 1 {
		res.FirstName = rest[0]
	}
	return res, nil
}

// IsTitle reports whether word is a recognized title.
func (e *Extractor) IsTitle(word string) bool {
	if e.titles[word] {
		return true
	}
	if !e.foldCase {
		return false
	}
	for t, ok := range e.titles {
		if ok && strings.EqualFold(t, word) {
			return true
		}
	}
	return false
}
