// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for name-extractor.
package types

// NameExtractionResult is the structured form of a personal name.
// Absent parts are empty strings; extracted words are never empty.
type NameExtractionResult struct {
	// Title is the recognized honorific, set only when it was the first word.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// FirstName is the first non-title word when a last name follows it.
	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`

	// LastName is the last word of the input. Always set on success.
	LastName string `json:"last_name" yaml:"last_name"`
}

// HasTitle reports whether a title was extracted.
func (r NameExtractionResult) HasTitle() bool { return r.Title != "" }

// HasFirstName reports whether a first name was extracted.
func (r NameExtractionResult) HasFirstName() bool { return r.FirstName != "" }
