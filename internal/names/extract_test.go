// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package names

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/name-extractor/pkg/types"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.NameExtractionResult
	}{
		{
			name:  "single word is the last name",
			input: "Cruise",
			want:  types.NameExtractionResult{LastName: "Cruise"},
		},
		{
			name:  "second word is the last name when first is a title",
			input: "Mr Anderson",
			want:  types.NameExtractionResult{Title: "Mr", LastName: "Anderson"},
		},
		{
			name:  "two words without title are first and last name",
			input: "Peter Parker",
			want:  types.NameExtractionResult{FirstName: "Peter", LastName: "Parker"},
		},
		{
			name:  "title then first and last name",
			input: "Dr John Watson",
			want:  types.NameExtractionResult{Title: "Dr", FirstName: "John", LastName: "Watson"},
		},
		{
			name:  "middle word of three is dropped",
			input: "John Hamish Watson",
			want:  types.NameExtractionResult{FirstName: "John", LastName: "Watson"},
		},
		{
			name:  "lone title is a last name",
			input: "Mr",
			want:  types.NameExtractionResult{LastName: "Mr"},
		},
		{
			name:  "repeated whitespace is ignored",
			input: "  Peter \t\n Parker  ",
			want:  types.NameExtractionResult{FirstName: "Peter", LastName: "Parker"},
		},
		{
			name:  "title matching is case sensitive by default",
			input: "dr John Watson",
			want:  types.NameExtractionResult{FirstName: "dr", LastName: "Watson"},
		},
		{
			name:  "title with trailing period is not a title",
			input: "Dr. Watson",
			want:  types.NameExtractionResult{FirstName: "Dr.", LastName: "Watson"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "title after first position",
			input:   "John Dr Watson",
			wantErr: ErrMisplacedTitle,
			wantMsg: "Title should not appear in the middle of the name",
		},
		{
			name:    "title as last word",
			input:   "John Mrs",
			wantErr: ErrMisplacedTitle,
			wantMsg: "Title should not appear in the middle of the name",
		},
		{
			name:    "two titles",
			input:   "Dr Prof Watson",
			wantErr: ErrMisplacedTitle,
			wantMsg: "Title should not appear in the middle of the name",
		},
		{
			name:    "more than three words",
			input:   "Name is Bond James Bond",
			wantErr: ErrTooManyWords,
			wantMsg: "Name should not have more than three words in it",
		},
		{
			name:    "too many words wins over misplaced title",
			input:   "John Dr Hamish Watson",
			wantErr: ErrTooManyWords,
			wantMsg: "Name should not have more than three words in it",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrEmptyName,
			wantMsg: "Name should contain at least one word",
		},
		{
			name:    "whitespace only",
			input:   "  \t \n",
			wantErr: ErrEmptyName,
			wantMsg: "Name should contain at least one word",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, types.NameExtractionResult{}, got)
		})
	}
}

func TestExtractLastNameIsLastWord(t *testing.T) {
	inputs := []string{"Cruise", "Mr Anderson", "Peter Parker", "Dr John Watson", "John Hamish Watson", "Ms Jane Doe"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := Extract(in)
			require.NoError(t, err)
			words := splitWords(in)
			assert.Equal(t, words[len(words)-1], got.LastName)
		})
	}
}

func TestExtractTitleOnlyFromFirstWord(t *testing.T) {
	titles := DefaultTitles()
	inputs := []string{"Mr Anderson", "Peter Parker", "Prof Ada Lovelace", "Ada Lovelace", "Mrs Hudson"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := Extract(in)
			require.NoError(t, err)
			first := splitWords(in)[0]
			assert.Equal(t, titles[first], got.HasTitle())
			if got.HasTitle() {
				assert.Equal(t, first, got.Title)
			}
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	for _, in := range []string{"Dr John Watson", "Peter Parker", "John Dr Watson"} {
		first, err1 := Extract(in)
		second, err2 := Extract(in)
		assert.Equal(t, first, second)
		assert.Equal(t, err1, err2)
	}
}

func TestExtractConcurrent(t *testing.T) {
	ex := New(types.ExtractorConfig{})
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ex.Extract("Dr John Watson")
			assert.NoError(t, err)
			assert.Equal(t, "Watson", got.LastName)
		}()
	}
	wg.Wait()
}

func TestExtractorCustomTitles(t *testing.T) {
	ex := New(types.ExtractorConfig{Titles: []string{"Sir", " ", "Dame"}})

	got, err := ex.Extract("Sir Isaac Newton")
	require.NoError(t, err)
	assert.Equal(t, types.NameExtractionResult{Title: "Sir", FirstName: "Isaac", LastName: "Newton"}, got)

	// Mr is no longer a title once the set is replaced.
	got, err = ex.Extract("Mr Anderson")
	require.NoError(t, err)
	assert.Equal(t, types.NameExtractionResult{FirstName: "Mr", LastName: "Anderson"}, got)

	_, err = ex.Extract("Judi Dame Dench")
	assert.ErrorIs(t, err, ErrMisplacedTitle)

	assert.Equal(t, []string{"Dame", "Sir"}, ex.Titles().Sorted())
}

func TestExtractorCaseInsensitive(t *testing.T) {
	ex := New(types.ExtractorConfig{CaseInsensitive: true})

	got, err := ex.Extract("dr John Watson")
	require.NoError(t, err)
	assert.Equal(t, types.NameExtractionResult{Title: "dr", FirstName: "John", LastName: "Watson"}, got)

	_, err = ex.Extract("John MR Watson")
	assert.ErrorIs(t, err, ErrMisplacedTitle)
}

func TestExtractorTitlesIsCopy(t *testing.T) {
	ex := New(types.ExtractorConfig{})
	titles := ex.Titles()
	titles["King"] = true
	assert.False(t, ex.IsTitle("King"))
}

func TestDefaultTitles(t *testing.T) {
	assert.Equal(t, []string{"Dr", "Mr", "Mrs", "Ms", "Prof"}, DefaultTitles().Sorted())
}

func splitWords(s string) []string {
	return strings.Fields(s)
}
