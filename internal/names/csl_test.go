package names

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/name-extractor/pkg/types"
)

func TestToCSLName(t *testing.T) {
	tests := []struct {
		name string
		in   types.NameExtractionResult
		want CSLName
	}{
		{"full name", types.NameExtractionResult{FirstName: "Peter", LastName: "Parker"}, CSLName{Given: "Peter", Family: "Parker"}},
		{"title dropped", types.NameExtractionResult{Title: "Dr", FirstName: "John", LastName: "Watson"}, CSLName{Given: "John", Family: "Watson"}},
		{"last name only", types.NameExtractionResult{LastName: "Cruise"}, CSLName{Family: "Cruise"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToCSLName(tt.in); got != tt.want {
				t.Errorf("ToCSLName() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatCSL(t *testing.T) {
	results := []types.NameExtractionResult{
		{Title: "Mr", LastName: "Anderson"},
		{FirstName: "Peter", LastName: "Parker"},
	}

	var buf bytes.Buffer
	if err := FormatCSL(results, &buf); err != nil {
		t.Fatalf("FormatCSL: %v", err)
	}
	s := buf.String()

	if !strings.Contains(s, "family: Anderson") {
		t.Error("CSL output should contain family: Anderson")
	}
	if !strings.Contains(s, "given: Peter") {
		t.Error("CSL output should contain given: Peter")
	}
	if strings.Count(s, "given:") != 1 {
		t.Errorf("expected exactly 1 given field, got %d", strings.Count(s, "given:"))
	}
	if strings.Contains(s, "Mr") {
		t.Error("CSL output should not contain the title")
	}
}
