package names

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/name-extractor/pkg/types"
)

// CSLName represents a person's name in CSL (Citation Style Language)
// format, consumable by Pandoc and reference managers.
type CSLName struct {
	Family string `yaml:"family,omitempty"`
	Given  string `yaml:"given,omitempty"`
}

// ToCSLName converts an extraction result to a CSL name. CSL has no
// field for honorifics, so the title is dropped.
func ToCSLName(r types.NameExtractionResult) CSLName {
	return CSLName{
		Family: r.LastName,
		Given:  r.FirstName,
	}
}

// FormatCSL writes results as a CSL-YAML list of names to w.
func FormatCSL(results []types.NameExtractionResult, w io.Writer) error {
	items := make([]CSLName, len(results))
	for i, r := range results {
		items[i] = ToCSLName(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}
