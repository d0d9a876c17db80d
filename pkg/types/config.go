// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractorConfig holds settings for name extraction.
type ExtractorConfig struct {
	// Titles replaces the recognized title set when non-empty
	// (default Mr, Mrs, Ms, Dr, Prof).
	Titles []string `json:"titles,omitempty" yaml:"titles,omitempty" mapstructure:"titles"`

	// CaseInsensitive matches titles regardless of case ("mr" matches "Mr").
	CaseInsensitive bool `json:"case_insensitive" yaml:"case_insensitive" mapstructure:"case_insensitive"`
}

// RosterConfig holds settings for the SQLite roster.
type RosterConfig struct {
	// Dir is the directory holding roster.db and export files (default "roster").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default maximum number of lookup results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// OutputFormat selects how extraction results are printed.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputCSL   OutputFormat = "csl"
)

// Config groups all settings read from name-extractor.yaml.
type Config struct {
	Extractor ExtractorConfig `json:"extractor" yaml:"extractor" mapstructure:"extractor"`
	Roster    RosterConfig    `json:"roster" yaml:"roster" mapstructure:"roster"`
}
