// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package names

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/name-extractor/pkg/types"
)

// BatchFile is the on-disk report of a batch extraction run.
type BatchFile struct {
	Config  BatchConfig  `yaml:"config"`
	Entries []BatchEntry `yaml:"entries"`
	Summary BatchSummary `yaml:"summary"`
}

// BatchConfig records the extractor settings that produced the report.
type BatchConfig struct {
	Titles          []string `yaml:"titles"`
	CaseInsensitive bool     `yaml:"case_insensitive"`
}

// BatchEntry holds one input line and either its result or its error.
type BatchEntry struct {
	Input  string                      `json:"input" yaml:"input"`
	Result *types.NameExtractionResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string                      `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the entry was extracted successfully.
func (e BatchEntry) OK() bool { return e.Error == "" }

// BatchSummary stores counts and a timestamp.
type BatchSummary struct {
	Total     int       `yaml:"total"`
	Succeeded int       `yaml:"succeeded"`
	Failed    int       `yaml:"failed"`
	Timestamp time.Time `yaml:"timestamp"`
}

// ReadNames reads one name per line from r. Blank lines and lines
// starting with # are skipped.
func ReadNames(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading names: %w", err)
	}
	return out, nil
}

// ExtractAll extracts every input and collects the outcomes in order.
// A failing input does not stop the run.
func (e *Extractor) ExtractAll(inputs []string) BatchFile {
	bf := BatchFile{
		Config: BatchConfig{
			Titles:          e.titles.Sorted(),
			CaseInsensitive: e.foldCase,
		},
		Entries: make([]BatchEntry, 0, len(inputs)),
	}
	for _, in := range inputs {
		entry := BatchEntry{Input: in}
		res, err := e.Extract(in)
		if err != nil {
			entry.Error = err.Error()
			bf.Summary.Failed++
		} else {
			entry.Result = &res
			bf.Summary.Succeeded++
		}
		bf.Entries = append(bf.Entries, entry)
	}
	bf.Summary.Total = len(bf.Entries)
	bf.Summary.Timestamp = time.Now().UTC()
	return bf
}

// WriteBatchFile saves a batch report to a YAML file.
func WriteBatchFile(path string, bf BatchFile) error {
	data, err := yaml.Marshal(&bf)
	if err != nil {
		return fmt.Errorf("marshaling batch file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadBatchFile loads a previously saved batch report from disk.
func ReadBatchFile(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var bf BatchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	return &bf, nil
}
