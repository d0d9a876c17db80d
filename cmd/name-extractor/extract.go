// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/name-extractor/internal/names"
	"github.com/pdiddy/name-extractor/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [names...]",
	Short: "Extract title, first name, and last name from each argument",
	Long: `Extract parses each argument as one name. Quote names that contain
spaces. With no arguments, names are read from stdin, one per line.

The command exits non-zero if any name fails validation.`,
	Example: `  name-extractor extract "Dr John Watson" "Peter Parker"
  name-extractor extract --format json "Mr Anderson"`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	inputs := args
	if len(inputs) == 0 {
		var err error
		inputs, err = names.ReadNames(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no names given: pass names as arguments or on stdin")
	}

	report := newExtractor().ExtractAll(inputs)
	logger.WithField("total", report.Summary.Total).Debug("extraction finished")

	if err := formatExtractOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), report, types.OutputFormat(format)); err != nil {
		return err
	}
	if report.Summary.Failed > 0 {
		return fmt.Errorf("%d name(s) failed extraction", report.Summary.Failed)
	}
	return nil
}

// formatExtractOutput renders batch entries in the requested format.
// Failed entries appear in table, JSON, and YAML output; CSL output
// lists successful names only and reports failures to errW.
func formatExtractOutput(w, errW io.Writer, report names.BatchFile, format types.OutputFormat) error {
	switch format {
	case types.OutputTable, "":
		return writeTable(w, report.Entries)
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report.Entries)
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(report.Entries)
	case types.OutputCSL:
		var results []types.NameExtractionResult
		for _, e := range report.Entries {
			if !e.OK() {
				fmt.Fprintf(errW, "skipped %q: %s\n", e.Input, e.Error)
				continue
			}
			results = append(results, *e.Result)
		}
		return names.FormatCSL(results, w)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, yaml, or csl", format)
	}
}

func writeTable(w io.Writer, entries []names.BatchEntry) error {
	fmt.Fprintf(w, "%-30s  %-6s  %-15s  %-15s  %s\n",
		"Input", "Title", "First", "Last", "Error")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, e := range entries {
		input := truncate(e.Input, 30)
		if !e.OK() {
			fmt.Fprintf(w, "%-30s  %-6s  %-15s  %-15s  %s\n", input, "", "", "", e.Error)
			continue
		}
		r := e.Result
		fmt.Fprintf(w, "%-30s  %-6s  %-15s  %-15s\n", input, r.Title, r.FirstName, r.LastName)
	}
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	extractCmd.Flags().StringP("format", "f", "table", "output format: table, json, yaml, or csl")

	rootCmd.AddCommand(extractCmd)
}
