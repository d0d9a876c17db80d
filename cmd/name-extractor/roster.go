// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/name-extractor/internal/names"
	"github.com/pdiddy/name-extractor/internal/roster"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the roster of extracted names (add, lookup, export)",
	Long: `Roster keeps extracted names in a local SQLite database. Use
subcommands to add names, look them up by part, or export them.`,
}

// --- add subcommand ---

var rosterAddCmd = &cobra.Command{
	Use:   "add [names...]",
	Short: "Extract names and store them in the roster",
	Long: `Add extracts each argument (or each line of --file) and stores the
result. Invalid names are reported and skipped. Adding the same name again
updates the stored entry.`,
	RunE: runRosterAdd,
}

func runRosterAdd(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")

	inputs := args
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file, err)
		}
		defer f.Close()
		fromFile, err := names.ReadNames(f)
		if err != nil {
			return err
		}
		inputs = append(inputs, fromFile...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no names given: pass names as arguments or use --file")
	}

	store, err := openRoster(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(cmd.Context(), inputs, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d name(s) failed extraction", summary.Failed)
	}
	return nil
}

// --- lookup subcommand ---

var rosterLookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Query the roster by last name, first name, or title",
	RunE:  runRosterLookup,
}

func runRosterLookup(cmd *cobra.Command, args []string) error {
	store, err := openRoster(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Lookup(cmd.Context(), lookupOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatLookupOutput(cmd.OutOrStdout(), entries, jsonOutput)
}

func formatLookupOutput(w io.Writer, entries []roster.Entry, jsonOutput bool) error {
	if jsonOutput {
		if entries == nil {
			entries = []roster.Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-6s  %-15s  %-15s  %s\n", "ID", "Title", "First", "Last", "Input")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, e := range entries {
		fmt.Fprintf(w, "%-36s  %-6s  %-15s  %-15s  %s\n", e.ID, e.Title, e.FirstName, e.LastName, e.Input)
	}
	fmt.Fprintf(w, "\n%d entries\n", len(entries))
	return nil
}

// --- export subcommand ---

var rosterExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the roster to YAML or JSON",
	Long: `Export writes the roster (or the subset matching the filter flags) to
export.yaml or export.json inside the roster directory.`,
	RunE: runRosterExport,
}

func runRosterExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openRoster(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := lookupOptsFromFlags(cmd)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(cmd.Context(), opts)
	case "json":
		path, err = store.ExportJSON(cmd.Context(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func openRoster(cmd *cobra.Command) (*roster.Store, error) {
	rc := cfg.Roster
	if cmd.Flags().Changed("dir") {
		rc.Dir, _ = cmd.Flags().GetString("dir")
	}
	if cmd.Flags().Changed("max-results") {
		rc.MaxResults, _ = cmd.Flags().GetInt("max-results")
	}
	return roster.NewStore(rc, newExtractor(), logger)
}

func lookupOptsFromFlags(cmd *cobra.Command) roster.LookupOptions {
	last, _ := cmd.Flags().GetString("last")
	first, _ := cmd.Flags().GetString("first")
	title, _ := cmd.Flags().GetString("title")
	limit, _ := cmd.Flags().GetInt("limit")
	return roster.LookupOptions{
		LastName:   last,
		FirstName:  first,
		Title:      title,
		MaxResults: limit,
	}
}

func addFilterFlags(c *cobra.Command) {
	c.Flags().String("last", "", "filter by last name")
	c.Flags().String("first", "", "filter by first name")
	c.Flags().String("title", "", "filter by title")
	c.Flags().Int("limit", 0, "maximum results (0 = use default)")
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	rosterCmd.PersistentFlags().String("dir", "roster", "roster directory (contains roster.db)")
	rosterCmd.PersistentFlags().Int("max-results", 20, "default maximum number of lookup results")

	rosterAddCmd.Flags().String("file", "", "read additional names from a file, one per line")

	addFilterFlags(rosterLookupCmd)
	rosterLookupCmd.Flags().Bool("json", false, "output results as JSON")

	addFilterFlags(rosterExportCmd)
	rosterExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	rosterCmd.AddCommand(rosterAddCmd)
	rosterCmd.AddCommand(rosterLookupCmd)
	rosterCmd.AddCommand(rosterExportCmd)

	rootCmd.AddCommand(rosterCmd)
}
