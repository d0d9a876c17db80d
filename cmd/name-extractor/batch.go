package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/name-extractor/internal/names"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract every name in a file and write a YAML report",
	Long: `Batch reads names from --input, one per line (blank lines and lines
starting with # are skipped), extracts each, and writes a YAML report with
per-name results, errors, and summary counts to --output.

Invalid names are recorded in the report and do not stop the run.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	inputs, err := names.ReadNames(f)
	if err != nil {
		return err
	}

	report := newExtractor().ExtractAll(inputs)
	if err := names.WriteBatchFile(output, report); err != nil {
		return err
	}

	logger.WithField("output", output).Debug("batch report written")
	fmt.Fprintf(cmd.OutOrStdout(), "total: %d, succeeded: %d, failed: %d\nreport: %s\n",
		report.Summary.Total, report.Summary.Succeeded, report.Summary.Failed, output)
	return nil
}

func init() {
	batchCmd.Flags().StringP("input", "i", "", "file with one name per line")
	batchCmd.Flags().StringP("output", "o", "batch-report.yaml", "path for the YAML report")
	batchCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(batchCmd)
}
