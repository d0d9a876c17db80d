package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Print the recognized title set",
	Long: `Titles prints the titles the extractor recognizes after applying the
config file, environment, and --titles flag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ex := newExtractor()
		for _, t := range ex.Titles().Sorted() {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		if cfg.Extractor.CaseInsensitive {
			fmt.Fprintln(cmd.ErrOrStderr(), "(matched case-insensitively)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(titlesCmd)
}
