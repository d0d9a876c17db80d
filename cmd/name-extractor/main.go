// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the name-extractor CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/name-extractor/internal/names"
	"github.com/pdiddy/name-extractor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	logger *logrus.Logger
	cfg    types.Config
)

// rootCmd is the base command for the name-extractor CLI.
var rootCmd = &cobra.Command{
	Use:   "name-extractor",
	Short: "Split personal names into title, first name, and last name",
	Long: `name-extractor parses free-form personal names of up to three words.
A recognized title (Mr, Mrs, Ms, Dr, Prof by default) may only appear as the
first word; the last word is always the last name.

Use extract for names on the command line, batch for a file of names, and
roster to keep extracted names in a local SQLite database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.WarnLevel)
		}

		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("decoding config: %w", err)
		}
		if f := viper.ConfigFileUsed(); f != "" {
			logger.WithField("file", f).Debug("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./name-extractor.yaml or ~/.config/name-extractor/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringSlice("titles", nil, "recognized titles, replacing the default set (comma-separated)")
	rootCmd.PersistentFlags().Bool("case-insensitive", false, "match titles regardless of case")

	bindConfig()
}

// bindConfig registers config defaults and binds the root flags that
// override config keys.
func bindConfig() {
	viper.SetDefault("extractor.titles", []string{})
	viper.SetDefault("extractor.case_insensitive", false)
	viper.SetDefault("roster.dir", "roster")
	viper.SetDefault("roster.max_results", 20)

	viper.BindPFlag("extractor.titles", rootCmd.PersistentFlags().Lookup("titles"))
	viper.BindPFlag("extractor.case_insensitive", rootCmd.PersistentFlags().Lookup("case-insensitive"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("name-extractor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "name-extractor"))
		}
	}

	viper.SetEnvPrefix("NAME_EXTRACTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", cfgFile, err)
		}
	}
}

// newExtractor builds an Extractor from the loaded configuration.
func newExtractor() *names.Extractor {
	return names.New(cfg.Extractor)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
