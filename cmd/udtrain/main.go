// Package main implements the udtrain CLI: the POS and dependency parser
// training drivers, plus the fixture-extraction utility, wired behind a
// cobra command tree.
//
// # File Index
//
//   - main.go          - entry point, rootCmd, global flags, init()
//   - cmd_corpus.go    - shared corpus loading and artifact-writing helpers
//   - cmd_pos.go       - posCmd, runPOS()
//   - cmd_parser.go    - parserCmd, runParser(), runPostprocess()
//   - cmd_fixtures.go  - fixturesCmd, fixturesExtractCmd, fixturesVerifyCmd
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose     bool
	dataDir     string
	outDir      string
	configPath  string
	corpusVer   string
	license     string

	// Logger, built in PersistentPreRunE so every subcommand gets one.
	logger *zap.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:           "udtrain",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short: "Train averaged-perceptron POS and dependency-parser models from a CoNLL-U treebank",
	Long: `udtrain trains the POS tagger (§4.6) and arc-eager dependency parser
(§4.7-§4.8) models from a Universal Dependencies treebank, and extracts
tokenization-test fixtures from it.

Run "udtrain pos" or "udtrain parser" to train, "udtrain fixtures" to
extract or verify treebank fixtures.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", ".", "Directory holding the CoNLL-U treebank splits")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out-dir", "o", "models", "Directory to write model artifacts into")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a training.yaml (accepted but not read by any subcommand)")
	rootCmd.PersistentFlags().StringVar(&corpusVer, "corpus-version", "UD_English-EWT", "Corpus version string stamped into provenance")
	rootCmd.PersistentFlags().StringVar(&license, "license", "CC BY-SA 4.0", "License string stamped into provenance")

	rootCmd.AddCommand(posCmd, parserCmd, fixturesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if _, silent := err.(errExit); !silent {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
