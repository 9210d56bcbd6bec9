package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/udtrain/fixtures"
)

var fixturesTarget int

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Extract or verify tokenization-test fixtures from the dev split",
}

var fixturesExtractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Select representative sentences from the dev split and write a fixture file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFixturesExtract()
	},
}

var fixturesVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that --data-dir holds the required treebank splits and XPOS coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFixturesVerify()
	},
}

func init() {
	fixturesExtractCmd.Flags().IntVar(&fixturesTarget, "target", fixtures.DefaultTarget, "Number of sentences to select")
	fixturesCmd.AddCommand(fixturesExtractCmd, fixturesVerifyCmd)
}

func runFixturesExtract() error {
	devPath := filepath.Join(dataDir, treebankFiles.Dev)
	doc, err := fixtures.Extract(devPath, fixturesTarget)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}

	path := filepath.Join(outDir, "fixtures.json")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}
	if err := fixtures.WriteFile(path, doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}

	logger.Info("fixtures extracted", zap.Int("count", doc.Meta.Count), zap.String("path", path))
	return nil
}

func runFixturesVerify() error {
	report, err := fixtures.Verify(dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}

	for _, split := range report.Splits {
		logger.Info("treebank split",
			zap.String("name", split.Name),
			zap.Bool("present", split.Present),
			zap.Int("sentences", split.Sentences),
			zap.Int("tokens", split.Tokens),
		)
	}
	if len(report.MissingTags) > 0 {
		logger.Warn("missing required XPOS tags", zap.Strings("tags", report.MissingTags))
	}
	for _, e := range report.Errors {
		fmt.Fprintln(os.Stderr, e)
	}

	if !report.OK() {
		return errExit{}
	}
	return nil
}
