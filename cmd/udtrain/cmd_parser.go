package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/udtrain/depparse"
	"github.com/katalvlaran/udtrain/hashing"
	"github.com/katalvlaran/udtrain/internal/provenance"
	"github.com/katalvlaran/udtrain/modelio"
	"github.com/katalvlaran/udtrain/pruning"
)

var (
	parserQuick       bool
	postprocess       bool
	postprocessBucket uint32
	postprocessPrune  float64
)

var parserCmd = &cobra.Command{
	Use:   "parser",
	Short: "Train the arc-eager dependency parser, or re-hash an existing model",
	RunE: func(cmd *cobra.Command, args []string) error {
		if postprocess {
			return runPostprocess()
		}
		return runParser()
	},
}

func init() {
	parserCmd.Flags().BoolVar(&parserQuick, "quick", false, "Train on a small subset for a handful of epochs")
	parserCmd.Flags().BoolVar(&postprocess, "postprocess", false, "Re-hash an already trained full model instead of retraining")
	parserCmd.Flags().Uint32Var(&postprocessBucket, "buckets", 1<<18, "Hash bucket count for --postprocess")
	parserCmd.Flags().Float64Var(&postprocessPrune, "prune", pruning.DefaultThreshold, "Absolute-weight prune threshold for --postprocess")
}

func runParser() error {
	train, dev, test, err := loadSplits(dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}

	cfg := depparse.DefaultConfig()
	var opts []depparse.Option
	if parserQuick {
		train = truncate(train, quickTrainCap)
		dev = truncate(dev, quickDevCap)
		opts = append(opts, depparse.WithEpochs(quickEpochs), depparse.WithBuckets(1<<12))
		cfg.Epochs, cfg.Buckets = quickEpochs, 1<<12
	}

	start := time.Now()
	result, err := depparse.Train(train, dev, test, logger, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}
	logger.Info("parser training finished", zap.Duration("elapsed", time.Since(start)))

	run := provenance.Capture(corpusVer, license, cfg.Seed, cfg.Epochs, result.DevUAS)
	run.Provenance.DevUAS = modelio.Ptr(result.DevUAS)
	run.Provenance.DevLAS = modelio.Ptr(result.DevLAS)
	run.Provenance.UAS = modelio.Ptr(result.TestUAS)
	run.Provenance.LAS = modelio.Ptr(result.TestLAS)
	run.Provenance.NonProjectiveSentenceRate = modelio.Ptr(result.NonProjectivity.SentenceRate())
	nonProjectiveArcRate := 0.0
	if result.NonProjectivity.Arcs > 0 {
		nonProjectiveArcRate = float64(result.NonProjectivity.CrossingArcs) / float64(result.NonProjectivity.Arcs)
	}
	run.Provenance.NonProjectiveArcRate = modelio.Ptr(nonProjectiveArcRate)
	run.Provenance.PostHashUAS = modelio.Ptr(result.PostHashDevUAS)
	run.Provenance.PostHashLAS = modelio.Ptr(result.PostHashDevLAS)

	full := modelio.ParserModel{
		Version:     "1",
		TrainedOn:   "train",
		Provenance:  run.Provenance,
		Labels:      result.Labels,
		Transitions: transitionNames(result.Labels),
		Weights:     result.Averaged,
	}

	prunedProvenance := run.Provenance
	prunedProvenance.PruneThreshold = modelio.Ptr(cfg.PruneThreshold)
	pruned := modelio.ParserModel{
		Version:     "1",
		TrainedOn:   "train",
		Provenance:  prunedProvenance,
		Labels:      result.Labels,
		Transitions: full.Transitions,
		NumBuckets:  cfg.Buckets,
		Weights:     modelio.BucketWeights(result.Hashed),
	}

	if err := writeArtifact(outDir, "parser_full.json", func(w *os.File) error { return modelio.WriteParserJSON(w, full) }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}
	if err := writeArtifact(outDir, "parser_pruned.json", func(w *os.File) error { return modelio.WriteParserJSON(w, pruned) }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}
	if err := writeBinaryArtifact(full.Transitions, result.Averaged); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}
	if err := writeCalibrationArtifact(result.CalibrationBins); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}

	logger.Info("parser artifacts written",
		zap.Float64("devUAS", result.DevUAS),
		zap.Float64("testUAS", result.TestUAS),
		zap.Float64("postHashDevUAS", result.PostHashDevUAS),
		zap.Float64("uasDrop", result.UASDrop),
		zap.Bool("accuracyOK", result.AccuracyOK),
		zap.Float64("spanningRate", result.SpanningRate),
	)

	if !result.AccuracyOK {
		fmt.Fprintf(os.Stderr, "warning: post-hash UAS drop %.4f meets or exceeds acceptance threshold %.4f\n", result.UASDrop, depparse.MaxAccuracyDrop)
		return errExit{}
	}
	if len(result.CalibrationBins) < calibrationMinBins {
		fmt.Fprintf(os.Stderr, "warning: only %d calibration bins produced, want at least %d\n", len(result.CalibrationBins), calibrationMinBins)
		return errExit{}
	}
	return nil
}

// runPostprocess reloads an already trained full parser model and re-hashes
// it at a different bucket count / prune threshold without retraining
// (§6: "--postprocess [--buckets=N] [--prune=T]").
func runPostprocess() error {
	path := filepath.Join(outDir, "parser_full.json")
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postprocess requires a prior full model at %s: %v\n", path, err)
		return errExit{}
	}
	defer f.Close()

	full, err := modelio.ReadParserJSON(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
		return errExit{}
	}

	hashed := hashing.Hash(full.Averaged(), postprocessBucket)
	prunedHashed := pruning.PruneHashed(hashed, postprocessPrune)

	pruned := full
	pruned.NumBuckets = postprocessBucket
	pruned.Weights = modelio.BucketWeights(prunedHashed)
	pruned.Provenance.PruneThreshold = modelio.Ptr(postprocessPrune)

	if err := writeArtifact(outDir, "parser_pruned.json", func(w *os.File) error { return modelio.WriteParserJSON(w, pruned) }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}
	if err := writeBinaryArtifact(full.Transitions, full.Averaged()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}

	logger.Info("parser re-hashed", zap.Uint32("buckets", postprocessBucket), zap.Float64("pruneThreshold", postprocessPrune))
	return nil
}
