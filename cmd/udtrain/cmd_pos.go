package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/udtrain/depparse"
	"github.com/katalvlaran/udtrain/internal/provenance"
	"github.com/katalvlaran/udtrain/modelio"
	"github.com/katalvlaran/udtrain/postag"
)

var posQuick bool

var posCmd = &cobra.Command{
	Use:   "pos",
	Short: "Train the averaged-perceptron POS tagger",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPOS()
	},
}

func init() {
	posCmd.Flags().BoolVar(&posQuick, "quick", false, "Train on a small subset for a handful of epochs")
}

func runPOS() error {
	train, dev, test, err := loadSplits(dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}

	cfg := postag.DefaultConfig()
	var opts []postag.Option
	if posQuick {
		train = truncate(train, quickTrainCap)
		dev = truncate(dev, quickDevCap)
		opts = append(opts, postag.WithEpochs(quickEpochs))
		cfg.Epochs = quickEpochs
	}

	start := time.Now()
	result, err := postag.Train(train, dev, test, logger, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}
	logger.Info("pos training finished", zap.Duration("elapsed", time.Since(start)))

	run := provenance.Capture(corpusVer, license, cfg.Seed, cfg.Epochs, result.DevAccuracy)

	full := modelio.POSModel{
		Version:    "1",
		Tagset:     "PTB-XPOS",
		TrainedOn:  "train",
		Provenance: run.Provenance,
		Classes:    result.Classes,
		TagDict:    result.TagDict,
		Weights:    result.Averaged,
	}

	pruned := full
	pruned.Provenance.PruneThreshold = modelio.Ptr(cfg.PruneThreshold)
	pruned.Provenance.PostPruneDevAccuracy = modelio.Ptr(result.PostPruneDevAccuracy)
	pruned.Weights = modelio.RoundedWeights(result.Pruned)

	if err := writeArtifact(outDir, "pos_full.json", func(w *os.File) error { return modelio.WritePOSJSON(w, full) }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}
	if err := writeArtifact(outDir, "pos_pruned.json", func(w *os.File) error { return modelio.WritePOSJSON(w, pruned) }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errExit{}
	}

	logger.Info("pos artifacts written",
		zap.Float64("devAccuracy", result.DevAccuracy),
		zap.Float64("testAccuracy", result.TestAccuracy),
		zap.Float64("postPruneDevAccuracy", result.PostPruneDevAccuracy),
		zap.Float64("accuracyDrop", result.AccuracyDrop),
	)

	if result.AccuracyDrop >= depparse.MaxAccuracyDrop {
		fmt.Fprintf(os.Stderr, "warning: pos accuracy drop %.4f meets or exceeds acceptance threshold %.4f\n", result.AccuracyDrop, depparse.MaxAccuracyDrop)
		return errExit{}
	}
	return nil
}
