package main

import (
	"encoding/json"
	"os"

	"github.com/katalvlaran/udtrain/calibrate"
	"github.com/katalvlaran/udtrain/modelio"
	"github.com/katalvlaran/udtrain/perceptron"
	"github.com/katalvlaran/udtrain/transition"
)

// binaryMetadataJSON builds the metadata payload WriteBinary embeds
// ahead of the feature index: just the transitions array, resolved back
// against by ReadBinary.
func binaryMetadataJSON(transitions []string) (json.RawMessage, error) {
	return json.Marshal(struct {
		Transitions []string `json:"transitions"`
	}{Transitions: transitions})
}

// calibrationMinBins is the minimum calibration-table size flagged as an
// acceptance-threshold miss if undershot (§7).
const calibrationMinBins = calibrate.MinBins

// transitionNames reconstructs the full transition-name inventory
// (SHIFT, REDUCE, one RIGHT-ARC per label, and one LEFT-ARC per label
// other than root) for the given
// label set, the same set a ParserModel's "transitions" field lists.
func transitionNames(labels []string) []string {
	return transition.NewSet(labels).Names()
}

// writeBinaryArtifact encodes the full (unhashed) averaged weight table as
// the v1.1 sparse binary parser model (§6).
func writeBinaryArtifact(transitions []string, averaged perceptron.Averaged) error {
	metadata, err := binaryMetadataJSON(transitions)
	if err != nil {
		return err
	}
	features := make([]string, 0, len(averaged))
	for f := range averaged {
		features = append(features, f)
	}
	m := modelio.BinaryModel{
		Metadata:    metadata,
		Transitions: transitions,
		Features:    features,
		Weights:     averaged,
	}
	return writeArtifact(outDir, "parser.bin", func(w *os.File) error { return modelio.WriteBinary(w, m) })
}

// writeCalibrationArtifact writes the isotonic calibration table (§6).
func writeCalibrationArtifact(bins []calibrate.Bin) error {
	m := modelio.CalibrationModel{Bins: make([]modelio.CalibrationBin, len(bins))}
	for i, b := range bins {
		m.Bins[i] = modelio.CalibrationBin{Margin: b.MinMargin, Probability: b.Probability, Count: b.Count}
	}
	return writeArtifact(outDir, "calibration.json", func(w *os.File) error { return modelio.WriteCalibrationJSON(w, m) })
}
