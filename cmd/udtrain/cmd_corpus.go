package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/udtrain/conllu"
)

// treebankFiles names the three CoNLL-U splits udtrain expects under
// --data-dir, matching the corpus fixtures verifies against.
var treebankFiles = struct {
	Train, Dev, Test string
}{
	Train: "en_ewt-ud-train.conllu",
	Dev:   "en_ewt-ud-dev.conllu",
	Test:  "en_ewt-ud-test.conllu",
}

// quickTrainCap and quickEpochs bound the --quick subset and epoch count
// so a training run finishes in seconds rather than minutes.
const (
	quickTrainCap = 200
	quickDevCap   = 50
	quickEpochs   = 2
)

// loadSplits reads the three required treebank files from dir.
func loadSplits(dir string) (train, dev, test []conllu.Sentence, err error) {
	train, err = conllu.ReadFile(filepath.Join(dir, treebankFiles.Train))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load train split: %w", err)
	}
	dev, err = conllu.ReadFile(filepath.Join(dir, treebankFiles.Dev))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load dev split: %w", err)
	}
	test, err = conllu.ReadFile(filepath.Join(dir, treebankFiles.Test))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load test split: %w", err)
	}
	return train, dev, test, nil
}

// truncate caps sentences to at most n, used by --quick.
func truncate(sentences []conllu.Sentence, n int) []conllu.Sentence {
	if len(sentences) <= n {
		return sentences
	}
	return sentences[:n]
}

// writeArtifact invokes write with a freshly created dir/name file,
// creating dir if necessary.
func writeArtifact(dir, name string, write func(w *os.File) error) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return write(f)
}
