package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

const tinyConllu = `# sent_id = 1
# text = The cat sat.
1	The	the	DET	DT	_	2	det	_	_
2	cat	cat	NOUN	NN	_	3	nsubj	_	_
3	sat	sit	VERB	VBD	_	0	root	_	_
4	.	.	PUNCT	.	_	3	punct	_	_

`

func writeTreebank(t *testing.T, dir string) {
	t.Helper()
	for _, name := range []string{treebankFiles.Train, treebankFiles.Dev, treebankFiles.Test} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(tinyConllu), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestRunPOSWritesBothArtifacts(t *testing.T) {
	dataDir = t.TempDir()
	outDir = t.TempDir()
	corpusVer, license = "test-corpus", "test-license"
	logger = zap.NewNop()
	posQuick = true
	defer func() { posQuick = false }()

	writeTreebank(t, dataDir)

	if err := runPOS(); err != nil {
		t.Fatalf("runPOS: %v", err)
	}
	for _, name := range []string{"pos_full.json", "pos_pruned.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
	}
}

func TestRunPOSMissingSplitFailsWithErrExit(t *testing.T) {
	dataDir = t.TempDir() // no treebank files written
	outDir = t.TempDir()
	logger = zap.NewNop()
	posQuick = false

	err := runPOS()
	if _, ok := err.(errExit); !ok {
		t.Fatalf("runPOS on missing data = %v, want errExit", err)
	}
}

func TestRunParserWritesAllArtifacts(t *testing.T) {
	dataDir = t.TempDir()
	outDir = t.TempDir()
	corpusVer, license = "test-corpus", "test-license"
	logger = zap.NewNop()
	parserQuick = true
	defer func() { parserQuick = false }()

	writeTreebank(t, dataDir)

	_ = runParser() // acceptance-threshold misses on a single tiny sentence are expected; artifacts must still land

	for _, name := range []string{"parser_full.json", "parser_pruned.json", "parser.bin", "calibration.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
	}
}

func TestRunPostprocessWithoutPriorModelFailsWithErrExit(t *testing.T) {
	dataDir = t.TempDir()
	outDir = t.TempDir() // no parser_full.json present
	logger = zap.NewNop()
	postprocessBucket = 1 << 12
	postprocessPrune = 1.0

	err := runPostprocess()
	if _, ok := err.(errExit); !ok {
		t.Fatalf("runPostprocess without a prior model = %v, want errExit", err)
	}
}

func TestRunPostprocessRehashesExistingModel(t *testing.T) {
	dataDir = t.TempDir()
	outDir = t.TempDir()
	corpusVer, license = "test-corpus", "test-license"
	logger = zap.NewNop()
	parserQuick = true
	defer func() { parserQuick = false }()

	writeTreebank(t, dataDir)
	_ = runParser()

	postprocessBucket = 1 << 10
	postprocessPrune = 0.0
	if err := runPostprocess(); err != nil {
		t.Fatalf("runPostprocess: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "parser.bin")); err != nil {
		t.Fatalf("expected parser.bin to be rewritten: %v", err)
	}
}

func TestRunFixturesExtractAndVerify(t *testing.T) {
	dataDir = t.TempDir()
	outDir = t.TempDir()
	logger = zap.NewNop()
	fixturesTarget = 1

	writeTreebank(t, dataDir)

	if err := runFixturesExtract(); err != nil {
		t.Fatalf("runFixturesExtract: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "fixtures.json")); err != nil {
		t.Fatalf("expected fixtures.json: %v", err)
	}

	// The tiny 3-required-file/minimum-size check in fixtures.Verify will
	// fail on a 1-sentence corpus; this only asserts it runs and reports
	// non-OK rather than erroring out entirely.
	if err := runFixturesVerify(); err == nil {
		t.Fatal("expected runFixturesVerify to report the undersized corpus as a failure")
	}
}
