package fixtures

import (
	"os"
	"path/filepath"
)

// requiredFile names one treebank split and the minimum corpus size it
// must carry (verify_ud_ewt.py's REQUIRED_FILES).
type requiredFile struct {
	Name         string
	MinSentences int
	MinTokens    int
}

var requiredFiles = []requiredFile{
	{"en_ewt-ud-train.conllu", 12000, 200000},
	{"en_ewt-ud-dev.conllu", 2000, 25000},
	{"en_ewt-ud-test.conllu", 2000, 25000},
}

// requiredXPOSTags is the minimum XPOS tag inventory the combined corpus
// must cover (verify_ud_ewt.py's REQUIRED_XPOS_TAGS).
var requiredXPOSTags = []string{
	"NN", "NNS", "NNP", "NNPS", "VB", "VBD", "VBG", "VBN", "VBP", "VBZ",
	"DT", "IN", "JJ", "RB", "CC", "PRP", "MD", "TO", "CD", "WDT", "WP",
}

// SplitReport is one treebank file's observed size.
type SplitReport struct {
	Name      string
	Present   bool
	Sentences int
	Tokens    int
	XPOSTags  map[string]struct{}
}

// Report is the outcome of Verify.
type Report struct {
	Splits      []SplitReport
	MissingTags []string
	Errors      []string
}

// OK reports whether every required file is present, every minimum
// threshold is met, and every required XPOS tag was observed.
func (r Report) OK() bool { return len(r.Errors) == 0 }

// Verify checks that dir holds the three required UD-EWT splits at or
// above their minimum sentence/token counts, and that the combined corpus
// covers every required XPOS tag (verify_ud_ewt.py's main()).
func Verify(dir string) (Report, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return Report{}, ErrDirectoryNotFound
	}

	var report Report
	allTags := make(map[string]struct{})

	for _, rf := range requiredFiles {
		path := filepath.Join(dir, rf.Name)
		split := SplitReport{Name: rf.Name}

		f, err := os.Open(path)
		if err != nil {
			report.Errors = append(report.Errors, "missing file: "+rf.Name)
			report.Splits = append(report.Splits, split)
			continue
		}
		split.Present = true

		sentences, tokens, tags, err := countConllu(f)
		f.Close()
		if err != nil {
			return Report{}, err
		}
		split.Sentences = sentences
		split.Tokens = tokens
		split.XPOSTags = tags
		for t := range tags {
			allTags[t] = struct{}{}
		}

		if sentences < rf.MinSentences {
			report.Errors = append(report.Errors, rf.Name+": sentence count below minimum")
		}
		if tokens < rf.MinTokens {
			report.Errors = append(report.Errors, rf.Name+": token count below minimum")
		}
		report.Splits = append(report.Splits, split)
	}

	for _, tag := range requiredXPOSTags {
		if _, ok := allTags[tag]; !ok {
			report.MissingTags = append(report.MissingTags, tag)
		}
	}
	if len(report.MissingTags) > 0 {
		report.Errors = append(report.Errors, "missing required XPOS tags")
	}

	return report, nil
}
