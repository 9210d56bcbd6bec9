package fixtures

import "os"

// DefaultTarget is the default number of sentences extracted
// (extract_alignment_fixtures.py's target=100).
const DefaultTarget = 100

// Extract reads devPath, selects up to target representative sentences
// covering the tokenization-pattern categories, and returns the fixture
// document ready to be written with WriteFile.
func Extract(devPath string, target int) (File, error) {
	f, err := os.Open(devPath)
	if err != nil {
		return File{}, err
	}
	defer f.Close()

	sentences, err := ParseConllu(f)
	if err != nil {
		return File{}, err
	}

	allCats := CategoryCounts(sentences)
	selected := SelectRepresentative(sentences, target)
	fixtures := BuildFixtures(selected)

	return File{
		Meta: Meta{
			Source:     "UD_English-EWT (en_ewt-ud-dev.conllu)",
			Purpose:    "Tokenizer alignment test fixtures",
			Count:      len(fixtures),
			Categories: allCats,
			Generator:  "fixtures.Extract",
		},
		Sentences: fixtures,
	}, nil
}
