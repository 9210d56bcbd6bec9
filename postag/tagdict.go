package postag

import "github.com/katalvlaran/udtrain/conllu"

// minDictCount and minDictPurity are the tag-dictionary admission
// thresholds (§3): a surface form qualifies once it has been seen at
// least minDictCount times and one XPOS class accounts for at least
// minDictPurity of its occurrences.
const (
	minDictCount = 5
	minDictPurity = 0.97
)

// TagDict maps a surface form to its single dominant XPOS class, used as
// an evaluation-time shortcut (§4.6) — never during training, which
// learns context weights on every word regardless of dictionary status.
type TagDict map[string]string

// BuildTagDict scans sentences and admits every word meeting the
// count/purity thresholds above.
func BuildTagDict(sentences []conllu.Sentence) TagDict {
	counts := make(map[string]map[string]int)
	for _, sent := range sentences {
		for _, tok := range sent {
			tagCounts, ok := counts[tok.Form]
			if !ok {
				tagCounts = make(map[string]int)
				counts[tok.Form] = tagCounts
			}
			tagCounts[tok.XPOS]++
		}
	}

	dict := make(TagDict)
	for word, tagCounts := range counts {
		total := 0
		bestTag := ""
		bestCount := 0
		for tag, n := range tagCounts {
			total += n
			if n > bestCount {
				bestCount = n
				bestTag = tag
			}
		}
		if total >= minDictCount && float64(bestCount)/float64(total) >= minDictPurity {
			dict[word] = bestTag
		}
	}
	return dict
}
