package fixtures

// shortSentenceMax bounds the second-pass fill: sentences at or under this
// token count are preferred for baseline coverage once every category
// target is met (extract_alignment_fixtures.py's select_representative).
const shortSentenceMax = 15

// categoryTarget pairs a category with how many selected sentences should
// exhibit it; order matters, since the first pass walks categories in this
// exact sequence (mirroring the source script's dict insertion order).
type categoryTarget struct {
	Category string
	Target   int
}

var categoryTargets = []categoryTarget{
	{"negation_contraction", 8},
	{"possessive_or_is", 8},
	{"pronoun_be", 5},
	{"pronoun_have", 3},
	{"pronoun_will", 3},
	{"pronoun_would", 3},
	{"parentheses", 5},
	{"abbreviation", 3},
	{"hyphen", 5},
	{"decimal_number", 3},
	{"quotes", 3},
	{"colon_semicolon", 3},
}

// SelectRepresentative chooses up to target sentences from sentences,
// first covering each category target in categoryTargets order, then
// filling any remaining slots with short (<= shortSentenceMax token)
// sentences for baseline coverage.
func SelectRepresentative(sentences []RawSentence, target int) []RawSentence {
	categoryCounts := make(map[string]int)
	selectedIDs := make(map[string]struct{})
	var selected []RawSentence

	for _, ct := range categoryTargets {
		for _, sent := range sentences {
			if len(selected) >= target {
				break
			}
			if _, dup := selectedIDs[sent.SentID]; dup {
				continue
			}
			cats := Categorize(sent)
			if !contains(cats, ct.Category) || categoryCounts[ct.Category] >= ct.Target {
				continue
			}
			selected = append(selected, sent)
			selectedIDs[sent.SentID] = struct{}{}
			for _, c := range cats {
				categoryCounts[c]++
			}
		}
	}

	for _, sent := range sentences {
		if len(selected) >= target {
			break
		}
		if _, dup := selectedIDs[sent.SentID]; dup {
			continue
		}
		if len(sent.Tokens) <= shortSentenceMax {
			selected = append(selected, sent)
			selectedIDs[sent.SentID] = struct{}{}
		}
	}

	return selected
}

func contains(items []string, target string) bool {
	for _, it := range items {
		if it == target {
			return true
		}
	}
	return false
}
