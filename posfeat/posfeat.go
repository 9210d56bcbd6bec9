package posfeat

import (
	"strings"
	"unicode"

	"github.com/katalvlaran/udtrain/shape"
)

// StartSentinel and StartSentinel2 mark history positions before the start
// of a sentence: the immediate predecessor of the first token is
// StartSentinel, and the predecessor before that is StartSentinel2.
const (
	StartSentinel  = "-START-"
	StartSentinel2 = "-START2-"
	endSentinel    = "-END-"
)

// Context carries everything needed to extract features for the token at
// Index within Words, given the (gold or predicted) tag history.
type Context struct {
	Words       []string
	Index       int
	PrevTag     string // tag of Words[Index-1], or a start sentinel
	PrevPrevTag string // tag of Words[Index-2], or a start sentinel
}

// Extract returns the ordered multiset of feature keys for ctx. Order is
// not semantically significant; spelling is.
func Extract(ctx Context) []string {
	word := ctx.Words[ctx.Index]
	lower := strings.ToLower(word)

	prevWord := StartSentinel
	if ctx.Index-1 >= 0 {
		prevWord = ctx.Words[ctx.Index-1]
	}
	nextWord := endSentinel
	if ctx.Index+1 < len(ctx.Words) {
		nextWord = ctx.Words[ctx.Index+1]
	}

	feats := []string{
		"bias",
		"word=" + word,
		"word.lower=" + lower,
		"suf1=" + suffix(word, 1),
		"suf2=" + suffix(word, 2),
		"suf3=" + suffix(word, 3),
		"pre1=" + prefix(word, 1),
		"shape=" + shape.Collapse(word),
		"i-1.word=" + prevWord,
		"i-1.word.lower=" + strings.ToLower(prevWord),
		"i-1.tag=" + ctx.PrevTag,
		"i-2.tag=" + ctx.PrevPrevTag,
		"i-1.word+tag=" + prevWord + " " + ctx.PrevTag,
		"i-1.tag+word=" + ctx.PrevTag + " " + word,
		"i-2.tag+i-1.tag=" + ctx.PrevPrevTag + " " + ctx.PrevTag,
		"i+1.word=" + nextWord,
		"i+1.word.lower=" + strings.ToLower(nextWord),
		"i+1.suf3=" + suffix(nextWord, 3),
	}

	if isUpper(word) {
		feats = append(feats, "is_upper")
	}
	if isTitle(word) {
		feats = append(feats, "is_title")
	}
	if isAllDigit(word) {
		feats = append(feats, "is_digit")
	} else if hasDigit(word) {
		feats = append(feats, "has_digit")
	}
	if strings.Contains(word, "-") {
		feats = append(feats, "is_hyphen")
	}
	if ctx.Index == 0 {
		feats = append(feats, "is_first")
	}

	return feats
}

func suffix(word string, n int) string {
	r := []rune(word)
	if len(r) <= n {
		return word
	}
	return string(r[len(r)-n:])
}

func prefix(word string, n int) string {
	r := []rune(word)
	if len(r) <= n {
		return word
	}
	return string(r[:n])
}

func isUpper(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isTitle(word string) bool {
	r := []rune(word)
	if len(r) < 2 {
		return false
	}
	return unicode.IsUpper(r[0]) && unicode.IsLower(r[1])
}

func isAllDigit(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func hasDigit(word string) bool {
	found := false
	for _, r := range word {
		if unicode.IsDigit(r) {
			found = true
		}
	}
	return found
}
