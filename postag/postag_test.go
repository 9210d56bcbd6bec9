package postag_test

import (
	"testing"

	"github.com/katalvlaran/udtrain/conllu"
	"github.com/katalvlaran/udtrain/posfeat"
	"github.com/katalvlaran/udtrain/postag"
	"github.com/stretchr/testify/require"
)

func tinySentence() conllu.Sentence {
	return conllu.Sentence{
		{ID: 1, Form: "The", XPOS: "DT", Head: 2, Deprel: "det"},
		{ID: 2, Form: "cat", XPOS: "NN", Head: 3, Deprel: "nsubj"},
		{ID: 3, Form: "sat", XPOS: "VBD", Head: 0, Deprel: "root"},
		{ID: 4, Form: ".", XPOS: ".", Head: 3, Deprel: "punct"},
	}
}

func TestBuildTagDictAdmitsOverThreshold(t *testing.T) {
	// 40 DT + 1 IN: count 41 >= 5, purity 40/41 ~ 0.976 >= 0.97.
	var sentences []conllu.Sentence
	for i := 0; i < 40; i++ {
		sentences = append(sentences, conllu.Sentence{{ID: 1, Form: "the", XPOS: "DT", Head: 0, Deprel: "root"}})
	}
	sentences = append(sentences, conllu.Sentence{{ID: 1, Form: "the", XPOS: "IN", Head: 0, Deprel: "root"}})

	dict := postag.BuildTagDict(sentences)
	tag, ok := dict["the"]
	require.True(t, ok)
	require.Equal(t, "DT", tag)
}

func TestBuildTagDictRejectsUnderCount(t *testing.T) {
	sentences := []conllu.Sentence{
		{{ID: 1, Form: "rare", XPOS: "NN", Head: 0, Deprel: "root"}},
	}
	dict := postag.BuildTagDict(sentences)
	_, ok := dict["rare"]
	require.False(t, ok, "rare must be absent from the dictionary below minDictCount")
}

func TestBuildTagDictRejectsUnderPurity(t *testing.T) {
	var sentences []conllu.Sentence
	for i := 0; i < 3; i++ {
		sentences = append(sentences, conllu.Sentence{{ID: 1, Form: "close", XPOS: "JJ", Head: 0, Deprel: "root"}})
	}
	for i := 0; i < 3; i++ {
		sentences = append(sentences, conllu.Sentence{{ID: 1, Form: "close", XPOS: "VB", Head: 0, Deprel: "root"}})
	}
	dict := postag.BuildTagDict(sentences)
	_, ok := dict["close"]
	require.False(t, ok, "3/6 dominant share is below the purity threshold")
}

func TestTrainRejectsEmptyTrainingSet(t *testing.T) {
	_, err := postag.Train(nil, nil, nil, nil)
	require.ErrorIs(t, err, postag.ErrEmptyTrainingSet)
}

func TestTrainProducesOneEpochAccuracyEntryPerEpoch(t *testing.T) {
	train := []conllu.Sentence{tinySentence(), tinySentence()}
	result, err := postag.Train(train, train, train, nil, postag.WithEpochs(3))
	require.NoError(t, err)
	require.Len(t, result.DevAccuracyPerEpoch, 3)
}

func TestPrunedModelNeverExceedsUnprunedDevAccuracy(t *testing.T) {
	train := []conllu.Sentence{tinySentence(), tinySentence(), tinySentence()}
	result, err := postag.Train(train, train, train, nil, postag.WithEpochs(2), postag.WithPruneThreshold(100))
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.AccuracyDrop, 0.0)
}

// TestTrainOnTinySentenceConvergesAfterOneEpoch is the worked example: a
// single 4-token sentence trained for one epoch, then re-tagged with the
// averaged weights, recovers the gold tags exactly.
func TestTrainOnTinySentenceConvergesAfterOneEpoch(t *testing.T) {
	train := []conllu.Sentence{tinySentence()}

	result, err := postag.Train(train, train, train, nil, postag.WithEpochs(1))
	require.NoError(t, err)

	want := []string{"DT", "NN", "VBD", "."}
	sent := tinySentence()
	words := make([]string, len(sent))
	for i, tok := range sent {
		words[i] = tok.Form
	}

	history := make([]string, len(sent))
	for i := range sent {
		if tag, ok := result.TagDict[sent[i].Form]; ok {
			history[i] = tag
			continue
		}
		prevTag := posfeat.StartSentinel
		if i-1 >= 0 {
			prevTag = history[i-1]
		}
		prevPrevTag := posfeat.StartSentinel2
		if i-2 >= 0 {
			prevPrevTag = history[i-2]
		}
		feats := posfeat.Extract(posfeat.Context{Words: words, Index: i, PrevTag: prevTag, PrevPrevTag: prevPrevTag})
		history[i] = predictFromAveraged(result, feats)
	}

	require.Equal(t, want, history)
}

// predictFromAveraged mirrors postag's internal averaged-weight argmax,
// which is unexported; the test re-derives it from the public Averaged
// snapshot and class set.
func predictFromAveraged(result *postag.Result, features []string) string {
	best := ""
	bestScore := -1e300
	for _, c := range result.Classes {
		var score float64
		for _, f := range features {
			if row, ok := result.Averaged[f]; ok {
				score += row[c]
			}
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}
