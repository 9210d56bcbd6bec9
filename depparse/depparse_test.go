package depparse_test

import (
	"testing"

	"github.com/katalvlaran/udtrain/conllu"
	"github.com/katalvlaran/udtrain/depparse"
	"github.com/stretchr/testify/require"
)

// goldSentence is the 5-token projective sentence from the arc-eager
// replay scenario: heads=[2,0,2,5,3], labels=[det,root,nsubj,det,obl].
func goldSentence() conllu.Sentence {
	return conllu.Sentence{
		{ID: 1, Form: "The", XPOS: "DT", Head: 2, Deprel: "det"},
		{ID: 2, Form: "cat", XPOS: "NN", Head: 0, Deprel: "root"},
		{ID: 3, Form: "sat", XPOS: "VBD", Head: 2, Deprel: "nsubj"},
		{ID: 4, Form: "the", XPOS: "DT", Head: 5, Deprel: "det"},
		{ID: 5, Form: "mat", XPOS: "NN", Head: 3, Deprel: "obl"},
	}
}

func TestTrainRejectsEmptyTrainingSet(t *testing.T) {
	_, err := depparse.Train(nil, nil, nil, nil)
	require.ErrorIs(t, err, depparse.ErrEmptyTrainingSet)
}

func TestTrainProducesOneUASEntryPerEpoch(t *testing.T) {
	train := []conllu.Sentence{goldSentence()}
	result, err := depparse.Train(train, train, train, nil, depparse.WithEpochs(4), depparse.WithExploreRate(0))
	require.NoError(t, err)
	require.Len(t, result.DevUASPerEpoch, 4)
	require.Len(t, result.DevLASPerEpoch, 4)
}

func TestTrainLabelSetExcludesEmptyPlaceholder(t *testing.T) {
	train := []conllu.Sentence{goldSentence()}
	result, err := depparse.Train(train, train, train, nil, depparse.WithEpochs(1))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"det", "root", "nsubj", "obl"}, result.Labels)
}

func TestTrainOnSingleSentenceReachesFullUASAfterEnoughEpochs(t *testing.T) {
	train := []conllu.Sentence{goldSentence()}
	result, err := depparse.Train(train, train, train, nil, depparse.WithEpochs(30), depparse.WithExploreRate(0))
	require.NoError(t, err)
	require.Equal(t, 1.0, result.DevUAS, "averaged model should reproduce the gold tree after enough passes over one sentence")
	require.Equal(t, 1.0, result.DevLAS)
}

func TestPostHashAccuracyDropWithinBudget(t *testing.T) {
	train := []conllu.Sentence{goldSentence()}
	result, err := depparse.Train(train, train, train, nil, depparse.WithEpochs(30), depparse.WithExploreRate(0), depparse.WithBuckets(1<<12))
	require.NoError(t, err)
	require.True(t, result.AccuracyOK, "uasDrop=%f exceeds MaxAccuracyDrop", result.UASDrop)
}

func TestCalibrationBinsAreMonotoneNonDecreasing(t *testing.T) {
	train := []conllu.Sentence{goldSentence(), goldSentence(), goldSentence(), goldSentence(), goldSentence(), goldSentence()}
	result, err := depparse.Train(train, train, train, nil, depparse.WithEpochs(10))
	require.NoError(t, err)
	for i := 1; i < len(result.CalibrationBins); i++ {
		require.GreaterOrEqual(t, result.CalibrationBins[i].Probability, result.CalibrationBins[i-1].Probability)
	}
}

func TestSpanningRateIsOneWhenFinalizeCompletesEveryParse(t *testing.T) {
	train := []conllu.Sentence{goldSentence()}
	result, err := depparse.Train(train, train, train, nil, depparse.WithEpochs(5))
	require.NoError(t, err)
	require.Equal(t, 1.0, result.SpanningRate, "Finalize attaches every leftover token to ROOT, so every parse must span")
}
