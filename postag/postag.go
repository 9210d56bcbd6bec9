package postag

import (
	"math"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/udtrain/conllu"
	"github.com/katalvlaran/udtrain/perceptron"
	"github.com/katalvlaran/udtrain/posfeat"
	"github.com/katalvlaran/udtrain/pruning"
)

// Result is the outcome of Train: the averaged and pruned weight tables,
// the fixed class set and tag dictionary, and the accuracy figures
// reported in the artifact provenance (§6).
type Result struct {
	Classes []string
	TagDict TagDict

	Averaged perceptron.Averaged
	Pruned   perceptron.Averaged

	DevAccuracyPerEpoch  []float64
	DevAccuracy          float64 // averaged weights, pre-prune
	TestAccuracy         float64 // averaged weights
	PostPruneDevAccuracy float64
	AccuracyDrop         float64
}

// Train runs the POS training driver (§4.6) over train, evaluating on dev
// after every epoch and on dev+test once more after averaging and
// pruning. log may be nil (treated as a no-op logger).
func Train(train, dev, test []conllu.Sentence, log *zap.Logger, opts ...Option) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(train) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := classSet(train, dev, test)
	tagDict := BuildTagDict(train)
	model := perceptron.NewModel(classes)
	rng := rand.New(rand.NewSource(cfg.Seed))

	result := &Result{Classes: classes, TagDict: tagDict}

	shuffled := make([]conllu.Sentence, len(train))
	copy(shuffled, train)

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		for _, sent := range shuffled {
			trainSentence(model, classes, sent)
		}

		liveScorer := func(features []string) string {
			best, _, _ := model.Predict(features, classes)
			return best
		}
		devAcc := evaluate(liveScorer, tagDict, dev)
		result.DevAccuracyPerEpoch = append(result.DevAccuracyPerEpoch, devAcc)
		log.Info("postag epoch complete", zap.Int("epoch", epoch), zap.Float64("devAccuracy", devAcc))
	}

	result.Averaged = model.AverageWeights()
	averagedScorer := func(features []string) string { return predictAveraged(result.Averaged, classes, features) }

	result.DevAccuracy = evaluate(averagedScorer, tagDict, dev)
	result.TestAccuracy = evaluate(averagedScorer, tagDict, test)

	result.Pruned = pruning.PruneAveraged(result.Averaged, cfg.PruneThreshold)
	prunedScorer := func(features []string) string { return predictAveraged(result.Pruned, classes, features) }
	result.PostPruneDevAccuracy = evaluate(prunedScorer, tagDict, dev)
	result.AccuracyDrop = result.DevAccuracy - result.PostPruneDevAccuracy

	log.Info("postag training complete",
		zap.Float64("devAccuracy", result.DevAccuracy),
		zap.Float64("testAccuracy", result.TestAccuracy),
		zap.Float64("postPruneDevAccuracy", result.PostPruneDevAccuracy),
		zap.Float64("accuracyDrop", result.AccuracyDrop),
	)

	return result, nil
}

// trainSentence walks sent left to right with teacher forcing: the
// previous/previous-previous tag history fed to posfeat.Extract is
// always the gold tag, never the model's own prediction (§4.6, §9).
func trainSentence(model *perceptron.Model, classes []string, sent conllu.Sentence) {
	words := formsOf(sent)
	for i, tok := range sent {
		prevTag := posfeat.StartSentinel
		if i-1 >= 0 {
			prevTag = sent[i-1].XPOS
		}
		prevPrevTag := posfeat.StartSentinel2
		if i-2 >= 0 {
			prevPrevTag = sent[i-2].XPOS
		}

		feats := posfeat.Extract(posfeat.Context{
			Words:       words,
			Index:       i,
			PrevTag:     prevTag,
			PrevPrevTag: prevPrevTag,
		})
		predicted, _, _ := model.Predict(feats, classes)
		model.Update(tok.XPOS, predicted, feats)
	}
}

// evaluate scores sentences using scorer's predictions chained as history
// (predicted-tag history, §4.6), consulting tagDict as a shortcut before
// falling back to scorer.
func evaluate(scorer func(features []string) string, tagDict TagDict, sentences []conllu.Sentence) float64 {
	total, correct := 0, 0
	for _, sent := range sentences {
		words := formsOf(sent)
		history := make([]string, len(sent))

		for i, tok := range sent {
			var predicted string
			if tag, ok := tagDict[tok.Form]; ok {
				predicted = tag
			} else {
				prevTag := posfeat.StartSentinel
				if i-1 >= 0 {
					prevTag = history[i-1]
				}
				prevPrevTag := posfeat.StartSentinel2
				if i-2 >= 0 {
					prevPrevTag = history[i-2]
				}
				feats := posfeat.Extract(posfeat.Context{
					Words:       words,
					Index:       i,
					PrevTag:     prevTag,
					PrevPrevTag: prevPrevTag,
				})
				predicted = scorer(feats)
			}
			history[i] = predicted

			total++
			if predicted == tok.XPOS {
				correct++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

func predictAveraged(avg perceptron.Averaged, classes []string, features []string) string {
	best := ""
	bestScore := math.Inf(-1)
	for _, c := range classes {
		var score float64
		for _, f := range features {
			if row, ok := avg[f]; ok {
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

func formsOf(sent conllu.Sentence) []string {
	words := make([]string, len(sent))
	for i, tok := range sent {
		words[i] = tok.Form
	}
	return words
}

// classSet collects the union of XPOS tags observed across train/dev/test
// (§3: "the union of XPOS tags observed in train/dev/test; fixed at
// training time"), sorted for the deterministic argmax iteration order
// §4.5 requires.
func classSet(groups ...[]conllu.Sentence) []string {
	seen := make(map[string]struct{})
	for _, sentences := range groups {
		for _, sent := range sentences {
			for _, tok := range sent {
				seen[tok.XPOS] = struct{}{}
			}
		}
	}
	classes := make([]string, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}
