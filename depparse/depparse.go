package depparse

import (
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/udtrain/calibrate"
	"github.com/katalvlaran/udtrain/conllu"
	"github.com/katalvlaran/udtrain/depfeat"
	"github.com/katalvlaran/udtrain/evalmetrics"
	"github.com/katalvlaran/udtrain/hashing"
	"github.com/katalvlaran/udtrain/oracle"
	"github.com/katalvlaran/udtrain/perceptron"
	"github.com/katalvlaran/udtrain/pruning"
	"github.com/katalvlaran/udtrain/transition"
)

// MaxAccuracyDrop is the largest UAS drop tolerated between the averaged
// model and its hashed, pruned successor (§4.8).
const MaxAccuracyDrop = 0.003

// negInf is below any real perceptron score, mirroring perceptron.Predict's
// tie-break sentinel.
const negInf = -1e300

// Result is the outcome of Train.
type Result struct {
	Labels []string

	Averaged perceptron.Averaged
	Hashed   hashing.Model // post-prune

	DevUASPerEpoch []float64
	DevLASPerEpoch []float64

	DevUAS  float64 // averaged weights
	DevLAS  float64
	TestUAS float64
	TestLAS float64

	PostHashDevUAS float64
	PostHashDevLAS float64
	UASDrop        float64
	AccuracyOK     bool

	CalibrationBins []calibrate.Bin

	NonProjectivity evalmetrics.NonProjectivityReport
	SpanningRate    float64 // fraction of dev sentences whose predicted parse spans all tokens
}

// Train runs the arc-eager parser training driver (§4.7) over train,
// evaluating UAS/LAS on dev after every epoch, then on dev+test once more
// after averaging, then running the hashing/pruning/calibration pipeline
// (§4.8). log may be nil (treated as a no-op logger). Tags are taken
// directly from each Token's gold XPOS: the parser is trained assuming an
// oracle POS source, independent of postag's own accuracy.
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

	labels := labelSet(train, dev, test)
	set := transition.NewSet(labels)
	model := perceptron.NewModel(set.Names())
	rng := rand.New(rand.NewSource(cfg.Seed))

	result := &Result{Labels: labels}
	for _, sent := range train {
		result.NonProjectivity.Accumulate(len(sent), sent.Heads())
	}

	shuffled := make([]conllu.Sentence, len(train))
	copy(shuffled, train)

	liveScore := func(features []string, class string) float64 {
		return model.Score(features, class)
	}

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		for _, sent := range shuffled {
			trainSentence(model, set, rng, cfg.ExploreRate, sent)
		}

		devUAS, devLAS := evaluateUASLAS(liveScore, set, dev)
		result.DevUASPerEpoch = append(result.DevUASPerEpoch, devUAS)
		result.DevLASPerEpoch = append(result.DevLASPerEpoch, devLAS)
		log.Info("depparse epoch complete", zap.Int("epoch", epoch), zap.Float64("devUAS", devUAS), zap.Float64("devLAS", devLAS))
	}

	result.Averaged = model.AverageWeights()
	averagedScore := func(features []string, class string) float64 {
		var s float64
		for _, f := range features {
			if row, ok := result.Averaged[f]; ok {
				s += row[class]
			}
		}
		return s
	}
	result.DevUAS, result.DevLAS = evaluateUASLAS(averagedScore, set, dev)
	result.TestUAS, result.TestLAS = evaluateUASLAS(averagedScore, set, test)

	hashed := hashing.Hash(result.Averaged, cfg.Buckets)
	result.Hashed = pruning.PruneHashed(hashed, cfg.PruneThreshold)
	hashedScore := func(features []string, class string) float64 {
		var s float64
		for _, f := range features {
			bucket := hashing.FNV1a32(f) % cfg.Buckets
			if row, ok := result.Hashed[bucket]; ok {
				s += row[class]
			}
		}
		return s
	}
	result.PostHashDevUAS, result.PostHashDevLAS, result.CalibrationBins = evaluateWithCalibration(hashedScore, set, dev, cfg.CalibrationBins)
	result.UASDrop = result.DevUAS - result.PostHashDevUAS
	result.AccuracyOK = result.UASDrop < MaxAccuracyDrop

	result.SpanningRate = spanningRate(hashedScore, set, dev)

	log.Info("depparse training complete",
		zap.Float64("devUAS", result.DevUAS),
		zap.Float64("testUAS", result.TestUAS),
		zap.Float64("postHashDevUAS", result.PostHashDevUAS),
		zap.Float64("uasDrop", result.UASDrop),
		zap.Bool("accuracyOK", result.AccuracyOK),
	)

	return result, nil
}

// trainSentence replays sent with the oracle, falling back to the dynamic
// oracle on non-projective configurations, and with probability
// exploreRate applies the model's own (legal) prediction instead of the
// oracle transition to teach recovery from its own mistakes (§4.7).
func trainSentence(model *perceptron.Model, set transition.Set, rng *rand.Rand, exploreRate float64, sent conllu.Sentence) {
	n := len(sent)
	words, tags := formsAndTags(sent)
	goldHeads, goldLabels := sent.Heads(), sent.Labels()

	cfg := transition.NewConfig(n)
	for !cfg.Terminal() {
		feats := depfeat.Extract(depfeat.Context{Cfg: cfg, Words: words, Tags: tags})

		oracleT, ok := oracle.Static(cfg, goldHeads, goldLabels)
		if !ok || !oracleT.IsPossible(cfg) {
			oracleT, ok = oracle.MinCost(set, cfg, goldHeads, goldLabels)
			if !ok {
				break
			}
		}

		predictedName, _, _ := model.Predict(feats, set.Names())
		model.Update(oracleT.Name(), predictedName, feats)

		apply := oracleT
		if rng.Float64() < exploreRate {
			if predT, ok := set.ByName(predictedName); ok && predT.IsPossible(cfg) {
				apply = predT
			}
		}
		apply.Apply(cfg)
	}
	cfg.Finalize()
}

// scoreFn scores one transition class over the given feature multiset;
// liveScore/averagedScore/hashedScore above all satisfy this shape.
type scoreFn func(features []string, class string) float64

// decodeWithMargins greedily decodes sent using score, restricted at every
// step to transitions legal in the current configuration, and returns the
// per-token margin of the transition that assigned each token's final
// head (0 for tokens attached by the ROOT finalize sweep, per §4.8). The
// final configuration (with Heads/Labels populated) is also returned.
func decodeWithMargins(set transition.Set, words, tags []string, score scoreFn) (*transition.Config, []float64) {
	n := len(words)
	cfg := transition.NewConfig(n)
	margins := make([]float64, n+1)

	for !cfg.Terminal() {
		feats := depfeat.Extract(depfeat.Context{Cfg: cfg, Words: words, Tags: tags})
		valid := set.Valid(cfg)
		if len(valid) == 0 {
			break
		}
		best, margin := argmaxTransition(valid, func(t transition.Transition) float64 { return score(feats, t.Name()) })

		switch best.(type) {
		case transition.LeftArc:
			margins[cfg.S0()] = margin
		case transition.RightArc:
			margins[cfg.B0()] = margin
		}
		best.Apply(cfg)
	}
	cfg.Finalize()
	return cfg, margins
}

// argmaxTransition returns the transition in valid with the highest
// score and its margin over the runner-up, ties broken by valid's
// (canonical sorted) iteration order.
func argmaxTransition(valid []transition.Transition, score func(transition.Transition) float64) (transition.Transition, float64) {
	var best transition.Transition
	topScore, secondScore := negInf, negInf
	for _, t := range valid {
		s := score(t)
		if s > topScore {
			secondScore = topScore
			topScore = s
			best = t
		} else if s > secondScore {
			secondScore = s
		}
	}
	if len(valid) < 2 || secondScore == negInf {
		return best, 0
	}
	return best, topScore - secondScore
}

// evaluateUASLAS decodes every sentence in sentences under score and
// aggregates token-level UAS/LAS over the whole corpus (§4.9's
// corpus-level definition, not a per-sentence average).
func evaluateUASLAS(score scoreFn, set transition.Set, sentences []conllu.Sentence) (uas, las float64) {
	var total, correctHead, correctLabel int
	for _, sent := range sentences {
		words, tags := formsAndTags(sent)
		cfg, _ := decodeWithMargins(set, words, tags, score)
		goldHeads, goldLabels := sent.Heads(), sent.Labels()
		for i := 1; i <= len(sent); i++ {
			total++
			if cfg.Heads[i] == goldHeads[i] {
				correctHead++
				if cfg.Labels[i] == goldLabels[i] {
					correctLabel++
				}
			}
		}
	}
	if total == 0 {
		return 0, 0
	}
	return float64(correctHead) / float64(total), float64(correctLabel) / float64(total)
}

// evaluateWithCalibration decodes dev under score, aggregates UAS/LAS, and
// builds the isotonic calibration table from every committed arc's margin
// and head-correctness (§4.8).
func evaluateWithCalibration(score scoreFn, set transition.Set, sentences []conllu.Sentence, bins int) (uas, las float64, calibrated []calibrate.Bin) {
	var total, correctHead, correctLabel int
	var records []calibrate.Record

	for _, sent := range sentences {
		words, tags := formsAndTags(sent)
		cfg, margins := decodeWithMargins(set, words, tags, score)
		goldHeads, goldLabels := sent.Heads(), sent.Labels()
		for i := 1; i <= len(sent); i++ {
			total++
			correct := cfg.Heads[i] == goldHeads[i]
			if correct {
				correctHead++
				if cfg.Labels[i] == goldLabels[i] {
					correctLabel++
				}
			}
			records = append(records, calibrate.Record{Margin: margins[i], Correct: correct})
		}
	}

	if total == 0 {
		return 0, 0, nil
	}
	partitioned := calibrate.Partition(records, bins)
	return float64(correctHead) / float64(total), float64(correctLabel) / float64(total), calibrate.PoolAdjacentViolators(partitioned)
}

// spanningRate reports the fraction of sentences whose decoded parse
// reaches and covers every token from ROOT, using the graph
// connectivity diagnostic as a structural sanity check on the finalize
// policy (every token must end up attached, directly or transitively).
func spanningRate(score scoreFn, set transition.Set, sentences []conllu.Sentence) float64 {
	if len(sentences) == 0 {
		return 0
	}
	spanning := 0
	for _, sent := range sentences {
		words, tags := formsAndTags(sent)
		cfg, _ := decodeWithMargins(set, words, tags, score)
		ok, err := evalmetrics.IsSpanningTree(len(sent), cfg.Heads)
		if err == nil && ok {
			spanning++
		}
	}
	return float64(spanning) / float64(len(sentences))
}

func formsAndTags(sent conllu.Sentence) (words, tags []string) {
	words = make([]string, len(sent)+1)
	tags = make([]string, len(sent)+1)
	for _, tok := range sent {
		words[tok.ID] = tok.Form
		tags[tok.ID] = tok.XPOS
	}
	return words, tags
}

// labelSet collects the union of deprel labels observed across
// train/dev/test, excluding the empty placeholder at index 0.
func labelSet(groups ...[]conllu.Sentence) []string {
	seen := make(map[string]struct{})
	for _, sentences := range groups {
		for _, sent := range sentences {
			for _, tok := range sent {
				if tok.Deprel == "" {
					continue
				}
				seen[tok.Deprel] = struct{}{}
			}
		}
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
