package perceptron

// key identifies one (feature, class) weight cell. Using a struct key over
// a flat map is the open-addressed hot-path layout; see doc.go.
type key struct {
	Feature string
	Class   string
}

// Model is a sparse multiclass averaged perceptron. Classes is the fixed
// class set C; weight/totals/timestamp are parallel flat tables keyed by
// (feature, class); step is the monotonically increasing update counter.
//
// Invariant (spec §3): for every (f,c) ever touched, the averaged weight
// equals (totals[f,c] + (step-timestamp[f,c])*weight[f,c]) / step.
type Model struct {
	Classes []string

	weight    map[key]float64
	totals    map[key]float64
	timestamp map[key]int
	step      int
}

// NewModel builds an untrained model over the given class set. classes is
// copied, not aliased.
func NewModel(classes []string) *Model {
	cs := make([]string, len(classes))
	copy(cs, classes)
	return &Model{
		Classes:   cs,
		weight:    make(map[key]float64),
		totals:    make(map[key]float64),
		timestamp: make(map[key]int),
	}
}

// Score returns the sum of weights over (feature, class) for every feature
// in features.
func (m *Model) Score(features []string, class string) float64 {
	var total float64
	for _, f := range features {
		total += m.weight[key{Feature: f, Class: class}]
	}
	return total
}

// Predict scores every class in valid (defaulting to m.Classes when nil)
// and returns the argmax and its margin over the runner-up. Ties are
// broken by the iteration order of valid, which callers must present in
// the fixed canonical order (spec §4.5's determinism requirement). Margin
// is 0 when fewer than two classes are scored.
func (m *Model) Predict(features []string, valid []string) (best string, margin float64, err error) {
	if valid == nil {
		valid = m.Classes
	}
	if len(valid) == 0 {
		return "", 0, ErrEmptyValidSet
	}

	topScore := negInf
	secondScore := negInf
	for _, c := range valid {
		s := m.Score(features, c)
		if s > topScore {
			secondScore = topScore
			topScore = s
			best = c
		} else if s > secondScore {
			secondScore = s
		}
	}

	if len(valid) < 2 || secondScore == negInf {
		return best, 0, nil
	}
	return best, topScore - secondScore, nil
}

// negInf is a sentinel below any real score produced by Score; it exists
// so Predict can detect "fewer than two classes actually scored" without
// relying on math.Inf at package scope.
const negInf = -1e300

// Update moves the model one step along truth when it disagrees with
// guess. The step counter advances unconditionally (spec §4.5: "always
// increments the step counter") so averaging stays correct even on
// already-correct predictions.
func (m *Model) Update(truth, guess string, features []string) {
	m.step++
	if truth == guess {
		return
	}

	bump := func(f, c string) {
		k := key{Feature: f, Class: c}
		m.totals[k] += float64(m.step-m.timestamp[k]) * m.weight[k]
		m.timestamp[k] = m.step
	}

	for _, f := range features {
		bump(f, truth)
		bump(f, guess)
		m.weight[key{Feature: f, Class: truth}]++
		m.weight[key{Feature: f, Class: guess}]--
	}
}

// Averaged is the frozen, nested feature->class->weight mapping produced
// by AverageWeights: the form consumed by JSON export and by evaluation.
type Averaged map[string]map[string]float64

// AverageWeights freezes the model's current state into the feature/class
// averaged weights (spec §4.5). It advances the step counter once more,
// then for every live (feature, class) cell computes
// (totals + (step-timestamp)*weight) / step. Zero averaged values are
// dropped, and features left with no surviving classes are omitted.
func (m *Model) AverageWeights() Averaged {
	m.step++

	out := make(Averaged)
	for k, w := range m.weight {
		avg := (m.totals[k] + float64(m.step-m.timestamp[k])*w) / float64(m.step)
		if avg == 0 {
			continue
		}
		classes, ok := out[k.Feature]
		if !ok {
			classes = make(map[string]float64)
			out[k.Feature] = classes
		}
		classes[k.Class] = avg
	}
	return out
}
