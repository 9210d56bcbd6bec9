package evalmetrics

// ArcCrossings reports, for each non-ROOT token 1..n, whether its arc
// (i, heads[i]) crosses some other arc (j, heads[j]): exactly one of j,
// heads[j] lies strictly inside the open interval (min(i,heads[i]),
// max(i,heads[i])) and the other lies strictly outside the closed interval
// (§4.9); arcs that share an endpoint never cross. The returned slice
// is 1-indexed like heads (index 0 unused).
func ArcCrossings(n int, heads []int) []bool {
	crossings := make([]bool, n+1)
	for i := 1; i <= n; i++ {
		lo, hi := span(i, heads[i])
		for j := 1; j <= n; j++ {
			if j == i {
				continue
			}
			if (inside(lo, hi, j) && outside(lo, hi, heads[j])) ||
				(inside(lo, hi, heads[j]) && outside(lo, hi, j)) {
				crossings[i] = true
				break
			}
		}
	}
	return crossings
}

// IsNonProjective reports whether any arc in the sentence crosses another.
func IsNonProjective(n int, heads []int) bool {
	for _, c := range ArcCrossings(n, heads) {
		if c {
			return true
		}
	}
	return false
}

func span(i, head int) (lo, hi int) {
	if i < head {
		return i, head
	}
	return head, i
}

func inside(lo, hi, x int) bool {
	return lo < x && x < hi
}

func outside(lo, hi, x int) bool {
	return x < lo || x > hi
}

// NonProjectivityReport accumulates sentence- and arc-level non-projectivity
// rates across a corpus.
type NonProjectivityReport struct {
	Sentences             int
	NonProjectiveSentences int
	Arcs                  int
	CrossingArcs          int
}

// Accumulate folds one sentence's arcs into the report.
func (r *NonProjectivityReport) Accumulate(n int, heads []int) {
	r.Sentences++
	r.Arcs += n

	crossings := ArcCrossings(n, heads)
	sentenceHasCrossing := false
	for i := 1; i <= n; i++ {
		if crossings[i] {
			r.CrossingArcs++
			sentenceHasCrossing = true
		}
	}
	if sentenceHasCrossing {
		r.NonProjectiveSentences++
	}
}

// SentenceRate is the fraction of sentences containing at least one
// crossing arc.
func (r NonProjectivityReport) SentenceRate() float64 {
	if r.Sentences == 0 {
		return 0
	}
	return float64(r.NonProjectiveSentences) / float64(r.Sentences)
}

// ArcRate is the fraction of arcs that cross another arc.
func (r NonProjectivityReport) ArcRate() float64 {
	if r.Arcs == 0 {
		return 0
	}
	return float64(r.CrossingArcs) / float64(r.Arcs)
}
