package depfeat

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/udtrain/shape"
	"github.com/katalvlaran/udtrain/transition"
)

// nullWord and nullTag mark a missing stack/buffer position; noneLabel
// marks an unassigned child or deprel label.
const (
	nullWord = "_NULL_"
	nullTag  = "_NULL_"
	noneLabel = "_NONE_"
	rootWord = "ROOT"
	rootTag  = "ROOT"
)

const maxDist = 10

// Context carries a configuration plus the sentence's surface forms and
// (gold or predicted) XPOS tags, both 1-indexed by token id (index 0
// unused; id 0 itself denotes the synthetic ROOT and is handled via the
// rootWord/rootTag sentinel rather than a Words/Tags lookup).
type Context struct {
	Cfg   *transition.Config
	Words []string
	Tags  []string
}

func (c Context) word(id int) string {
	switch {
	case id < 0:
		return nullWord
	case id == 0:
		return rootWord
	default:
		return c.Words[id]
	}
}

func (c Context) tag(id int) string {
	switch {
	case id < 0:
		return nullTag
	case id == 0:
		return rootTag
	default:
		return c.Tags[id]
	}
}

func (c Context) leftChild(id int) string {
	if id <= 0 || c.Cfg.LeftChildLabel[id] == "" {
		return noneLabel
	}
	return c.Cfg.LeftChildLabel[id]
}

func (c Context) rightChild(id int) string {
	if id <= 0 || c.Cfg.RightChildLabel[id] == "" {
		return noneLabel
	}
	return c.Cfg.RightChildLabel[id]
}

func (c Context) deprel(id int) string {
	if id <= 0 || c.Cfg.Labels[id] == "" {
		return noneLabel
	}
	return c.Cfg.Labels[id]
}

// Extract returns the ordered multiset of parser feature keys for the
// configuration in ctx. Order is not semantically significant; spelling
// is (§4.4).
func Extract(ctx Context) []string {
	cfg := ctx.Cfg
	s0, s1 := cfg.S0(), cfg.S1()
	b0, b1, b2 := cfg.B0(), cfg.BAt(1), cfg.BAt(2)

	feats := []string{"bias"}

	positions := []struct {
		name string
		id   int
	}{{"s0", s0}, {"s1", s1}, {"b0", b0}, {"b1", b1}, {"b2", b2}}

	for _, p := range positions {
		feats = append(feats,
			p.name+".word="+ctx.word(p.id),
			p.name+".word.lower="+strings.ToLower(ctx.word(p.id)),
			p.name+".tag="+ctx.tag(p.id),
			p.name+".lchild="+ctx.leftChild(p.id),
			p.name+".rchild="+ctx.rightChild(p.id),
		)
	}
	feats = append(feats, "s0.deprel="+ctx.deprel(s0))

	pairs := [][2]struct {
		name string
		id   int
	}{
		{{"s0", s0}, {"s1", s1}},
		{{"s0", s0}, {"b0", b0}},
		{{"s1", s1}, {"b0", b0}},
		{{"b0", b0}, {"b1", b1}},
		{{"s0", s0}, {"b1", b1}},
		{{"s1", s1}, {"b1", b1}},
	}
	for _, pr := range pairs {
		a, b := pr[0], pr[1]
		feats = append(feats,
			a.name+".tag+"+b.name+".tag="+ctx.tag(a.id)+" "+ctx.tag(b.id),
			a.name+".tag+"+b.name+".word="+ctx.tag(a.id)+" "+ctx.word(b.id),
			a.name+".word+"+b.name+".tag="+ctx.word(a.id)+" "+ctx.tag(b.id),
		)
	}

	feats = append(feats,
		"s0.tag+s1.tag+b0.tag="+ctx.tag(s0)+" "+ctx.tag(s1)+" "+ctx.tag(b0),
		"s0.tag+b0.tag+b1.tag="+ctx.tag(s0)+" "+ctx.tag(b0)+" "+ctx.tag(b1),
		"s1.tag+b0.tag+b1.tag="+ctx.tag(s1)+" "+ctx.tag(b0)+" "+ctx.tag(b1),
	)

	hasHead := cfg.HasHead(s0)
	bEmpty := len(cfg.Buffer) == 0
	if hasHead {
		feats = append(feats, "s0_has_head")
	}
	if bEmpty {
		feats = append(feats, "b_empty")
	}
	if hasHead && bEmpty {
		feats = append(feats, "s0_has_head+b_empty")
	}

	feats = append(feats,
		"s0.suf2="+suffix(strings.ToLower(ctx.word(s0)), 2),
		"s0.suf3="+suffix(strings.ToLower(ctx.word(s0)), 3),
		"b0.suf2="+suffix(strings.ToLower(ctx.word(b0)), 2),
		"b0.suf3="+suffix(strings.ToLower(ctx.word(b0)), 3),
		"s0.pre3="+prefix(strings.ToLower(ctx.word(s0)), 3),
		"b0.pre3="+prefix(strings.ToLower(ctx.word(b0)), 3),
	)

	dist := maxDist
	if s0 >= 0 && b0 >= 0 {
		d := s0 - b0
		if d < 0 {
			d = -d
		}
		if d < maxDist {
			dist = d
		}
	}
	distStr := strconv.Itoa(dist)
	feats = append(feats,
		"dist="+distStr,
		"dist+s0.tag="+distStr+" "+ctx.tag(s0),
		"dist+b0.tag="+distStr+" "+ctx.tag(b0),
		"dist+s0.tag+b0.tag="+distStr+" "+ctx.tag(s0)+" "+ctx.tag(b0),
	)

	s0Ldeps := clampCount(valencyAt(cfg.LeftDepCount, s0))
	s0Rdeps := clampCount(valencyAt(cfg.RightDepCount, s0))
	b0Ldeps := clampCount(valencyAt(cfg.LeftDepCount, b0))
	feats = append(feats,
		"s0_n_ldeps="+strconv.Itoa(s0Ldeps),
		"s0_n_rdeps="+strconv.Itoa(s0Rdeps),
		"b0_n_ldeps="+strconv.Itoa(b0Ldeps),
		"s0_n_rdeps+dist="+strconv.Itoa(s0Rdeps)+" "+distStr,
	)

	headS0 := -1
	if s0 > 0 && cfg.HasHead(s0) {
		headS0 = cfg.Heads[s0]
	}
	feats = append(feats,
		"h(s0).tag="+ctx.tag(headS0),
		"h(s0).word.lower="+strings.ToLower(ctx.word(headS0)),
		"h(s0).tag+b0.tag="+ctx.tag(headS0)+" "+ctx.tag(b0),
	)

	feats = append(feats,
		"stack_depth="+strconv.Itoa(clampAt(len(cfg.Stack), 5)),
		"buffer_len="+strconv.Itoa(clampAt(len(cfg.Buffer), 5)),
	)

	s0Shape := shape.Collapse(ctx.word(s0))
	b0Shape := shape.Collapse(ctx.word(b0))
	feats = append(feats,
		"s0.shape="+s0Shape,
		"b0.shape="+b0Shape,
		"s0.shape+b0.shape="+s0Shape+" "+b0Shape,
	)

	feats = append(feats,
		"s0.lchild+s0.rchild="+ctx.leftChild(s0)+" "+ctx.rightChild(s0),
		"s1.rchild+s0.lchild="+ctx.rightChild(s1)+" "+ctx.leftChild(s0),
	)

	return feats
}

func valencyAt(counts []int, id int) int {
	if id <= 0 || id >= len(counts) {
		return 0
	}
	return counts[id]
}

func clampCount(n int) int { return clampAt(n, 3) }

func clampAt(n, max int) int {
	if n > max {
		return max
	}
	return n
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
