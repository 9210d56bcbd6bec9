package transition

// unset marks a head slot that has not been assigned.
const unset = -1

// Config is an arc-eager parser configuration over a sentence of n tokens
// (ids 1..n); id 0 is the synthetic ROOT.
//
// Stack holds token ids with 0 at the bottom. Buffer holds the remaining
// input ids in order. Heads/Labels are 1-indexed (slot 0 is ROOT's own,
// unused). LeftChildLabel/RightChildLabel record the label of the most
// recently attached left/right dependent of each node (per spec §9: only
// the last-attached label is kept, not the true leftmost/rightmost).
type Config struct {
	Stack  []int
	Buffer []int

	Heads  []int    // Heads[i] == unset until assigned
	Labels []string // Labels[i] == "" until assigned

	LeftChildLabel  []string
	RightChildLabel []string
	LeftDepCount    []int
	RightDepCount   []int
}

// NewConfig builds the initial configuration for a sentence of n tokens:
// stack containing only ROOT (id 0), buffer holding 1..n in order.
func NewConfig(n int) *Config {
	buffer := make([]int, n)
	for i := 0; i < n; i++ {
		buffer[i] = i + 1
	}

	size := n + 1
	heads := make([]int, size)
	labels := make([]string, size)
	for i := range heads {
		heads[i] = unset
	}

	return &Config{
		Stack:           []int{0},
		Buffer:          buffer,
		Heads:           heads,
		Labels:          labels,
		LeftChildLabel:  make([]string, size),
		RightChildLabel: make([]string, size),
		LeftDepCount:    make([]int, size),
		RightDepCount:   make([]int, size),
	}
}

// N is the number of real tokens (excluding the synthetic ROOT).
func (c *Config) N() int { return len(c.Heads) - 1 }

// S0 returns the top of stack, or -1 if the stack is empty.
func (c *Config) S0() int {
	if len(c.Stack) == 0 {
		return -1
	}
	return c.Stack[len(c.Stack)-1]
}

// S1 returns the second-from-top stack element, or -1 if absent.
func (c *Config) S1() int {
	if len(c.Stack) < 2 {
		return -1
	}
	return c.Stack[len(c.Stack)-2]
}

// B0 returns the front of the buffer, or -1 if the buffer is empty.
func (c *Config) B0() int {
	if len(c.Buffer) == 0 {
		return -1
	}
	return c.Buffer[0]
}

// BAt returns the buffer element at offset k (0-based), or -1 if absent.
func (c *Config) BAt(k int) int {
	if k < 0 || k >= len(c.Buffer) {
		return -1
	}
	return c.Buffer[k]
}

// HasHead reports whether token i already has an assigned head.
func (c *Config) HasHead(i int) bool {
	if i <= 0 || i >= len(c.Heads) {
		return false
	}
	return c.Heads[i] != unset
}

// Terminal reports whether no more transitions can be taken: the buffer is
// empty and only ROOT remains on the stack.
func (c *Config) Terminal() bool {
	return len(c.Buffer) == 0 && len(c.Stack) == 1 && c.Stack[0] == 0
}

// attach records head->dependent with the given label, updating valency
// and last-attached-child-label bookkeeping.
func (c *Config) attach(head, dependent int, label string) {
	c.Heads[dependent] = head
	c.Labels[dependent] = label
	if dependent < head {
		c.LeftChildLabel[head] = label
		c.LeftDepCount[head]++
	} else {
		c.RightChildLabel[head] = label
		c.RightDepCount[head]++
	}
}

// Finalize is the defined parser termination policy (spec §4.1): any token
// left on the stack without a head (non-projective leftovers) is attached
// to ROOT with label "root", and the stack is cleared down to ROOT.
func (c *Config) Finalize() {
	for _, tok := range c.Stack {
		if tok != 0 && !c.HasHead(tok) {
			c.attach(0, tok, "root")
		}
	}
	c.Stack = append(c.Stack[:0], 0)
}
