package shape_test

import (
	"testing"

	"github.com/katalvlaran/udtrain/shape"
	"github.com/stretchr/testify/require"
)

func TestCollapse(t *testing.T) {
	cases := map[string]string{
		"The":      "Xx",
		"U.S.":     "X.X.",
		"cat":      "x",
		"CAT":      "X",
		"12.5":     "d.d",
		"McDonald": "XxXx",
		"don't":    "x'x",
	}
	for in, want := range cases {
		require.Equal(t, want, shape.Collapse(in), "input %q", in)
	}
}
