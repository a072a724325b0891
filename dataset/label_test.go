package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"results/coverage_true_inputshare_false_resultshare_true.txt", "coverage on, shared inputs off, shared results on"},
		{"coverage_false_collab_true.txt", "coverage off, collaborative on"},
		{"coverage_true_collab_false.txt", "coverage on, collaborative off"},
		// Outside the harness convention the base name is used as-is.
		{"results/my_run.txt", "my_run"},
		{"baseline.txt", "baseline"},
		{"coverage_maybe_collab_true.txt", "coverage_maybe_collab_true"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, LabelFromPath(c.path), "path %s", c.path)
	}
}
