package main

import (
	"context"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/simulation"
	"github.com/katalvlaran/linkfail/stats"
)

func TestRenderReport(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Trials = 8
	cfg.Workers = 2
	cfg.Randomize = true
	cfg.Policy = builder.PolicyClustered
	cfg.ClusterBounds = simulation.Bounds{Min: 2, Max: 3}
	cfg.ClusterSizeBounds = simulation.Bounds{Min: 3, Max: 4}

	r, err := simulation.NewRunner(cfg)
	require.NoError(t, err)
	res, err := r.Run(context.Background())
	require.NoError(t, err)

	out := renderReport(stats.NewReport(res))
	assert.Contains(t, out, "randomized")
	assert.Contains(t, out, "failure_probability")
	assert.Contains(t, out, "max_flow")
	assert.Contains(t, out, "nodes")
	assert.NotContains(t, out, "cancelled")
}

func TestRenderReport_Empty(t *testing.T) {
	out := renderReport(stats.Report{Mode: "fixed", Trials: 10, Cancelled: true})
	assert.Contains(t, out, "0/10")
	assert.Contains(t, out, "cancelled")
	assert.NotContains(t, out, "median")
}

func TestTableAlignment(t *testing.T) {
	out := table([]string{"a", "bbb"}, [][]string{{"xxxx", "y"}, {"z", "w"}})
	lines := splitLines(out)
	require.Len(t, lines, 3)
	assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(lines[2]))
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"components", "max_flow"}, splitList(" components, ,max_flow"))
	assert.Nil(t, splitList(""))
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}
