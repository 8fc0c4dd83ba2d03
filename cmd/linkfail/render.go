// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/linkfail/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00"))
)

var summaryColumns = []string{"metric", "mean", "std", "min", "p10", "median", "p90", "max", "r(p)"}

// renderReport draws the run summary: a header line, one row per metric and,
// for randomized runs, the mean of each metric by node count.
func renderReport(rep stats.Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("linkfail %s run %s", rep.Mode, rep.RunID)))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "policy=%s analytics=%s seed=%d trials=%d/%d\n",
		rep.Policy, rep.Analytics, rep.Seed, rep.Completed, rep.Trials)
	if rep.Cancelled {
		b.WriteString(warnStyle.Render("cancelled: partial results"))
		b.WriteByte('\n')
	}
	if rep.Completed == 0 {
		return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
	}

	rows := [][]string{summaryRow(rep.Failure)}
	for _, s := range rep.Metrics {
		rows = append(rows, summaryRow(s))
	}
	b.WriteString(table(summaryColumns, rows))

	if len(rep.Groups) > 0 {
		b.WriteByte('\n')
		b.WriteString(groupTable(rep))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func summaryRow(s stats.Summary) []string {
	r := "-"
	if s.Correlation != nil {
		r = fmt.Sprintf("%+.3f", *s.Correlation)
	}
	return []string{
		s.Metric,
		num(s.Mean), num(s.StdDev), num(s.Min), num(s.P10),
		num(s.Median), num(s.P90), num(s.Max), r,
	}
}

func groupTable(rep stats.Report) string {
	cols := []string{"nodes", "trials", "p"}
	for _, s := range rep.Metrics {
		cols = append(cols, s.Metric)
	}
	rows := make([][]string, 0, len(rep.Groups))
	for _, g := range rep.Groups {
		row := []string{fmt.Sprint(g.Nodes), fmt.Sprint(g.Trials), num(g.FailureProbability)}
		for _, s := range rep.Metrics {
			row = append(row, num(g.Means[s.Metric]))
		}
		rows = append(rows, row)
	}
	return table(cols, rows)
}

// table pads every cell to its column width. lipgloss.Width is used so the
// styled header does not skew the alignment.
func table(cols []string, rows [][]string) string {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = pad(headerStyle.Render(c), widths[i])
	}
	b.WriteString(strings.Join(header, "  "))
	b.WriteByte('\n')
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteByte('\n')
	}
	return b.String()
}

func pad(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func num(v float64) string { return fmt.Sprintf("%.3f", v) }
