// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/pdiddy/styloguard/internal/embedding"
	"github.com/pdiddy/styloguard/internal/features"
	"github.com/pdiddy/styloguard/internal/similarity"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// formatValue renders the sub-values of f on one line.
func formatValue(f features.Feature) string {
	var parts []string
	if f.Key != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Key, formatNumber(f.Value)))
	}
	if f.Counts != nil {
		counts := make([]string, 0, len(features.POSTags))
		for _, tag := range features.POSTags {
			counts = append(counts, fmt.Sprintf("%s=%d", tag, f.Counts[tag]))
		}
		parts = append(parts, strings.Join(counts, " "))
	}
	if len(f.List) > 0 {
		parts = append(parts, strings.Join(f.List, "; "))
	}
	return strings.Join(parts, "  ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeFeatureTable prints the feature report of fs.
func writeFeatureTable(w io.Writer, fs features.FeatureSet, withNotes bool) {
	header := []string{"Feature", "Value"}
	if withNotes {
		header = append(header, "Note")
	}
	table := newTable(w, header...)
	for _, f := range fs.All() {
		row := []string{string(f.Name), formatValue(f)}
		if withNotes {
			row = append(row, f.Note)
		}
		table.Append(row)
	}
	table.Render()
}

// writeComparisonTable prints per-feature scores and the mean.
func writeComparisonTable(w io.Writer, cmp similarity.Comparison) {
	table := newTable(w, "Feature", "Key", "Raw %", "Weighted %")
	for _, s := range cmp.Scores {
		table.Append([]string{
			string(s.Name),
			string(s.Key),
			fmt.Sprintf("%.1f", s.Raw),
			fmt.Sprintf("%.2f", s.Weighted),
		})
	}
	table.Render()
	fmt.Fprintf(w, "\nmean weighted similarity: %.2f%% over %d features\n", cmp.Mean(), len(cmp.Scores))
}

// chartWidth is the bar length of a 100% weighted score.
const chartWidth = 40

// writeComparisonChart draws the weighted percentage of each feature as a
// horizontal bar on a shared 0-100 axis.
func writeComparisonChart(w io.Writer, cmp similarity.Comparison) {
	label := lo.Max(lo.Map(cmp.Scores, func(s similarity.Score, _ int) int { return len(s.Name) }))
	for _, s := range cmp.Scores {
		filled := int(math.Round(s.Weighted / 100 * chartWidth))
		filled = min(max(filled, 0), chartWidth)
		fmt.Fprintf(w, "%-*s |%s%s| %6.2f%%\n", label, s.Name,
			strings.Repeat("#", filled), strings.Repeat(" ", chartWidth-filled), s.Weighted)
	}
}

// bandLine renders score and its band, coloured when the terminal allows.
func bandLine(score float64) string {
	band := embedding.BandFor(score)
	style := color.New(color.FgYellow)
	if band == embedding.BandSameAuthor {
		style = color.New(color.FgGreen, color.OpBold)
	}
	return fmt.Sprintf("similarity: %.4f  %s", score, style.Render(string(band)))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
