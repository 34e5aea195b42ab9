// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/styloguard/internal/convert"
	"github.com/pdiddy/styloguard/internal/features"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Print the stylometric feature report of essays",
	Long: `Analyze extracts text from each file (PDF, DOCX or plain text) and prints
its twenty stylometric features. Use --text to analyse inline text instead.
Files that fail extraction are reported and skipped.`,
	RunE: runAnalyze,
}

// analysisReport is the JSON shape of one analysed input.
type analysisReport struct {
	Source   string              `json:"source"`
	Features features.FeatureSet `json:"features"`
	Vector   []float64           `json:"vector,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inline, _ := cmd.Flags().GetString("text")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	withVector, _ := cmd.Flags().GetBool("vector")
	withNotes, _ := cmd.Flags().GetBool("notes")

	var docs []convert.Document
	switch {
	case inline != "":
		docs = []convert.Document{{Path: "<text>", Text: inline}}
	case len(args) > 0:
		var result convert.BatchResult
		docs, result = convert.ExtractPaths(args, os.Stderr)
		if result.Extracted == 0 {
			return fmt.Errorf("no input could be extracted (%d failed)", result.Failed)
		}
	default:
		return fmt.Errorf("provide files to analyse or --text")
	}

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	svc, cleanup, err := newService(cfg, false)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	reports := make([]analysisReport, 0, len(docs))
	for _, d := range docs {
		fs, err := svc.AnalyzeText(ctx, d.Text)
		if err != nil {
			return fmt.Errorf("%s: %w", d.Path, err)
		}
		r := analysisReport{Source: d.Path, Features: fs}
		if withVector {
			r.Vector = features.Vectorize(fs)
		}
		reports = append(reports, r)
	}

	if jsonOutput {
		return writeJSON(os.Stdout, reports)
	}
	for i, r := range reports {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("== %s\n", r.Source)
		writeFeatureTable(os.Stdout, r.Features, withNotes)
		if withVector {
			fmt.Printf("\nvector: %v\n", r.Vector)
		}
	}
	return nil
}

func init() {
	analyzeCmd.Flags().String("text", "", "inline text to analyse instead of files")
	analyzeCmd.Flags().Bool("json", false, "output the feature sets as JSON")
	analyzeCmd.Flags().Bool("vector", false, "include the normalised feature vector")
	analyzeCmd.Flags().Bool("notes", false, "include the explanatory note of each feature")

	rootCmd.AddCommand(analyzeCmd)
}
