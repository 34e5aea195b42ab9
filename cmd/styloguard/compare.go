// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/styloguard/internal/essays"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the stylometric features of a test essay against a reference",
	Long: `Compare analyses a reference and a test essay and prints, per feature, the
raw similarity percentage and the weighted percentage. The reference is either
a file (--reference) or every essay saved for a student (--student-id) joined
in the order they were saved. --chart adds a bar per feature scaled to its
weighted percentage.`,
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	refPath, _ := cmd.Flags().GetString("reference")
	testPath, _ := cmd.Flags().GetString("test")
	testText, _ := cmd.Flags().GetString("test-text")
	studentID, _ := cmd.Flags().GetInt64("student-id")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	chart, _ := cmd.Flags().GetBool("chart")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()

	var ref string
	switch {
	case studentID > 0:
		store, err := essays.NewStore(cfg.Store)
		if err != nil {
			return err
		}
		ref, err = store.ReferenceText(ctx, studentID)
		store.Close()
		if err != nil {
			return err
		}
	case refPath != "":
		if ref, err = textInput("", refPath, "reference"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("--reference or --student-id is required")
	}

	test, err := textInput(testText, testPath, "test")
	if err != nil {
		return err
	}

	svc, cleanup, err := newService(cfg, false)
	if err != nil {
		return err
	}
	defer cleanup()

	cmp, err := svc.CompareTexts(ctx, ref, test)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(os.Stdout, struct {
			Scores any     `json:"scores"`
			Mean   float64 `json:"mean_weighted_percent"`
		}{cmp.Scores, cmp.Mean()})
	}
	writeComparisonTable(os.Stdout, cmp)
	if chart {
		fmt.Println()
		writeComparisonChart(os.Stdout, cmp)
	}
	return nil
}

func init() {
	compareCmd.Flags().String("reference", "", "reference essay file")
	compareCmd.Flags().Int64("student-id", 0, "use the student's saved essays as the reference")
	compareCmd.Flags().String("test", "", "test essay file (- for stdin)")
	compareCmd.Flags().String("test-text", "", "inline test text instead of --test")
	compareCmd.Flags().Bool("json", false, "output the comparison as JSON")
	compareCmd.Flags().Bool("chart", false, "also draw the weighted percentages as a bar chart")

	rootCmd.AddCommand(compareCmd)
}
