// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/styloguard/internal/embedding"
)

var similarityCmd = &cobra.Command{
	Use:   "similarity",
	Short: "Score two essays by the cosine of their masked sentence embeddings",
	Long: `Similarity replaces content words (nouns, verbs, proper nouns, adjectives,
adverbs) with their tags, embeds both masked texts with the configured
sentence-transformers model over overlapping windows and prints the cosine
similarity with an informational band. Run "styloguard model pull" first.`,
	RunE: runSimilarity,
}

func runSimilarity(cmd *cobra.Command, args []string) error {
	refPath, _ := cmd.Flags().GetString("reference")
	testPath, _ := cmd.Flags().GetString("test")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ref, err := textInput("", refPath, "reference")
	if err != nil {
		return err
	}
	test, err := textInput("", testPath, "test")
	if err != nil {
		return err
	}

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	svc, cleanup, err := newService(cfg, true)
	if err != nil {
		return err
	}
	defer cleanup()

	score, err := svc.EmbeddingSimilarity(context.Background(), ref, test)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(os.Stdout, map[string]any{"similarity": score, "band": embedding.BandFor(score)})
	}
	fmt.Println(bandLine(score))
	return nil
}

func init() {
	similarityCmd.Flags().String("reference", "", "reference essay file")
	similarityCmd.Flags().String("test", "", "test essay file")
	similarityCmd.Flags().Bool("json", false, "output the score as JSON")

	rootCmd.AddCommand(similarityCmd)
}
