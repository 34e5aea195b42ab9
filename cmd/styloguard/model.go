// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/styloguard/internal/embedding"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Manage the sentence-embedding model",
}

var modelPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download the configured sentence-transformers model",
	Long: `Pull downloads embedding.repo from the HuggingFace hub into
embedding.cache_dir. A token in .secrets/huggingface-token is used when present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := currentConfig()
		if err != nil {
			return err
		}
		if repo, _ := cmd.Flags().GetString("repo"); repo != "" {
			cfg.Embedding.Repo = repo
		}
		_, err = embedding.Pull(cfg.Embedding, os.Stdout)
		return err
	},
}

func init() {
	modelPullCmd.Flags().String("repo", "", "HuggingFace repository to pull (overrides embedding.repo)")

	modelCmd.AddCommand(modelPullCmd)
	rootCmd.AddCommand(modelCmd)
}
