// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the styloguard CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/styloguard/internal/embedding"
	"github.com/pdiddy/styloguard/internal/secrets"
	"github.com/pdiddy/styloguard/internal/sidecar"
	"github.com/pdiddy/styloguard/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the styloguard CLI.
var rootCmd = &cobra.Command{
	Use:   "styloguard",
	Short: "Stylometric authorship analysis for essays",
	Long: `styloguard extracts stylometric features from essays and compares a test
essay against a reference, either through weighted per-feature similarity or
through the cosine of masked sentence embeddings.

Saved essays form a per-student reference profile: compare --student-id uses
every essay saved for that student as the reference text.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			slog.Debug("loaded secrets", "keys", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./styloguard.yaml or ~/.config/styloguard/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for the essay database and exports")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("store.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("styloguard")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "styloguard"))
		}
	}

	viper.SetEnvPrefix("STYLOGUARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	readErr := viper.ReadInConfig()

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Log, os.Stderr))

	if readErr == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// setDefaults registers every configuration key so environment variables
// reach viper.Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("annotator.backend", string(types.AnnotatorNative))
	v.SetDefault("annotator.endpoint", "")
	v.SetDefault("annotator.api_key", "")
	v.SetDefault("annotator.timeout", 30*time.Second)
	v.SetDefault("annotator.user_agent", "styloguard/"+version)
	v.SetDefault("annotator.max_retries", 5)
	v.SetDefault("annotator.image", sidecar.DefaultImage)
	v.SetDefault("annotator.port", sidecar.DefaultPort)

	v.SetDefault("embedding.model_path", "")
	v.SetDefault("embedding.repo", "sentence-transformers/all-MiniLM-L6-v2")
	v.SetDefault("embedding.cache_dir", "models")
	v.SetDefault("embedding.max_sequence_length", embedding.DefaultMaxSequenceLength)
	v.SetDefault("embedding.stride", embedding.DefaultStride)
	v.SetDefault("embedding.session", string(types.SessionGo))
	v.SetDefault("embedding.ort_library_path", "")
	v.SetDefault("embedding.hub_token", "")

	v.SetDefault("store.data_dir", "data")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// loadConfig decodes v into a Config and fills credentials from the
// secrets directory.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	secrets.Apply(&cfg, loadedSecrets)
	if cfg.Annotator.Backend == types.AnnotatorRemote && cfg.Annotator.Endpoint == "" {
		cfg.Annotator.Endpoint = sidecar.Endpoint(cfg.Annotator.Port)
	}
	return cfg, nil
}

// currentConfig returns the active configuration.
func currentConfig() (types.Config, error) {
	return loadConfig(viper.GetViper())
}

// newLogger returns a slog logger writing to w in the configured format.
// Unknown levels fall back to info.
func newLogger(cfg types.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
