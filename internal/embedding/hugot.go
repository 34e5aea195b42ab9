// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package embedding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/options"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"

	"github.com/pdiddy/styloguard/pkg/types"
)

// DefaultMaxSequenceLength is used when the configuration leaves it unset.
const DefaultMaxSequenceLength = 512

// HugotEncoder runs a sentence-transformers model through a hugot
// feature-extraction pipeline. Windowing uses the model's own
// tokenizer.json so token ids match what the pipeline sees.
type HugotEncoder struct {
	session  *hugot.Session
	pipeline *pipelines.FeatureExtractionPipeline
	tk       *tokenizer.Tokenizer
	maxLen   int
}

// ModelDir returns the directory holding the configured model: ModelPath
// when set, otherwise the repo's download directory under CacheDir.
func ModelDir(cfg types.EmbeddingConfig) string {
	if cfg.ModelPath != "" {
		return cfg.ModelPath
	}
	return filepath.Join(cfg.CacheDir, strings.ReplaceAll(cfg.Repo, "/", "_"))
}

// NewHugotEncoder loads the model and tokenizer found in ModelDir(cfg).
func NewHugotEncoder(cfg types.EmbeddingConfig) (*HugotEncoder, error) {
	dir := ModelDir(cfg)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("model directory %s: %w (run \"styloguard model pull\")", dir, err)
	}

	tk, err := pretrained.FromFile(filepath.Join(dir, "tokenizer.json"))
	if err != nil {
		return nil, fmt.Errorf("loading tokenizer: %w", err)
	}
	tk.WithTruncation(nil)
	tk.WithPadding(nil)

	session, err := newSession(cfg)
	if err != nil {
		return nil, err
	}

	pipeline, err := hugot.NewPipeline(session, hugot.FeatureExtractionConfig{
		ModelPath: dir,
		Name:      "styloguard-" + filepath.Base(dir),
	})
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("creating pipeline: %w", err)
	}

	maxLen := cfg.MaxSequenceLength
	if maxLen <= 0 {
		maxLen = DefaultMaxSequenceLength
	}
	return &HugotEncoder{session: session, pipeline: pipeline, tk: tk, maxLen: maxLen}, nil
}

func newSession(cfg types.EmbeddingConfig) (*hugot.Session, error) {
	switch cfg.Session {
	case types.SessionORT:
		opts := []options.WithOption{options.WithIntraOpNumThreads(runtime.NumCPU())}
		if cfg.OrtLibraryPath != "" {
			opts = append(opts, options.WithOnnxLibraryPath(cfg.OrtLibraryPath))
		}
		session, err := hugot.NewORTSession(opts...)
		if err != nil {
			return nil, fmt.Errorf("creating ORT session: %w", err)
		}
		return session, nil
	case types.SessionGo, "":
		session, err := hugot.NewGoSession()
		if err != nil {
			return nil, fmt.Errorf("creating Go session: %w", err)
		}
		return session, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session)
	}
}

// MaxSequenceLength implements SentenceEncoder.
func (e *HugotEncoder) MaxSequenceLength() int { return e.maxLen }

// Tokenize implements SentenceEncoder.
func (e *HugotEncoder) Tokenize(text string) ([]int, error) {
	en, err := e.tk.EncodeSingle(text, true)
	if err != nil {
		return nil, err
	}
	return en.Ids, nil
}

// Decode implements SentenceEncoder.
func (e *HugotEncoder) Decode(ids []int) string {
	return e.tk.Decode(ids, true)
}

// Encode implements SentenceEncoder.
func (e *HugotEncoder) Encode(_ context.Context, text string) ([]float32, error) {
	out, err := e.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("inference: %w", err)
	}
	if len(out.Embeddings) == 0 {
		return nil, errors.New("no embedding returned")
	}
	return out.Embeddings[0], nil
}

// Close releases the inference session.
func (e *HugotEncoder) Close() error {
	if e.session != nil {
		e.session.Destroy()
		e.session = nil
	}
	return nil
}

// Pull downloads cfg.Repo from the HuggingFace hub into cfg.CacheDir and
// returns the model directory.
func Pull(cfg types.EmbeddingConfig, w io.Writer) (string, error) {
	if cfg.Repo == "" {
		return "", errors.New("no model repository configured")
	}
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("creating cache dir: %w", err)
	}

	opts := hugot.NewDownloadOptions()
	if cfg.HubToken != "" {
		opts.AuthToken = cfg.HubToken
	}

	fmt.Fprintf(w, "pulling %s into %s\n", cfg.Repo, cfg.CacheDir)
	dir, err := hugot.DownloadModel(cfg.Repo, cfg.CacheDir, opts)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", cfg.Repo, err)
	}
	fmt.Fprintf(w, "  model ready at %s\n", dir)
	return dir, nil
}
