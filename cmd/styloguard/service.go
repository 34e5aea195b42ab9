// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pdiddy/styloguard/internal/convert"
	"github.com/pdiddy/styloguard/internal/embedding"
	"github.com/pdiddy/styloguard/internal/forensics"
	"github.com/pdiddy/styloguard/internal/nlp"
	"github.com/pdiddy/styloguard/pkg/types"
)

// newService builds the analysis service from cfg. When withEncoder is set
// the service also gets a masked-embedding scorer whose model loads on
// first use. The returned cleanup releases the model if it was loaded.
func newService(cfg types.Config, withEncoder bool) (*forensics.Service, func(), error) {
	annotator, err := nlp.New(cfg.Annotator)
	if err != nil {
		return nil, nil, fmt.Errorf("creating annotator: %w", err)
	}

	opts := []forensics.Option{forensics.WithLogger(slog.Default())}
	cleanup := func() {}

	if withEncoder {
		var loaded *embedding.HugotEncoder
		handle := embedding.NewHandle(func() (embedding.SentenceEncoder, error) {
			enc, err := embedding.NewHugotEncoder(cfg.Embedding)
			if err != nil {
				return nil, err
			}
			loaded = enc
			return enc, nil
		})
		scorer := embedding.NewScorer(handle, annotator, cfg.Embedding.Stride).
			WithProgress(func(done, total int) {
				slog.Debug("encoded chunk", "done", done, "total", total)
			})
		opts = append(opts, forensics.WithScorer(scorer))
		cleanup = func() {
			if loaded != nil {
				loaded.Close()
			}
		}
	}

	return forensics.New(annotator, nlp.NewVader(), opts...), cleanup, nil
}

// textInput returns inline text when set, otherwise the extracted text of
// path.
func textInput(inline, path, flag string) (string, error) {
	if strings.TrimSpace(inline) != "" {
		return inline, nil
	}
	if path == "" {
		return "", fmt.Errorf("--%s is required", flag)
	}
	if path == "-" {
		raw, err := readStdin()
		if err != nil {
			return "", err
		}
		return convert.Extract(raw, convert.MIMEText)
	}
	return convert.ExtractFile(path)
}

func readStdin() ([]byte, error) {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return raw, nil
}
