// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:generate go run go.uber.org/mock/mockgen -source=annotator.go -destination=../mocks/mock_annotator.go -package=mocks

// Package nlp provides the annotation collaborators the analysis pipeline
// depends on: a tokenizer/tagger/entity recogniser producing an
// AnnotatedDocument, and a whole-text sentiment scorer.
package nlp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pdiddy/styloguard/pkg/types"
)

// Annotator turns raw text into tokens, sentences, noun chunks and named
// entities.
type Annotator interface {
	Annotate(ctx context.Context, text string) (types.AnnotatedDocument, error)
}

// SentimentScorer scores the sentiment of a whole text.
type SentimentScorer interface {
	Score(text string) (types.Sentiment, error)
}

// New returns the annotator selected by cfg.Backend.
func New(cfg types.AnnotatorConfig) (Annotator, error) {
	switch cfg.Backend {
	case types.AnnotatorNative, "":
		return NewNative(), nil
	case types.AnnotatorRemote:
		return NewRemote(cfg, &http.Client{Timeout: cfg.Timeout})
	default:
		return nil, fmt.Errorf("unknown annotator backend %q", cfg.Backend)
	}
}
