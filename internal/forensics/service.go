// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package forensics exposes the analysis entry points: stylometric feature
// extraction, weighted feature similarity and masked-embedding similarity.
package forensics

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/pdiddy/styloguard/internal/embedding"
	"github.com/pdiddy/styloguard/internal/features"
	"github.com/pdiddy/styloguard/internal/nlp"
	"github.com/pdiddy/styloguard/internal/similarity"
	"github.com/pdiddy/styloguard/pkg/types"
)

// Service wires the annotation, sentiment and embedding collaborators to
// the feature extractor and scorers. It holds no per-call state.
type Service struct {
	annotator nlp.Annotator
	sentiment nlp.SentimentScorer
	scorer    *embedding.Scorer
	weights   similarity.WeightTable
	log       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithScorer enables EmbeddingSimilarity.
func WithScorer(s *embedding.Scorer) Option {
	return func(svc *Service) { svc.scorer = s }
}

// WithWeights replaces the default weight table.
func WithWeights(w similarity.WeightTable) Option {
	return func(svc *Service) { svc.weights = w }
}

// WithLogger sets the logger used for warnings.
func WithLogger(l *slog.Logger) Option {
	return func(svc *Service) { svc.log = l }
}

// New returns a Service using annotator and sentiment.
func New(annotator nlp.Annotator, sentiment nlp.SentimentScorer, opts ...Option) *Service {
	svc := &Service{
		annotator: annotator,
		sentiment: sentiment,
		weights:   similarity.DefaultWeights,
		log:       slog.Default(),
	}
	for _, o := range opts {
		o(svc)
	}
	return svc
}

// AnalyzeText returns the stylometric features of text. Blank text yields
// the all-zero feature set without consulting any collaborator.
func (s *Service) AnalyzeText(ctx context.Context, text string) (features.FeatureSet, error) {
	if strings.TrimSpace(text) == "" {
		return features.Empty(), nil
	}
	s.checkLanguage(text)

	doc, err := s.annotator.Annotate(ctx, text)
	if err != nil {
		return features.FeatureSet{}, fmt.Errorf("annotating text: %w", err)
	}
	sent, err := s.sentiment.Score(text)
	if err != nil {
		return features.FeatureSet{}, fmt.Errorf("scoring sentiment: %w", err)
	}
	return features.Extract(doc, sent), nil
}

// FeatureSimilarity compares two feature sets with the service's weights.
func (s *Service) FeatureSimilarity(ref, test features.FeatureSet) similarity.Comparison {
	return similarity.Compare(ref, test, s.weights)
}

// CompareTexts analyses both texts and compares their features.
func (s *Service) CompareTexts(ctx context.Context, ref, test string) (similarity.Comparison, error) {
	a, err := s.AnalyzeText(ctx, ref)
	if err != nil {
		return similarity.Comparison{}, fmt.Errorf("reference text: %w", err)
	}
	b, err := s.AnalyzeText(ctx, test)
	if err != nil {
		return similarity.Comparison{}, fmt.Errorf("test text: %w", err)
	}
	return s.FeatureSimilarity(a, b), nil
}

// EmbeddingSimilarity returns the cosine similarity of the masked
// embeddings of a and b.
func (s *Service) EmbeddingSimilarity(ctx context.Context, a, b string) (float64, error) {
	if s.scorer == nil {
		return 0, fmt.Errorf("embedding similarity: %w: no sentence encoder configured", types.ErrCollaboratorUnavailable)
	}
	score, err := s.scorer.Similarity(ctx, a, b)
	if err != nil {
		return 0, fmt.Errorf("embedding similarity: %w", err)
	}
	return score, nil
}

// Vector returns the normalised feature vector of text.
func (s *Service) Vector(ctx context.Context, text string) ([]float64, error) {
	fs, err := s.AnalyzeText(ctx, text)
	if err != nil {
		return nil, err
	}
	return features.Vectorize(fs), nil
}

// Language returns the ISO 639-1 code of the detected language of text and
// whether the detection is reliable.
func Language(text string) (string, bool) {
	info := whatlanggo.Detect(text)
	return info.Lang.Iso6391(), info.IsReliable()
}

// checkLanguage warns when text is reliably detected as something other
// than English. Analysis proceeds either way.
func (s *Service) checkLanguage(text string) {
	lang, reliable := Language(text)
	if reliable && lang != "en" {
		s.log.Warn("text does not look like English; features may be unreliable", "language", lang)
	}
}
