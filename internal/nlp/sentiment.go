// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"github.com/jonreiter/govader"

	"github.com/pdiddy/styloguard/pkg/types"
)

// Vader scores sentiment with the VADER lexicon. Compound is VADER's
// normalised compound score; Polarity is the positive proportion minus the
// negative proportion.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader returns a Vader scorer.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements SentimentScorer.
func (v *Vader) Score(text string) (types.Sentiment, error) {
	s := v.analyzer.PolarityScores(text)
	return types.Sentiment{
		Polarity: clamp(s.Positive - s.Negative),
		Compound: clamp(s.Compound),
	}, nil
}

func clamp(x float64) float64 {
	return max(-1, min(1, x))
}
