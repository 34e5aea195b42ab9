// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/styloguard/internal/features"
	"github.com/pdiddy/styloguard/pkg/types"
)

func sample(words, fog, flesch, polarity float64) features.FeatureSet {
	return features.NewFeatureSet(
		features.Feature{Name: features.TotalWordCount, Key: features.KeyCount, Value: words},
		features.Feature{Name: features.GunningFogScore, Key: features.KeyScore, Value: fog},
		features.Feature{Name: features.FleschReadingEase, Key: features.KeyValue, Value: flesch},
		features.Feature{Name: features.Polarity, Key: features.KeyValue, Value: polarity},
		features.Feature{Name: features.WordsPerSentence, Key: features.KeyAverage, Value: words / 4},
		features.Feature{Name: features.SentenceStructure, Key: features.KeySentenceLengthVariance, Value: 3},
		features.Feature{Name: features.POSDistribution, Counts: map[types.POS]int{types.POSNoun: 4}},
		features.Feature{
			Name: features.IdiosyncraticExpressions, Key: features.KeyRepeatedBigramsCount,
			Value: 1, List: []string{"of the: 2"},
		},
	)
}

func TestRaw(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 float64
		want   float64
	}{
		{"both zero", 0, 0, 100},
		{"first zero", 0, 5, 0},
		{"second zero", 5, 0, 0},
		{"equal", 7, 7, 100},
		{"ratio", 50, 100, 50},
		{"rounded", 1, 3, 33.3},
		{"opposite signs", -0.2, 0.4, 0},
		{"both negative", -0.2, -0.4, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Raw(tt.v1, tt.v2))
		})
	}
}

func TestCompareSelfSimilarity(t *testing.T) {
	fs := sample(120, 9.5, 64.2, 0.3)
	cmp := Compare(fs, fs, DefaultWeights)
	require.NotEmpty(t, cmp.Scores)
	for _, s := range cmp.Scores {
		assert.Equal(t, 100.0, s.Raw, s.Name)
		assert.InDelta(t, 100*DefaultWeights.Normalized(s.Name), s.Weighted, 1e-9, s.Name)
	}
}

func TestCompareSkipsFeaturesWithoutPriorityScalar(t *testing.T) {
	fs := sample(120, 9.5, 64.2, 0.3)
	cmp := Compare(fs, fs, DefaultWeights)

	_, ok := cmp.Get(features.SentenceStructure)
	assert.False(t, ok)
	_, ok = cmp.Get(features.POSDistribution)
	assert.False(t, ok)
	_, ok = cmp.Get(features.IdiosyncraticExpressions)
	assert.False(t, ok)

	names := make([]features.Name, 0, len(cmp.Scores))
	for _, s := range cmp.Scores {
		names = append(names, s.Name)
	}
	assert.Equal(t, []features.Name{
		features.TotalWordCount,
		features.Polarity,
		features.GunningFogScore,
		features.FleschReadingEase,
		features.WordsPerSentence,
	}, names)
}

func TestCompareIsSymmetricOnRaw(t *testing.T) {
	a := sample(120, 9.5, 64.2, 0.3)
	b := sample(80, 12.25, 51.0, 0.1)
	ab := Compare(a, b, DefaultWeights)
	ba := Compare(b, a, DefaultWeights)
	require.Len(t, ba.Scores, len(ab.Scores))
	for i := range ab.Scores {
		assert.Equal(t, ab.Scores[i].Raw, ba.Scores[i].Raw, ab.Scores[i].Name)
	}
}

func TestCompareWeightNormalization(t *testing.T) {
	a := sample(120, 10, 60, 0.3)
	b := sample(60, 5, 30, 0.3)
	cmp := Compare(a, b, DefaultWeights)

	fog, ok := cmp.Get(features.GunningFogScore)
	require.True(t, ok)
	assert.Equal(t, 50.0, fog.Raw)
	assert.InDelta(t, 50.0, fog.Weighted, 1e-9)

	words, ok := cmp.Get(features.TotalWordCount)
	require.True(t, ok)
	assert.Equal(t, 50.0, words.Raw)
	assert.InDelta(t, 50.0/3, words.Weighted, 1e-9)
}

func TestCompareSkipsSchemaDrift(t *testing.T) {
	ref := sample(120, 10, 60, 0.3)
	test := features.NewFeatureSet(
		features.Feature{Name: features.TotalWordCount, Key: features.KeyCount, Value: 60},
		features.Feature{Name: features.GunningFogScore, Key: features.KeyValue, Value: 10},
	)
	cmp := Compare(ref, test, DefaultWeights)
	require.Len(t, cmp.Scores, 1)
	assert.Equal(t, features.TotalWordCount, cmp.Scores[0].Name)
}

func TestNormalized(t *testing.T) {
	assert.Equal(t, 1.0, DefaultWeights.Normalized(features.FleschReadingEase))
	assert.InDelta(t, 2.0/3, DefaultWeights.Normalized(features.TypeTokenRatio), 1e-12)
	assert.InDelta(t, 1.0/3, DefaultWeights.Normalized(features.StopwordCount), 1e-12)
	assert.Equal(t, 1.0, WeightTable{}.Normalized(features.StopwordCount))
}

func TestMean(t *testing.T) {
	assert.Zero(t, Comparison{}.Mean())
	c := Comparison{Scores: []Score{{Weighted: 100}, {Weighted: 50}}}
	assert.Equal(t, 75.0, c.Mean())
}
