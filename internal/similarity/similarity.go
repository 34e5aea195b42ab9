// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package similarity compares two feature sets feature by feature and
// weights the result by a fixed importance table.
package similarity

import (
	"math"

	"github.com/samber/lo"

	"github.com/pdiddy/styloguard/internal/features"
	"github.com/pdiddy/styloguard/internal/readability"
)

// WeightTable maps feature names to integer importance weights. Features
// not in the table weigh 1.
type WeightTable map[features.Name]int

// DefaultWeights favours readability and vocabulary measures.
var DefaultWeights = WeightTable{
	features.FleschReadingEase:  3,
	features.AverageWordLength:  3,
	features.GunningFogScore:    3,
	features.TypeTokenRatio:     2,
	features.HapaxLegomenonRate: 2,
}

// Normalized returns the weight of name divided by the table's maximum
// weight. An empty table normalises every feature to 1.
func (w WeightTable) Normalized(name features.Name) float64 {
	weight, ok := w[name]
	if !ok {
		weight = 1
	}
	return float64(weight) / float64(w.max())
}

func (w WeightTable) max() int {
	m := 1
	for _, v := range w {
		if v > m {
			m = v
		}
	}
	return m
}

// Score is the similarity of one feature.
type Score struct {
	Name     features.Name `json:"feature" yaml:"feature"`
	Key      features.Key  `json:"key" yaml:"key"`
	Raw      float64       `json:"raw_percent" yaml:"raw_percent"`
	Weighted float64       `json:"weighted_percent" yaml:"weighted_percent"`
}

// Comparison is the ordered per-feature result of Compare.
type Comparison struct {
	Scores []Score `json:"scores" yaml:"scores"`
}

// Get returns the score of the named feature.
func (c Comparison) Get(name features.Name) (Score, bool) {
	return lo.Find(c.Scores, func(s Score) bool { return s.Name == name })
}

// Mean returns the mean weighted percentage, or 0 for an empty comparison.
// It is a display aggregate only.
func (c Comparison) Mean() float64 {
	if len(c.Scores) == 0 {
		return 0
	}
	return lo.SumBy(c.Scores, func(s Score) float64 { return s.Weighted }) / float64(len(c.Scores))
}

// Compare scores every feature of ref against the same feature of test,
// in ref's order. The scalar compared is the first of Count, Value, Score
// and Average present on the reference feature; features without such a
// scalar, or missing it in test, are skipped.
func Compare(ref, test features.FeatureSet, table WeightTable) Comparison {
	var out Comparison
	for _, rf := range ref.All() {
		v1, key, ok := features.Canonical(rf, features.ScalarPriority)
		if !ok {
			continue
		}
		tf, ok := test.Get(rf.Name)
		if !ok {
			continue
		}
		v2, ok := tf.Scalar(key)
		if !ok {
			continue
		}
		raw := Raw(v1, v2)
		out.Scores = append(out.Scores, Score{
			Name:     rf.Name,
			Key:      key,
			Raw:      raw,
			Weighted: raw * table.Normalized(rf.Name),
		})
	}
	return out
}

// Raw returns the ratio similarity of two values as a percentage: 100 when
// both are zero, 0 when exactly one is, otherwise min/max*100 rounded to one
// decimal. Values of opposite sign score 0; two negative values are
// compared by magnitude so the result stays within [0, 100].
func Raw(v1, v2 float64) float64 {
	switch {
	case v1 == 0 && v2 == 0:
		return 100
	case v1 == 0 || v2 == 0:
		return 0
	case (v1 < 0) != (v2 < 0):
		return 0
	}
	a, b := math.Abs(v1), math.Abs(v2)
	return readability.Round(math.Min(a, b)/math.Max(a, b)*100, 1)
}
