// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import "gonum.org/v1/gonum/floats"

// Dimensions is the length of a feature vector.
const Dimensions = 24

type projection struct {
	name Name
	key  Key
}

// vectorOrder is the scalar half of the projection; POS counts follow in
// POSTags order.
var vectorOrder = []projection{
	{UniqueWordCount, KeyCount},
	{AverageWordLength, KeyValue},
	{TypeTokenRatio, KeyValue},
	{HapaxLegomenonRate, KeyValue},
	{StopwordCount, KeyCount},
	{ContractionCount, KeyCount},
	{EmotionWordCount, KeyCount},
	{Polarity, KeyValue},
	{VaderCompound, KeyValue},
	{GunningFogScore, KeyScore},
	{FleschReadingEase, KeyValue},
	{FirstPersonCount, KeyCount},
	{PersonEntities, KeyCount},
	{WordsPerSentence, KeyAverage},
	{SentenceStructure, KeySentenceLengthVariance},
	{PunctuationUsage, KeyCount},
	{TopicsAndPhrases, KeyNounChunks},
	{IdiosyncraticExpressions, KeyRepeatedBigramsCount},
}

// Vectorize projects fs onto a fixed 24-dimension vector and scales it to
// unit L2 norm. Missing sub-values are 0; an all-zero vector is returned
// unchanged.
func Vectorize(fs FeatureSet) []float64 {
	v := make([]float64, 0, Dimensions)
	for _, p := range vectorOrder {
		v = append(v, fs.Value(p.name, p.key))
	}
	pos := fs.byName[POSDistribution]
	for _, tag := range POSTags {
		v = append(v, float64(pos.Counts[tag]))
	}

	if norm := floats.Norm(v, 2); norm > 0 {
		floats.Scale(1/norm, v)
	}
	return v
}
