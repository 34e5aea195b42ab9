// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package features computes the fixed set of twenty stylometric features
// of a text and projects them into a normalised feature vector.
package features

import (
	"maps"
	"slices"
	"sort"

	"github.com/pdiddy/styloguard/pkg/types"
)

// Name identifies one of the stylometric features.
type Name string

const (
	TotalWordCount           Name = "Total Word Count"
	UniqueWordCount          Name = "Unique Word Count"
	AverageWordLength        Name = "Average Word Length"
	TypeTokenRatio           Name = "Type-Token Ratio"
	HapaxLegomenonRate       Name = "Hapax Legomenon Rate"
	StopwordCount            Name = "Stopword Count"
	ContractionCount         Name = "Contraction Count"
	EmotionWordCount         Name = "Emotion Word Count"
	Polarity                 Name = "Polarity (TextBlob)"
	VaderCompound            Name = "Vader Compound"
	GunningFogScore          Name = "GunningFog Score"
	FleschReadingEase        Name = "Flesch Reading Ease"
	FirstPersonCount         Name = "First Person Count"
	PersonEntities           Name = "Person Entities"
	WordsPerSentence         Name = "Words per Sentence"
	SentenceStructure        Name = "Sentence Structure"
	PunctuationUsage         Name = "Punctuation Usage"
	TopicsAndPhrases         Name = "Topics and Phrases"
	POSDistribution          Name = "POS Distribution"
	IdiosyncraticExpressions Name = "Idiosyncratic Expressions"
)

// Names lists every feature in report order.
var Names = []Name{
	TotalWordCount,
	UniqueWordCount,
	AverageWordLength,
	TypeTokenRatio,
	HapaxLegomenonRate,
	StopwordCount,
	ContractionCount,
	EmotionWordCount,
	Polarity,
	VaderCompound,
	GunningFogScore,
	FleschReadingEase,
	FirstPersonCount,
	PersonEntities,
	WordsPerSentence,
	SentenceStructure,
	PunctuationUsage,
	TopicsAndPhrases,
	POSDistribution,
	IdiosyncraticExpressions,
}

// Key names a sub-value of a feature.
type Key string

const (
	KeyCount                  Key = "Count"
	KeyValue                  Key = "Value"
	KeyScore                  Key = "Score"
	KeyAverage                Key = "Average"
	KeySentenceLengthVariance Key = "Sentence Length Variance"
	KeyNounChunks             Key = "Noun Chunks"
	KeyCounts                 Key = "Counts"
	KeyRepeatedBigramsCount   Key = "Repeated Bigrams Count"
	KeyRepeatedBigramsList    Key = "Repeated Bigrams List"
	KeyNote                   Key = "Note"
)

// ScalarPriority is the order in which sub-value keys are tried when a
// single comparable scalar is needed for a feature.
var ScalarPriority = []Key{KeyCount, KeyValue, KeyScore, KeyAverage}

// POSTags is the fixed key order of the POS Distribution counts.
var POSTags = []types.POS{
	types.POSVerb,
	types.POSNoun,
	types.POSAdj,
	types.POSCConj,
	types.POSAdv,
	types.POSPron,
}

// Feature is one named feature with its scalar sub-value (if any), its
// structured sub-values (if any) and a static explanatory note.
type Feature struct {
	Name Name

	// Key is the scalar sub-value key; empty when the feature carries only
	// structured values (POS Distribution).
	Key   Key
	Value float64

	// Counts holds POS Distribution counts keyed by coarse tag.
	Counts map[types.POS]int

	// List holds the Repeated Bigrams List of Idiosyncratic Expressions.
	List []string

	Note string
}

// Scalar returns the scalar sub-value stored under key.
func (f Feature) Scalar(key Key) (float64, bool) {
	if f.Key == "" || f.Key != key {
		return 0, false
	}
	return f.Value, true
}

// Canonical returns the first scalar sub-value of f whose key appears in
// priority, trying keys in order. It reports false when none of the keys
// is present; callers skip such features.
func Canonical(f Feature, priority []Key) (float64, Key, bool) {
	for _, k := range priority {
		if v, ok := f.Scalar(k); ok {
			return v, k, true
		}
	}
	return 0, "", false
}

// FeatureSet is an immutable collection of features keyed by name.
type FeatureSet struct {
	order  []Name
	byName map[Name]Feature
}

// NewFeatureSet builds a FeatureSet from fs. Known feature names are kept in
// report order; any other names follow in lexical order. A later feature
// with the same name replaces an earlier one.
func NewFeatureSet(fs ...Feature) FeatureSet {
	byName := make(map[Name]Feature, len(fs))
	for _, f := range fs {
		byName[f.Name] = f
	}
	order := make([]Name, 0, len(byName))
	for _, n := range Names {
		if _, ok := byName[n]; ok {
			order = append(order, n)
		}
	}
	var extra []Name
	for n := range byName {
		if !slices.Contains(Names, n) {
			extra = append(extra, n)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	order = append(order, extra...)
	return FeatureSet{order: order, byName: byName}
}

// Len returns the number of features in the set.
func (s FeatureSet) Len() int { return len(s.order) }

// Get returns a copy of the named feature.
func (s FeatureSet) Get(name Name) (Feature, bool) {
	f, ok := s.byName[name]
	if !ok {
		return Feature{}, false
	}
	f.Counts = maps.Clone(f.Counts)
	f.List = slices.Clone(f.List)
	return f, true
}

// Value returns the scalar sub-value name/key, or 0 when either is missing.
func (s FeatureSet) Value(name Name, key Key) float64 {
	f, ok := s.byName[name]
	if !ok {
		return 0
	}
	v, _ := f.Scalar(key)
	return v
}

// All returns copies of every feature in set order.
func (s FeatureSet) All() []Feature {
	out := make([]Feature, 0, len(s.order))
	for _, n := range s.order {
		f, _ := s.Get(n)
		out = append(out, f)
	}
	return out
}
