// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/pdiddy/styloguard/internal/readability"
	"github.com/pdiddy/styloguard/pkg/types"
)

// asciiPunct is the set of characters counted by Punctuation Usage.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var firstPerson = map[string]bool{
	"i": true, "me": true, "my": true, "mine": true,
	"we": true, "us": true, "our": true, "ours": true,
}

// emotionLexicon is matched against lowercase lemmas.
var emotionLexicon = map[string]bool{
	"happy": true, "joy": true, "delight": true, "pleasure": true, "elated": true,
	"excited": true, "cheerful": true, "content": true,
	"sad": true, "sorrow": true, "grief": true, "mourn": true, "depressed": true,
	"gloomy": true, "melancholy": true,
	"angry": true, "anger": true, "furious": true, "irate": true, "annoyed": true,
	"fear": true, "fright": true, "dread": true, "scared": true, "terrified": true,
	"disgust": true, "repulsion": true, "revulsion": true, "dislike": true,
	"surprise": true, "astonishment": true, "amazement": true,
	"trust": true, "confidence": true, "admiration": true,
}

// Extract computes the twenty stylometric features of an annotated document.
// Sentiment is scored on the whole text by the caller. Every ratio is
// guarded, so an empty document yields a set of zeros.
func Extract(doc types.AnnotatedDocument, s types.Sentiment) FeatureSet {
	alpha := lo.Filter(doc.Tokens, func(t types.Token, _ int) bool { return t.IsAlpha })
	lowers := lo.Map(alpha, func(t types.Token, _ int) string { return strings.ToLower(t.Text) })
	freqs := lo.CountValues(lowers)

	totalWords := len(alpha)
	uniqueWords := len(freqs)
	hapax := lo.CountBy(lo.Values(freqs), func(c int) bool { return c == 1 })

	var avgLen, ttr, hapaxRate float64
	if totalWords > 0 {
		chars := lo.SumBy(alpha, func(t types.Token) int { return len([]rune(t.Text)) })
		avgLen = readability.Round(float64(chars)/float64(totalWords), 2)
		ttr = readability.Round(float64(uniqueWords)/float64(totalWords), 2)
		hapaxRate = readability.Round(float64(hapax)/float64(totalWords), 2)
	}

	syllables := lo.SumBy(alpha, func(t types.Token) int { return readability.CountSyllables(t.Text) })
	complexWords := lo.CountBy(alpha, func(t types.Token) bool { return readability.IsComplex(t.Text) })

	sentences := len(doc.Sentences)
	lengths := make([]float64, 0, sentences)
	for _, sp := range doc.Sentences {
		n := lo.CountBy(doc.SentenceTokens(sp), func(t types.Token) bool { return t.IsAlpha })
		lengths = append(lengths, float64(n))
	}
	var wps, variance float64
	if sentences > 0 {
		wps = readability.Round(float64(totalWords)/float64(sentences), 2)
		variance = readability.Round(stat.PopVariance(lengths, nil), 2)
	}

	stopwords := lo.CountBy(doc.Tokens, func(t types.Token) bool { return t.IsStop })
	contractions := lo.CountBy(doc.Tokens, func(t types.Token) bool { return strings.Contains(t.Text, "'") })
	emotions := lo.CountBy(doc.Tokens, func(t types.Token) bool { return emotionLexicon[strings.ToLower(t.Lemma)] })
	firstPersons := lo.CountBy(doc.Tokens, func(t types.Token) bool { return firstPerson[strings.ToLower(t.Text)] })
	punct := lo.CountBy(doc.Tokens, isPunctuation)
	persons := lo.CountBy(doc.Entities, func(e types.EntitySpan) bool { return e.Label == types.EntityPerson })

	posCounts := make(map[types.POS]int, len(POSTags))
	for _, tag := range POSTags {
		posCounts[tag] = 0
	}
	for _, t := range doc.Tokens {
		if _, ok := posCounts[t.POS]; ok {
			posCounts[t.POS]++
		}
	}

	bigrams := RepeatedBigrams(doc.Tokens)

	return NewFeatureSet(
		scalar(TotalWordCount, KeyCount, float64(totalWords)),
		scalar(UniqueWordCount, KeyCount, float64(uniqueWords)),
		scalar(AverageWordLength, KeyValue, avgLen),
		scalar(TypeTokenRatio, KeyValue, ttr),
		scalar(HapaxLegomenonRate, KeyValue, hapaxRate),
		scalar(StopwordCount, KeyCount, float64(stopwords)),
		scalar(ContractionCount, KeyCount, float64(contractions)),
		scalar(EmotionWordCount, KeyCount, float64(emotions)),
		scalar(Polarity, KeyValue, readability.Round(s.Polarity, 2)),
		scalar(VaderCompound, KeyValue, readability.Round(s.Compound, 2)),
		scalar(GunningFogScore, KeyScore, readability.GunningFog(totalWords, sentences, complexWords)),
		scalar(FleschReadingEase, KeyValue, readability.FleschReadingEase(sentences, totalWords, syllables)),
		scalar(FirstPersonCount, KeyCount, float64(firstPersons)),
		scalar(PersonEntities, KeyCount, float64(persons)),
		scalar(WordsPerSentence, KeyAverage, wps),
		scalar(SentenceStructure, KeySentenceLengthVariance, variance),
		scalar(PunctuationUsage, KeyCount, float64(punct)),
		scalar(TopicsAndPhrases, KeyNounChunks, float64(len(doc.NounChunks))),
		Feature{Name: POSDistribution, Counts: posCounts, Note: Note(POSDistribution)},
		Feature{
			Name:  IdiosyncraticExpressions,
			Key:   KeyRepeatedBigramsCount,
			Value: float64(len(bigrams)),
			List:  bigrams,
			Note:  Note(IdiosyncraticExpressions),
		},
	)
}

// Empty returns the feature set of a text with no tokens.
func Empty() FeatureSet {
	return Extract(types.AnnotatedDocument{}, types.Sentiment{})
}

func scalar(name Name, key Key, v float64) Feature {
	return Feature{Name: name, Key: key, Value: v, Note: Note(name)}
}

func isPunctuation(t types.Token) bool {
	return len(t.Text) == 1 && strings.Contains(asciiPunct, t.Text)
}
