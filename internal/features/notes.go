// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

// notes holds the static explanation shown next to each feature.
var notes = map[Name]string{
	TotalWordCount:           "Total word count for the essay.",
	UniqueWordCount:          "Total distinct words. Range: 0 to total words; higher implies broader vocabulary.",
	AverageWordLength:        "Mean number of characters per word; larger values suggest more complex vocabulary.",
	TypeTokenRatio:           "The ratio of number of unique words to the number of total words (0-1). Higher value suggests greater lexical diversity",
	HapaxLegomenonRate:       "Proportion of words appearing once (0–1); closer to 1 indicates more unique words.",
	StopwordCount:            "Number of common function words; higher value suggests that there are more words than necessary.",
	ContractionCount:         "Number of contractions (e.g., don't, I'm); may signal informal style.",
	EmotionWordCount:         "Frequency of emotion-related words from an expanded lexicon.",
	Polarity:                 "Sentiment polarity between -1 (very negative) and +1 (very positive), with 0 as neutral.",
	VaderCompound:            "Sentiment polarity from Vader Compound between -1 (very negative) and +1 (very positive), with 0 as neutral.",
	GunningFogScore:          "Readability complexity; typically from ~5 (easy) to 20+ (difficult).",
	FleschReadingEase:        "Readability on a scale from 0 to 100; higher scores indicate easier text.",
	FirstPersonCount:         "Count of first-person pronouns (e.g., I, we); higher may indicate personal style.",
	PersonEntities:           "Number of entities tagged as PERSON.",
	WordsPerSentence:         "Average count of words per sentence.",
	SentenceStructure:        "Variance in sentence lengths; higher values indicate greater variability.",
	PunctuationUsage:         "Total number of punctuation marks.",
	TopicsAndPhrases:         "Count of noun phrases, reflecting descriptive detail.",
	POSDistribution:          "Frequencies of various parts of speech (e.g., VERB, NOUN, ADJ, etc.).",
	IdiosyncraticExpressions: "Count and list of repeated function-word bigrams; higher counts indicate recurring stylistic patterns.",
}

// Note returns the static explanation for a feature name.
func Note(name Name) string {
	return notes[name]
}
