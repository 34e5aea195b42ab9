// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the styloguard pipeline:
// the annotated document produced by an NLP annotator, sentiment scores,
// student and essay records, and stage configuration.
package types

import "errors"

// ErrCollaboratorUnavailable is returned, wrapped with context, whenever an
// upstream capability (annotator, sentiment scorer, sentence encoder) cannot
// be reached or loaded. The core never degrades around it.
var ErrCollaboratorUnavailable = errors.New("collaborator unavailable")

// POS is a coarse, universal part-of-speech tag (e.g. "NOUN", "VERB").
type POS string

const (
	POSAdj   POS = "ADJ"
	POSAdp   POS = "ADP"
	POSAdv   POS = "ADV"
	POSAux   POS = "AUX"
	POSCConj POS = "CCONJ"
	POSDet   POS = "DET"
	POSIntj  POS = "INTJ"
	POSNoun  POS = "NOUN"
	POSNum   POS = "NUM"
	POSPart  POS = "PART"
	POSPron  POS = "PRON"
	POSPropn POS = "PROPN"
	POSPunct POS = "PUNCT"
	POSSConj POS = "SCONJ"
	POSSym   POS = "SYM"
	POSVerb  POS = "VERB"
	POSX     POS = "X"
)

// EntityPerson is the only entity label the feature extractor consumes.
const EntityPerson = "PERSON"

// Token is a single annotated token in reading order.
type Token struct {
	// Text is the raw surface text of the token.
	Text string `json:"text" yaml:"text"`

	// Lower is the lowercase form of Text.
	Lower string `json:"lower" yaml:"lower"`

	// Lemma is the dictionary form assigned by the annotator.
	Lemma string `json:"lemma" yaml:"lemma"`

	// POS is the coarse part-of-speech tag.
	POS POS `json:"pos" yaml:"pos"`

	// IsStop reports whether the token is a stop word.
	IsStop bool `json:"is_stop" yaml:"is_stop"`

	// IsAlpha reports whether the token consists only of letters.
	IsAlpha bool `json:"is_alpha" yaml:"is_alpha"`
}

// Span is a half-open range [Start, End) of token indices.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the number of tokens covered by the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// EntitySpan is a named-entity span with its label (e.g. "PERSON").
type EntitySpan struct {
	Span  `yaml:",inline"`
	Label string `json:"label" yaml:"label"`
}

// AnnotatedDocument is the output contract of an NLP annotator. Sentence
// spans partition Tokens in document order; token order is the reading
// order of the source text.
type AnnotatedDocument struct {
	Tokens     []Token      `json:"tokens" yaml:"tokens"`
	Sentences  []Span       `json:"sentences" yaml:"sentences"`
	NounChunks []Span       `json:"noun_chunks" yaml:"noun_chunks"`
	Entities   []EntitySpan `json:"entities" yaml:"entities"`
}

// SentenceTokens returns the tokens covered by the sentence span s.
// Out-of-range bounds are clipped.
func (d AnnotatedDocument) SentenceTokens(s Span) []Token {
	start, end := s.Start, s.End
	if start < 0 {
		start = 0
	}
	if end > len(d.Tokens) {
		end = len(d.Tokens)
	}
	if start >= end {
		return nil
	}
	return d.Tokens[start:end]
}

// Sentiment holds whole-text sentiment scores, each in [-1, 1].
type Sentiment struct {
	// Polarity is a lexicon polarity score (-1 very negative, +1 very positive).
	Polarity float64 `json:"polarity" yaml:"polarity"`

	// Compound is the normalised VADER compound score.
	Compound float64 `json:"compound" yaml:"compound"`
}
