// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/blevesearch/bleve/v2/analysis"
	bleveen "github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/jdkato/prose/v2"

	"github.com/pdiddy/styloguard/pkg/types"
)

// Native annotates English text in-process. Tokens, Penn tags and PERSON
// entities come from prose, lemmas from golem and stop words from the bleve
// English stop list. The lemmatiser and stop list load once on first use.
type Native struct {
	once  sync.Once
	lem   *golem.Lemmatizer
	stops analysis.TokenMap
	err   error
}

// NewNative returns a Native annotator.
func NewNative() *Native {
	return &Native{}
}

func (n *Native) load() error {
	n.once.Do(func() {
		lem, err := golem.New(en.New())
		if err != nil {
			n.err = fmt.Errorf("loading lemmatizer: %w: %w", types.ErrCollaboratorUnavailable, err)
			return
		}
		stops := analysis.NewTokenMap()
		if err := stops.LoadBytes(bleveen.EnglishStopWords); err != nil {
			n.err = fmt.Errorf("loading stop words: %w: %w", types.ErrCollaboratorUnavailable, err)
			return
		}
		n.lem = lem
		n.stops = stops
	})
	return n.err
}

// Annotate implements Annotator.
func (n *Native) Annotate(ctx context.Context, text string) (types.AnnotatedDocument, error) {
	var doc types.AnnotatedDocument
	if strings.TrimSpace(text) == "" {
		return doc, nil
	}
	if err := n.load(); err != nil {
		return doc, err
	}

	seg, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return doc, fmt.Errorf("segmenting: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return doc, err
	}

	// Sentences are tagged one at a time; a span covers exactly the tokens
	// of its sentence.
	for _, sent := range seg.Sentences() {
		if err := ctx.Err(); err != nil {
			return types.AnnotatedDocument{}, err
		}
		tagged, err := prose.NewDocument(sent.Text, prose.WithSegmentation(false))
		if err != nil {
			return types.AnnotatedDocument{}, fmt.Errorf("tagging: %w", err)
		}
		ptoks := tagged.Tokens()
		if len(ptoks) == 0 {
			continue
		}
		base := len(doc.Tokens)
		for _, pt := range ptoks {
			doc.Tokens = append(doc.Tokens, n.token(pt))
		}
		sp := types.Span{Start: base, End: len(doc.Tokens)}
		doc.Sentences = append(doc.Sentences, sp)
		doc.NounChunks = append(doc.NounChunks, NounChunks(doc.Tokens[sp.Start:sp.End], sp.Start)...)
		doc.Entities = append(doc.Entities, entitySpans(ptoks, base)...)
	}
	return doc, nil
}

func (n *Native) token(pt prose.Token) types.Token {
	lower := strings.ToLower(pt.Text)
	lemma := lower
	if isAlpha(pt.Text) {
		lemma = strings.ToLower(n.lem.Lemma(lower))
	}
	return types.Token{
		Text:    pt.Text,
		Lower:   lower,
		Lemma:   lemma,
		POS:     Universal(pt.Tag, lemma),
		IsStop:  n.stops[lower],
		IsAlpha: isAlpha(pt.Text),
	}
}

// entitySpans groups IOB-labelled tokens (B-PERSON, I-PERSON, ...) into
// entity spans. Span offsets are shifted by base.
func entitySpans(tokens []prose.Token, base int) []types.EntitySpan {
	var out []types.EntitySpan
	for i := 0; i < len(tokens); i++ {
		label, ok := strings.CutPrefix(tokens[i].Label, "B-")
		if !ok {
			continue
		}
		end := i + 1
		for end < len(tokens) && tokens[end].Label == "I-"+label {
			end++
		}
		out = append(out, types.EntitySpan{Span: types.Span{Start: base + i, End: base + end}, Label: label})
		i = end - 1
	}
	return out
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
