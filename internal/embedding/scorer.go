// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package embedding scores the stylistic similarity of two texts as the
// cosine of their mean chunk embeddings after content words are masked.
package embedding

import (
	"context"
	"fmt"
	"strings"

	"github.com/viterin/vek/vek32"

	"github.com/pdiddy/styloguard/internal/nlp"
	"github.com/pdiddy/styloguard/pkg/types"
)

// DefaultStride is the overlap in tokens between consecutive windows.
const DefaultStride = 50

var contentTags = map[types.POS]bool{
	types.POSNoun:  true,
	types.POSVerb:  true,
	types.POSPropn: true,
	types.POSAdj:   true,
	types.POSAdv:   true,
}

// Mask replaces every content word with a placeholder naming its tag, for
// example "<NOUN>", keeps every other token's surface text and joins the
// result with single spaces.
func Mask(doc types.AnnotatedDocument) string {
	parts := make([]string, 0, len(doc.Tokens))
	for _, t := range doc.Tokens {
		if contentTags[t.POS] {
			parts = append(parts, "<"+string(t.POS)+">")
			continue
		}
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}

// Window is a half-open range [Start, End) of token offsets.
type Window struct {
	Start int
	End   int
}

// Windows splits a sequence of total tokens into windows of at most maxLen
// tokens, each starting maxLen-stride after the previous one. A sequence no
// longer than maxLen yields one window; an empty one yields none.
func Windows(total, maxLen, stride int) []Window {
	if total <= 0 {
		return nil
	}
	if maxLen <= 0 {
		maxLen = total
	}
	step := maxLen - stride
	if step < 1 {
		step = 1
	}
	var out []Window
	for i := 0; i < total; i += step {
		out = append(out, Window{Start: i, End: min(i+maxLen, total)})
	}
	return out
}

// Scorer computes masked-embedding similarity.
type Scorer struct {
	handle    *Handle
	annotator nlp.Annotator
	stride    int
	progress  func(done, total int)
}

// NewScorer returns a Scorer that annotates with annotator and encodes with
// the encoder held by handle. A stride of 0 uses DefaultStride.
func NewScorer(handle *Handle, annotator nlp.Annotator, stride int) *Scorer {
	if stride <= 0 {
		stride = DefaultStride
	}
	return &Scorer{handle: handle, annotator: annotator, stride: stride}
}

// WithProgress returns a copy of s that calls fn after each chunk is encoded.
func (s *Scorer) WithProgress(fn func(done, total int)) *Scorer {
	cp := *s
	cp.progress = fn
	return &cp
}

// Embed returns the element-wise mean of the embeddings of the overlapping
// windows of text. Text that tokenizes to nothing is encoded directly.
func (s *Scorer) Embed(ctx context.Context, text string) ([]float32, error) {
	enc, err := s.handle.Encoder()
	if err != nil {
		return nil, err
	}

	ids, err := enc.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("tokenizing: %w", err)
	}

	windows := Windows(len(ids), enc.MaxSequenceLength(), s.stride)
	if len(windows) == 0 {
		vec, err := enc.Encode(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("encoding: %w", err)
		}
		return vec, nil
	}

	var sum []float32
	for i, w := range windows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chunk := enc.Decode(ids[w.Start:w.End])
		vec, err := enc.Encode(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("encoding chunk %d/%d: %w", i+1, len(windows), err)
		}
		if sum == nil {
			sum = make([]float32, len(vec))
		}
		if len(vec) != len(sum) {
			return nil, fmt.Errorf("chunk %d: embedding dimension %d, want %d", i+1, len(vec), len(sum))
		}
		vek32.Add_Inplace(sum, vec)
		if s.progress != nil {
			s.progress(i+1, len(windows))
		}
	}
	vek32.MulNumber_Inplace(sum, 1/float32(len(windows)))
	return sum, nil
}

// Similarity annotates and masks both texts, embeds them and returns the
// cosine of the two embeddings.
func (s *Scorer) Similarity(ctx context.Context, a, b string) (float64, error) {
	ea, err := s.embedText(ctx, a)
	if err != nil {
		return 0, err
	}
	eb, err := s.embedText(ctx, b)
	if err != nil {
		return 0, err
	}
	if len(ea) != len(eb) {
		return 0, fmt.Errorf("embedding dimensions differ: %d and %d", len(ea), len(eb))
	}
	return Cosine(ea, eb), nil
}

func (s *Scorer) embedText(ctx context.Context, text string) ([]float32, error) {
	doc, err := s.annotator.Annotate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("annotating: %w", err)
	}
	return s.Embed(ctx, Mask(doc))
}

// Cosine returns the cosine similarity of two equal-length vectors, or 0
// when either has zero norm.
func Cosine(a, b []float32) float64 {
	na, nb := vek32.Norm(a), vek32.Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return float64(vek32.Dot(a, b) / (na * nb))
}
