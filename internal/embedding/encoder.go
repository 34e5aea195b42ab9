// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:generate go run go.uber.org/mock/mockgen -source=encoder.go -destination=../mocks/mock_encoder.go -package=mocks

package embedding

import (
	"context"
	"fmt"
	"sync"

	"github.com/pdiddy/styloguard/pkg/types"
)

// SentenceEncoder is a subword tokenizer paired with a dense sentence
// encoder. Implementations must be safe for concurrent use once loaded.
type SentenceEncoder interface {
	// MaxSequenceLength is the encoder's context limit in subword tokens.
	MaxSequenceLength() int

	// Tokenize returns the id sequence of text including special tokens.
	Tokenize(text string) ([]int, error)

	// Decode turns ids back into text, skipping special tokens.
	Decode(ids []int) string

	// Encode returns the dense embedding of text. Input longer than the
	// context limit is truncated.
	Encode(ctx context.Context, text string) ([]float32, error)
}

// Loader builds a SentenceEncoder.
type Loader func() (SentenceEncoder, error)

// Handle is a process-scoped, lazily loaded encoder. The loader runs at
// most once; its result, including a failure, is returned to every caller.
type Handle struct {
	load Loader
	once sync.Once
	enc  SentenceEncoder
	err  error
}

// NewHandle returns a Handle that calls load on first use.
func NewHandle(load Loader) *Handle {
	return &Handle{load: load}
}

// Static returns a Handle already holding enc.
func Static(enc SentenceEncoder) *Handle {
	h := &Handle{enc: enc}
	h.once.Do(func() {})
	return h
}

// Encoder returns the loaded encoder, loading it on the first call.
func (h *Handle) Encoder() (SentenceEncoder, error) {
	h.once.Do(func() {
		if h.load == nil {
			h.err = fmt.Errorf("loading sentence encoder: %w: no loader configured", types.ErrCollaboratorUnavailable)
			return
		}
		enc, err := h.load()
		if err != nil {
			h.err = fmt.Errorf("loading sentence encoder: %w: %w", types.ErrCollaboratorUnavailable, err)
			return
		}
		h.enc = enc
	})
	return h.enc, h.err
}
