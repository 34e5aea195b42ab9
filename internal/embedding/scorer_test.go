// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package embedding

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pdiddy/styloguard/internal/mocks"
	"github.com/pdiddy/styloguard/pkg/types"
)

// wordEncoder tokenizes on whitespace and embeds a text as letter counts
// folded into eight buckets.
type wordEncoder struct {
	mu     sync.Mutex
	vocab  map[string]int
	words  []string
	maxLen int
	calls  int
}

func newWordEncoder(maxLen int) *wordEncoder {
	return &wordEncoder{vocab: map[string]int{}, maxLen: maxLen}
}

func (e *wordEncoder) MaxSequenceLength() int { return e.maxLen }

func (e *wordEncoder) Tokenize(text string) ([]int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	var ids []int
	for _, w := range strings.Fields(text) {
		id, ok := e.vocab[w]
		if !ok {
			id = len(e.words)
			e.vocab[w] = id
			e.words = append(e.words, w)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (e *wordEncoder) Decode(ids []int) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = e.words[id]
	}
	return strings.Join(parts, " ")
}

func (e *wordEncoder) Encode(_ context.Context, text string) ([]float32, error) {
	e.mu.Lock()
	e.calls++
	e.mu.Unlock()
	v := make([]float32, 8)
	for _, r := range text {
		v[int(r)%8]++
	}
	return v, nil
}

func doc(words ...string) types.AnnotatedDocument {
	var d types.AnnotatedDocument
	for _, w := range words {
		d.Tokens = append(d.Tokens, types.Token{Text: w, POS: types.POSDet})
	}
	return d
}

func TestWindows(t *testing.T) {
	tests := []struct {
		name                string
		total, maxLen, step int
		want                []Window
	}{
		{"empty", 0, 512, 50, nil},
		{"short", 10, 512, 50, []Window{{0, 10}}},
		{"exactly max", 512, 512, 50, []Window{{0, 512}}},
		{"one over max", 513, 512, 50, []Window{{0, 512}, {462, 513}}},
		{"three windows", 1000, 512, 50, []Window{{0, 512}, {462, 974}, {924, 1000}}},
		{"stride not below max", 3, 2, 5, []Window{{0, 2}, {1, 3}, {2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Windows(tt.total, tt.maxLen, tt.step))
		})
	}
}

func TestMask(t *testing.T) {
	d := types.AnnotatedDocument{Tokens: []types.Token{
		{Text: "The", POS: types.POSDet},
		{Text: "quick", POS: types.POSAdj},
		{Text: "fox", POS: types.POSNoun},
		{Text: "Reynard", POS: types.POSPropn},
		{Text: "ran", POS: types.POSVerb},
		{Text: "very", POS: types.POSAdv},
		{Text: "to", POS: types.POSAdp},
		{Text: "us", POS: types.POSPron},
		{Text: ".", POS: types.POSPunct},
	}}
	assert.Equal(t, "The <ADJ> <NOUN> <PROPN> <VERB> <ADV> to us .", Mask(d))
	assert.Equal(t, "", Mask(types.AnnotatedDocument{}))
}

func TestEmbedSingleChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	enc := mocks.NewMockSentenceEncoder(ctrl)
	enc.EXPECT().Tokenize("a b c").Return([]int{101, 1, 2, 3, 102}, nil)
	enc.EXPECT().MaxSequenceLength().Return(512)
	enc.EXPECT().Decode([]int{101, 1, 2, 3, 102}).Return("a b c")
	enc.EXPECT().Encode(gomock.Any(), "a b c").Return([]float32{1, 2}, nil)

	s := NewScorer(Static(enc), nil, 0)
	got, err := s.Embed(context.Background(), "a b c")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, got)
}

func TestEmbedAveragesChunks(t *testing.T) {
	ctrl := gomock.NewController(t)
	enc := mocks.NewMockSentenceEncoder(ctrl)
	enc.EXPECT().Tokenize(gomock.Any()).Return([]int{0, 1, 2, 3, 4, 5}, nil)
	enc.EXPECT().MaxSequenceLength().Return(4)
	gomock.InOrder(
		enc.EXPECT().Decode([]int{0, 1, 2, 3}).Return("w0"),
		enc.EXPECT().Decode([]int{2, 3, 4, 5}).Return("w1"),
		enc.EXPECT().Decode([]int{4, 5}).Return("w2"),
	)
	enc.EXPECT().Encode(gomock.Any(), "w0").Return([]float32{3, 0}, nil)
	enc.EXPECT().Encode(gomock.Any(), "w1").Return([]float32{0, 3}, nil)
	enc.EXPECT().Encode(gomock.Any(), "w2").Return([]float32{3, 3}, nil)

	var progress [][2]int
	s := NewScorer(Static(enc), nil, 2).WithProgress(func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})
	got, err := s.Embed(context.Background(), "anything")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{2, 2}, got, 1e-6)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, progress)
}

func TestEmbedFallsBackWhenNothingTokenized(t *testing.T) {
	ctrl := gomock.NewController(t)
	enc := mocks.NewMockSentenceEncoder(ctrl)
	enc.EXPECT().Tokenize("").Return(nil, nil)
	enc.EXPECT().MaxSequenceLength().Return(512)
	enc.EXPECT().Encode(gomock.Any(), "").Return([]float32{0, 0}, nil)

	got, err := NewScorer(Static(enc), nil, 0).Embed(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0}, got)
}

func TestEmbedPropagatesEncodeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	enc := mocks.NewMockSentenceEncoder(ctrl)
	enc.EXPECT().Tokenize(gomock.Any()).Return([]int{1}, nil)
	enc.EXPECT().MaxSequenceLength().Return(512)
	enc.EXPECT().Decode(gomock.Any()).Return("x")
	enc.EXPECT().Encode(gomock.Any(), "x").Return(nil, errors.New("boom"))

	_, err := NewScorer(Static(enc), nil, 0).Embed(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestSimilaritySelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	ann := mocks.NewMockAnnotator(ctrl)
	text := "the cat and the dog and a bird of the sea"
	ann.EXPECT().Annotate(gomock.Any(), text).Return(doc(strings.Fields(text)...), nil).Times(2)

	s := NewScorer(Static(newWordEncoder(4)), ann, 2)
	score, err := s.Similarity(context.Background(), text, text)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, 0.99)
	assert.LessOrEqual(t, score, 1.0+1e-6)
}

func TestSimilarityAnnotatorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ann := mocks.NewMockAnnotator(ctrl)
	ann.EXPECT().Annotate(gomock.Any(), "a").Return(types.AnnotatedDocument{}, types.ErrCollaboratorUnavailable)

	_, err := NewScorer(Static(newWordEncoder(8)), ann, 0).Similarity(context.Background(), "a", "b")
	assert.ErrorIs(t, err, types.ErrCollaboratorUnavailable)
}

func TestHandleLoadsOnce(t *testing.T) {
	var loads int32
	h := NewHandle(func() (SentenceEncoder, error) {
		atomic.AddInt32(&loads, 1)
		return newWordEncoder(8), nil
	})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			enc, err := h.Encoder()
			assert.NoError(t, err)
			assert.NotNil(t, enc)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestHandleMemoisesFailure(t *testing.T) {
	var loads int32
	h := NewHandle(func() (SentenceEncoder, error) {
		atomic.AddInt32(&loads, 1)
		return nil, errors.New("model missing")
	})

	_, err1 := h.Encoder()
	_, err2 := h.Encoder()
	require.Error(t, err1)
	assert.ErrorIs(t, err1, types.ErrCollaboratorUnavailable)
	assert.Equal(t, err1, err2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))

	_, err := NewScorer(h, nil, 0).Embed(context.Background(), "text")
	assert.ErrorIs(t, err, types.ErrCollaboratorUnavailable)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 2, 3}, []float32{2, 4, 6}), 1e-6)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 1}))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandSameAuthor, BandFor(0.95))
	assert.Equal(t, BandSameAuthor, BandFor(0.9))
	assert.Equal(t, BandDifferentAuthor, BandFor(0.8))
}

func TestModelDir(t *testing.T) {
	assert.Equal(t, "/m", ModelDir(types.EmbeddingConfig{ModelPath: "/m", CacheDir: "/c", Repo: "a/b"}))
	assert.Equal(t, "/c/a_b", ModelDir(types.EmbeddingConfig{CacheDir: "/c", Repo: "a/b"}))
	assert.Equal(t, "models/sentence-transformers_all-MiniLM-L6-v2",
		ModelDir(types.EmbeddingConfig{CacheDir: "models", Repo: "sentence-transformers/all-MiniLM-L6-v2"}))
}
