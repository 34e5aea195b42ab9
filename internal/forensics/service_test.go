// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package forensics

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pdiddy/styloguard/internal/embedding"
	"github.com/pdiddy/styloguard/internal/features"
	"github.com/pdiddy/styloguard/internal/mocks"
	"github.com/pdiddy/styloguard/pkg/types"
)

const english = "The committee met on Tuesday to review the budget and the plans for next year."

func sampleDoc() types.AnnotatedDocument {
	words := []struct {
		text string
		pos  types.POS
		stop bool
	}{
		{"The", types.POSDet, true},
		{"committee", types.POSNoun, false},
		{"met", types.POSVerb, false},
		{"on", types.POSAdp, true},
		{"Tuesday", types.POSPropn, false},
		{".", types.POSPunct, false},
	}
	var d types.AnnotatedDocument
	for _, w := range words {
		d.Tokens = append(d.Tokens, types.Token{
			Text: w.text, Lemma: w.text, POS: w.pos, IsStop: w.stop, IsAlpha: w.text != ".",
		})
	}
	d.Sentences = []types.Span{{Start: 0, End: len(d.Tokens)}}
	return d
}

func TestAnalyzeText(t *testing.T) {
	ctrl := gomock.NewController(t)
	ann := mocks.NewMockAnnotator(ctrl)
	sent := mocks.NewMockSentimentScorer(ctrl)
	ann.EXPECT().Annotate(gomock.Any(), english).Return(sampleDoc(), nil)
	sent.EXPECT().Score(english).Return(types.Sentiment{Polarity: 0.25, Compound: 0.5}, nil)

	fs, err := New(ann, sent).AnalyzeText(context.Background(), english)
	require.NoError(t, err)
	assert.Equal(t, len(features.Names), fs.Len())
	assert.Equal(t, 5.0, fs.Value(features.TotalWordCount, features.KeyCount))
	assert.Equal(t, 0.5, fs.Value(features.VaderCompound, features.KeyValue))
	assert.Equal(t, 0.25, fs.Value(features.Polarity, features.KeyValue))
}

func TestAnalyzeTextBlankSkipsCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := New(mocks.NewMockAnnotator(ctrl), mocks.NewMockSentimentScorer(ctrl))

	fs, err := svc.AnalyzeText(context.Background(), "  \n\t")
	require.NoError(t, err)
	assert.Equal(t, features.Empty().All(), fs.All())
}

func TestAnalyzeTextCollaboratorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ann := mocks.NewMockAnnotator(ctrl)
	sent := mocks.NewMockSentimentScorer(ctrl)
	ann.EXPECT().Annotate(gomock.Any(), gomock.Any()).
		Return(types.AnnotatedDocument{}, types.ErrCollaboratorUnavailable)

	_, err := New(ann, sent).AnalyzeText(context.Background(), english)
	assert.ErrorIs(t, err, types.ErrCollaboratorUnavailable)

	ann.EXPECT().Annotate(gomock.Any(), gomock.Any()).Return(sampleDoc(), nil)
	sent.EXPECT().Score(gomock.Any()).Return(types.Sentiment{}, errors.New("lexicon missing"))
	_, err = New(ann, sent).AnalyzeText(context.Background(), english)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scoring sentiment")
}

func TestCompareTextsSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	ann := mocks.NewMockAnnotator(ctrl)
	sent := mocks.NewMockSentimentScorer(ctrl)
	ann.EXPECT().Annotate(gomock.Any(), english).Return(sampleDoc(), nil).Times(2)
	sent.EXPECT().Score(english).Return(types.Sentiment{Polarity: 0.1, Compound: 0.2}, nil).Times(2)

	cmp, err := New(ann, sent).CompareTexts(context.Background(), english, english)
	require.NoError(t, err)
	require.NotEmpty(t, cmp.Scores)
	for _, s := range cmp.Scores {
		assert.Equal(t, 100.0, s.Raw, s.Name)
	}
}

func TestEmbeddingSimilarityWithoutScorer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := New(mocks.NewMockAnnotator(ctrl), mocks.NewMockSentimentScorer(ctrl))
	_, err := svc.EmbeddingSimilarity(context.Background(), "a", "b")
	assert.ErrorIs(t, err, types.ErrCollaboratorUnavailable)
}

func TestEmbeddingSimilarityEncoderUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	ann := mocks.NewMockAnnotator(ctrl)
	ann.EXPECT().Annotate(gomock.Any(), "a").Return(sampleDoc(), nil)

	h := embedding.NewHandle(func() (embedding.SentenceEncoder, error) {
		return nil, errors.New("no model.onnx")
	})
	svc := New(ann, mocks.NewMockSentimentScorer(ctrl), WithScorer(embedding.NewScorer(h, ann, 0)))
	_, err := svc.EmbeddingSimilarity(context.Background(), "a", "b")
	assert.ErrorIs(t, err, types.ErrCollaboratorUnavailable)
}

func TestVector(t *testing.T) {
	ctrl := gomock.NewController(t)
	ann := mocks.NewMockAnnotator(ctrl)
	sent := mocks.NewMockSentimentScorer(ctrl)
	ann.EXPECT().Annotate(gomock.Any(), english).Return(sampleDoc(), nil)
	sent.EXPECT().Score(english).Return(types.Sentiment{}, nil)

	v, err := New(ann, sent).Vector(context.Background(), english)
	require.NoError(t, err)
	assert.Len(t, v, features.Dimensions)
}

func TestLanguageWarning(t *testing.T) {
	const french = "Le comité s'est réuni mardi pour examiner le budget et les projets de l'année prochaine, puis il a publié un long rapport."

	ctrl := gomock.NewController(t)
	ann := mocks.NewMockAnnotator(ctrl)
	sent := mocks.NewMockSentimentScorer(ctrl)
	ann.EXPECT().Annotate(gomock.Any(), gomock.Any()).Return(sampleDoc(), nil).Times(2)
	sent.EXPECT().Score(gomock.Any()).Return(types.Sentiment{}, nil).Times(2)

	var buf bytes.Buffer
	svc := New(ann, sent, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	_, err := svc.AnalyzeText(context.Background(), english)
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = svc.AnalyzeText(context.Background(), french)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "language=fr")
}
