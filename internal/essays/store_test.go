// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package essays

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/styloguard/internal/features"
	"github.com/pdiddy/styloguard/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.StoreConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testFingerprint() features.FeatureSet {
	return features.NewFeatureSet(
		features.Feature{Name: features.TotalWordCount, Key: features.KeyCount, Value: 8},
		features.Feature{Name: features.TypeTokenRatio, Key: features.KeyValue, Value: 0.63},
	)
}

var alice = types.Student{ID: 42, Name: "Alice", Email: "alice@example.com"}

func TestNewStoreRequiresDataDir(t *testing.T) {
	_, err := NewStore(types.StoreConfig{})
	assert.Error(t, err)
}

func TestNewStoreCreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s, err := NewStore(types.StoreConfig{DataDir: dir})
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(dir, dbFile))
	assert.NoError(t, err)
}

func TestInsertStudent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	exists, err := s.StudentExists(ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.InsertStudent(ctx, alice))
	exists, err = s.StudentExists(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	renamed := alice
	renamed.Name = "Alicia"
	require.NoError(t, s.InsertStudent(ctx, renamed))

	students, err := s.Students(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Alice", students[0].Name)
}

func TestInsertStudentValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		student types.Student
	}{
		{"zero id", types.Student{ID: 0, Name: "Bob", Email: "bob@example.com"}},
		{"missing name", types.Student{ID: 1, Email: "bob@example.com"}},
		{"bad email", types.Student{ID: 1, Name: "Bob", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.InsertStudent(ctx, tt.student)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid student")
		})
	}
}

func TestInsertEssayRequiresStudent(t *testing.T) {
	s := newTestStore(t)
	_, err := s.InsertEssay(context.Background(), 7, "Orphan essay.", testFingerprint())
	assert.Error(t, err)
}

func TestEssayRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.InsertStudent(ctx, alice))

	e, err := s.InsertEssay(ctx, alice.ID, "First essay.", testFingerprint())
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)

	exists, err := s.EssayExists(ctx, alice.ID, "First essay.")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.EssayExists(ctx, alice.ID, "First essay")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = s.EssayExists(ctx, 99, "First essay.")
	require.NoError(t, err)
	assert.False(t, exists)

	list, err := s.StudentEssays(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, e.ID, list[0].ID)
	assert.Equal(t, "First essay.", list[0].Text)
	assert.False(t, list[0].CreatedAt.IsZero())

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(list[0].Fingerprint, &raw))
	assert.Contains(t, raw, "style_index")

	fs, err := Fingerprint(list[0])
	require.NoError(t, err)
	assert.Equal(t, 8.0, fs.Value(features.TotalWordCount, features.KeyCount))
	assert.Equal(t, 0.63, fs.Value(features.TypeTokenRatio, features.KeyValue))
}

func TestReferenceText(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.InsertStudent(ctx, alice))

	_, err := s.ReferenceText(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrNoEssays)

	for _, text := range []string{"One.", "Two.", "Three."} {
		_, err := s.InsertEssay(ctx, alice.ID, text, testFingerprint())
		require.NoError(t, err)
	}

	ref, err := s.ReferenceText(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "One. Two. Three.", ref)
}

func TestSave(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	out, err := s.Save(ctx, alice, "An essay.", testFingerprint())
	require.NoError(t, err)
	assert.True(t, out.StudentAdded)
	assert.True(t, out.EssaySaved)
	assert.NotEmpty(t, out.Essay.ID)

	out, err = s.Save(ctx, alice, "An essay.", testFingerprint())
	require.NoError(t, err)
	assert.False(t, out.StudentAdded)
	assert.False(t, out.EssaySaved)

	out, err = s.Save(ctx, alice, "Another essay.", testFingerprint())
	require.NoError(t, err)
	assert.False(t, out.StudentAdded)
	assert.True(t, out.EssaySaved)

	list, err := s.StudentEssays(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSaveRejectsInvalidInput(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, types.Student{ID: 1, Name: "Bob"}, "Essay.", testFingerprint())
	assert.Error(t, err)

	_, err = s.Save(ctx, alice, "   ", testFingerprint())
	assert.Error(t, err)

	exists, err := s.StudentExists(ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExport(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.Save(ctx, alice, "An essay.", testFingerprint())
	require.NoError(t, err)
	require.NoError(t, s.InsertStudent(ctx, types.Student{ID: 7, Name: "Bob", Email: "bob@example.com"}))

	jsonPath, err := s.ExportJSON(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.dataDir, exportDir, "essays.json"), jsonPath)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON []ExportStudent
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Len(t, fromJSON, 2)
	assert.Equal(t, int64(7), fromJSON[0].StudentID)
	assert.Empty(t, fromJSON[0].Essays)
	require.Len(t, fromJSON[1].Essays, 1)
	assert.Equal(t, "An essay.", fromJSON[1].Essays[0].Text)

	yamlPath, err := s.ExportYAML(ctx)
	require.NoError(t, err)
	data, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML, 2)
	assert.Equal(t, "Alice", fromYAML[1]["name"])
	assert.Contains(t, string(data), "style_index")
	assert.Contains(t, string(data), "Total Word Count")
}
