// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package essays

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// ExportStudent holds a student and their essays for export.
type ExportStudent struct {
	StudentID int64         `json:"student_id" yaml:"student_id"`
	Name      string        `json:"name" yaml:"name"`
	Email     string        `json:"email" yaml:"email"`
	Essays    []ExportEssay `json:"essays" yaml:"essays"`
}

// ExportEssay is one essay with its decoded fingerprint.
type ExportEssay struct {
	ID          string    `json:"id" yaml:"id"`
	Text        string    `json:"essay_text" yaml:"essay_text"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Fingerprint any       `json:"fingerprint" yaml:"fingerprint"`
}

// ExportYAML writes every student and essay to dataDir/export/essays.yaml
// and returns the path written.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return s.writeExport("essays.yaml", data)
}

// ExportJSON writes every student and essay to dataDir/export/essays.json
// and returns the path written.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return s.writeExport("essays.json", data)
}

func (s *Store) writeExport(name string, data []byte) (string, error) {
	dir := filepath.Join(s.dataDir, exportDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}

func (s *Store) exportEntries(ctx context.Context) ([]ExportStudent, error) {
	students, err := s.Students(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportStudent, 0, len(students))
	for _, st := range students {
		list, err := s.StudentEssays(ctx, st.ID)
		if err != nil {
			return nil, fmt.Errorf("querying essays of student %d: %w", st.ID, err)
		}
		entry := ExportStudent{StudentID: st.ID, Name: st.Name, Email: st.Email, Essays: []ExportEssay{}}
		for _, e := range list {
			var fp any
			if err := json.Unmarshal(e.Fingerprint, &fp); err != nil {
				return nil, fmt.Errorf("decoding fingerprint of essay %s: %w", e.ID, err)
			}
			entry.Essays = append(entry.Essays, ExportEssay{
				ID:          e.ID,
				Text:        e.Text,
				CreatedAt:   e.CreatedAt,
				Fingerprint: fp,
			})
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
