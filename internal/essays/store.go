// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package essays persists students and their analysed essays in SQLite.
// Each essay is stored with its stylometric fingerprint so saved essays can
// serve as a reference profile for later comparisons.
package essays

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/styloguard/internal/features"
	"github.com/pdiddy/styloguard/pkg/types"
)

const (
	dbFile    = "styloguard.db"
	exportDir = "export"
)

// ErrNoEssays is returned when a student has no saved essays.
var ErrNoEssays = errors.New("no saved essays")

// Store manages the essay database.
type Store struct {
	db       *sql.DB
	dataDir  string
	validate *validator.Validate
	now      func() time.Time
}

// NewStore opens or creates the database at dataDir/styloguard.db and
// creates the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if cfg.DataDir == "" {
		return nil, errors.New("store data directory not configured")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:       db,
		dataDir:  cfg.DataDir,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      func() time.Time { return time.Now().UTC() },
	}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			student_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS essays (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			student_id INTEGER NOT NULL REFERENCES students(student_id),
			essay_text TEXT NOT NULL,
			text_hash TEXT NOT NULL,
			fingerprint TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_essays_student_hash ON essays(student_id, text_hash)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// StudentExists reports whether a student with id is stored.
func (s *Store) StudentExists(ctx context.Context, id int64) (bool, error) {
	return studentExists(ctx, s.db, id)
}

func studentExists(ctx context.Context, q querier, id int64) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM students WHERE student_id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up student %d: %w", id, err)
	}
	return true, nil
}

// InsertStudent validates and stores st. An existing student with the same
// id is left unchanged.
func (s *Store) InsertStudent(ctx context.Context, st types.Student) error {
	if err := s.validate.Struct(st); err != nil {
		return fmt.Errorf("invalid student: %w", err)
	}
	return insertStudent(ctx, s.db, st)
}

func insertStudent(ctx context.Context, q querier, st types.Student) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO students (student_id, name, email) VALUES (?, ?, ?)
		 ON CONFLICT(student_id) DO NOTHING`,
		st.ID, st.Name, st.Email)
	if err != nil {
		return fmt.Errorf("inserting student %d: %w", st.ID, err)
	}
	return nil
}

// EssayExists reports whether the student already has an essay with
// exactly this text.
func (s *Store) EssayExists(ctx context.Context, studentID int64, text string) (bool, error) {
	return essayExists(ctx, s.db, studentID, text)
}

func essayExists(ctx context.Context, q querier, studentID int64, text string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx,
		`SELECT 1 FROM essays WHERE student_id = ? AND text_hash = ? AND essay_text = ?`,
		studentID, textHash(text), text).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up essay: %w", err)
	}
	return true, nil
}

// InsertEssay stores text with its fingerprint {"style_index": fs} under a
// new random id. The student must exist.
func (s *Store) InsertEssay(ctx context.Context, studentID int64, text string, fs features.FeatureSet) (types.Essay, error) {
	return s.insertEssay(ctx, s.db, studentID, text, fs)
}

func (s *Store) insertEssay(ctx context.Context, q querier, studentID int64, text string, fs features.FeatureSet) (types.Essay, error) {
	fp, err := json.Marshal(map[string]features.FeatureSet{"style_index": fs})
	if err != nil {
		return types.Essay{}, fmt.Errorf("encoding fingerprint: %w", err)
	}
	e := types.Essay{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Text:        text,
		Fingerprint: fp,
		CreatedAt:   s.now(),
	}
	_, err = q.ExecContext(ctx,
		`INSERT INTO essays (id, student_id, essay_text, text_hash, fingerprint, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.StudentID, e.Text, textHash(text), string(fp), e.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return types.Essay{}, fmt.Errorf("inserting essay: %w", err)
	}
	return e, nil
}

// StudentEssays returns the student's essays in the order they were saved.
func (s *Store) StudentEssays(ctx context.Context, studentID int64) ([]types.Essay, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, student_id, essay_text, fingerprint, created_at
		 FROM essays WHERE student_id = ? ORDER BY rowid`, studentID)
	if err != nil {
		return nil, fmt.Errorf("querying essays: %w", err)
	}
	defer rows.Close()

	var out []types.Essay
	for rows.Next() {
		var (
			e         types.Essay
			fp        string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.StudentID, &e.Text, &fp, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning essay: %w", err)
		}
		e.Fingerprint = json.RawMessage(fp)
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ReferenceText joins the student's saved essays with single spaces, in
// the order they were saved. It returns ErrNoEssays when there are none.
func (s *Store) ReferenceText(ctx context.Context, studentID int64) (string, error) {
	list, err := s.StudentEssays(ctx, studentID)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", fmt.Errorf("student %d: %w", studentID, ErrNoEssays)
	}
	texts := make([]string, len(list))
	for i, e := range list {
		texts[i] = e.Text
	}
	return strings.Join(texts, " "), nil
}

// Students returns every stored student ordered by id.
func (s *Store) Students(ctx context.Context) ([]types.Student, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT student_id, name, email FROM students ORDER BY student_id`)
	if err != nil {
		return nil, fmt.Errorf("querying students: %w", err)
	}
	defer rows.Close()

	var out []types.Student
	for rows.Next() {
		var st types.Student
		if err := rows.Scan(&st.ID, &st.Name, &st.Email); err != nil {
			return nil, fmt.Errorf("scanning student: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// SaveOutcome reports what Save changed.
type SaveOutcome struct {
	StudentAdded bool
	EssaySaved   bool
	Essay        types.Essay
}

// Save adds the student if unknown and stores the essay unless the student
// already has one with identical text. Both happen in one transaction.
func (s *Store) Save(ctx context.Context, st types.Student, text string, fs features.FeatureSet) (SaveOutcome, error) {
	var out SaveOutcome
	if err := s.validate.Struct(st); err != nil {
		return out, fmt.Errorf("invalid student: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return out, errors.New("essay text is empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return out, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := studentExists(ctx, tx, st.ID)
	if err != nil {
		return out, err
	}
	if !exists {
		if err := insertStudent(ctx, tx, st); err != nil {
			return out, err
		}
		out.StudentAdded = true
	}

	dup, err := essayExists(ctx, tx, st.ID, text)
	if err != nil {
		return out, err
	}
	if !dup {
		e, err := s.insertEssay(ctx, tx, st.ID, text, fs)
		if err != nil {
			return out, err
		}
		out.Essay = e
		out.EssaySaved = true
	}

	if err := tx.Commit(); err != nil {
		return SaveOutcome{}, fmt.Errorf("committing: %w", err)
	}
	return out, nil
}

// Fingerprint decodes the feature set stored with e.
func Fingerprint(e types.Essay) (features.FeatureSet, error) {
	var wrapper struct {
		StyleIndex features.FeatureSet `json:"style_index"`
	}
	if err := json.Unmarshal(e.Fingerprint, &wrapper); err != nil {
		return features.FeatureSet{}, fmt.Errorf("decoding fingerprint of essay %s: %w", e.ID, err)
	}
	return wrapper.StyleIndex, nil
}

func textHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
