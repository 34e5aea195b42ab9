// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"time"
)

// Student identifies the author of saved essays.
type Student struct {
	// ID is the numeric student identifier; it must be positive.
	ID int64 `json:"student_id" yaml:"student_id" validate:"gt=0"`

	// Name is the student's display name.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Email is the student's contact address.
	Email string `json:"email" yaml:"email" validate:"required,email"`
}

// Essay is a stored essay with its stylometric fingerprint.
type Essay struct {
	// ID is a random UUID assigned on insert.
	ID string `json:"id" yaml:"id"`

	// StudentID links the essay to its Student.
	StudentID int64 `json:"student_id" yaml:"student_id"`

	// Text is the plain essay text as analysed.
	Text string `json:"essay_text" yaml:"essay_text"`

	// Fingerprint is the opaque JSON blob {"style_index": <feature set>}.
	Fingerprint json.RawMessage `json:"fingerprint" yaml:"-"`

	// CreatedAt is the insertion time in UTC.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
