package domain

import (
	"time"

	"github.com/google/uuid"
)

// Model names of tracked entities.
const (
	ModelCompany     = "company"
	ModelOpportunity = "opportunity"
)

// Revision is one logged mutation of a tracked record. Document holds the
// record's tracked fields as they were before the mutation (nil for create).
type Revision struct {
	ID         uuid.UUID
	Model      string
	DocumentID uuid.UUID
	Document   map[string]any
	Operation  Operation
	Revision   int
	UserID     *uuid.UUID
	RequestID  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RevisionChange is one field-level diff belonging to a Revision.
type RevisionChange struct {
	ID         uuid.UUID
	RevisionID uuid.UUID
	Path       string
	Document   any // value before the mutation
	Diff       FieldDiff
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FieldDiff describes how one field moved from Old to New.
// Added has no Old, Removed has no New.
type FieldDiff struct {
	Kind DiffKind `json:"kind"`
	Old  any      `json:"old,omitempty"`
	New  any      `json:"new,omitempty"`
}

// FieldChange pairs a dot-notation path with its diff.
type FieldChange struct {
	Path string
	Diff FieldDiff
}

// RevisionEntry is a revision together with its field changes.
type RevisionEntry struct {
	Revision
	Changes []RevisionChange
}

// Snapshot is the reconstructed state of a tracked record at a given
// revision. Exists is false when that revision destroyed the record.
type Snapshot struct {
	Model      string
	DocumentID uuid.UUID
	Revision   int
	Operation  Operation
	Exists     bool
	Fields     map[string]any
	RecordedAt time.Time
}
