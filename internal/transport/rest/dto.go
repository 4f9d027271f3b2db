package rest

import (
	"time"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

type revisionResponse struct {
	ID         string           `json:"id"`
	Model      string           `json:"model"`
	DocumentID string           `json:"document_id"`
	Operation  string           `json:"operation"`
	Revision   int              `json:"revision"`
	Document   map[string]any   `json:"document"`
	UserID     *string          `json:"user_id,omitempty"`
	RequestID  *string          `json:"request_id,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	Changes    []changeResponse `json:"changes,omitempty"`
}

type changeResponse struct {
	ID         string           `json:"id"`
	RevisionID string           `json:"revision_id"`
	Path       string           `json:"path"`
	Document   any              `json:"document"`
	Diff       domain.FieldDiff `json:"diff"`
	CreatedAt  time.Time        `json:"created_at"`
}

type snapshotResponse struct {
	Model      string         `json:"model"`
	DocumentID string         `json:"document_id"`
	Revision   int            `json:"revision"`
	Operation  string         `json:"operation"`
	Exists     bool           `json:"exists"`
	Fields     map[string]any `json:"fields"`
	RecordedAt time.Time      `json:"recorded_at"`
}

func toRevisionResponse(r domain.Revision) revisionResponse {
	resp := revisionResponse{
		ID:         r.ID.String(),
		Model:      r.Model,
		DocumentID: r.DocumentID.String(),
		Operation:  r.Operation.String(),
		Revision:   r.Revision,
		Document:   r.Document,
		RequestID:  r.RequestID,
		CreatedAt:  r.CreatedAt,
	}
	if resp.Document == nil {
		resp.Document = map[string]any{}
	}
	if r.UserID != nil {
		s := r.UserID.String()
		resp.UserID = &s
	}
	return resp
}

func toRevisionResponses(revs []domain.Revision) []revisionResponse {
	out := make([]revisionResponse, len(revs))
	for i, r := range revs {
		out[i] = toRevisionResponse(r)
	}
	return out
}

func toEntryResponses(entries []domain.RevisionEntry) []revisionResponse {
	out := make([]revisionResponse, len(entries))
	for i, e := range entries {
		out[i] = toRevisionResponse(e.Revision)
		out[i].Changes = toChangeResponses(e.Changes)
	}
	return out
}

func toChangeResponses(changes []domain.RevisionChange) []changeResponse {
	out := make([]changeResponse, len(changes))
	for i, c := range changes {
		out[i] = changeResponse{
			ID:         c.ID.String(),
			RevisionID: c.RevisionID.String(),
			Path:       c.Path,
			Document:   c.Document,
			Diff:       c.Diff,
			CreatedAt:  c.CreatedAt,
		}
	}
	return out
}

func toSnapshotResponse(s domain.Snapshot) snapshotResponse {
	fields := s.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	return snapshotResponse{
		Model:      s.Model,
		DocumentID: s.DocumentID.String(),
		Revision:   s.Revision,
		Operation:  s.Operation.String(),
		Exists:     s.Exists,
		Fields:     fields,
		RecordedAt: s.RecordedAt,
	}
}
