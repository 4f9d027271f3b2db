// Package revision implements the append-only revision store using PostgreSQL.
// A revision header and its field changes are always written together.
package revision

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/placement-backend/internal/adapter/postgres"
	"github.com/heartmarshall/placement-backend/internal/domain"
)

const (
	revisionsTable = "revisions"
	changesTable   = "revision_changes"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	revisionColumns = []string{
		"id", "model", "document_id", "document", "operation", "revision",
		"user_id", "request_id", "created_at", "updated_at",
	}
	changeColumns = []string{
		"id", "revision_id", "path", "document", "diff", "created_at", "updated_at",
	}
)

// Repo provides revision persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Pool
}

// New creates a new revision repository.
func New(pool postgres.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts the revision header and all its changes in one atomic unit.
// Inside an ambient transaction the unit is a savepoint, so a failed append
// leaves the caller's transaction usable.
func (r *Repo) Append(ctx context.Context, rev domain.Revision, changes []domain.RevisionChange) error {
	revSQL, revArgs, err := buildInsertRevision(rev)
	if err != nil {
		return fmt.Errorf("build insert revision: %w", err)
	}

	var chSQL string
	var chArgs []any
	if len(changes) > 0 {
		chSQL, chArgs, err = buildInsertChanges(changes)
		if err != nil {
			return fmt.Errorf("build insert revision_changes: %w", err)
		}
	}

	return postgres.RunAtomic(ctx, r.pool, func(q postgres.Querier) error {
		if _, err := q.Exec(ctx, revSQL, revArgs...); err != nil {
			return postgres.MapError(err, "revision", rev.ID)
		}
		if chSQL == "" {
			return nil
		}
		if _, err := q.Exec(ctx, chSQL, chArgs...); err != nil {
			return postgres.MapError(err, "revision_changes", rev.ID)
		}
		return nil
	})
}

func buildInsertRevision(rev domain.Revision) (string, []any, error) {
	var doc []byte
	if rev.Document != nil {
		b, err := json.Marshal(rev.Document)
		if err != nil {
			return "", nil, fmt.Errorf("marshal document: %w", err)
		}
		doc = b
	}

	return psql.Insert(revisionsTable).
		Columns(revisionColumns...).
		Values(
			rev.ID, rev.Model, rev.DocumentID, doc, rev.Operation.String(), rev.Revision,
			uuidPtrToPgUUID(rev.UserID), rev.RequestID, rev.CreatedAt, rev.UpdatedAt,
		).
		ToSql()
}

func buildInsertChanges(changes []domain.RevisionChange) (string, []any, error) {
	b := psql.Insert(changesTable).Columns(changeColumns...)
	for _, c := range changes {
		var doc []byte
		if c.Document != nil {
			d, err := json.Marshal(c.Document)
			if err != nil {
				return "", nil, fmt.Errorf("marshal document of %s: %w", c.Path, err)
			}
			doc = d
		}
		diff, err := json.Marshal(c.Diff)
		if err != nil {
			return "", nil, fmt.Errorf("marshal diff of %s: %w", c.Path, err)
		}
		b = b.Values(c.ID, c.RevisionID, c.Path, doc, diff, c.CreatedAt, c.UpdatedAt)
	}
	return b.ToSql()
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListRevisions returns every revision of one record ordered by revision
// number ascending. An unknown record yields an empty slice.
func (r *Repo) ListRevisions(ctx context.Context, model string, documentID uuid.UUID) ([]domain.Revision, error) {
	query := psql.Select(revisionColumns...).
		From(revisionsTable).
		Where(sq.Eq{"model": model, "document_id": documentID}).
		OrderBy("revision ASC")

	return r.queryRevisions(ctx, query)
}

// ListByModel returns the most recent revisions of all records of a model,
// newest first.
func (r *Repo) ListByModel(ctx context.Context, model string, limit, offset int) ([]domain.Revision, error) {
	query := psql.Select(revisionColumns...).
		From(revisionsTable).
		Where(sq.Eq{"model": model}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.queryRevisions(ctx, query)
}

// GetRevision returns one revision header by id.
func (r *Repo) GetRevision(ctx context.Context, id uuid.UUID) (domain.Revision, error) {
	sqlStr, args, err := psql.Select(revisionColumns...).
		From(revisionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Revision{}, fmt.Errorf("build get revision: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rev, err := scanRevision(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return domain.Revision{}, postgres.MapError(err, "revision", id)
	}
	return rev, nil
}

// ListChanges returns the field changes of one revision ordered by path.
// An unknown revision yields an empty slice.
func (r *Repo) ListChanges(ctx context.Context, revisionID uuid.UUID) ([]domain.RevisionChange, error) {
	query := psql.Select(changeColumns...).
		From(changesTable).
		Where(sq.Eq{"revision_id": revisionID}).
		OrderBy("path ASC")

	return r.queryChanges(ctx, query)
}

// ListDocumentChanges returns the changes of every revision of one record up
// to and including revision upTo, ordered by revision then path. Replaying
// them in order from an empty document rebuilds the record at upTo.
func (r *Repo) ListDocumentChanges(ctx context.Context, model string, documentID uuid.UUID, upTo int) ([]domain.RevisionChange, error) {
	cols := make([]string, len(changeColumns))
	for i, c := range changeColumns {
		cols[i] = "c." + c
	}

	query := psql.Select(cols...).
		From(changesTable+" c").
		Join(revisionsTable+" r ON r.id = c.revision_id").
		Where(sq.Eq{"r.model": model, "r.document_id": documentID}).
		Where(sq.LtOrEq{"r.revision": upTo}).
		OrderBy("r.revision ASC", "c.path ASC")

	return r.queryChanges(ctx, query)
}

func (r *Repo) queryRevisions(ctx context.Context, query sq.SelectBuilder) ([]domain.Revision, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list revisions: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	revisions := make([]domain.Revision, 0)
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, err
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}

	return revisions, nil
}

func (r *Repo) queryChanges(ctx context.Context, query sq.SelectBuilder) ([]domain.RevisionChange, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list revision_changes: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list revision_changes: %w", err)
	}
	defer rows.Close()

	changes := make([]domain.RevisionChange, 0)
	for rows.Next() {
		c, err := scanChange(rows)
		if err != nil {
			return nil, err
		}
		changes = append(changes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list revision_changes: %w", err)
	}

	return changes, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

func scanRevision(row pgx.Row) (domain.Revision, error) {
	var (
		rev       domain.Revision
		doc       []byte
		operation string
		userID    pgtype.UUID
	)
	err := row.Scan(
		&rev.ID, &rev.Model, &rev.DocumentID, &doc, &operation, &rev.Revision,
		&userID, &rev.RequestID, &rev.CreatedAt, &rev.UpdatedAt,
	)
	if err != nil {
		return domain.Revision{}, err
	}

	rev.Operation = domain.Operation(operation)
	if userID.Valid {
		id := uuid.UUID(userID.Bytes)
		rev.UserID = &id
	}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &rev.Document); err != nil {
			return domain.Revision{}, fmt.Errorf("revision %s unmarshal document: %w", rev.ID, err)
		}
	}

	return rev, nil
}

func scanChange(row pgx.Row) (domain.RevisionChange, error) {
	var (
		c    domain.RevisionChange
		doc  []byte
		diff []byte
	)
	if err := row.Scan(&c.ID, &c.RevisionID, &c.Path, &doc, &diff, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.RevisionChange{}, err
	}

	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &c.Document); err != nil {
			return domain.RevisionChange{}, fmt.Errorf("revision_change %s unmarshal document: %w", c.ID, err)
		}
	}
	if err := json.Unmarshal(diff, &c.Diff); err != nil {
		return domain.RevisionChange{}, fmt.Errorf("revision_change %s unmarshal diff: %w", c.ID, err)
	}

	return c, nil
}

// uuidPtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
