// Package opportunity implements the Opportunity repository using PostgreSQL.
// Archive is a soft delete and is tracked as an update of deleted_at; Purge
// removes the row and is tracked as a destroy.
package opportunity

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/placement-backend/internal/adapter/postgres"
	"github.com/heartmarshall/placement-backend/internal/domain"
	"github.com/heartmarshall/placement-backend/internal/revision"
)

const (
	table = "opportunities"

	defaultLimit = 50
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	columns = []string{
		"id", "company_id", "title", "description", "contract", "location",
		"salary_min", "salary_max", "salary_currency", "skills",
		"revision", "created_at", "updated_at", "deleted_at",
	}
)

type tracker interface {
	CaptureBefore(ctx context.Context, op domain.Operation, rec revision.Tracked)
	CaptureAfter(ctx context.Context, op domain.Operation, rec revision.Tracked) error
	Discard(rec revision.Tracked)
}

// Repo provides opportunity persistence backed by PostgreSQL.
type Repo struct {
	pool    postgres.Pool
	tracker tracker
	now     func() time.Time
}

// New creates a new opportunity repository.
func New(pool postgres.Pool, tracker tracker) *Repo {
	return &Repo{
		pool:    pool,
		tracker: tracker,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an opportunity by id, archived or not.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	return r.get(ctx, postgres.QuerierFromCtx(ctx, r.pool), id, false)
}

// ListByCompany returns the opportunities of a company, newest first.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID, f domain.OpportunityFilter) ([]domain.Opportunity, error) {
	b := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"company_id": companyID})

	if !f.IncludeArchived {
		b = b.Where(sq.Eq{"deleted_at": nil})
	}
	if f.Contract != nil {
		b = b.Where(sq.Eq{"contract": string(*f.Contract)})
	}
	if f.Skill != nil {
		b = b.Where(sq.Expr("? = ANY(skills)", *f.Skill))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	b = b.OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(max(f.Offset, 0)))

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list opportunities: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Opportunity, 0)
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}

	return out, nil
}

// CountByCompany returns how many opportunities, archived included, reference
// the company.
func (r *Repo) CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	sqlStr, args, err := psql.Select("count(*)").
		From(table).
		Where(sq.Eq{"company_id": companyID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count opportunities: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count opportunities: %w", err)
	}
	return n, nil
}

// ListArchivedBefore returns the ids of opportunities archived before
// threshold, oldest first.
func (r *Repo) ListArchivedBefore(ctx context.Context, threshold time.Time, limit int) ([]uuid.UUID, error) {
	sqlStr, args, err := psql.Select("id").
		From(table).
		Where(sq.Lt{"deleted_at": threshold}).
		OrderBy("deleted_at ASC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list archived opportunities: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list archived opportunities: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("scan archived opportunities: %w", err)
	}
	return ids, nil
}

func (r *Repo) get(ctx context.Context, q postgres.Querier, id uuid.UUID, lock bool) (domain.Opportunity, error) {
	b := psql.Select(columns...).From(table).Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	sqlStr, args, err := b.ToSql()
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("build get opportunity: %w", err)
	}

	o, err := scanOpportunity(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return domain.Opportunity{}, postgres.MapError(err, "opportunity", id)
	}
	return o, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new opportunity and records its create revision.
// An unknown company yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, o domain.Opportunity) (domain.Opportunity, error) {
	now := r.now()
	o.Revision = 0
	o.CreatedAt = now
	o.UpdatedAt = now
	o.DeletedAt = nil
	if o.Skills == nil {
		o.Skills = []string{}
	}

	err := postgres.WithinTx(ctx, r.pool, func(ctx context.Context) error {
		r.tracker.CaptureBefore(ctx, domain.OperationCreate, &o)
		defer r.tracker.Discard(&o)

		if err := r.tracker.CaptureAfter(ctx, domain.OperationCreate, &o); err != nil {
			return err
		}

		salaryMin, salaryMax, currency := salaryColumns(o.Salary)
		sqlStr, args, err := psql.Insert(table).
			Columns(columns...).
			Values(
				o.ID, o.CompanyID, o.Title, o.Description, string(o.Contract), o.Location,
				salaryMin, salaryMax, currency, o.Skills,
				o.Revision, o.CreatedAt, o.UpdatedAt, o.DeletedAt,
			).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert opportunity: %w", err)
		}

		if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlStr, args...); err != nil {
			return postgres.MapError(err, "opportunity", o.ID)
		}
		return nil
	})
	if err != nil {
		return domain.Opportunity{}, err
	}

	return o, nil
}

// Update applies p under a row lock and records an update revision when a
// tracked field changed. An archived opportunity yields domain.ErrConflict.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.OpportunityUpdateParams) (domain.Opportunity, error) {
	return r.mutate(ctx, id, func(cur domain.Opportunity) (domain.Opportunity, error) {
		if cur.IsArchived() {
			return cur, fmt.Errorf("opportunity %s is archived: %w", id, domain.ErrConflict)
		}
		return cur.Apply(p), nil
	})
}

// Archive soft-deletes the opportunity. Archiving an archived opportunity
// changes nothing and records no revision.
func (r *Repo) Archive(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	return r.mutate(ctx, id, func(cur domain.Opportunity) (domain.Opportunity, error) {
		if cur.DeletedAt == nil {
			now := r.now()
			cur.DeletedAt = &now
		}
		return cur, nil
	})
}

// Restore clears the soft-delete marker.
func (r *Repo) Restore(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	return r.mutate(ctx, id, func(cur domain.Opportunity) (domain.Opportunity, error) {
		cur.DeletedAt = nil
		return cur, nil
	})
}

// mutate locks the row, lets apply derive the next state from the locked
// one and writes it with its revision. An error from apply aborts the
// mutation before anything is recorded.
func (r *Repo) mutate(
	ctx context.Context,
	id uuid.UUID,
	apply func(domain.Opportunity) (domain.Opportunity, error),
) (domain.Opportunity, error) {
	var updated domain.Opportunity

	err := postgres.WithinTx(ctx, r.pool, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)
		cur, err := r.get(ctx, q, id, true)
		if err != nil {
			return err
		}

		next, err := apply(cur)
		if err != nil {
			return err
		}
		next.UpdatedAt = r.now()

		r.tracker.CaptureBefore(ctx, domain.OperationUpdate, &cur)
		defer r.tracker.Discard(&cur)

		if err := r.tracker.CaptureAfter(ctx, domain.OperationUpdate, &next); err != nil {
			return err
		}

		salaryMin, salaryMax, currency := salaryColumns(next.Salary)
		sqlStr, args, err := psql.Update(table).
			Set("title", next.Title).
			Set("description", next.Description).
			Set("contract", string(next.Contract)).
			Set("location", next.Location).
			Set("salary_min", salaryMin).
			Set("salary_max", salaryMax).
			Set("salary_currency", currency).
			Set("skills", next.Skills).
			Set("revision", next.Revision).
			Set("updated_at", next.UpdatedAt).
			Set("deleted_at", next.DeletedAt).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update opportunity: %w", err)
		}

		if _, err := q.Exec(ctx, sqlStr, args...); err != nil {
			return postgres.MapError(err, "opportunity", id)
		}

		updated = next
		return nil
	})
	if err != nil {
		return domain.Opportunity{}, err
	}

	return updated, nil
}

// Purge physically removes an archived opportunity and records a destroy
// revision holding its last state. The archive marker is checked under the
// row lock: a live opportunity, or one archived at or after archivedBefore
// when that is non-zero, yields domain.ErrConflict.
func (r *Repo) Purge(ctx context.Context, id uuid.UUID, archivedBefore time.Time) error {
	return postgres.WithinTx(ctx, r.pool, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)
		cur, err := r.get(ctx, q, id, true)
		if err != nil {
			return err
		}
		if cur.DeletedAt == nil {
			return fmt.Errorf("opportunity %s is not archived: %w", id, domain.ErrConflict)
		}
		if !archivedBefore.IsZero() && !cur.DeletedAt.Before(archivedBefore) {
			return fmt.Errorf("opportunity %s archived after %s: %w", id, archivedBefore.Format(time.RFC3339), domain.ErrConflict)
		}

		r.tracker.CaptureBefore(ctx, domain.OperationDestroy, &cur)
		defer r.tracker.Discard(&cur)

		if err := r.tracker.CaptureAfter(ctx, domain.OperationDestroy, &cur); err != nil {
			return err
		}

		sqlStr, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete opportunity: %w", err)
		}

		if _, err := q.Exec(ctx, sqlStr, args...); err != nil {
			return postgres.MapError(err, "opportunity", id)
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func salaryColumns(s *domain.Salary) (minimum, maximum *int, currency *string) {
	if s == nil {
		return nil, nil, nil
	}
	mn, mx, cur := s.Min, s.Max, s.Currency
	return &mn, &mx, &cur
}

func scanOpportunity(row pgx.Row) (domain.Opportunity, error) {
	var (
		o                    domain.Opportunity
		contract             string
		salaryMin, salaryMax *int
		salaryCurrency       *string
	)
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.Title, &o.Description, &contract, &o.Location,
		&salaryMin, &salaryMax, &salaryCurrency, &o.Skills,
		&o.Revision, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
	)
	if err != nil {
		return domain.Opportunity{}, err
	}

	o.Contract = domain.ContractType(contract)
	if salaryMin != nil && salaryMax != nil && salaryCurrency != nil {
		o.Salary = &domain.Salary{Min: *salaryMin, Max: *salaryMax, Currency: *salaryCurrency}
	}
	if o.Skills == nil {
		o.Skills = []string{}
	}
	return o, nil
}
