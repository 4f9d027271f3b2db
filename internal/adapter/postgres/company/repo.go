// Package company implements the Company repository using PostgreSQL.
// Every mutation is tracked: the row is locked, the revision trail is
// appended and the row is written inside one transaction.
package company

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/placement-backend/internal/adapter/postgres"
	"github.com/heartmarshall/placement-backend/internal/domain"
	"github.com/heartmarshall/placement-backend/internal/revision"
)

const table = "companies"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	columns = []string{
		"id", "name", "sector", "website", "description",
		"address_street", "address_city", "address_zip", "address_country",
		"revision", "created_at", "updated_at",
	}
)

// tracker records the revision trail around each mutation.
type tracker interface {
	CaptureBefore(ctx context.Context, op domain.Operation, rec revision.Tracked)
	CaptureAfter(ctx context.Context, op domain.Operation, rec revision.Tracked) error
	Discard(rec revision.Tracked)
}

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	pool    postgres.Pool
	tracker tracker
	now     func() time.Time
}

// New creates a new company repository.
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

// GetByID returns a company by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	return r.get(ctx, postgres.QuerierFromCtx(ctx, r.pool), id, false)
}

// List returns companies ordered by name.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	sqlStr, args, err := psql.Select(columns...).
		From(table).
		OrderBy("lower(name) ASC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list companies: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	return companies, nil
}

func (r *Repo) get(ctx context.Context, q postgres.Querier, id uuid.UUID, lock bool) (domain.Company, error) {
	b := psql.Select(columns...).From(table).Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	sqlStr, args, err := b.ToSql()
	if err != nil {
		return domain.Company{}, fmt.Errorf("build get company: %w", err)
	}

	c, err := scanCompany(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return domain.Company{}, postgres.MapError(err, "company", id)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new company and records its create revision.
func (r *Repo) Create(ctx context.Context, c domain.Company) (domain.Company, error) {
	now := r.now()
	c.Revision = 0
	c.CreatedAt = now
	c.UpdatedAt = now

	err := postgres.WithinTx(ctx, r.pool, func(ctx context.Context) error {
		r.tracker.CaptureBefore(ctx, domain.OperationCreate, &c)
		defer r.tracker.Discard(&c)

		if err := r.tracker.CaptureAfter(ctx, domain.OperationCreate, &c); err != nil {
			return err
		}

		sqlStr, args, err := psql.Insert(table).
			Columns(columns...).
			Values(
				c.ID, c.Name, c.Sector, c.Website, c.Description,
				c.Address.Street, c.Address.City, c.Address.ZipCode, c.Address.Country,
				c.Revision, c.CreatedAt, c.UpdatedAt,
			).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert company: %w", err)
		}

		if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlStr, args...); err != nil {
			return postgres.MapError(err, "company", c.ID)
		}
		return nil
	})
	if err != nil {
		return domain.Company{}, err
	}

	return c, nil
}

// Update applies p to the company under a row lock and records an update
// revision when a tracked field changed.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.CompanyUpdateParams) (domain.Company, error) {
	var updated domain.Company

	err := postgres.WithinTx(ctx, r.pool, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)
		cur, err := r.get(ctx, q, id, true)
		if err != nil {
			return err
		}

		r.tracker.CaptureBefore(ctx, domain.OperationUpdate, &cur)
		defer r.tracker.Discard(&cur)

		next := cur.Apply(p)
		next.UpdatedAt = r.now()

		if err := r.tracker.CaptureAfter(ctx, domain.OperationUpdate, &next); err != nil {
			return err
		}

		sqlStr, args, err := psql.Update(table).
			Set("name", next.Name).
			Set("sector", next.Sector).
			Set("website", next.Website).
			Set("description", next.Description).
			Set("address_street", next.Address.Street).
			Set("address_city", next.Address.City).
			Set("address_zip", next.Address.ZipCode).
			Set("address_country", next.Address.Country).
			Set("revision", next.Revision).
			Set("updated_at", next.UpdatedAt).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update company: %w", err)
		}

		if _, err := q.Exec(ctx, sqlStr, args...); err != nil {
			return postgres.MapError(err, "company", id)
		}

		updated = next
		return nil
	})
	if err != nil {
		return domain.Company{}, err
	}

	return updated, nil
}

// Delete physically removes a company and records a destroy revision holding
// its last state. Companies still referenced by opportunities cannot be
// deleted: domain.ErrConflict is returned.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return postgres.WithinTx(ctx, r.pool, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)
		cur, err := r.get(ctx, q, id, true)
		if err != nil {
			return err
		}

		r.tracker.CaptureBefore(ctx, domain.OperationDestroy, &cur)
		defer r.tracker.Discard(&cur)

		if err := r.tracker.CaptureAfter(ctx, domain.OperationDestroy, &cur); err != nil {
			return err
		}

		sqlStr, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete company: %w", err)
		}

		if _, err := q.Exec(ctx, sqlStr, args...); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return fmt.Errorf("company %s is referenced by opportunities: %w", id, domain.ErrConflict)
			}
			return postgres.MapError(err, "company", id)
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

func scanCompany(row pgx.Row) (domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Sector, &c.Website, &c.Description,
		&c.Address.Street, &c.Address.City, &c.Address.ZipCode, &c.Address.Country,
		&c.Revision, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}
