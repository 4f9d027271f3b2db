package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCompany inserts a company row directly, bypassing the revision trail.
// The row starts at revision 0 and has no history.
func SeedCompany(t *testing.T, pool *pgxpool.Pool) domain.Company {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	company := domain.Company{
		ID:     uuid.New(),
		Name:   "Company " + suffix,
		Sector: "software",
		Address: domain.Address{
			Street:  "1 Test Street",
			City:    "Lyon",
			ZipCode: "69001",
			Country: "FR",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO companies (id, name, sector, address_street, address_city, address_zip, address_country, revision, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9)`,
		company.ID, company.Name, company.Sector,
		company.Address.Street, company.Address.City, company.Address.ZipCode, company.Address.Country,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}

	return company
}

// SeedOpportunity inserts an opportunity for companyID directly, bypassing the
// revision trail.
func SeedOpportunity(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID) domain.Opportunity {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	opp := domain.Opportunity{
		ID:        uuid.New(),
		CompanyID: companyID,
		Title:     "Backend engineer " + suffix,
		Contract:  domain.ContractPermanent,
		Location:  "Remote",
		Skills:    []string{"go", "postgres"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO opportunities (id, company_id, title, contract, location, skills, revision, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)`,
		opp.ID, opp.CompanyID, opp.Title, string(opp.Contract), opp.Location, opp.Skills,
		opp.CreatedAt, opp.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOpportunity: %v", err)
	}

	return opp
}

// CountRevisions returns the number of revision rows stored for (model, id).
func CountRevisions(t *testing.T, pool *pgxpool.Pool, model string, id uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM revisions WHERE model = $1 AND document_id = $2`,
		model, id,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRevisions: %v", err)
	}
	return n
}
