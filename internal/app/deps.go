package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/placement-backend/internal/adapter/postgres"
	companyrepo "github.com/heartmarshall/placement-backend/internal/adapter/postgres/company"
	opportunityrepo "github.com/heartmarshall/placement-backend/internal/adapter/postgres/opportunity"
	revisionrepo "github.com/heartmarshall/placement-backend/internal/adapter/postgres/revision"
	"github.com/heartmarshall/placement-backend/internal/config"
	"github.com/heartmarshall/placement-backend/internal/revision"
	"github.com/heartmarshall/placement-backend/internal/service/company"
	"github.com/heartmarshall/placement-backend/internal/service/history"
	"github.com/heartmarshall/placement-backend/internal/service/opportunity"
)

// Deps is the wired object graph shared by the server and the commands.
type Deps struct {
	Registry *revision.Registry
	Tracker  *revision.Tracker

	Revisions     *revisionrepo.Repo
	Companies     *companyrepo.Repo
	Opportunities *opportunityrepo.Repo

	CompanyService     *company.Service
	OpportunityService *opportunity.Service
	HistoryService     *history.Service
}

// NewDeps wires repositories, the revision tracker and services on top of
// pool. observer may be nil.
func NewDeps(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config, observer revision.Observer) (*Deps, error) {
	registry, err := NewRegistry(cfg.Revision)
	if err != nil {
		return nil, err
	}
	revisions := revisionrepo.New(pool)
	tracker := revision.New(logger, revisions, registry, revision.Config{
		Mode:     revision.Mode(cfg.Revision.Mode),
		Observer: observer,
	})

	companies := companyrepo.New(pool, tracker)
	opportunities := opportunityrepo.New(pool, tracker)
	txm := postgres.NewTxManager(pool)

	return &Deps{
		Registry:           registry,
		Tracker:            tracker,
		Revisions:          revisions,
		Companies:          companies,
		Opportunities:      opportunities,
		CompanyService:     company.NewService(logger, companies, opportunities, txm),
		OpportunityService: opportunity.NewService(logger, opportunities, companies, txm),
		HistoryService:     history.NewService(logger, revisions, registry, cfg.History),
	}, nil
}
