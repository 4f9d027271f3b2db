package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
	"github.com/heartmarshall/placement-backend/internal/service/company"
	"github.com/heartmarshall/placement-backend/internal/service/opportunity"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"companies", "opportunities"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Archived int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Pipeline seeds a Fixture phase by phase.
type Pipeline struct {
	log           *slog.Logger
	companies     CompanyCreator
	opportunities OpportunityPublisher
	cfg           Config
	results       map[string]PhaseResult

	// companyIDs maps fixture company names to the ids created in this run.
	companyIDs map[string]uuid.UUID
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, companies CompanyCreator, opportunities OpportunityPublisher, cfg Config) *Pipeline {
	return &Pipeline{
		log:           log.With("component", "seeder"),
		companies:     companies,
		opportunities: opportunities,
		cfg:           cfg,
		results:       make(map[string]PhaseResult),
		companyIDs:    make(map[string]uuid.UUID),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run. Unknown phase names are rejected.
func (p *Pipeline) Run(ctx context.Context, fixture *Fixture, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase), slog.Bool("dry_run", p.cfg.DryRun))

		var result PhaseResult
		switch phase {
		case "companies":
			result = p.runCompanies(ctx, fixture)
		case "opportunities":
			result = p.runOpportunities(ctx, fixture)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("archived", result.Archived),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		filter[ph] = true
	}
	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
			delete(filter, ph)
		}
	}
	for ph := range filter {
		return nil, fmt.Errorf("unknown phase %q", ph)
	}
	return out, nil
}

func (p *Pipeline) runCompanies(ctx context.Context, fixture *Fixture) PhaseResult {
	var res PhaseResult

	for _, cf := range fixture.Companies {
		input := company.CreateCompanyInput{
			Name:        cf.Name,
			Sector:      cf.Sector,
			Website:     optional(cf.Website),
			Description: optional(cf.Description),
			Address:     cf.Address.toDomain(),
		}

		if p.cfg.DryRun {
			if err := input.Validate(); err != nil {
				p.logItemError("company", cf.Name, err)
				res.Errors++
				continue
			}
			res.Inserted++
			continue
		}

		created, err := p.companies.CreateCompany(ctx, input)
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			res.Skipped++
		case err != nil:
			p.logItemError("company", cf.Name, err)
			res.Errors++
		default:
			p.companyIDs[cf.Name] = created.ID
			res.Inserted++
		}
	}
	return res
}

// runOpportunities publishes the opportunities of the companies created by
// the companies phase of the same run. Opportunities of skipped companies
// are skipped too.
func (p *Pipeline) runOpportunities(ctx context.Context, fixture *Fixture) PhaseResult {
	var res PhaseResult

	for _, cf := range fixture.Companies {
		companyID, ok := p.companyIDs[cf.Name]
		if !ok && !p.cfg.DryRun {
			res.Skipped += len(cf.Opportunities)
			continue
		}

		for _, of := range cf.Opportunities {
			input := opportunity.CreateOpportunityInput{
				CompanyID:   companyID,
				Title:       of.Title,
				Description: of.Description,
				Contract:    domain.ContractType(of.Contract),
				Location:    of.Location,
				Salary:      of.Salary.toDomain(),
				Skills:      of.Skills,
			}

			if p.cfg.DryRun {
				input.CompanyID = uuid.New()
				if err := input.Validate(); err != nil {
					p.logItemError("opportunity", of.Title, err)
					res.Errors++
					continue
				}
				res.Inserted++
				continue
			}

			created, err := p.opportunities.CreateOpportunity(ctx, input)
			if err != nil {
				p.logItemError("opportunity", of.Title, err)
				res.Errors++
				continue
			}
			res.Inserted++

			if !of.Archived {
				continue
			}
			if _, err := p.opportunities.ArchiveOpportunity(ctx, created.ID); err != nil {
				p.logItemError("opportunity", of.Title, err)
				res.Errors++
				continue
			}
			res.Archived++
		}
	}
	return res
}

func (p *Pipeline) logItemError(kind, name string, err error) {
	p.log.Warn("seed item failed",
		slog.String("kind", kind),
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
}
