package domain

import (
	"time"

	"github.com/google/uuid"
)

// Opportunity is a job offer published by a company.
type Opportunity struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Title       string
	Description string
	Contract    ContractType
	Location    string
	Salary      *Salary
	Skills      []string
	Revision    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// Salary is a yearly compensation range.
type Salary struct {
	Min      int
	Max      int
	Currency string
}

// IsArchived returns true if the opportunity has been soft-deleted.
func (o *Opportunity) IsArchived() bool {
	return o.DeletedAt != nil
}

// OpportunityUpdateParams holds optional fields for an opportunity update.
type OpportunityUpdateParams struct {
	Title       *string
	Description *string
	Contract    *ContractType
	Location    *string
	Salary      *Salary
	ClearSalary bool
	Skills      []string // nil = unchanged, empty = clear
}

// OpportunityFilter narrows ListByCompany results.
type OpportunityFilter struct {
	Contract        *ContractType
	Skill           *string
	IncludeArchived bool
	Limit           int
	Offset          int
}

func (o *Opportunity) RevisionModel() string   { return ModelOpportunity }
func (o *Opportunity) RevisionKey() uuid.UUID  { return o.ID }
func (o *Opportunity) RevisionNumber() int     { return o.Revision }
func (o *Opportunity) SetRevisionNumber(n int) { o.Revision = n }

// RevisionFields returns the opportunity state as a document.
func (o *Opportunity) RevisionFields() map[string]any {
	var salary any
	if o.Salary != nil {
		salary = map[string]any{
			"min":      o.Salary.Min,
			"max":      o.Salary.Max,
			"currency": o.Salary.Currency,
		}
	}
	skills := o.Skills
	if skills == nil {
		skills = []string{}
	}
	return map[string]any{
		"id":          o.ID.String(),
		"company_id":  o.CompanyID.String(),
		"title":       o.Title,
		"description": o.Description,
		"contract":    string(o.Contract),
		"location":    o.Location,
		"salary":      salary,
		"skills":      skills,
		"revision":    o.Revision,
		"created_at":  o.CreatedAt,
		"updated_at":  o.UpdatedAt,
		"deleted_at":  o.DeletedAt,
	}
}

// Apply returns a copy of the opportunity with params applied.
func (o Opportunity) Apply(p OpportunityUpdateParams) Opportunity {
	if p.Title != nil {
		o.Title = *p.Title
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.Contract != nil {
		o.Contract = *p.Contract
	}
	if p.Location != nil {
		o.Location = *p.Location
	}
	if p.ClearSalary {
		o.Salary = nil
	} else if p.Salary != nil {
		s := *p.Salary
		o.Salary = &s
	}
	if p.Skills != nil {
		o.Skills = append([]string(nil), p.Skills...)
	}
	return o
}
