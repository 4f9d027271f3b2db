package opportunity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// CreateOpportunityInput holds the parameters for publishing an opportunity.
type CreateOpportunityInput struct {
	CompanyID   uuid.UUID
	Title       string
	Description string
	Contract    domain.ContractType
	Location    string
	Salary      *domain.Salary
	Skills      []string
}

// Validate checks all fields and collects all errors.
func (i CreateOpportunityInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	errs = validateTitle(errs, i.Title)
	if !i.Contract.IsValid() {
		errs = append(errs, domain.FieldError{Field: "contract", Message: "invalid value"})
	}
	errs = validateDescription(errs, i.Description)
	errs = validateSalary(errs, i.Salary)
	errs = validateSkills(errs, i.Skills)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateOpportunityInput holds the parameters for updating an opportunity.
type UpdateOpportunityInput struct {
	OpportunityID uuid.UUID
	Title         *string
	Description   *string
	Contract      *domain.ContractType
	Location      *string
	Salary        *domain.Salary
	ClearSalary   bool
	Skills        []string // nil = don't change; empty = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateOpportunityInput) Validate() error {
	var errs []domain.FieldError

	if i.OpportunityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "opportunity_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Contract == nil && i.Location == nil &&
		i.Salary == nil && !i.ClearSalary && i.Skills == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Contract != nil && !i.Contract.IsValid() {
		errs = append(errs, domain.FieldError{Field: "contract", Message: "invalid value"})
	}
	if i.Description != nil {
		errs = validateDescription(errs, *i.Description)
	}
	if i.ClearSalary && i.Salary != nil {
		errs = append(errs, domain.FieldError{Field: "salary", Message: "cannot set and clear at the same time"})
	}
	errs = validateSalary(errs, i.Salary)
	errs = validateSkills(errs, i.Skills)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListOpportunitiesInput holds the filters for listing a company's opportunities.
type ListOpportunitiesInput struct {
	CompanyID       uuid.UUID
	Contract        *domain.ContractType
	Skill           *string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// Validate checks all fields and collects all errors.
func (i ListOpportunitiesInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	if i.Contract != nil && !i.Contract.IsValid() {
		errs = append(errs, domain.FieldError{Field: "contract", Message: "invalid value"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, description string) []domain.FieldError {
	if len(strings.TrimSpace(description)) > 10000 {
		return append(errs, domain.FieldError{Field: "description", Message: "max 10000 characters"})
	}
	return errs
}

func validateSalary(errs []domain.FieldError, s *domain.Salary) []domain.FieldError {
	if s == nil {
		return errs
	}
	if s.Min < 0 || s.Max < 0 {
		errs = append(errs, domain.FieldError{Field: "salary", Message: "must be >= 0"})
	}
	if s.Min > s.Max {
		errs = append(errs, domain.FieldError{Field: "salary", Message: "min must be <= max"})
	}
	if len(strings.TrimSpace(s.Currency)) != 3 {
		errs = append(errs, domain.FieldError{Field: "salary.currency", Message: "must be an ISO 4217 code"})
	}
	return errs
}

func validateSkills(errs []domain.FieldError, skills []string) []domain.FieldError {
	if len(skills) > MaxSkills {
		errs = append(errs, domain.FieldError{Field: "skills", Message: "max 30 skills"})
	}
	for _, s := range skills {
		if len(strings.TrimSpace(s)) > MaxSkillLength {
			errs = append(errs, domain.FieldError{Field: "skills", Message: "max 50 characters per skill"})
			break
		}
	}
	return errs
}
