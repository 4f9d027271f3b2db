package company

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// CreateCompanyInput holds the parameters for creating a company.
type CreateCompanyInput struct {
	Name        string
	Sector      string
	Website     *string
	Description *string
	Address     domain.Address
}

// Validate checks all fields and collects all errors.
func (i CreateCompanyInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateSector(errs, i.Sector)
	errs = validateWebsite(errs, i.Website)
	errs = validateDescription(errs, i.Description)
	errs = validateAddress(errs, i.Address)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCompanyInput holds the parameters for updating a company.
type UpdateCompanyInput struct {
	CompanyID   uuid.UUID
	Name        *string
	Sector      *string
	Website     *string // nil = don't change; ptr("") = clear
	Description *string // nil = don't change; ptr("") = clear
	Address     *domain.Address
}

// Validate checks all fields and collects all errors.
func (i UpdateCompanyInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	if i.Name == nil && i.Sector == nil && i.Website == nil && i.Description == nil && i.Address == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Sector != nil {
		errs = validateSector(errs, *i.Sector)
	}
	errs = validateWebsite(errs, i.Website)
	errs = validateDescription(errs, i.Description)
	if i.Address != nil {
		errs = validateAddress(errs, *i.Address)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteCompanyInput holds the parameters for deleting a company.
type DeleteCompanyInput struct {
	CompanyID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteCompanyInput) Validate() error {
	if i.CompanyID == uuid.Nil {
		return domain.NewValidationError("company_id", "required")
	}
	return nil
}

// ListCompaniesInput holds pagination parameters.
type ListCompaniesInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListCompaniesInput) Validate() error {
	var errs []domain.FieldError

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

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func validateSector(errs []domain.FieldError, sector string) []domain.FieldError {
	sector = strings.TrimSpace(sector)
	if sector == "" {
		return append(errs, domain.FieldError{Field: "sector", Message: "required"})
	}
	if len(sector) > 100 {
		return append(errs, domain.FieldError{Field: "sector", Message: "max 100 characters"})
	}
	return errs
}

func validateWebsite(errs []domain.FieldError, website *string) []domain.FieldError {
	if website == nil || strings.TrimSpace(*website) == "" {
		return errs
	}
	u, err := url.Parse(strings.TrimSpace(*website))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return append(errs, domain.FieldError{Field: "website", Message: "must be an http(s) URL"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, description *string) []domain.FieldError {
	if description != nil && len(strings.TrimSpace(*description)) > 2000 {
		return append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	return errs
}

func validateAddress(errs []domain.FieldError, a domain.Address) []domain.FieldError {
	if c := strings.TrimSpace(a.Country); c != "" && len(c) != 2 {
		errs = append(errs, domain.FieldError{Field: "address.country", Message: "must be an ISO 3166-1 alpha-2 code"})
	}
	if len(a.Street) > 200 {
		errs = append(errs, domain.FieldError{Field: "address.street", Message: "max 200 characters"})
	}
	if len(a.City) > 100 {
		errs = append(errs, domain.FieldError{Field: "address.city", Message: "max 100 characters"})
	}
	if len(a.ZipCode) > 20 {
		errs = append(errs, domain.FieldError{Field: "address.zip_code", Message: "max 20 characters"})
	}
	return errs
}
