package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is an employer publishing opportunities.
type Company struct {
	ID          uuid.UUID
	Name        string
	Sector      string
	Website     *string
	Description *string
	Address     Address
	Revision    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Address is a postal address; it is tracked as a nested document.
type Address struct {
	Street  string
	City    string
	ZipCode string
	Country string
}

// CompanyUpdateParams holds optional fields for a company update.
// A nil pointer means "leave unchanged".
type CompanyUpdateParams struct {
	Name        *string
	Sector      *string
	Website     *string
	Description *string
	Address     *Address
}

func (c *Company) RevisionModel() string   { return ModelCompany }
func (c *Company) RevisionKey() uuid.UUID  { return c.ID }
func (c *Company) RevisionNumber() int     { return c.Revision }
func (c *Company) SetRevisionNumber(n int) { c.Revision = n }

// RevisionFields returns the company state as a document.
func (c *Company) RevisionFields() map[string]any {
	return map[string]any{
		"id":          c.ID.String(),
		"name":        c.Name,
		"sector":      c.Sector,
		"website":     c.Website,
		"description": c.Description,
		"address": map[string]any{
			"street":   c.Address.Street,
			"city":     c.Address.City,
			"zip_code": c.Address.ZipCode,
			"country":  c.Address.Country,
		},
		"revision":   c.Revision,
		"created_at": c.CreatedAt,
		"updated_at": c.UpdatedAt,
	}
}

// Apply returns a copy of the company with params applied.
func (c Company) Apply(p CompanyUpdateParams) Company {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Sector != nil {
		c.Sector = *p.Sector
	}
	if p.Website != nil {
		c.Website = emptyToNil(*p.Website)
	}
	if p.Description != nil {
		c.Description = emptyToNil(*p.Description)
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	return c
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
