package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// Fixture is the demo data set: companies with their opportunities.
type Fixture struct {
	Companies []CompanyFixture `yaml:"companies"`
}

// CompanyFixture describes one company to create.
type CompanyFixture struct {
	Name          string               `yaml:"name"`
	Sector        string               `yaml:"sector"`
	Website       string               `yaml:"website"`
	Description   string               `yaml:"description"`
	Address       AddressFixture       `yaml:"address"`
	Opportunities []OpportunityFixture `yaml:"opportunities"`
}

// AddressFixture is a company postal address.
type AddressFixture struct {
	Street  string `yaml:"street"`
	City    string `yaml:"city"`
	ZipCode string `yaml:"zip"`
	Country string `yaml:"country"`
}

// OpportunityFixture describes one opportunity. Archived ones are archived
// right after creation.
type OpportunityFixture struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Contract    string         `yaml:"contract"`
	Location    string         `yaml:"location"`
	Salary      *SalaryFixture `yaml:"salary"`
	Skills      []string       `yaml:"skills"`
	Archived    bool           `yaml:"archived"`
}

// SalaryFixture is a yearly salary range.
type SalaryFixture struct {
	Min      int    `yaml:"min"`
	Max      int    `yaml:"max"`
	Currency string `yaml:"currency"`
}

// LoadFixture reads a fixture YAML file.
func LoadFixture(path string) (*Fixture, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	var f Fixture
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	return &f, nil
}

func (a AddressFixture) toDomain() domain.Address {
	return domain.Address{Street: a.Street, City: a.City, ZipCode: a.ZipCode, Country: a.Country}
}

func (s *SalaryFixture) toDomain() *domain.Salary {
	if s == nil {
		return nil
	}
	return &domain.Salary{Min: s.Min, Max: s.Max, Currency: s.Currency}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
