package store

import (
	"context"

	"github.com/jonathan/placement-portal/internal/types"
)

// NewCompanyDescription is the placeholder description for lazily created
// companies.
const NewCompanyDescription = "New company added by student."

// GetCompanies returns every company in insertion order.
func (s *Store) GetCompanies() []types.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Company, len(s.companies))
	copy(out, s.companies)
	return out
}

// GetCompany returns the company with the given id, if any.
func (s *Store) GetCompany(id string) (types.Company, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.companies {
		if c.ID == id {
			return c, true
		}
	}
	return types.Company{}, false
}

// CreateCompany mints a company with the given name, a fresh id and
// placeholder description/industry, appends it and persists. Names are not
// deduplicated: calling this twice with the same name yields two distinct
// records, which is the documented behavior.
func (s *Store) CreateCompany(ctx context.Context, name string) (types.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	company := types.Company{
		ID:          types.NewID(),
		Name:        name,
		Description: NewCompanyDescription,
		Industry:    "Unknown",
	}
	s.companies = append(s.companies, company)
	if err := s.persist(ctx, keyCompanies, s.companies); err != nil {
		return types.Company{}, err
	}
	return company, nil
}

// UpdateCompany replaces the record sharing the company's id and persists.
// Experiences keep their snapshotted company name; a rename is never applied
// retroactively.
func (s *Store) UpdateCompany(ctx context.Context, company types.Company) (types.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.companies {
		if c.ID == company.ID {
			s.companies[i] = company
			break
		}
	}
	if err := s.persist(ctx, keyCompanies, s.companies); err != nil {
		return types.Company{}, err
	}
	return company, nil
}
