package store

import (
	"context"
	"sort"

	"github.com/jonathan/placement-portal/internal/types"
)

// GetExperiences returns every experience in insertion order, or only those
// for companyID when it is non-empty.
func (s *Store) GetExperiences(companyID string) []types.Experience {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Experience, 0, len(s.experiences))
	for _, e := range s.experiences {
		if companyID == "" || e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out
}

// GetExperienceByID returns the experience with the given id, if any.
func (s *Store) GetExperienceByID(id string) (types.Experience, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.experiences {
		if e.ID == id {
			return e, true
		}
	}
	return types.Experience{}, false
}

// AddExperience appends the experience and persists the collection. The store
// does not validate foreign keys or the shortlisted/OA invariant; records are
// expected to come through types.NewExperience.
func (s *Store) AddExperience(ctx context.Context, exp types.Experience) (types.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.experiences = append(s.experiences, exp)
	if err := s.persist(ctx, keyExperiences, s.experiences); err != nil {
		return types.Experience{}, err
	}
	return exp, nil
}

// Upvote increments the experience's upvote counter by one and persists.
// There is no per-user tracking: repeated calls keep incrementing, which is
// the documented behavior of the original "toggle".
func (s *Store) Upvote(ctx context.Context, expID string) (types.Experience, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.experiences {
		if s.experiences[i].ID == expID {
			s.experiences[i].Upvotes++
			if err := s.persist(ctx, keyExperiences, s.experiences); err != nil {
				return types.Experience{}, false, err
			}
			return s.experiences[i], true, nil
		}
	}
	return types.Experience{}, false, nil
}

// TrendingCompany pairs a company with its experience count.
type TrendingCompany struct {
	Company types.Company `json:"company"`
	Count   int           `json:"count"`
}

// TrendingCompanies returns the top 5 companies by experience count,
// descending. Ties keep the order in which a company first appears in the
// experience list. Companies with no experiences are excluded, and an id
// referenced by an experience but missing from the company collection is
// silently dropped.
func (s *Store) TrendingCompanies() []TrendingCompany {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	var order []string
	for _, e := range s.experiences {
		if counts[e.CompanyID] == 0 {
			order = append(order, e.CompanyID)
		}
		counts[e.CompanyID]++
	}

	trending := make([]TrendingCompany, 0, len(order))
	for _, id := range order {
		company, ok := s.companyByID(id)
		if !ok {
			continue
		}
		trending = append(trending, TrendingCompany{Company: company, Count: counts[id]})
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Count > trending[j].Count
	})

	if len(trending) > 5 {
		trending = trending[:5]
	}
	return trending
}

// companyByID looks a company up without locking. Callers hold s.mu.
func (s *Store) companyByID(id string) (types.Company, bool) {
	for _, c := range s.companies {
		if c.ID == id {
			return c, true
		}
	}
	return types.Company{}, false
}
