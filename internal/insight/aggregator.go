// Package insight computes per-company rollups from stored experiences and
// turns them into a preparation narrative via the external summarizer. It is
// purely derived: nothing here is persisted and every view recomputes.
package insight

import (
	"context"
	"fmt"
	"math"

	"github.com/jonathan/placement-portal/internal/summary"
	"github.com/jonathan/placement-portal/internal/types"
)

// Placeholder is shown when a company has no experiences; no summarizer call
// is made in that case.
const Placeholder = "No enough data to generate insights yet."

// Store is the subset of the entity store the aggregator reads.
type Store interface {
	GetExperiences(companyID string) []types.Experience
}

// Summarizer produces the narrative from pre-computed aggregates. Always
// resolves per the collaborator contract.
type Summarizer interface {
	CompanyInsight(ctx context.Context, companyName, avgDifficulty string, commonTopics []string) string
}

// Rollup holds the aggregates forwarded to the summarizer.
type Rollup struct {
	Count             int      `json:"count"`
	AverageDifficulty float64  `json:"averageDifficulty"` // rounded to one decimal
	CommonTopics      []string `json:"commonTopics"`      // first 10, first-occurrence order
}

// Aggregate computes the rollup for a set of experiences: the arithmetic mean
// of difficulty ratings rounded to one decimal place, and the case-sensitive
// union of OA topics in first-occurrence order, truncated to ten entries.
func Aggregate(exps []types.Experience) Rollup {
	rollup := Rollup{Count: len(exps), CommonTopics: []string{}}
	if len(exps) == 0 {
		return rollup
	}

	sum := 0
	seen := make(map[string]bool)
	for _, e := range exps {
		sum += e.DifficultyRating
		if e.OADetails == nil {
			continue
		}
		for _, topic := range e.OADetails.Topics {
			if !seen[topic] {
				seen[topic] = true
				rollup.CommonTopics = append(rollup.CommonTopics, topic)
			}
		}
	}

	mean := float64(sum) / float64(len(exps))
	rollup.AverageDifficulty = math.Round(mean*10) / 10

	if len(rollup.CommonTopics) > 10 {
		rollup.CommonTopics = rollup.CommonTopics[:10]
	}
	return rollup
}

// Aggregator produces company insights on demand.
type Aggregator struct {
	store      Store
	summarizer Summarizer
}

// New returns an aggregator over the given store and summarizer.
func New(store Store, summarizer Summarizer) *Aggregator {
	return &Aggregator{store: store, summarizer: summarizer}
}

// CompanyInsight returns the narrative for one company. With no stored
// experiences it short-circuits to the static placeholder without calling the
// summarizer.
func (a *Aggregator) CompanyInsight(ctx context.Context, company types.Company) string {
	exps := a.store.GetExperiences(company.ID)
	if len(exps) == 0 {
		return Placeholder
	}

	rollup := Aggregate(exps)
	avg := fmt.Sprintf("%.1f", rollup.AverageDifficulty)
	return a.summarizer.CompanyInsight(ctx, company.Name, avg, rollup.CommonTopics)
}

// Generate starts insight generation on its own goroutine and returns a
// discard-safe handle. A caller that navigates away simply drops the handle;
// the eventual result is ignored.
func (a *Aggregator) Generate(ctx context.Context, company types.Company) *summary.Pending {
	return summary.Go(func() string {
		return a.CompanyInsight(ctx, company)
	})
}
