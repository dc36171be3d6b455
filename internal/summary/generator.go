// Package summary is the portal's boundary to the external text-generation
// collaborator. From the caller's point of view generation always succeeds:
// missing credentials and provider errors are converted to fixed fallback
// strings here and never propagate as errors into the wizard or the insight
// aggregator.
package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/placement-portal/internal/llm"
	"github.com/jonathan/placement-portal/internal/prompts"
	"github.com/jonathan/placement-portal/internal/types"
)

// Fallback strings shown when generation is unavailable. User-visible and
// editable where they land in a draft.
const (
	FallbackNoAPIKey        = "AI Summary unavailable (No API Key)."
	FallbackSummaryFailed   = "Could not generate summary at this time."
	FallbackInsightNoAPIKey = "AI Insights unavailable."
	FallbackInsightFailed   = "Insights unavailable."
)

// Generator produces experience summaries and company insights. A Generator
// with a nil client behaves like the original running without an API key:
// every call resolves to the corresponding unavailable-fallback.
type Generator struct {
	client llm.Client
}

// NewGenerator wraps an LLM client. client may be nil.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// ExperienceSummary asks the collaborator for a three-sentence draft summary
// of an in-progress submission.
func (g *Generator) ExperienceSummary(ctx context.Context, draft types.ExperienceDraft) string {
	if g.client == nil {
		return FallbackNoAPIKey
	}

	var topics []string
	if draft.OADetails != nil {
		topics = draft.OADetails.Topics
	}

	roundDescs := make([]string, len(draft.Rounds))
	for i, r := range draft.Rounds {
		roundDescs[i] = fmt.Sprintf("%s (%s)", r.Type, r.Difficulty)
	}

	result := "Not Shortlisted"
	if draft.Shortlisted {
		result = "Shortlisted"
	}

	template := prompts.MustGet("summaries.json", "experience-summary")
	prompt := prompts.Format(template, map[string]string{
		"Company":  draft.CompanyName,
		"Role":     draft.Role,
		"OATopics": strings.Join(topics, ", "),
		"Rounds":   strings.Join(roundDescs, ", "),
		"Result":   result,
	})

	text, err := g.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return FallbackSummaryFailed
	}
	return strings.TrimSpace(text)
}

// CompanyInsight asks the collaborator for a ten-line preparation narrative
// from pre-computed aggregates. avgDifficulty is already formatted to one
// decimal place by the aggregator.
func (g *Generator) CompanyInsight(ctx context.Context, companyName, avgDifficulty string, commonTopics []string) string {
	if g.client == nil {
		return FallbackInsightNoAPIKey
	}

	template := prompts.MustGet("summaries.json", "company-insight")
	prompt := prompts.Format(template, map[string]string{
		"Company":       companyName,
		"AvgDifficulty": avgDifficulty,
		"CommonTopics":  strings.Join(commonTopics, ", "),
	})

	text, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return FallbackInsightFailed
	}
	return text
}
