package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/placement-portal/internal/llm"
	"github.com/jonathan/placement-portal/internal/types"
)

// fakeClient returns a canned response or error and records the prompt.
type fakeClient struct {
	response string
	err      error
	prompt   string
	tier     llm.ModelTier
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompt = prompt
	f.tier = tier
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func testDraft() types.ExperienceDraft {
	return types.ExperienceDraft{
		CompanyName: "Google",
		Role:        "SWE Intern",
		Shortlisted: true,
		OADetails:   &types.OARound{Topics: []string{"DP", "Graphs"}},
		Rounds: []types.InterviewRound{
			{Type: types.RoundTechnical, Difficulty: types.DifficultyMedium},
			{Type: types.RoundHR, Difficulty: types.DifficultyEasy},
		},
	}
}

func TestExperienceSummary_NoClient(t *testing.T) {
	gen := NewGenerator(nil)
	assert.Equal(t, FallbackNoAPIKey, gen.ExperienceSummary(context.Background(), testDraft()))
}

func TestExperienceSummary_ProviderError(t *testing.T) {
	gen := NewGenerator(&fakeClient{err: errors.New("quota exceeded")})
	assert.Equal(t, FallbackSummaryFailed, gen.ExperienceSummary(context.Background(), testDraft()))
}

func TestExperienceSummary_Success(t *testing.T) {
	client := &fakeClient{response: "  A clean three-sentence summary.\n"}
	gen := NewGenerator(client)

	got := gen.ExperienceSummary(context.Background(), testDraft())

	assert.Equal(t, "A clean three-sentence summary.", got, "provider output is trimmed")
	assert.Equal(t, llm.TierLite, client.tier)
	assert.Contains(t, client.prompt, "Google")
	assert.Contains(t, client.prompt, "SWE Intern")
	assert.Contains(t, client.prompt, "DP, Graphs")
	assert.Contains(t, client.prompt, "Technical Interview (Medium), HR Interview (Easy)")
	assert.Contains(t, client.prompt, "Shortlisted")
}

func TestExperienceSummary_NotShortlistedResult(t *testing.T) {
	client := &fakeClient{response: "ok"}
	gen := NewGenerator(client)

	draft := testDraft()
	draft.Shortlisted = false
	draft.OADetails = nil
	gen.ExperienceSummary(context.Background(), draft)

	assert.Contains(t, client.prompt, "Not Shortlisted")
}

func TestCompanyInsight_NoClient(t *testing.T) {
	gen := NewGenerator(nil)
	assert.Equal(t, FallbackInsightNoAPIKey, gen.CompanyInsight(context.Background(), "Google", "4.5", nil))
}

func TestCompanyInsight_ProviderError(t *testing.T) {
	gen := NewGenerator(&fakeClient{err: errors.New("timeout")})
	assert.Equal(t, FallbackInsightFailed, gen.CompanyInsight(context.Background(), "Google", "4.5", nil))
}

func TestCompanyInsight_Success(t *testing.T) {
	client := &fakeClient{response: "Ten lines of advice."}
	gen := NewGenerator(client)

	got := gen.CompanyInsight(context.Background(), "Google", "4.5", []string{"DP", "Graphs"})

	assert.Equal(t, "Ten lines of advice.", got)
	assert.Equal(t, llm.TierStandard, client.tier)
	assert.Contains(t, client.prompt, "Google")
	assert.Contains(t, client.prompt, "4.5")
	assert.Contains(t, client.prompt, "DP, Graphs")
}
