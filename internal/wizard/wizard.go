// Package wizard implements the six-step experience submission flow as an
// explicit state machine. The view layer drives it through Next, Back and the
// field setters; the wizard owns the draft, the step gating, the one
// summarizer call before the final step, and the publish that turns the draft
// into a stored Experience.
package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/placement-portal/internal/summary"
	"github.com/jonathan/placement-portal/internal/types"
)

// Step indexes the wizard's ordered steps.
type Step int

// Wizard steps, in order.
const (
	StepCompany Step = iota
	StepOnlineAssessment
	StepStatus
	StepInterviews
	StepResources
	StepSummary
)

// stepNames are the display titles of the steps.
var stepNames = [...]string{
	"Company", "Online Assessment", "Status", "Interviews", "Resources", "Summary",
}

// String returns the display title of the step.
func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "Unknown"
	}
	return stepNames[s]
}

// NewCompanyID is the sentinel company selection meaning "add a new company".
// Selecting it satisfies the step-0 gate even before a name is typed.
const NewCompanyID = "new"

// Store is the subset of the entity store the wizard needs.
type Store interface {
	GetCompany(id string) (types.Company, bool)
	CreateCompany(ctx context.Context, name string) (types.Company, error)
	AddExperience(ctx context.Context, exp types.Experience) (types.Experience, error)
}

// Summarizer produces the draft summary shown on the final step. Per the
// collaborator contract it always resolves to a string.
type Summarizer interface {
	ExperienceSummary(ctx context.Context, draft types.ExperienceDraft) string
}

// Wizard collects one experience submission for one user. Navigation and
// setters are safe for the single session that owns the wizard plus the
// internal generation goroutine.
type Wizard struct {
	mu         sync.Mutex
	store      Store
	summarizer Summarizer
	user       types.User

	step Step

	companyID      string
	newCompanyName string
	role           string
	year           int
	oaDetails      types.OARound
	shortlisted    bool
	rounds         []types.InterviewRound
	resources      []types.Resource
	summaryText    string
	isAnonymous    bool
	rating         int
	tags           []string

	generating bool
	genSeq     int
	pending    *summary.Pending
	published  *types.Experience
}

// New returns a wizard at step 0 with the documented defaults: no company
// selected, current year, medium OA difficulty with one empty question slot,
// shortlisted assumed true, rating 3.
func New(store Store, summarizer Summarizer, user types.User) *Wizard {
	return &Wizard{
		store:      store,
		summarizer: summarizer,
		user:       user,
		step:       StepCompany,
		year:       time.Now().Year(),
		oaDetails: types.OARound{
			Topics:          []string{},
			CodingQuestions: []string{""},
			Difficulty:      types.DifficultyMedium,
		},
		shortlisted: true,
		rating:      3,
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Generating reports whether a summary generation is in flight. While true,
// navigation is disabled.
func (w *Wizard) Generating() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generating
}

// Pending returns the handle of the most recent generation, or nil. Callers
// may wait on it or ignore it.
func (w *Wizard) Pending() *summary.Pending {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending
}

// Published returns the stored experience once the wizard has completed.
func (w *Wizard) Published() (types.Experience, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.published == nil {
		return types.Experience{}, false
	}
	return *w.published, true
}

// Back moves one step backwards. It is a no-op at step 0, while generating,
// and after publish. No draft data is cleared: re-advancing preserves every
// prior entry.
func (w *Wizard) Back() Step {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step > StepCompany && !w.generating && w.published == nil {
		w.step--
	}
	return w.step
}

// Next advances the wizard one step.
//
// At step 0 the advance is gated on a company selection (the new-company
// sentinel counts). Leaving the Resources step first asks the summarizer for
// a draft summary; Next returns immediately with the step unchanged and
// Generating true, and the wizard advances to Summary when the call resolves.
// At the Summary step Next publishes: the final company is resolved (created
// when the new-company sentinel was chosen), the experience is constructed
// and stored, and the wizard terminates.
//
// While generating, after publish, and at an unsatisfied gate, Next is a
// no-op returning the current step. ctx bounds the summarizer call and the
// store writes.
func (w *Wizard) Next(ctx context.Context) (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.generating || w.published != nil {
		return w.step, nil
	}

	switch w.step {
	case StepCompany:
		if w.companyID == "" {
			return w.step, nil
		}
		w.step++
	case StepOnlineAssessment, StepStatus, StepInterviews:
		w.step++
	case StepResources:
		w.startGeneration(ctx)
	case StepSummary:
		if err := w.publish(ctx); err != nil {
			return w.step, err
		}
	}
	return w.step, nil
}

// Abandon discards the wizard: any in-flight generation result is ignored and
// no state is updated afterwards. Safe to call at any time, including after
// publish, where it does nothing.
func (w *Wizard) Abandon() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.genSeq++
	w.generating = false
}

// startGeneration snapshots the draft, kicks off the summarizer call and
// marks the wizard busy. Callers hold w.mu. The sequence counter ensures a
// result arriving after Abandon is dropped on the floor.
func (w *Wizard) startGeneration(ctx context.Context) {
	w.generating = true
	w.genSeq++
	seq := w.genSeq
	draft := w.draftLocked()

	w.pending = summary.Go(func() string {
		text := w.summarizer.ExperienceSummary(ctx, draft)
		w.completeGeneration(seq, text)
		return text
	})
}

// completeGeneration applies a finished generation: store the draft summary
// and advance to the Summary step. A stale sequence number means the wizard
// was abandoned in the meantime and the result is discarded.
func (w *Wizard) completeGeneration(seq int, text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if seq != w.genSeq {
		return
	}
	w.summaryText = text
	w.step = StepSummary
	w.generating = false
}

// publish resolves the final company, constructs the experience and stores
// it. Callers hold w.mu.
func (w *Wizard) publish(ctx context.Context) error {
	companyID := w.companyID
	companyName := ""

	if companyID == NewCompanyID {
		company, err := w.store.CreateCompany(ctx, w.newCompanyName)
		if err != nil {
			return err
		}
		companyID = company.ID
		companyName = company.Name
	} else if company, ok := w.store.GetCompany(companyID); ok {
		companyName = company.Name
	}

	oa := w.oaDetails
	exp := types.NewExperience(types.ExperienceDraft{
		UserID:           w.user.ID,
		CompanyID:        companyID,
		CompanyName:      companyName,
		Role:             w.role,
		Year:             w.year,
		IsAnonymous:      w.isAnonymous,
		Shortlisted:      w.shortlisted,
		OADetails:        &oa,
		Rounds:           w.rounds,
		Resources:        w.resources,
		Summary:          w.summaryText,
		DifficultyRating: w.rating,
		Tags:             w.tags,
	})

	stored, err := w.store.AddExperience(ctx, exp)
	if err != nil {
		return err
	}
	w.published = &stored
	return nil
}

// draftLocked snapshots the current draft, resolving the display company name
// from the selection. Callers hold w.mu.
func (w *Wizard) draftLocked() types.ExperienceDraft {
	companyName := w.newCompanyName
	if w.companyID != NewCompanyID {
		companyName = ""
		if company, ok := w.store.GetCompany(w.companyID); ok {
			companyName = company.Name
		}
	}

	oa := w.oaDetails
	return types.ExperienceDraft{
		UserID:           w.user.ID,
		CompanyID:        w.companyID,
		CompanyName:      companyName,
		Role:             w.role,
		Year:             w.year,
		IsAnonymous:      w.isAnonymous,
		Shortlisted:      w.shortlisted,
		OADetails:        &oa,
		Rounds:           append([]types.InterviewRound(nil), w.rounds...),
		Resources:        append([]types.Resource(nil), w.resources...),
		Summary:          w.summaryText,
		DifficultyRating: w.rating,
		Tags:             append([]string(nil), w.tags...),
	}
}
